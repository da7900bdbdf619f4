// Package pwgen generates random passwords that satisfy a character class
// policy and estimates their strength.
package pwgen

import "strings"

// Category is a class of characters a password policy may require.
type Category int

const (
	// Lowercase is the ASCII lowercase letters a-z.
	Lowercase Category = iota
	// Uppercase is the ASCII uppercase letters A-Z.
	Uppercase
	// Digits is the ASCII digits 0-9.
	Digits
	// Special is the printable ASCII punctuation.
	Special
)

// AmbiguousChars contains the characters that are easily confused with one
// another when read or transcribed.
const AmbiguousChars = "O0oIl1|S5B8Z2G6Q9"

var categoryChars = [...]string{
	Lowercase: "abcdefghijklmnopqrstuvwxyz",
	Uppercase: "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	Digits:    "0123456789",
	Special:   "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~",
}

var categoryNames = [...]string{
	Lowercase: "lowercase",
	Uppercase: "uppercase",
	Digits:    "digits",
	Special:   "special",
}

// Chars returns the source alphabet of the category.
func (c Category) Chars() string {
	if c < Lowercase || c > Special {
		return ""
	}
	return categoryChars[c]
}

func (c Category) String() string {
	if c < Lowercase || c > Special {
		return "unknown"
	}
	return categoryNames[c]
}

// IsAmbiguous reports whether b is one of AmbiguousChars.
func IsAmbiguous(b byte) bool {
	return strings.IndexByte(AmbiguousChars, b) >= 0
}

type (
	// Bucket is the filtered character pool of a single category. Buckets
	// are only used to guarantee that each required category appears at
	// least once.
	Bucket struct {
		Category Category
		Chars    string
	}
)

func filterAmbiguous(chars string, avoidAmbiguous bool) string {
	if !avoidAmbiguous {
		return chars
	}
	var b strings.Builder
	for i := 0; i < len(chars); i++ {
		if !IsAmbiguous(chars[i]) {
			b.WriteByte(chars[i])
		}
	}
	return b.String()
}

// BuildCharset returns the sorted, deduplicated union of the given
// categories' characters, without the ambiguous ones if avoidAmbiguous is
// set. The result may be smaller than a usable alphabet; callers validate
// its size.
func BuildCharset(categories []Category, avoidAmbiguous bool) string {
	var seen [128]bool
	for _, c := range categories {
		chars := filterAmbiguous(c.Chars(), avoidAmbiguous)
		for i := 0; i < len(chars); i++ {
			seen[chars[i]] = true
		}
	}
	var b strings.Builder
	for ch, ok := range seen {
		if ok {
			b.WriteByte(byte(ch))
		}
	}
	return b.String()
}

// BuildBuckets filters each category on its own and returns the buckets that
// still hold characters, in the order given. ErrPolicyUnsatisfiable is
// returned if none do.
func BuildBuckets(categories []Category, avoidAmbiguous bool) ([]Bucket, error) {
	var buckets []Bucket
	for _, c := range categories {
		chars := filterAmbiguous(c.Chars(), avoidAmbiguous)
		if chars == "" {
			continue
		}
		buckets = append(buckets, Bucket{Category: c, Chars: chars})
	}
	if len(buckets) == 0 {
		return nil, ErrPolicyUnsatisfiable
	}
	return buckets, nil
}

// LetterPool returns the enabled letter characters, lowercase first, used to
// pick the first character of a password that must start with a letter. It
// is empty if no letter category is enabled.
func LetterPool(categories []Category, avoidAmbiguous bool) string {
	var lower, upper bool
	for _, c := range categories {
		switch c {
		case Lowercase:
			lower = true
		case Uppercase:
			upper = true
		}
	}
	letters := ""
	if lower {
		letters += Lowercase.Chars()
	}
	if upper {
		letters += Uppercase.Chars()
	}
	return filterAmbiguous(letters, avoidAmbiguous)
}
