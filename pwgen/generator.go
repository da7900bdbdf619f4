package pwgen

import "strings"

// Policy limits. Requests outside the length and count ranges are clamped,
// not rejected.
const (
	MinLength   = 4
	MaxLength   = 128
	MinCount    = 1
	MaxCount    = 200
	MinAlphabet = 4
)

type (
	// Request describes a batch of passwords to generate.
	Request struct {
		Length          int
		Count           int
		Lower           bool
		Upper           bool
		Digits          bool
		Special         bool
		AvoidAmbiguous  bool
		StartWithLetter bool
	}

	// Result holds a generated batch and its strength estimate.
	Result struct {
		Passwords []string
		Alphabet  string
		Report    Report
	}

	// Generator builds passwords from a RandomSource.
	Generator struct {
		src RandomSource
	}
)

// Categories returns the enabled categories in canonical order.
func (r Request) Categories() []Category {
	var categories []Category
	if r.Lower {
		categories = append(categories, Lowercase)
	}
	if r.Upper {
		categories = append(categories, Uppercase)
	}
	if r.Digits {
		categories = append(categories, Digits)
	}
	if r.Special {
		categories = append(categories, Special)
	}
	return categories
}

// Clamped returns a copy of r with Length and Count forced into their
// allowed ranges.
func (r Request) Clamped() Request {
	r.Length = clamp(r.Length, MinLength, MaxLength)
	r.Count = clamp(r.Count, MinCount, MaxCount)
	return r
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Text returns the passwords one per line, without a trailing newline.
func (r Result) Text() string {
	return strings.Join(r.Passwords, "\n")
}

// New returns a Generator drawing from src. A nil src uses CryptoSource.
func New(src RandomSource) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{src: src}
}

// GenerateOne builds a single password. One character is drawn from each
// bucket in order, the rest uniformly from alphabet, and the whole sequence
// is then shuffled so the guaranteed characters have no fixed position. The
// password is widened to len(buckets) if length is shorter.
//
// alphabet must not be empty when length exceeds len(buckets); GenerateOne
// panics otherwise.
func (g *Generator) GenerateOne(length int, buckets []Bucket, alphabet string) string {
	length = max(length, len(buckets))
	if alphabet == "" && length > len(buckets) {
		panic("pwgen: empty alphabet for filler characters")
	}
	password := make([]byte, 0, length)
	for _, b := range buckets {
		password = append(password, g.src.Pick(b.Chars))
	}
	for len(password) < length {
		password = append(password, g.src.Pick(alphabet))
	}
	g.src.Shuffle(password)
	return string(password)
}

// GenerateBatch validates req and generates req.Count passwords. The
// Report is computed from the clamped requested length even when a password
// was widened to fit every bucket.
func (g *Generator) GenerateBatch(req Request) (Result, error) {
	categories := req.Categories()
	if len(categories) == 0 {
		return Result{}, ErrNoCategorySelected
	}
	alphabet := BuildCharset(categories, req.AvoidAmbiguous)
	if len(alphabet) < MinAlphabet {
		return Result{}, ErrAlphabetTooSmall
	}
	req = req.Clamped()
	buckets, err := BuildBuckets(categories, req.AvoidAmbiguous)
	if err != nil {
		return Result{}, err
	}

	var letters string
	if req.StartWithLetter {
		letters = LetterPool(categories, req.AvoidAmbiguous)
	}

	passwords := make([]string, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		password := g.GenerateOne(req.Length, buckets, alphabet)
		// may replace the only character of a required category
		if letters != "" {
			password = string(g.src.Pick(letters)) + password[1:]
		}
		passwords = append(passwords, password)
	}

	return Result{
		Passwords: passwords,
		Alphabet:  alphabet,
		Report:    Estimate(len(alphabet), req.Length),
	}, nil
}
