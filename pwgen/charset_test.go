package pwgen

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCategories = []Category{Lowercase, Uppercase, Digits, Special}

func TestBuildCharset_AllCategories(t *testing.T) {
	charset := BuildCharset(allCategories, false)
	assert.Len(t, charset, 94)
	assert.True(t, sort.SliceIsSorted([]byte(charset), func(i, j int) bool {
		return charset[i] < charset[j]
	}), "charset %q should be sorted", charset)
	for i := 0; i < len(charset); i++ {
		assert.True(t, charset[i] > ' ' && charset[i] < 127, "unexpected char %q", charset[i])
	}
}

func TestBuildCharset_AvoidAmbiguous(t *testing.T) {
	charset := BuildCharset(allCategories, true)
	assert.Len(t, charset, 94-len(AmbiguousChars))
	for _, c := range AmbiguousChars {
		assert.False(t, strings.ContainsRune(charset, c), "charset should not contain %q", c)
	}
}

func TestBuildCharset_Deduplicates(t *testing.T) {
	charset := BuildCharset([]Category{Digits, Digits, Lowercase}, false)
	assert.Equal(t, "0123456789abcdefghijklmnopqrstuvwxyz", charset)
}

func TestBuildCharset_MayBeSmall(t *testing.T) {
	assert.Equal(t, "347", BuildCharset([]Category{Digits}, true))
	assert.Equal(t, "", BuildCharset(nil, true))
}

func TestBuildBuckets(t *testing.T) {
	buckets, err := BuildBuckets(allCategories, true)
	require.NoError(t, err)
	require.Len(t, buckets, 4)

	for i, b := range buckets {
		assert.Equal(t, allCategories[i], b.Category)
		for j := 0; j < len(b.Chars); j++ {
			assert.False(t, IsAmbiguous(b.Chars[j]))
			assert.True(t, strings.IndexByte(b.Category.Chars(), b.Chars[j]) >= 0,
				"bucket %v holds foreign char %q", b.Category, b.Chars[j])
		}
	}
	assert.Equal(t, "347", buckets[2].Chars)
}

func TestBuildBuckets_Unsatisfiable(t *testing.T) {
	_, err := BuildBuckets(nil, false)
	assert.ErrorIs(t, err, ErrPolicyUnsatisfiable)

	_, err = BuildBuckets([]Category{Category(42)}, false)
	assert.ErrorIs(t, err, ErrPolicyUnsatisfiable)
}

func TestLetterPool(t *testing.T) {
	assert.Equal(t, "", LetterPool([]Category{Digits, Special}, false))
	assert.Equal(t, Lowercase.Chars()+Uppercase.Chars(), LetterPool(allCategories, false))
	assert.Equal(t, Uppercase.Chars(), LetterPool([]Category{Uppercase}, false))

	pool := LetterPool(allCategories, true)
	assert.NotContains(t, pool, "o")
	assert.NotContains(t, pool, "O")
	assert.Len(t, pool, 52-9)
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "lowercase", Lowercase.String())
	assert.Equal(t, "special", Special.String())
	assert.Equal(t, "unknown", Category(-1).String())
	assert.Equal(t, "", Category(7).Chars())
}
