// Package ucs provides an immutable codepoint-indexed string type. Strings
// enter and leave the package as UTF-8; everything in between is indexed in
// Unicode scalar values, never in bytes.
package ucs

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// String is an immutable sequence of Unicode scalar values.
type String struct {
	r []rune
}

// Empty is the zero-length String.
var Empty = String{}

// ErrEncoding reports input bytes that are not well-formed UTF-8.
var ErrEncoding = errors.New("invalid UTF-8 byte sequence")

// FromUTF8 decodes s into a String. Ill-formed UTF-8 is rejected.
func FromUTF8(s string) (String, error) {
	if !utf8.ValidString(s) {
		return Empty, errors.WithStack(ErrEncoding)
	}
	return String{r: []rune(s)}, nil
}

// FromRunes builds a String from a codepoint slice. The slice is copied.
func FromRunes(rs []rune) String {
	r := make([]rune, len(rs))
	copy(r, rs)
	return String{r: r}
}

// UTF8 encodes the String as UTF-8.
func (s String) UTF8() string { return string(s.r) }

// Len returns the number of codepoints.
func (s String) Len() int { return len(s.r) }

// At returns the codepoint at 0-based position i.
func (s String) At(i int) rune { return s.r[i] }

// Runes exposes the backing codepoints. Callers must not modify the result.
func (s String) Runes() []rune { return s.r }

// Equal reports whether s and t hold the same codepoint sequence.
func (s String) Equal(t String) bool {
	if len(s.r) != len(t.r) {
		return false
	}
	for i, c := range s.r {
		if t.r[i] != c {
			return false
		}
	}
	return true
}

// Reverse returns s with its codepoint order reversed. Combining marks are
// reversed along with their base codepoints.
func (s String) Reverse() String {
	r := make([]rune, len(s.r))
	for i, c := range s.r {
		r[len(r)-1-i] = c
	}
	return String{r: r}
}

// Upper returns the full root-locale upper-case mapping of s, so
// Upper("ß") is "SS". Casers carry state, hence one per call.
func (s String) Upper() String {
	return String{r: []rune(cases.Upper(language.Und).String(string(s.r)))}
}

// Lower returns the full root-locale lower-case mapping of s.
func (s String) Lower() String {
	return String{r: []rune(cases.Lower(language.Und).String(string(s.r)))}
}

// Slice returns the codepoints in the half-open range [i, j). The range must
// satisfy 0 <= i <= j <= s.Len().
func (s String) Slice(i, j int) String {
	return String{r: s.r[i:j]}
}

// Sub returns the substring between 1-based codepoint positions i and j
// inclusive. Negative positions count from the end, -1 being the last
// codepoint. Out-of-range positions are clamped; an inverted range yields
// the empty string.
func (s String) Sub(i, j int) String {
	l := len(s.r)
	if i < 0 {
		i += l + 1
	}
	if j < 0 {
		j += l + 1
	}
	if i > l {
		i = l + 1
	}
	if i < 1 {
		i = 1
	}
	if j > l {
		j = l
	}
	if j < 0 {
		j = 0
	}
	if j < i {
		return Empty
	}
	return String{r: s.r[i-1 : j]}
}

// Index returns the 0-based position of the first occurrence of needle at or
// after position from, or -1 if there is none. An empty needle matches
// immediately at from.
func (s String) Index(needle String, from int) int {
	n := len(needle.r)
	if from < 0 {
		from = 0
	}
	if n == 0 {
		if from > len(s.r) {
			return -1
		}
		return from
	}
	for i := from; i+n <= len(s.r); i++ {
		if s.r[i] != needle.r[0] {
			continue
		}
		hit := true
		for k := 1; k < n; k++ {
			if s.r[i+k] != needle.r[k] {
				hit = false
				break
			}
		}
		if hit {
			return i
		}
	}
	return -1
}
