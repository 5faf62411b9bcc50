package ucs

// Builder is a growable codepoint accumulator. The zero value is ready to
// use.
type Builder struct {
	r []rune
}

// AppendRune appends a single codepoint.
func (b *Builder) AppendRune(r rune) {
	b.r = append(b.r, r)
}

// Append appends every codepoint of s.
func (b *Builder) Append(s String) {
	b.r = append(b.r, s.r...)
}

// Len returns the number of codepoints accumulated so far.
func (b *Builder) Len() int { return len(b.r) }

// String returns the accumulated codepoints as a new String. The builder
// remains usable afterwards.
func (b *Builder) String() String {
	return FromRunes(b.r)
}
