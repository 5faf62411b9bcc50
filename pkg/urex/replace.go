package urex

import (
	"github.com/pkg/errors"

	"github.com/monwarez-grit/grit-util/pkg/ucs"
)

// AppendReplacement appends to b the unmatched span between the previous
// append position and the current match, followed by tmpl with its capture
// references expanded. The template dialect is the engine's replacement
// syntax: "$n" and "${n}" stand for capture n, "$n" taking the longest digit
// run that names a group, "\n" stands for the single-digit capture n, "$$"
// and "\\" are literal escapes and "\x" is the literal x. A reference that
// names no group in the pattern is kept literally; a named group that did
// not take part in the match expands to the empty string.
func (m *Matcher) AppendReplacement(b *ucs.Builder, tmpl ucs.String) error {
	if m.m == nil {
		return errors.WithStack(ErrNoMatch)
	}
	b.Append(m.subject.Slice(m.appended, m.Start()))
	m.appended = m.End()

	rs := tmpl.Runes()
	groups := m.GroupCount()
	for i := 0; i < len(rs); i++ {
		c := rs[i]
		if c != '$' && c != '\\' {
			b.AppendRune(c)
			continue
		}
		if i+1 >= len(rs) {
			b.AppendRune(c)
			continue
		}
		next := rs[i+1]
		switch {
		case c == '$' && next == '$':
			b.AppendRune('$')
			i++
		case c == '\\' && !isDigit(next):
			b.AppendRune(next)
			i++
		case c == '\\':
			// single-digit reference
			n := int(next - '0')
			if n > groups {
				b.AppendRune(c)
				continue
			}
			m.appendGroup(b, n)
			i++
		case next == '{':
			n, width := bracedRef(rs[i+2:])
			if width < 0 || n > groups {
				b.AppendRune(c)
				continue
			}
			m.appendGroup(b, n)
			// width covers the digits and the closing brace; one
			// more for the opening brace
			i += 1 + width
		case isDigit(next):
			n, width := longestRef(rs[i+1:], groups)
			if width == 0 {
				b.AppendRune(c)
				continue
			}
			m.appendGroup(b, n)
			i += width
		default:
			b.AppendRune(c)
		}
	}
	return nil
}

// AppendTail appends the remainder of the subject after the last appended
// match (or the whole subject if nothing matched).
func (m *Matcher) AppendTail(b *ucs.Builder) {
	b.Append(m.subject.Slice(m.appended, m.subject.Len()))
	m.appended = m.subject.Len()
}

func (m *Matcher) appendGroup(b *ucs.Builder, n int) {
	g, err := m.Group(n)
	if err != nil {
		// non-participating group expands to nothing
		return
	}
	b.Append(g)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// bracedRef parses "n}" and returns the group number and the consumed width
// including the closing brace, or width -1 if rs does not open with a braced
// number.
func bracedRef(rs []rune) (n, width int) {
	i := 0
	for i < len(rs) && isDigit(rs[i]) {
		n = n*10 + int(rs[i]-'0')
		i++
	}
	if i == 0 || i >= len(rs) || rs[i] != '}' {
		return 0, -1
	}
	return n, i + 1
}

// longestRef takes the longest digit prefix of rs that still names a group
// numbered at most max (0 always names the whole match). It returns the
// group number and the number of digits consumed, 0 when even the first
// digit exceeds max.
func longestRef(rs []rune, max int) (n, width int) {
	for width < len(rs) && isDigit(rs[width]) {
		next := n*10 + int(rs[width]-'0')
		if width > 0 && next > max {
			break
		}
		n = next
		width++
	}
	if width > 0 && n > max && n != 0 {
		return 0, 0
	}
	return n, width
}
