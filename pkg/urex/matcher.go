// Package urex adapts the regexp2 engine to codepoint-indexed matching over
// ucs.String subjects. regexp2 indexes matches in runes, so every offset the
// package exposes is already a codepoint offset; no unit conversion happens
// at the boundary.
package urex

import (
	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"

	"github.com/monwarez-grit/grit-util/pkg/ucs"
)

// ErrNoMatch reports a capture group that did not take part in the current
// match, or a match query issued before any match was found.
var ErrNoMatch = errors.New("NoMatch")

// Matcher binds a compiled pattern to a subject string and walks the
// subject's matches left to right. A Matcher is single-owner state: it is
// never shared between concurrent iterations.
type Matcher struct {
	re      *regexp2.Regexp
	pattern string

	subject  ucs.String
	start    int
	searched bool
	m        *regexp2.Match

	// appended tracks how far AppendReplacement/AppendTail have copied the
	// subject into the output.
	appended int
}

// Compile builds a Matcher for pattern in the engine's regex dialect. The
// returned Matcher must be bound to a subject before searching.
func Compile(pattern string) (*Matcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, errors.Errorf("Syntax error in regex: \"%s\": %v", pattern, err)
	}
	return &Matcher{re: re, pattern: pattern}, nil
}

// Bind re-associates the matcher with subject and positions its cursor at
// codepoint offset start. Callers guarantee 0 <= start <= subject.Len().
// Any previous match state is discarded.
func (m *Matcher) Bind(subject ucs.String, start int) {
	m.subject = subject
	m.start = start
	m.searched = false
	m.m = nil
	m.appended = 0
}

// FindNext advances the cursor to the next match and reports whether one was
// found. Start, End, Group and AppendReplacement refer to this match until
// the next call. Once the subject is exhausted, FindNext keeps returning
// false.
func (m *Matcher) FindNext() (bool, error) {
	var (
		next *regexp2.Match
		err  error
	)
	if !m.searched {
		next, err = m.re.FindRunesMatchStartingAt(m.subject.Runes(), m.start)
		m.searched = true
	} else {
		if m.m == nil {
			return false, nil
		}
		next, err = m.re.FindNextMatch(m.m)
	}
	if err != nil {
		return false, errors.WithStack(err)
	}
	m.m = next
	return next != nil, nil
}

// Start returns the codepoint offset of the current match's first codepoint.
func (m *Matcher) Start() int { return m.m.Index }

// End returns the codepoint offset one past the current match's last
// codepoint, so Start and End delimit the match as a half-open range.
func (m *Matcher) End() int { return m.m.Index + m.m.Length }

// GroupCount returns the number of capture groups in the pattern, not
// counting the implicit whole-match group.
func (m *Matcher) GroupCount() int {
	return len(m.re.GetGroupNumbers()) - 1
}

// Group returns the text captured by group i in the current match; i = 0 is
// the whole match. A group that did not take part in the match reports
// ErrNoMatch.
func (m *Matcher) Group(i int) (ucs.String, error) {
	if m.m == nil {
		return ucs.Empty, errors.WithStack(ErrNoMatch)
	}
	g := m.m.GroupByNumber(i)
	if g == nil || len(g.Captures) == 0 {
		return ucs.Empty, errors.WithStack(ErrNoMatch)
	}
	return ucs.FromRunes(g.Runes()), nil
}

// Input returns the subject the matcher is bound to.
func (m *Matcher) Input() ucs.String { return m.subject }

// Pattern returns the source text of the compiled pattern.
func (m *Matcher) Pattern() string { return m.pattern }
