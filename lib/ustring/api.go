// Package ustring replaces Lua's byte-oriented string library with
// Unicode-aware versions: lengths and indices count codepoints, case mapping
// is the full Unicode mapping, and patterns are matched by a real regex
// engine. Strings stay UTF-8 encoded on the Lua side.
//
// Indexing follows the Lua conventions: positions are 1-based and negative
// positions count from the end. All errors are raised through the Lua state;
// nothing is returned as (value, err) pairs to scripts.
package ustring

import (
	"unicode"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/monwarez-grit/grit-util/pkg/ucs"
	"github.com/monwarez-grit/grit-util/pkg/urex"
)

// checkUString reads the string argument at index n as a codepoint string.
func checkUString(L *lua.LState, n int) ucs.String {
	s, err := ucs.FromUTF8(L.CheckString(n))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return s
}

// optInt reads an optional integer argument, treating both a missing
// argument and an explicit nil as absent.
func optInt(L *lua.LState, n, def int) int {
	if L.Get(n) == lua.LNil {
		return def
	}
	return L.CheckInt(n)
}

func optBool(L *lua.LState, n int, def bool) bool {
	if L.Get(n) == lua.LNil {
		return def
	}
	return L.CheckBool(n)
}

// Len returns the number of codepoints in its argument.
func Len(L *lua.LState) int {
	s := checkUString(L, 1)
	L.Push(lua.LNumber(s.Len()))
	return 1
}

// MTLen is the __len metamethod installed on the string type; it forwards
// to the codepoint count.
func MTLen(L *lua.LState) int {
	return Len(L)
}

// Reverse returns its argument with the codepoint order reversed.
func Reverse(L *lua.LState) int {
	s := checkUString(L, 1)
	L.Push(lua.LString(s.Reverse().UTF8()))
	return 1
}

// Upper returns the full upper-case mapping of its argument.
func Upper(L *lua.LState) int {
	s := checkUString(L, 1)
	L.Push(lua.LString(s.Upper().UTF8()))
	return 1
}

// Lower returns the full lower-case mapping of its argument.
func Lower(L *lua.LState) int {
	s := checkUString(L, 1)
	L.Push(lua.LString(s.Lower().UTF8()))
	return 1
}

// Codepoint returns the codepoint values at positions i through j of the
// subject. i defaults to 1 and j to i; j is clamped to the subject length,
// and positions past the end yield no values.
func Codepoint(L *lua.LState) int {
	s := checkUString(L, 1)
	i := optInt(L, 2, 1)
	if i <= 0 {
		i = 1
	}
	j := optInt(L, 3, i)
	if j < i {
		j = i
	}
	if j > s.Len() {
		j = s.Len()
	}
	n := 0
	for p := i; p <= j; p++ {
		L.Push(lua.LNumber(s.At(p - 1)))
		n++
	}
	return n
}

// Char builds a string by appending each integer argument as a codepoint.
func Char(L *lua.LState) int {
	var b ucs.Builder
	for i := 1; i <= L.GetTop(); i++ {
		cp := L.CheckInt(i)
		// range check before narrowing to rune, or values wrap mod 2^32
		if cp < 0 || cp > unicode.MaxRune || !utf8.ValidRune(rune(cp)) {
			L.ArgError(i, "value out of range")
		}
		b.AppendRune(rune(cp))
	}
	L.Push(lua.LString(b.String().UTF8()))
	return 1
}

// GetProperty looks up the Unicode property named by the second argument and
// returns its value name for each codepoint of the subject, in order. The
// number of return values equals the codepoint count; very long subjects
// are bounded only by the host's registry size.
func GetProperty(L *lua.LState) int {
	s := checkUString(L, 1)
	prop, err := ucs.Property(L.CheckString(2))
	if err != nil {
		L.ArgError(2, err.Error())
	}
	for i := 0; i < s.Len(); i++ {
		L.Push(lua.LString(prop.Of(s.At(i))))
	}
	return s.Len()
}

// Sub returns the substring between codepoint positions i and j inclusive.
// i defaults to 1 and j to -1 (the end of the subject).
func Sub(L *lua.LState) int {
	s := checkUString(L, 1)
	i := optInt(L, 2, 1)
	j := optInt(L, 3, -1)
	L.Push(lua.LString(s.Sub(i, j).UTF8()))
	return 1
}

// Find looks for the first match of a pattern in the subject at or after
// position init. On success it returns the 1-based start and end positions
// of the match followed by the captures. With plain set, the pattern is
// looked up as a literal codepoint substring instead.
func Find(L *lua.LState) int {
	s := checkUString(L, 1)
	pat := checkUString(L, 2)
	init := optInt(L, 3, 1)
	plain := optBool(L, 4, false)

	if init > s.Len() {
		L.Push(lua.LNil)
		return 1
	}
	if init < 0 {
		init += s.Len() + 1
	}
	if init < 1 {
		init = 1
	}
	init--

	if plain {
		at := s.Index(pat, init)
		if at < 0 {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LNumber(at + 1))
		L.Push(lua.LNumber(at + pat.Len()))
		return 2
	}

	m := compile(L, pat)
	m.Bind(s, init)
	if !findNext(L, m) {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(m.Start() + 1))
	L.Push(lua.LNumber(m.End()))
	groups := m.GroupCount()
	for i := 1; i <= groups; i++ {
		L.Push(lua.LString(group(L, m, i).UTF8()))
	}
	return 2 + groups
}

// Match looks for the first match of a pattern in the subject at or after
// position init and returns its captures, or the whole match if the pattern
// captures nothing. Returns nil when there is no match.
func Match(L *lua.LState) int {
	s := checkUString(L, 1)
	pat := checkUString(L, 2)
	init := optInt(L, 3, 1)

	if s.Len() == 0 {
		L.Push(lua.LNil)
		return 1
	}
	if init > s.Len() {
		init = s.Len()
	}
	if init < 0 {
		init += s.Len() + 1
	}
	if init < 1 {
		init = 1
	}
	init--

	m := compile(L, pat)
	m.Bind(s, init)
	return pushMatch(L, m)
}

// compile builds a matcher for pat, raising the compilation error in the
// host on failure.
func compile(L *lua.LState, pat ucs.String) *urex.Matcher {
	m, err := urex.Compile(pat.UTF8())
	if err != nil {
		L.RaiseError("%v", err)
	}
	return m
}

// findNext advances m, raising any engine failure in the host.
func findNext(L *lua.LState, m *urex.Matcher) bool {
	found, err := m.FindNext()
	if err != nil {
		L.RaiseError("%v", err)
	}
	return found
}

// group extracts capture i of the current match, raising any engine failure
// in the host.
func group(L *lua.LState, m *urex.Matcher, i int) ucs.String {
	g, err := m.Group(i)
	if err != nil {
		L.RaiseError("%v", err)
	}
	return g
}

// pushMatch advances m by one match and pushes what string.match returns
// for it: the whole match when the pattern has no captures, the captures in
// order otherwise, or nil when the subject is exhausted.
func pushMatch(L *lua.LState, m *urex.Matcher) int {
	if !findNext(L, m) {
		L.Push(lua.LNil)
		return 1
	}
	groups := m.GroupCount()
	if groups == 0 {
		L.Push(lua.LString(group(L, m, 0).UTF8()))
		return 1
	}
	for i := 1; i <= groups; i++ {
		L.Push(lua.LString(group(L, m, i).UTF8()))
	}
	return groups
}
