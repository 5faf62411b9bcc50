package ustring

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/monwarez-grit/grit-util/pkg/urex"
)

const matcherTypeName = "ustring_matcher"

// registerMatcherType installs the metatable for the matcher userdata that
// backs gmatch iterators.
func registerMatcherType(L *lua.LState) {
	mt := L.NewTypeMetatable(matcherTypeName)
	L.SetField(mt, "__index", L.NewFunction(matcherIndex))
	L.SetField(mt, "__tostring", L.NewFunction(matcherToString))
}

func checkMatcher(L *lua.LState, n int) *urex.Matcher {
	ud := L.CheckUserData(n)
	if m, ok := ud.Value.(*urex.Matcher); ok {
		return m
	}
	L.ArgError(n, matcherTypeName+" expected")
	return nil
}

// matcherIndex exposes the readable members of a matcher userdata.
func matcherIndex(L *lua.LState) int {
	m := checkMatcher(L, 1)
	switch key := L.CheckString(2); key {
	case "input":
		L.Push(lua.LString(m.Input().UTF8()))
	case "pattern":
		L.Push(lua.LString(m.Pattern()))
	default:
		L.RaiseError("Not a readable RegexMatcher member: %s", key)
	}
	return 1
}

func matcherToString(L *lua.LState) int {
	m := checkMatcher(L, 1)
	L.Push(lua.LString(fmt.Sprintf("%s: %p", matcherTypeName, m)))
	return 1
}

// Gmatch returns an iterator over the successive pattern matches in the
// subject. Each call of the iterator yields what Match would yield for the
// next match, and nil once the subject is exhausted. The matcher and its
// subject snapshot are owned by the iterator and reclaimed by the garbage
// collector together with it. A "^" at the start of the pattern does not
// act as an anchor here, as that would stop the iteration at the first
// step.
func Gmatch(L *lua.LState) int {
	s := checkUString(L, 1)
	m := compile(L, checkUString(L, 2))
	m.Bind(s, 0)

	ud := L.NewUserData()
	ud.Value = m
	L.SetMetatable(ud, L.GetTypeMetatable(matcherTypeName))

	// the iterator keeps ud reachable, so the matcher state lives exactly
	// as long as the closure
	L.Push(L.NewFunction(func(L *lua.LState) int {
		return pushMatch(L, ud.Value.(*urex.Matcher))
	}))
	return 1
}
