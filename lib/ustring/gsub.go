package ustring

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/monwarez-grit/grit-util/pkg/ucs"
	"github.com/monwarez-grit/grit-util/pkg/urex"
)

// replProducer yields the replacement template for the current match. The
// three gsub modes differ only in how the template is obtained, so they
// share one loop parameterised by this.
type replProducer func(L *lua.LState, m *urex.Matcher) ucs.String

// Gsub returns a copy of the subject in which the first n pattern matches
// (all of them when n is negative) are replaced, plus the number of
// replacements made. The replacement argument may be:
//
//   - a function, called with the captures (or the whole match when the
//     pattern captures nothing); its result is the replacement;
//   - a table, indexed with the first capture (or the whole match);
//   - a string, used as a replacement template with $n / \n capture
//     references.
//
// Function results and table values must be strings or numbers; the result
// is expanded as a template the same way a string replacement is. A nil or
// false result raises an error rather than keeping the original match.
func Gsub(L *lua.LState) int {
	s := checkUString(L, 1)
	pat := checkUString(L, 2)
	produce := replacer(L)
	n := optInt(L, 4, -1)

	m := compile(L, pat)
	m.Bind(s, 0)

	var out ucs.Builder
	count := 0
	for count != n {
		if !findNext(L, m) {
			break
		}
		if err := m.AppendReplacement(&out, produce(L, m)); err != nil {
			L.RaiseError("%v", err)
		}
		count++
	}
	m.AppendTail(&out)

	L.Push(lua.LString(out.String().UTF8()))
	L.Push(lua.LNumber(count))
	return 2
}

// replacer selects the replacement mode from the third argument: function,
// then table, then string template.
func replacer(L *lua.LState) replProducer {
	switch repl := L.Get(3); repl.Type() {
	case lua.LTFunction:
		return callbackRepl(repl)
	case lua.LTTable:
		return lookupRepl(repl.(*lua.LTable))
	default:
		tmpl := checkUString(L, 3)
		return func(*lua.LState, *urex.Matcher) ucs.String { return tmpl }
	}
}

func callbackRepl(fn lua.LValue) replProducer {
	return func(L *lua.LState, m *urex.Matcher) ucs.String {
		groups := m.GroupCount()
		var args []lua.LValue
		if groups == 0 {
			args = []lua.LValue{lua.LString(group(L, m, 0).UTF8())}
		} else {
			args = make([]lua.LValue, groups)
			for i := 1; i <= groups; i++ {
				args[i-1] = lua.LString(group(L, m, i).UTF8())
			}
		}
		if err := L.CallByParam(lua.P{Fn: fn, NRet: 1}, args...); err != nil {
			L.RaiseError("%v", err)
		}
		ret := L.Get(-1)
		L.Pop(1)
		return replValue(L, ret)
	}
}

func lookupRepl(t *lua.LTable) replProducer {
	return func(L *lua.LState, m *urex.Matcher) ucs.String {
		key := 0
		if m.GroupCount() > 0 {
			key = 1
		}
		v := L.GetTable(t, lua.LString(group(L, m, key).UTF8()))
		return replValue(L, v)
	}
}

// replValue coerces a callback result or table value to a replacement
// template.
func replValue(L *lua.LState, v lua.LValue) ucs.String {
	switch v.Type() {
	case lua.LTString, lua.LTNumber:
		s, err := ucs.FromUTF8(v.String())
		if err != nil {
			L.RaiseError("%v", err)
		}
		return s
	default:
		L.RaiseError("invalid replacement value (a %s)", v.Type().String())
		return ucs.Empty
	}
}
