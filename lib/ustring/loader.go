package ustring

import (
	lua "github.com/yuin/gopher-lua"
)

// renamed lists the byte-oriented string functions that stay reachable
// under an underscore prefix once their names are taken over by the
// Unicode-aware versions.
var renamed = []string{
	"char", "find", "gmatch", "gsub", "len",
	"lower", "match", "reverse", "sub", "upper",
}

var api = map[string]lua.LGFunction{
	"char":        Char,
	"codepoint":   Codepoint,
	"find":        Find,
	"getProperty": GetProperty,
	"gmatch":      Gmatch,
	"gsub":        Gsub,
	"len":         Len,
	"lower":       Lower,
	"match":       Match,
	"reverse":     Reverse,
	"sub":         Sub,
	"upper":       Upper,
}

// Load rewires the Lua string library for Unicode: the byte-oriented
// entries keep working as string._find, string._sub and so on, string.bytes
// aliases the byte length, and the primary names become the codepoint
// versions. string.format, string.rep and string.dump are left untouched.
// A __len hook on the string metatable forwards to the codepoint count.
func Load(L *lua.LState) {
	registerMatcherType(L)

	mod := L.RegisterModule(lua.StringLibName, nil).(*lua.LTable)

	// byte length stays reachable as string.bytes
	mod.RawSetString("bytes", mod.RawGetString("len"))
	for _, name := range renamed {
		mod.RawSetString("_"+name, mod.RawGetString(name))
	}
	L.SetFuncs(mod, api)

	if mt, ok := L.GetMetatable(lua.LString("")).(*lua.LTable); ok {
		mt.RawSetString("__len", L.NewFunction(MTLen))
	}
}
