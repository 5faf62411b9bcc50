package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/vadv/gopher-lua-libs/inspect"
	"github.com/vadv/gopher-lua-libs/json"
	lua "github.com/yuin/gopher-lua"
	"github.com/zs5460/art"

	"github.com/monwarez-grit/grit-util/lib/ustring"
)

const Version = "1.0"

func main() {
	L := lua.NewState()
	defer L.Close()

	ustring.Load(L)
	inspect.Preload(L)
	json.Preload(L)

	if len(os.Args) > 1 {
		setArg(L, os.Args[1:])
		if err := L.DoFile(os.Args[1]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	repl(L)
}

func setArg(L *lua.LState, args []string) {
	arg := L.NewTable()
	arg.RawSetInt(0, lua.LString(args[0]))
	for i, a := range args[1:] {
		arg.RawSetInt(i+1, lua.LString(a))
	}
	L.SetGlobal("arg", arg)
}

func repl(L *lua.LState) {
	fmt.Println(art.String("Grit Util"))
	fmt.Println(" Unicode string console " + Version + " with " + lua.LuaVersion)

	rl, err := readline.New("> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			// io.EOF or interrupt
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// leading "=" prints the expression, like the stock lua REPL
		if strings.HasPrefix(line, "=") {
			line = "print(" + line[1:] + ")"
		}
		if err := L.DoString(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
