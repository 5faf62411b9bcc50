package urex

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/monwarez-grit/grit-util/pkg/ucs"
)

const chem = "2H₂ + O₂ ⇌ 2H₂O, R = 4.7 kΩ, ⌀ 200 mm"

func mustString(t *testing.T, s string) ucs.String {
	t.Helper()
	us, err := ucs.FromUTF8(s)
	if err != nil {
		t.Fatal(err)
	}
	return us
}

func mustCompile(t *testing.T, pattern string) *Matcher {
	t.Helper()
	m, err := Compile(pattern)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestCompileError(t *testing.T) {
	_, err := Compile("(")
	if err == nil {
		t.Fatal("Compile(\"(\"): want error")
	}
	if !strings.HasPrefix(err.Error(), `Syntax error in regex: "(": `) {
		t.Errorf("error = %q", err)
	}
}

func TestFindOffsetsAreCodepoints(t *testing.T) {
	m := mustCompile(t, "([0-9.]*) (k.)")
	m.Bind(mustString(t, chem), 0)

	found, err := m.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("no match")
	}
	if m.Start() != 21 || m.End() != 27 {
		t.Errorf("match at [%d, %d), want [21, 27)", m.Start(), m.End())
	}
	if got := m.GroupCount(); got != 2 {
		t.Fatalf("GroupCount = %d", got)
	}
	var groups []string
	for i := 0; i <= 2; i++ {
		g, err := m.Group(i)
		if err != nil {
			t.Fatal(err)
		}
		groups = append(groups, g.UTF8())
	}
	want := []string{"4.7 kΩ", "4.7", "kΩ"}
	if diff := cmp.Diff(want, groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestFindNextIterates(t *testing.T) {
	m := mustCompile(t, "[0-9.]+")
	m.Bind(mustString(t, chem), 0)

	var matches []string
	for {
		found, err := m.FindNext()
		if err != nil {
			t.Fatal(err)
		}
		if !found {
			break
		}
		g, err := m.Group(0)
		if err != nil {
			t.Fatal(err)
		}
		matches = append(matches, g.UTF8())
	}
	want := []string{"2", "2", "4.7", "200"}
	if diff := cmp.Diff(want, matches); diff != "" {
		t.Errorf("matches mismatch (-want +got):\n%s", diff)
	}
	// exhausted matchers stay exhausted
	if found, _ := m.FindNext(); found {
		t.Error("FindNext after exhaustion = true")
	}
}

func TestBindOffset(t *testing.T) {
	m := mustCompile(t, "₂")
	m.Bind(mustString(t, chem), 3)
	found, err := m.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if !found || m.Start() != 7 {
		t.Errorf("found=%v start=%d, want match at 7", found, m.Start())
	}

	// rebinding discards the old cursor
	m.Bind(mustString(t, chem), 0)
	found, _ = m.FindNext()
	if !found || m.Start() != 2 {
		t.Errorf("after rebind: found=%v start=%d, want match at 2", found, m.Start())
	}
}

func TestUnmatchedGroup(t *testing.T) {
	m := mustCompile(t, "(a)|(b)")
	m.Bind(mustString(t, "b"), 0)
	if found, _ := m.FindNext(); !found {
		t.Fatal("no match")
	}
	if _, err := m.Group(1); !errors.Is(err, ErrNoMatch) {
		t.Errorf("Group(1) err = %v, want ErrNoMatch", err)
	}
	g, err := m.Group(2)
	if err != nil {
		t.Fatal(err)
	}
	if g.UTF8() != "b" {
		t.Errorf("Group(2) = %q", g.UTF8())
	}
}

func TestGroupBeforeMatch(t *testing.T) {
	m := mustCompile(t, "a")
	m.Bind(mustString(t, "a"), 0)
	if _, err := m.Group(0); !errors.Is(err, ErrNoMatch) {
		t.Errorf("Group before FindNext err = %v, want ErrNoMatch", err)
	}
}

func TestAccessors(t *testing.T) {
	m := mustCompile(t, "k.")
	m.Bind(mustString(t, chem), 0)
	if got := m.Pattern(); got != "k." {
		t.Errorf("Pattern = %q", got)
	}
	if got := m.Input().UTF8(); got != chem {
		t.Errorf("Input = %q", got)
	}
}
