package ucs

import (
	"testing"

	"github.com/pkg/errors"
)

func TestPropertyGeneralCategory(t *testing.T) {
	prop, err := Property("gc")
	if err != nil {
		t.Fatal(err)
	}
	if prop.Name != "General_Category" {
		t.Fatalf("Name = %q", prop.Name)
	}
	tests := []struct {
		r    rune
		want string
	}{
		{'A', "Lu"},
		{'a', "Ll"},
		{'5', "Nd"},
		{'₂', "No"},
		{'⇌', "So"},
		{'+', "Sm"},
		{' ', "Zs"},
		{',', "Po"},
		{'\n', "Cc"},
	}
	for _, tt := range tests {
		if got := prop.Of(tt.r); got != tt.want {
			t.Errorf("General_Category(%q) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestPropertyAliases(t *testing.T) {
	for _, name := range []string{"gc", "General_Category", "general category", "GENERAL-CATEGORY"} {
		prop, err := Property(name)
		if err != nil {
			t.Fatalf("Property(%q): %v", name, err)
		}
		if prop.Name != "General_Category" {
			t.Errorf("Property(%q).Name = %q", name, prop.Name)
		}
	}
}

func TestPropertyScript(t *testing.T) {
	prop, err := Property("Script")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		r    rune
		want string
	}{
		{'a', "Latin"},
		{'Ω', "Greek"},
		{'я', "Cyrillic"},
	}
	for _, tt := range tests {
		if got := prop.Of(tt.r); got != tt.want {
			t.Errorf("Script(%q) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestPropertyBinary(t *testing.T) {
	prop, err := Property("White_Space")
	if err != nil {
		t.Fatal(err)
	}
	if got := prop.Of(' '); got != "Y" {
		t.Errorf("White_Space(' ') = %q, want Y", got)
	}
	if got := prop.Of('a'); got != "N" {
		t.Errorf("White_Space('a') = %q, want N", got)
	}
}

func TestPropertyName(t *testing.T) {
	prop, err := Property("Name")
	if err != nil {
		t.Fatal(err)
	}
	if got := prop.Of('A'); got != "LATIN CAPITAL LETTER A" {
		t.Errorf("Name('A') = %q", got)
	}
}

func TestPropertyUnknown(t *testing.T) {
	_, err := Property("NoSuchProperty")
	if !errors.Is(err, ErrUnknownProperty) {
		t.Fatalf("Property(NoSuchProperty) err = %v", err)
	}
}
