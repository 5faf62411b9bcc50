package ucs

import (
	"sort"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/runenames"
)

// ErrUnknownProperty reports a property name that does not resolve.
var ErrUnknownProperty = errors.New("unrecognised Unicode property")

// Prop is a Unicode character property resolved from its name or alias.
type Prop struct {
	// Name is the canonical property name.
	Name string
	of   func(rune) string
}

// Of returns the name of the property's value for r: the short value name
// where the property database carries one (category codes, Y/N for binary
// properties), otherwise the long name (script names, character names).
func (p Prop) Of(r rune) string { return p.of(r) }

// gcOrder lists the two-letter general category codes. The tables behind
// them are disjoint, so the first hit identifies the category.
var gcOrder = []string{
	"Lu", "Ll", "Lt", "Lm", "Lo",
	"Mn", "Mc", "Me",
	"Nd", "Nl", "No",
	"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po",
	"Sm", "Sc", "Sk", "So",
	"Zs", "Zl", "Zp",
	"Cc", "Cf", "Co", "Cs",
}

var (
	scriptNames []string
	binaryProps map[string]namedTable
)

type namedTable struct {
	name  string
	table *unicode.RangeTable
}

func init() {
	scriptNames = make([]string, 0, len(unicode.Scripts))
	for name := range unicode.Scripts {
		scriptNames = append(scriptNames, name)
	}
	sort.Strings(scriptNames)

	binaryProps = make(map[string]namedTable, len(unicode.Properties))
	for name, table := range unicode.Properties {
		binaryProps[foldPropName(name)] = namedTable{name: name, table: table}
	}
}

// Property resolves a Unicode property from its name. Resolution ignores
// case, underscores, hyphens and spaces, so "General_Category", "gc" and
// "general category" all name the same property.
func Property(name string) (Prop, error) {
	switch foldPropName(name) {
	case "generalcategory", "gc":
		return Prop{Name: "General_Category", of: generalCategory}, nil
	case "script", "sc":
		return Prop{Name: "Script", of: script}, nil
	case "name", "na":
		return Prop{Name: "Name", of: runenames.Name}, nil
	}
	if p, ok := binaryProps[foldPropName(name)]; ok {
		table := p.table
		return Prop{
			Name: p.name,
			of: func(r rune) string {
				if unicode.Is(table, r) {
					return "Y"
				}
				return "N"
			},
		}, nil
	}
	return Prop{}, errors.Wrap(ErrUnknownProperty, name)
}

func foldPropName(name string) string {
	var b strings.Builder
	for _, c := range name {
		switch c {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(unicode.ToLower(c))
	}
	return b.String()
}

func generalCategory(r rune) string {
	for _, code := range gcOrder {
		if unicode.Is(unicode.Categories[code], r) {
			return code
		}
	}
	return "Cn"
}

func script(r rune) string {
	for _, name := range scriptNames {
		if unicode.Is(unicode.Scripts[name], r) {
			return name
		}
	}
	return "Unknown"
}
