package sq3

import (
	"sort"
	"strconv"
	"strings"
)

// maxAliasDepth bounds how many times an expanded alias may itself expand
// to another alias within one input line.
const maxAliasDepth = 64

// Alias is a named template expanded into a full line before interpretation.
type Alias struct {
	Name     string
	Template string
}

// AliasTable maps alias names to their templates. Lookups are
// case-sensitive and exact. The zero value is not usable; use NewAliasTable.
type AliasTable struct {
	entries map[string]string
}

// NewAliasTable creates an empty alias table.
func NewAliasTable() *AliasTable {
	return &AliasTable{entries: make(map[string]string)}
}

// Define stores or overwrites the alias name. The template words are joined
// with single spaces. Placeholder indexes are not checked until expansion.
func (t *AliasTable) Define(name string, templateWords ...string) {
	t.entries[name] = strings.Join(templateWords, " ")
}

// Lookup returns the template stored for name.
func (t *AliasTable) Lookup(name string) (string, bool) {
	template, ok := t.entries[name]
	return template, ok
}

// List returns every alias sorted by name.
func (t *AliasTable) List() []Alias {
	aliases := make([]Alias, 0, len(t.entries))
	for name, template := range t.entries {
		aliases = append(aliases, Alias{Name: name, Template: template})
	}
	sort.Slice(aliases, func(i, j int) bool {
		return aliases[i].Name < aliases[j].Name
	})
	return aliases
}

// Expand substitutes the placeholders of template with args.
//
// "{N}" is replaced by args[N], "{}" by the next argument in order, and
// "{{" / "}}" produce literal braces. Referencing an argument that was not
// supplied, mixing "{}" with "{N}", naming a field that is not a number, or
// leaving a brace unmatched returns a *FormatError.
// Extra arguments are ignored.
func Expand(template string, args []string) (string, error) {
	var b strings.Builder
	b.Grow(len(template))

	auto := 0
	usedAuto, usedManual := false, false

	for i := 0; i < len(template); i++ {
		c := template[i]
		switch c {
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", &FormatError{Template: template, Reason: "single '}' encountered"}
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", &FormatError{Template: template, Reason: "single '{' encountered"}
			}
			field := template[i+1 : i+1+end]
			i += end + 1

			var index int
			if field == "" {
				if usedManual {
					return "", &FormatError{Template: template, Reason: "cannot switch from manual field numbering to automatic"}
				}
				usedAuto = true
				index = auto
				auto++
			} else {
				n, err := strconv.Atoi(field)
				if err != nil || n < 0 {
					return "", &FormatError{Template: template, Reason: "invalid placeholder {" + field + "}"}
				}
				if usedAuto {
					return "", &FormatError{Template: template, Reason: "cannot switch from automatic field numbering to manual"}
				}
				usedManual = true
				index = n
			}

			if index >= len(args) {
				return "", &FormatError{
					Template: template,
					Reason:   "placeholder {" + strconv.Itoa(index) + "} has no argument (" + strconv.Itoa(len(args)) + " given)",
				}
			}
			b.WriteString(args[index])
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
