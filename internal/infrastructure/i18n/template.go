package i18n

import (
	"fmt"
	"strings"
)

// format replaces every {name} placeholder in tmpl with params[name].
// Doubled braces ({{ and }}) produce a literal brace.
func format(tmpl string, params map[string]any) (string, error) {
	if !strings.ContainsAny(tmpl, "{}") {
		return tmpl, nil
	}

	var b strings.Builder
	b.Grow(len(tmpl))
	for i := 0; i < len(tmpl); {
		switch c := tmpl[i]; c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", &SubstitutionError{Template: tmpl}
			}
			name := tmpl[i+1 : i+1+end]
			if name == "" {
				return "", &SubstitutionError{Template: tmpl}
			}
			v, ok := params[name]
			if !ok {
				return "", &SubstitutionError{Template: tmpl, Placeholder: name}
			}
			b.WriteString(fmt.Sprint(v))
			i += end + 2
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", &SubstitutionError{Template: tmpl}
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}
