package i18n

import (
	"errors"
	"fmt"
)

// ErrLookupMiss is returned by Lookup when a key path does not address a leaf.
var ErrLookupMiss = errors.New("i18n: lookup miss")

// LoadError reports a locale directory or table that could not be loaded.
// The registry keeps its previous contents when a load fails.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("i18n: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SubstitutionError reports a placeholder that could not be filled.
type SubstitutionError struct {
	Template    string
	Placeholder string
}

func (e *SubstitutionError) Error() string {
	if e.Placeholder == "" {
		return fmt.Sprintf("i18n: malformed template %q", e.Template)
	}
	return fmt.Sprintf("i18n: no value for placeholder {%s}", e.Placeholder)
}
