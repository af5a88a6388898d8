package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"weatherbot/internal/ports/output"
)

const (
	// DefaultLocale is used whenever the requested locale has no table.
	DefaultLocale = "pt-BR"
	// DefaultDir is the directory scanned for locale tables when none is configured.
	DefaultDir = "locales"
)

// Ensure Registry implements the output.Translator port.
var _ output.Translator = (*Registry)(nil)

// Func resolves key paths against a locale captured at creation. It is an
// alias so a Registry satisfies ports that spell the function type out.
type Func = func(key string, params map[string]any) string

// Registry holds every loaded locale table. Tables are immutable once
// published; a reload builds a new set and swaps it in atomically, so
// concurrent readers always see either the old or the new set.
type Registry struct {
	tables atomic.Pointer[map[string]*Node]
	writer sync.Mutex
	logger *zap.Logger
}

// NewRegistry returns an empty registry. Every lookup misses until Load succeeds.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{logger: logger.Named("i18n")}
	empty := map[string]*Node{}
	r.tables.Store(&empty)
	return r
}

// Load replaces the registry with the locale tables found in dir.
func (r *Registry) Load(dir string) error {
	if dir == "" {
		dir = DefaultDir
	}
	if _, err := os.Stat(dir); err != nil {
		return &LoadError{Path: dir, Err: err}
	}
	return r.LoadFS(os.DirFS(dir), ".")
}

// LoadFS replaces the registry with the locale tables found in dir of fsys.
// Subdirectories and files with unknown extensions are skipped. On error the
// previously loaded tables stay in place.
func (r *Registry) LoadFS(fsys fs.FS, dir string) error {
	r.writer.Lock()
	defer r.writer.Unlock()

	tables, err := readTables(fsys, dir)
	if err != nil {
		return err
	}
	r.tables.Store(&tables)
	r.logger.Info("locales loaded", zap.Strings("locales", sortedTags(tables)))
	return nil
}

// Set publishes tables directly. It is mostly useful in tests.
func (r *Registry) Set(tables map[string]*Node) {
	r.writer.Lock()
	defer r.writer.Unlock()

	next := make(map[string]*Node, len(tables))
	for tag, root := range tables {
		next[canonicalTag(tag)] = root
	}
	r.tables.Store(&next)
}

func readTables(fsys fs.FS, dir string) (map[string]*Node, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, &LoadError{Path: dir, Err: err}
	}

	tables := make(map[string]*Node, len(entries))
	sources := make(map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		decode, ok := decoderFor(name)
		if !ok {
			continue
		}

		file := path.Join(dir, name)
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, &LoadError{Path: file, Err: err}
		}
		doc, err := decode(data)
		if err != nil {
			return nil, &LoadError{Path: file, Err: err}
		}
		root, err := buildTree(doc)
		if err != nil {
			return nil, &LoadError{Path: file, Err: err}
		}

		tag := canonicalTag(strings.TrimSuffix(name, path.Ext(name)))
		if prev, dup := sources[tag]; dup {
			return nil, &LoadError{Path: file, Err: fmt.Errorf("locale %q already loaded from %s", tag, prev)}
		}
		tables[tag] = root
		sources[tag] = file
	}
	return tables, nil
}

// canonicalTag normalizes BCP 47 tags ("en-us" -> "en-US"). Anything that
// does not parse is kept as is.
func canonicalTag(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	return t.String()
}

// Resolve renders key for locale. Unknown locales use DefaultLocale. A key
// that does not address a leaf, or whose template cannot be filled from
// params, resolves to the key itself.
func (r *Registry) Resolve(locale, key string, params map[string]any) string {
	s, err := r.Lookup(locale, key, params)
	if err != nil {
		if errors.Is(err, ErrLookupMiss) {
			r.logger.Debug("translation missing", zap.String("locale", locale), zap.String("key", key))
		} else {
			r.logger.Warn("translation template failed", zap.String("locale", locale), zap.String("key", key), zap.Error(err))
		}
		return key
	}
	return s
}

// Lookup is Resolve without the fallback: it returns ErrLookupMiss or a
// *SubstitutionError instead of the key.
func (r *Registry) Lookup(locale, key string, params map[string]any) (string, error) {
	tables := *r.tables.Load()
	root, ok := tables[canonicalTag(locale)]
	if !ok {
		root = tables[DefaultLocale]
	}
	if root == nil || key == "" {
		return "", ErrLookupMiss
	}

	n, ok := root.walk(strings.Split(key, "."))
	if !ok {
		return "", ErrLookupMiss
	}
	switch n.Kind {
	case ScalarLeaf:
		return n.Text, nil
	case StringLeaf:
		return format(n.Text, params)
	case ListLeaf:
		return format(strings.Join(n.Parts, ""), params)
	default:
		return "", ErrLookupMiss
	}
}

// T implements output.Translator.
func (r *Registry) T(locale, key string, data map[string]any) string {
	return r.Resolve(locale, key, data)
}

// For returns a Func bound to locale.
func (r *Registry) For(locale string) Func {
	return func(key string, params map[string]any) string {
		return r.Resolve(locale, key, params)
	}
}

// Has reports whether a table is loaded for locale, without the default fallback.
func (r *Registry) Has(locale string) bool {
	_, ok := (*r.tables.Load())[canonicalTag(locale)]
	return ok
}

// Locales lists the loaded locale tags in sorted order.
func (r *Registry) Locales() []string {
	return sortedTags(*r.tables.Load())
}

func sortedTags(tables map[string]*Node) []string {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
