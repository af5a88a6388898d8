package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		tmpl   string
		params map[string]any
		want   string
	}{
		{"no placeholders", "plain text", nil, "plain text"},
		{"single", "Hello {name}", map[string]any{"name": "World"}, "Hello World"},
		{"repeated", "{a}-{a}", map[string]any{"a": 1}, "1-1"},
		{"non string value", "{n} items at {f}", map[string]any{"n": 3, "f": 2.5}, "3 items at 2.5"},
		{"escaped", "{{x}} is {x}", map[string]any{"x": "y"}, "{x} is y"},
		{"unicode around", "🌡 {t}°", map[string]any{"t": 21}, "🌡 21°"},
		{"extra params ignored", "ok", map[string]any{"x": 1}, "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := format(tt.tmpl, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Errors(t *testing.T) {
	tests := []struct {
		name        string
		tmpl        string
		placeholder string
	}{
		{"missing param", "Hello {name}", "name"},
		{"unclosed", "Hello {name", ""},
		{"empty placeholder", "Hello {}", ""},
		{"stray closing", "Hello }", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := format(tt.tmpl, map[string]any{"other": 1})
			var subErr *SubstitutionError
			require.ErrorAs(t, err, &subErr)
			assert.Equal(t, tt.placeholder, subErr.Placeholder)
			assert.Equal(t, tt.tmpl, subErr.Template)
		})
	}
}

func TestBuildNode_Variants(t *testing.T) {
	root, err := buildTree(map[string]any{
		"s":    "text",
		"n":    int64(4),
		"l":    []any{"a", "b"},
		"tree": map[any]any{1000: map[string]any{"day": "Sunny"}},
	})
	require.NoError(t, err)

	assert.Equal(t, SubtreeNode, root.Kind)
	assert.Equal(t, StringLeaf, root.Children["s"].Kind)
	assert.Equal(t, ScalarLeaf, root.Children["n"].Kind)
	assert.Equal(t, "4", root.Children["n"].Text)
	assert.Equal(t, ListLeaf, root.Children["l"].Kind)
	assert.Equal(t, []string{"a", "b"}, root.Children["l"].Parts)

	leaf, ok := root.walk([]string{"tree", "1000", "day"})
	require.True(t, ok)
	assert.Equal(t, "Sunny", leaf.Text)
}

func TestBuildNode_NumbersRenderAlikeAcrossFormats(t *testing.T) {
	docs := map[string]string{
		".json": `{"whole": 3, "float": 1.0, "exp": 1e3, "frac": 2.50, "neg": -0.5}`,
		".toml": "whole = 3\nfloat = 1.0\nexp = 1e3\nfrac = 2.50\nneg = -0.5\n",
		".yaml": "whole: 3\nfloat: 1.0\nexp: 1e3\nfrac: 2.50\nneg: -0.5\n",
	}
	want := map[string]string{"whole": "3", "float": "1", "exp": "1000", "frac": "2.5", "neg": "-0.5"}

	for ext, doc := range docs {
		t.Run(ext, func(t *testing.T) {
			decode, ok := decoderFor("en-US" + ext)
			require.True(t, ok)
			parsed, err := decode([]byte(doc))
			require.NoError(t, err)
			root, err := buildTree(parsed)
			require.NoError(t, err)

			for key, text := range want {
				leaf := root.Children[key]
				require.NotNil(t, leaf, key)
				assert.Equal(t, ScalarLeaf, leaf.Kind, key)
				assert.Equal(t, text, leaf.Text, key)
			}
		})
	}
}

func TestBuildNode_Rejects(t *testing.T) {
	_, err := buildTree(map[string]any{"a": map[string]any{"b": []any{"x", map[string]any{}}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.b[1]")

	_, err = buildTree(map[string]any{"a": nil})
	require.Error(t, err)

	_, err = buildTree(map[string]any{"a": struct{}{}})
	require.Error(t, err)
}
