package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVariables(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "NoVariables",
			content:  "plain text without placeholders",
			expected: []string{},
		},
		{
			name:     "SingleVariable",
			content:  "Hello {{name}}",
			expected: []string{"name"},
		},
		{
			name:     "OrderOfFirstAppearance",
			content:  "{{b}} then {{a}} then {{c}}",
			expected: []string{"b", "a", "c"},
		},
		{
			name:     "DuplicatesCollapsed",
			content:  "{{x}} and {{y}} and {{x}} again",
			expected: []string{"x", "y"},
		},
		{
			name:     "SingleBracesIgnored",
			content:  "{not} {a} {variable}",
			expected: []string{},
		},
		{
			name:     "NonWordCharactersIgnored",
			content:  "{{with space}} {{with-dash}} {{ok_1}}",
			expected: []string{"ok_1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractVariables(tt.content))
		})
	}
}

func TestRenderTemplate(t *testing.T) {
	t.Run("ReplacesAllPlaceholders", func(t *testing.T) {
		out, err := RenderTemplate("Summarize {{doc}} in {{style}} style", map[string]string{
			"doc":   "the report",
			"style": "bullet",
		})
		require.NoError(t, err)
		assert.Equal(t, "Summarize the report in bullet style", out)
	})

	t.Run("RepeatedPlaceholder", func(t *testing.T) {
		out, err := RenderTemplate("{{x}} and {{x}}", map[string]string{"x": "one"})
		require.NoError(t, err)
		assert.Equal(t, "one and one", out)
	})

	t.Run("MissingVariableFails", func(t *testing.T) {
		_, err := RenderTemplate("Hello {{name}}, meet {{other}}", map[string]string{"name": "Ada"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "other")
	})

	t.Run("ExtraValuesIgnored", func(t *testing.T) {
		out, err := RenderTemplate("no placeholders", map[string]string{"unused": "v"})
		require.NoError(t, err)
		assert.Equal(t, "no placeholders", out)
	})
}
