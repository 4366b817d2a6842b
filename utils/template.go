// Package utils provides utility functions for the application.
package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var variablePattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// ExtractVariables returns the unique {{variable}} placeholder names found in
// a prompt's content, in order of first appearance.
func ExtractVariables(content string) []string {
	matches := variablePattern.FindAllStringSubmatch(content, -1)
	seen := make(map[string]bool)
	vars := []string{}
	for _, m := range matches {
		if len(m) > 1 && !seen[m[1]] {
			vars = append(vars, m[1])
			seen[m[1]] = true
		}
	}
	return vars
}

// RenderTemplate replaces {{variable}} placeholders with values from vars,
// failing when any placeholder has no value.
func RenderTemplate(content string, vars map[string]string) (string, error) {
	var missing []string
	for _, name := range ExtractVariables(content) {
		if _, ok := vars[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("missing template variables: %s", strings.Join(missing, ", "))
	}

	return variablePattern.ReplaceAllStringFunc(content, func(match string) string {
		key := match[2 : len(match)-2]
		return vars[key]
	}), nil
}
