package codegen

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*.jsx
var templateFS embed.FS

type keywordGroup struct {
	keywords []string
	template Template
}

// scanned in order, first match wins
var keywordGroups = []keywordGroup{
	{keywords: []string{"todo", "task"}, template: TemplateTodo},
	{keywords: []string{"counter", "count"}, template: TemplateCounter},
	{keywords: []string{"calculator", "calc"}, template: TemplateCalculator},
}

// picks the fallback template for prompt. matching is a case-insensitive
// substring scan; landing is the default.
func SelectTemplate(prompt string) Template {
	p := strings.ToLower(prompt)

	for _, group := range keywordGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(p, keyword) {
				return group.template
			}
		}
	}

	return TemplateLanding
}

// returns the component source of a built-in template
func TemplateCode(name Template) (string, error) {
	content, err := templateFS.ReadFile(fmt.Sprintf("templates/%s.jsx", name))
	if err != nil {
		return "", fmt.Errorf("unknown template %q: %w", name, err)
	}

	return strings.TrimSpace(string(content)), nil
}

// every template name, in keyword scan order
func Templates() []Template {
	return []Template{TemplateTodo, TemplateCounter, TemplateCalculator, TemplateLanding}
}
