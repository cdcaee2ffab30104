package core

import (
	"strings"

	"github.com/gitsum/gitsum/schema"
)

// classifyRule pairs a category with the subject keywords that select it.
type classifyRule struct {
	category schema.Category
	keywords []string
}

// classifyRules is evaluated in order; the first match wins, so a subject
// like "fix: add new feature" lands in Fixes, never Features.
var classifyRules = []classifyRule{
	{schema.CategoryFixes, []string{"fix", "bug", "issue"}},
	{schema.CategoryFeatures, []string{"feat", "add", "new"}},
	{schema.CategoryImprovements, []string{"refactor", "clean", "improve"}},
	{schema.CategoryTests, []string{"test"}},
	{schema.CategoryDocs, []string{"doc"}},
}

// Classify maps a commit subject to a category via ordered keyword
// matching. Pure function.
func Classify(subject string) schema.Category {
	subject = strings.ToLower(subject)
	for _, rule := range classifyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(subject, kw) {
				return rule.category
			}
		}
	}
	return schema.CategoryOther
}
