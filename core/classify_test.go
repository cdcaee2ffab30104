package core

import (
	"testing"

	"github.com/gitsum/gitsum/schema"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		subject string
		want    schema.Category
	}{
		{"fix: crash on startup", schema.CategoryFixes},
		{"Resolve issue with login", schema.CategoryFixes},
		{"feat: new dashboard", schema.CategoryFeatures},
		{"Add retry logic", schema.CategoryFeatures},
		{"refactor config loading", schema.CategoryImprovements},
		{"Clean up dead code", schema.CategoryImprovements},
		{"test: cover parser edge cases", schema.CategoryTests},
		{"docs: expand install guide", schema.CategoryDocs},
		{"Bump dependency versions", schema.CategoryOther},
		{"", schema.CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.subject))
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Matches both Fixes and Features; the earlier rule must win.
	assert.Equal(t, schema.CategoryFixes, Classify("fix: add new feature"))
	// Matches Improvements and Tests; Improvements comes first.
	assert.Equal(t, schema.CategoryImprovements, Classify("refactor tests"))
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, schema.CategoryFixes, Classify("FIX: Shouting Case"))
	assert.Equal(t, schema.CategoryDocs, Classify("DOCS everywhere"))
}
