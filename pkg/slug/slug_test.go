package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Organic Jaggery Powder", "organic-jaggery-powder"},
		{"punctuation", "Cold Pressed Oil (1L)", "cold-pressed-oil-1l"},
		{"multiple spaces", "Fresh   Coriander", "fresh-coriander"},
		{"leading and trailing junk", "  --Millet Mix!  ", "millet-mix"},
		{"already a slug", "banana-chips", "banana-chips"},
		{"digits", "Rice 5kg Bag", "rice-5kg-bag"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.title))
		})
	}
}
