package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "promo.mp4", "promo.mp4"},
		{"spaces become underscores", "summer sale 2026.png", "summer_sale_2026.png"},
		{"unix path prefix dropped", "/etc/passwd", "passwd"},
		{"windows path prefix dropped", `C:\Users\op\clip.mov`, "clip.mov"},
		{"traversal collapses", "../../../../etc/shadow", "shadow"},
		{"pure traversal collapses to nothing", "../..", ""},
		{"leading dots trimmed", ".hidden.png", "hidden.png"},
		{"unsafe characters removed", "we$rd (final)!.jpg", "werd_final.jpg"},
		{"unicode stripped and dot trimmed", "日本語.gif", "gif"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}
