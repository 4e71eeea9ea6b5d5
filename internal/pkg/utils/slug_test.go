package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme Hosting", "acme-hosting"},
		{"  VPS / Cloud  ", "vps-cloud"},
		{"Árbol#1!", "rbol-1"},
		{"already-a-slug", "already-a-slug"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}
