package logo

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedExtension(t *testing.T) {
	assert.True(t, IsAllowedExtension("acme.png"))
	assert.True(t, IsAllowedExtension("ACME.JPG"))
	assert.False(t, IsAllowedExtension("acme.svg"))
	assert.False(t, IsAllowedExtension("acme"))
}

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 800, 400))

	scaled := Scale(src, LogoSize)
	assert.Equal(t, LogoSize, scaled.Bounds().Dx())
	assert.Equal(t, 100, scaled.Bounds().Dy())

	// Small images are left untouched
	small := image.NewRGBA(image.Rect(0, 0, 50, 50))
	assert.Equal(t, 50, Scale(small, LogoSize).Bounds().Dx())
}
