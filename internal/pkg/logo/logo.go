package logo

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2/log"
)

const (
	// LogoDir is where processed provider logos are stored
	LogoDir = "uploads/logos"

	// LogoSize is the width of the standard logo variant
	LogoSize = 200
	// ThumbSize is the width of the list/thumbnail variant
	ThumbSize = 64
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// IsAllowedExtension reports whether a logo upload has a supported image type.
func IsAllowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Scale returns the image resized to the given width, keeping aspect ratio.
// Images narrower than the target are returned unchanged.
func Scale(img image.Image, width int) image.Image {
	if img.Bounds().Dx() <= width {
		return img
	}
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}

// Process reads an uploaded logo, writes the standard and thumbnail variants
// as PNG under LogoDir and returns the relative path of the standard variant.
func Process(srcPath, providerSlug string) (string, error) {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("error opening logo image: %w", err)
	}

	if err := os.MkdirAll(LogoDir, 0755); err != nil {
		return "", fmt.Errorf("error creating logo directory: %w", err)
	}

	logoPath := filepath.Join(LogoDir, providerSlug+".png")
	if err := imaging.Save(Scale(img, LogoSize), logoPath); err != nil {
		return "", fmt.Errorf("error saving logo: %w", err)
	}

	thumbPath := filepath.Join(LogoDir, providerSlug+"_thumb.png")
	if err := imaging.Save(Scale(img, ThumbSize), thumbPath); err != nil {
		log.Errorf("[Logo] Error saving thumbnail for %s: %v", providerSlug, err)
	}

	return logoPath, nil
}
