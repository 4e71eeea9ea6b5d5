package sharelink

import (
	"fmt"
	"time"

	"github.com/hostpick/hostpick/internal/pkg/cache"
	"github.com/hostpick/hostpick/internal/pkg/comparison"
	"github.com/hostpick/hostpick/internal/pkg/shortener"
)

const (
	tokenLength = 10
	keyPrefix   = "compare:share:"
	// Share links are convenience state, not durable data.
	shareTTL = 30 * 24 * time.Hour
)

// Create stores the shareable ID list under a fresh short token and returns
// the token for a /c/<token> link.
func Create(ids []uint) (string, error) {
	if len(ids) < comparison.MinCompareCount {
		return "", fmt.Errorf("a share link needs at least %d plans", comparison.MinCompareCount)
	}
	if len(ids) > comparison.ShareableDisplayCap {
		ids = ids[:comparison.ShareableDisplayCap]
	}

	token, err := shortener.GenerateSecureSlug(tokenLength)
	if err != nil {
		return "", err
	}

	if err := cache.Set(keyPrefix+token, comparison.JoinIDs(ids), shareTTL); err != nil {
		return "", fmt.Errorf("failed to store share link: %w", err)
	}
	return token, nil
}

// Resolve returns the plan IDs behind a share token, or an error for
// unknown/expired tokens.
func Resolve(token string) ([]uint, error) {
	raw, err := cache.Get(keyPrefix + token)
	if err != nil {
		return nil, fmt.Errorf("unknown share link")
	}
	ids := comparison.ParseIDList(raw)
	if len(ids) == 0 {
		return nil, fmt.Errorf("empty share link")
	}
	return ids, nil
}
