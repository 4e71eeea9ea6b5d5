package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hostpick/hostpick/app/models"
	"github.com/hostpick/hostpick/internal/pkg/database"
	"github.com/hostpick/hostpick/internal/pkg/session"
	"github.com/hostpick/hostpick/internal/pkg/usercontext"
)

// UserContextMiddleware sets up the complete user context for every request
// This centralizes user session handling and eliminates code duplication
func UserContextMiddleware(c *fiber.Ctx) error {
	// Goth uses its own fiber session store and relies on per-request locals.
	// We skip our app session on /auth/* to prevent cross-store collisions.
	if strings.HasPrefix(c.Path(), "/auth/") {
		return c.Next()
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		// On error: set as anonymous user
		c.Locals("USER_CONTEXT", usercontext.UserContext{
			IsLoggedIn: false,
			IsAdmin:    false,
		})
		c.Locals(usercontext.KeyFromProtected, false)
		c.Locals(usercontext.KeyIsAdmin, false)
		return c.Next()
	}

	// Get user ID from session
	userID := sess.Get(usercontext.KeyUserID)
	if userID == nil {
		// Anonymous user - no session data
		c.Locals("USER_CONTEXT", usercontext.UserContext{
			IsLoggedIn: false,
			IsAdmin:    false,
		})
		c.Locals(usercontext.KeyFromProtected, false)
		c.Locals(usercontext.KeyIsAdmin, false)
		return c.Next()
	}

	// User is logged in - get additional data
	username := session.GetSessionValue(c, usercontext.KeyUsername)
	isAdmin := sess.Get(usercontext.KeyIsAdmin)

	// Determine account tier with session-first strategy
	tier := session.GetSessionValue(c, usercontext.KeyTier)
	if tier == "" {
		tier = models.TIER_STANDARD
		if db := database.GetDB(); db != nil {
			var user models.User
			if err := db.First(&user, userID.(uint)).Error; err == nil && user.Tier != "" {
				tier = user.Tier
			}
		}
		// cache in session for subsequent requests
		_ = session.SetSessionValue(c, usercontext.KeyTier, tier)
	}

	// Set complete user context
	userCtx := usercontext.UserContext{
		UserID:     userID.(uint),
		Username:   username,
		IsLoggedIn: true,
		IsAdmin:    isAdmin != nil && isAdmin.(bool),
		Tier:       tier,
	}
	c.Locals("USER_CONTEXT", userCtx)

	c.Locals(usercontext.KeyFromProtected, true)
	c.Locals(usercontext.KeyUsername, username)
	c.Locals(usercontext.KeyUserID, userID.(uint))
	c.Locals(usercontext.KeyIsAdmin, userCtx.IsAdmin)

	return c.Next()
}
