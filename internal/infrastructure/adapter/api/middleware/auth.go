package middleware

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	domainerr "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/provider"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey           = "tg_user_id"
	initDataHeader      = "X-Tg-Init-Data"
	internalTokenHeader = "X-Internal-Token"
)

// IdentityVerifier resolves the Telegram user id from signed WebApp init data
type IdentityVerifier interface {
	Verify(initData string) (int64, error)
}

// UserEnsurer creates the user row on first contact
type UserEnsurer interface {
	EnsureUser(ctx context.Context, userID int64) error
}

// TelegramAuth authenticates the mini app user and lazily creates its row
func TelegramAuth(verifier IdentityVerifier, users UserEnsurer, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		initData := c.GetHeader(initDataHeader)
		if initData == "" {
			initData = c.Query("initData")
		}
		if initData == "" {
			initData = c.Query("init_data")
		}
		if strings.TrimSpace(initData) == "" {
			abortWith(c, domainerr.ErrUnauthorized)
			return
		}

		userID, err := verifier.Verify(initData)
		if err != nil {
			logger.Debug("Init data rejected", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			abortWith(c, err)
			return
		}

		if err := users.EnsureUser(c.Request.Context(), userID); err != nil {
			abortWith(c, err)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// RequireAdmin lets only configured admin ids through. It must run after
// TelegramAuth.
func RequireAdmin(admins provider.AdminDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			abortWith(c, domainerr.ErrUnauthorized)
			return
		}
		if !admins.IsAdmin(userID) {
			abortWith(c, fmt.Errorf("%w: admin only", domainerr.ErrForbidden))
			return
		}
		c.Next()
	}
}

// InternalToken guards the bot callback endpoints. An empty token leaves
// them open, which is only meant for local development.
func InternalToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		got := c.GetHeader(internalTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			abortWith(c, domainerr.ErrForbidden)
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated Telegram user id
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}

func abortWith(c *gin.Context, err error) {
	status, body := NewErrorResponse(err)
	c.AbortWithStatusJSON(status, body)
}
