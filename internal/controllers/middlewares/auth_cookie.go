package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/golinks/internal/tokens"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// UserIDKey ключ в контексте gin по которому лежит идентификатор пользователя.
	UserIDKey = "userID"
	// AuthCookieName имя куки с JWT токеном.
	AuthCookieName = "auth"
	// AuthJWTExpireDuration срок жизни токена.
	AuthJWTExpireDuration = 24 * time.Hour
)

// AuthCookieMiddleware резолвит идентификатор пользователя из JWT куки.
// Если куки нет или токен невалиден — выдает новый идентификатор и
// выставляет куку заново. Идентификатор попадает в контекст запроса;
// если установить его не удалось, контекст остается без него и хендлеры
// мутаций ответят Unauthorized.
func AuthCookieMiddleware(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authCookie, err := c.Request.Cookie(AuthCookieName)

		if err != nil && !errors.Is(err, http.ErrNoCookie) {
			// куки не работают, дальше без идентификатора
			_ = c.Error(fmt.Errorf("auth cookie middleware: %w", err))
			c.Next()
			return
		}

		var userID string
		needIssueJWT := true

		if authCookie != nil {
			claims, parseErr := tokens.ParseUserJWT(authCookie.Value, jwtSecret)
			if parseErr != nil {
				// токен протух или битый, выпишем новый
				_ = c.Error(fmt.Errorf("auth cookie middleware: %w", parseErr))
			} else {
				needIssueJWT = false
				userID = claims.UUID
			}
		}

		if needIssueJWT {
			newUUID, uErr := uuid.NewRandom()
			if uErr != nil {
				_ = c.Error(fmt.Errorf("auth cookie middleware: %w", uErr))
				c.Next()
				return
			}
			userID = newUUID.String()

			tokenString, tokenErr := tokens.IssueUserJWT(userID, AuthJWTExpireDuration, jwtSecret)
			if tokenErr != nil {
				_ = c.Error(fmt.Errorf("auth cookie middleware: %w", tokenErr))
				c.Next()
				return
			}
			c.SetCookie(
				AuthCookieName,
				tokenString,
				int(AuthJWTExpireDuration.Seconds()),
				"/",
				"",
				false,
				true,
			)
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
