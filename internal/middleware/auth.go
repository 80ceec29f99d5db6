package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/csprep/backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog/log"
)

const userIDKey = "user_id"

// RequireAuth verifies the bearer token and stores the caller's user id in
// the request context. Token issuance belongs to the auth service; this
// middleware only consumes its HS256 tokens.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing or malformed Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Warn().Err(err).Msg("Rejected invalid bearer token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		userID, ok := extractUserID(claims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Token carries no user identity"})
			return
		}

		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

// extractUserID accepts either a numeric "sub" or "user_id" claim.
func extractUserID(claims jwt.MapClaims) (uint, bool) {
	for _, key := range []string{"sub", "user_id"} {
		if raw, ok := claims[key]; ok {
			if id, ok := raw.(float64); ok && id > 0 {
				return uint(id), true
			}
		}
	}
	return 0, false
}

// CurrentUserID returns the authenticated user id stored by RequireAuth.
func CurrentUserID(ctx *gin.Context) (uint, bool) {
	raw, exists := ctx.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := raw.(uint)
	return id, ok
}
