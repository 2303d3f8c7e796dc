package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"werkbon/internal/app/config"
	"werkbon/internal/app/ds"
	"werkbon/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
)

const (
	// AuthCookie carries the token for page requests.
	AuthCookie = "auth_token"

	ContextUserID = "userID"
	ContextEmail  = "userEmail"
)

var ErrTokenRevoked = errors.New("token revoked")

type Blacklist interface {
	IsJWTBlacklisted(ctx context.Context, jwtStr string) (bool, error)
}

type AuthMiddleware struct {
	Blacklist Blacklist
	Config    *config.Config
}

func NewAuthMiddleware(blacklist Blacklist, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		Blacklist: blacklist,
		Config:    cfg,
	}
}

// TokenFromRequest reads the token from the Authorization header, falling
// back to the auth cookie.
func TokenFromRequest(gCtx *gin.Context) string {
	if jwtStr := gCtx.GetHeader("Authorization"); jwtStr != "" {
		return strings.TrimPrefix(jwtStr, "Bearer ")
	}
	if cookie, err := gCtx.Cookie(AuthCookie); err == nil {
		return cookie
	}
	return ""
}

// Claims validates the token and checks it was not revoked by sign-out.
func (am *AuthMiddleware) Claims(ctx context.Context, jwtStr string) (*ds.JWTClaims, error) {
	if jwtStr == "" {
		return nil, errors.New("token missing")
	}

	revoked, err := am.Blacklist.IsJWTBlacklisted(ctx, jwtStr)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	token, err := am.parseJWTToken(jwtStr)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// WithAuthCheck rejects API requests without a valid token.
func (am *AuthMiddleware) WithAuthCheck() gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		claims, err := am.Claims(gCtx.Request.Context(), TokenFromRequest(gCtx))
		if err != nil {
			logrus.WithError(err).Warn("rejected request")
			gCtx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Status:  "fail",
				Message: "Je bent niet ingelogd.",
			})
			return
		}

		gCtx.Set(ContextUserID, claims.UserID)
		gCtx.Set(ContextEmail, claims.Email)
		gCtx.Next()
	}
}

// WithPageAuth sends visitors without a valid token to the login page.
func (am *AuthMiddleware) WithPageAuth() gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		claims, err := am.Claims(gCtx.Request.Context(), TokenFromRequest(gCtx))
		if err != nil {
			gCtx.Redirect(http.StatusFound, "/login")
			gCtx.Abort()
			return
		}

		gCtx.Set(ContextUserID, claims.UserID)
		gCtx.Set(ContextEmail, claims.Email)
		gCtx.Next()
	}
}

func (am *AuthMiddleware) parseJWTToken(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != am.Config.JWT.SigningMethod {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(am.Config.JWT.Token), nil
	})
}
