package handler

import (
	"context"
	"net/http"
	"time"

	"werkbon/internal/app/config"
	"werkbon/internal/app/ds"
	"werkbon/internal/app/dto"
	"werkbon/internal/app/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*ds.User, error)
	GetUserByID(ctx context.Context, id string) (*ds.User, error)
	FindTechnicianByUserID(ctx context.Context, userID string) (*ds.Technician, error)
}

type TokenBlacklist interface {
	WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error
}

type AuthHandler struct {
	Users     UserStore
	Blacklist TokenBlacklist
	Config    *config.Config
}

func NewAuthHandler(users UserStore, blacklist TokenBlacklist, config *config.Config) *AuthHandler {
	return &AuthHandler{
		Users:     users,
		Blacklist: blacklist,
		Config:    config,
	}
}

const msgBadCredentials = "Onjuist e-mailadres of wachtwoord."

// HashPassword hashes a password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *AuthHandler) userResponse(ctx context.Context, user *ds.User) (dto.UserResponse, error) {
	response := dto.UserResponse{ID: user.ID, Email: user.Email}
	tech, err := h.Users.FindTechnicianByUserID(ctx, user.ID)
	if err != nil {
		return response, err
	}
	if tech != nil {
		response.TechnicianID = tech.ID
		response.TechnicianName = tech.Name
	}
	return response, nil
}

// LoginUser signs a user in
// @Summary Sign in
// @Description Checks email and password and returns a JWT. The token is also set as cookie for page requests.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		errorResponse(ctx, http.StatusBadRequest, msgBadRequest)
		return
	}

	user, err := h.Users.GetUserByEmail(ctx.Request.Context(), request.Email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)) != nil {
		logrus.WithField("email", request.Email).Warn("failed sign-in")
		errorResponse(ctx, http.StatusUnauthorized, msgBadCredentials)
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "werkbon",
		},
		UserID: user.ID,
		Email:  user.Email,
	})

	accessToken, err := token.SignedString([]byte(h.Config.JWT.Token))
	if err != nil {
		logrus.WithError(err).Error("failed to sign token")
		errorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	response, err := h.userResponse(ctx.Request.Context(), user)
	if err != nil {
		errorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.AuthCookie, accessToken, int(h.Config.JWT.ExpiresIn.Seconds()), "/", "", false, true)

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token: accessToken,
		User:  response,
	})
}

// LogoutUser signs the user out
// @Summary Sign out
// @Description Revokes the token until it expires and clears the cookie.
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	tokenString := middleware.TokenFromRequest(ctx)

	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Token), nil
	})
	if err != nil {
		errorResponse(ctx, http.StatusUnauthorized, err.Error())
		return
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok {
		errorResponse(ctx, http.StatusUnauthorized, "invalid token claims")
		return
	}

	ctx.SetCookie(middleware.AuthCookie, "", -1, "/", "", false, true)

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 {
		if err := h.Blacklist.WriteJWTToBlacklist(ctx.Request.Context(), tokenString, ttl); err != nil {
			logrus.WithError(err).Error("failed to revoke token")
			errorResponse(ctx, http.StatusInternalServerError, err.Error())
			return
		}
	}

	successResponse(ctx, http.StatusOK, "Je bent uitgelogd.", nil)
}

// GetCurrentUser returns the signed-in user
// @Summary Current user
// @Description The signed-in user and the technician it is linked to, if any.
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) GetCurrentUser(ctx *gin.Context) {
	user, err := h.Users.GetUserByID(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		errorResponse(ctx, http.StatusUnauthorized, "Je bent niet ingelogd.")
		return
	}

	response, err := h.userResponse(ctx.Request.Context(), user)
	if err != nil {
		errorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	ctx.JSON(http.StatusOK, response)
}
