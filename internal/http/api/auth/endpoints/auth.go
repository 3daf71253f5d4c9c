package endpoints

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/playhouse/internal/db"
	"github.com/Nixie-Tech-LLC/playhouse/internal/http/api"
	"github.com/Nixie-Tech-LLC/playhouse/internal/http/api/auth/packets"
	"github.com/Nixie-Tech-LLC/playhouse/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/playhouse/internal/model"
	"github.com/Nixie-Tech-LLC/playhouse/internal/validation"
)

const emailTaken = "The email has already been taken."

// AuthPublicModule mounts the public endpoints (/Test, /Admin/Register, /Admin/Login)
func AuthPublicModule(jwtSecret string, ttl time.Duration, store db.Store) api.Module {
	ctl := newAccountManager(jwtSecret, ttl, store, nil)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/Test", ctl.healthCheck)
		c.PUBLIC_POST("/Admin/Register", ctl.adminRegister)
		c.PUBLIC_POST("/Admin/Login", ctl.adminLogin)
	})
}

// AuthSessionModule mounts session endpoints that need a bearer token
func AuthSessionModule(jwtSecret string, ttl time.Duration, store db.Store, revocations middleware.Revocations) api.Module {
	ctl := newAccountManager(jwtSecret, ttl, store, revocations)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/Test/Token", ctl.tokenCheck)
		c.GET("/Profile", ctl.currentProfile)
		c.POST("/Logout", ctl.logout)
	})
}

type AccountManager struct {
	jwtSecret   string
	ttl         time.Duration
	store       db.Store
	revocations middleware.Revocations
}

func newAccountManager(secret string, ttl time.Duration, store db.Store, revocations middleware.Revocations) *AccountManager {
	return &AccountManager{jwtSecret: secret, ttl: ttl, store: store, revocations: revocations}
}

// GET /auth/Test
func (a *AccountManager) healthCheck(ctx *gin.Context) (any, *api.APIError) {
	return api.Envelope{Success: 1, Message: "API is working"}, nil
}

// GET /admin/Test/Token
func (a *AccountManager) tokenCheck(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return api.OK("API is working", gin.H{"admin_id": user.ID}), nil
}

// POST /auth/Admin/Register
func (a *AccountManager) adminRegister(ctx *gin.Context) (any, *api.APIError) {
	var request packets.RegisterRequest
	if err := validation.Bind(ctx, &request); err != nil {
		return nil, api.Fail(http.StatusUnprocessableEntity, validation.FirstError(err))
	}

	existing, err := a.store.GetUserByEmail(request.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, api.Internal("Error while Register", err)
	}
	if existing != nil {
		log.Warn().Str("email", request.Email).Msg("[auth] register: email already registered")
		return nil, api.Fail(http.StatusUnprocessableEntity, emailTaken)
	}

	hashed, err := middleware.HashPassword(request.Password)
	if err != nil {
		log.Error().Err(err).Msg("[auth] register: hash failed")
		return nil, api.Internal("Error while Register", err)
	}

	admin, err := a.store.CreateUser(request.Name, request.Email, hashed)
	if errors.Is(err, db.ErrEmailTaken) {
		return nil, api.Fail(http.StatusUnprocessableEntity, emailTaken)
	}
	if err != nil {
		log.Error().Err(err).Str("email", request.Email).Msg("[auth] register: create failed")
		return nil, api.Internal("Error while Register", err)
	}

	log.Info().Int("admin_id", admin.ID).Msg("[auth] admin registered")
	return api.Reply{
		Code: http.StatusCreated,
		Body: packets.RegisterResponse{
			Success: 1,
			Message: "Admin registered successfully",
			Admin:   packets.NewAdminResponse(admin),
		},
	}, nil
}

// POST /auth/Admin/Login
func (a *AccountManager) adminLogin(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := validation.Bind(ctx, &request); err != nil {
		return nil, api.Fail(http.StatusUnprocessableEntity, validation.FirstError(err))
	}

	admin, err := a.store.GetUserByEmail(request.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, api.Fail(http.StatusNotFound, "Email does not exist")
	}
	if err != nil {
		return nil, api.Internal("Error while Login", err)
	}

	if !middleware.CheckPassword(admin.HashedPassword, request.Password) {
		log.Warn().Int("admin_id", admin.ID).Msg("[auth] login: password mismatch")
		return nil, api.Fail(http.StatusUnauthorized, "Password does not match")
	}

	token, err := middleware.GenerateJWT(admin.ID, a.jwtSecret, a.ttl)
	if err != nil {
		log.Error().Err(err).Int("admin_id", admin.ID).Msg("[auth] login: could not sign token")
		return nil, api.Internal("Error while Login", err)
	}

	return packets.LoginResponse{
		Success:     1,
		User:        packets.NewAdminResponse(admin),
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(a.ttl.Seconds()),
	}, nil
}

// GET /admin/Profile
func (a *AccountManager) currentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return api.OK("Admin profile", packets.NewAdminResponse(user)), nil
}

// POST /admin/Logout
func (a *AccountManager) logout(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	if a.revocations == nil {
		return nil, api.Fail(http.StatusNotImplemented, "Logout is not available")
	}

	claims, ok := middleware.GetTokenClaims(ctx)
	if !ok || claims.ID == "" {
		return nil, api.Fail(http.StatusBadRequest, "Token cannot be revoked")
	}

	if err := a.revocations.Revoke(ctx.Request.Context(), claims.ID, time.Until(claims.ExpiresAt)); err != nil {
		return nil, api.Internal("Error while Logout", err)
	}

	log.Info().Int("admin_id", user.ID).Msg("[auth] admin logged out")
	return api.Envelope{Success: 1, Message: "Successfully logged out"}, nil
}
