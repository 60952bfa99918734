package handler

import (
	"net/http"
	"testing"
	"time"

	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/errors"
	mockUsecase "lifelink/internal/mocks/usecase"
	"lifelink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	uc := mockUsecase.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AuthUC: uc, Logger: newTestLogger()}), uc
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("creates the account and returns a session", func(t *testing.T) {
		h, uc := newTestAuthHandler(t)
		user := &entity.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana", CreatedAt: time.Now()}
		uc.EXPECT().Register(mock.Anything, usecase.RegisterInput{
			Name: "Ana", Email: "ana@example.com", Password: "Password123!",
		}).Return(&usecase.AuthOutput{
			AccessToken:  "access",
			RefreshToken: "refresh",
			User:         user,
			Roles:        entity.Roles{entity.RoleUser},
		}, nil).Once()

		rec := serve(t, testRequest{
			method:  http.MethodPost,
			path:    "/auth/register",
			body:    `{"name":"Ana","email":"ana@example.com","password":"Password123!"}`,
			handler: h.Register,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var got authResponse
		decodeData(t, rec, &got)
		assert.Equal(t, "access", got.AccessToken)
		assert.Equal(t, "refresh", got.RefreshToken)
		assert.Equal(t, "ana@example.com", got.User.Email)
		assert.Equal(t, []string{}, got.User.QRCodes)
		assert.Equal(t, []string{"user"}, got.Roles)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)

		rec := serve(t, testRequest{method: http.MethodPost, path: "/auth/register", body: `{"name":`, handler: h.Register})

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("rejects an invalid email before calling the use case", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)

		rec := serve(t, testRequest{
			method:  http.MethodPost,
			path:    "/auth/register",
			body:    `{"name":"Ana","email":"not-an-email","password":"x"}`,
			handler: h.Register,
		})

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, rec.Body.String(), "email must be a valid email address")
	})

	t.Run("reports a duplicate email as a conflict", func(t *testing.T) {
		h, uc := newTestAuthHandler(t)
		uc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists).Once()

		rec := serve(t, testRequest{
			method:  http.MethodPost,
			path:    "/auth/register",
			body:    `{"name":"Ana","email":"ana@example.com","password":"Password123!"}`,
			handler: h.Register,
		})

		requireErrorCode(t, rec, http.StatusConflict, "USER_ALREADY_EXISTS")
	})

	t.Run("hides internal failures", func(t *testing.T) {
		h, uc := newTestAuthHandler(t)
		uc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, errors.New("disk on fire")).Once()

		rec := serve(t, testRequest{
			method:  http.MethodPost,
			path:    "/auth/register",
			body:    `{"name":"Ana","email":"ana@example.com","password":"Password123!"}`,
			handler: h.Register,
		})

		requireErrorCode(t, rec, http.StatusInternalServerError, "INTERNAL_ERROR")
		assert.NotContains(t, rec.Body.String(), "disk on fire")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns a session", func(t *testing.T) {
		h, uc := newTestAuthHandler(t)
		uc.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "ana@example.com", Password: "pw"}).Return(&usecase.AuthOutput{
			AccessToken:  "access",
			RefreshToken: "refresh",
			User:         &entity.User{ID: uuid.New(), Email: "ana@example.com", QRCodes: []string{"LL-00000001"}},
			Roles:        entity.Roles{entity.RoleUser, entity.RoleAdmin},
		}, nil).Once()

		rec := serve(t, testRequest{
			method:  http.MethodPost,
			path:    "/auth/login",
			body:    `{"email":"ana@example.com","password":"pw"}`,
			handler: h.Login,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var got authResponse
		decodeData(t, rec, &got)
		assert.Equal(t, []string{"LL-00000001"}, got.User.QRCodes)
		assert.Equal(t, []string{"user", "admin"}, got.Roles)
	})

	t.Run("wrong credentials carry no details", func(t *testing.T) {
		h, uc := newTestAuthHandler(t)
		uc.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidCredentials.WithDetails("no such user")).Once()

		rec := serve(t, testRequest{
			method:  http.MethodPost,
			path:    "/auth/login",
			body:    `{"email":"ana@example.com","password":"pw"}`,
			handler: h.Login,
		})

		requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
		assert.NotContains(t, rec.Body.String(), "no such user")
	})
}

func TestAuthHandler_RefreshAndLogout(t *testing.T) {
	h, uc := newTestAuthHandler(t)
	uc.EXPECT().RefreshToken(mock.Anything, usecase.RefreshTokenInput{RefreshToken: "refresh"}).
		Return(&usecase.RefreshTokenOutput{AccessToken: "fresh"}, nil).Once()
	uc.EXPECT().Logout(mock.Anything, usecase.LogoutInput{RefreshToken: "refresh"}).Return(nil).Once()

	rec := serve(t, testRequest{method: http.MethodPost, path: "/auth/refresh", body: `{"refreshToken":"refresh"}`, handler: h.RefreshToken})
	require.Equal(t, http.StatusOK, rec.Code)
	var got accessTokenResponse
	decodeData(t, rec, &got)
	assert.Equal(t, "fresh", got.AccessToken)

	rec = serve(t, testRequest{method: http.MethodPost, path: "/auth/logout", body: `{"refreshToken":"refresh"}`, handler: h.Logout})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, testRequest{method: http.MethodPost, path: "/auth/logout", body: `{}`, handler: h.Logout})
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("requires an identity", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)

		rec := serve(t, testRequest{method: http.MethodGet, path: "/api/v1/me", handler: h.Me})

		requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")
	})

	t.Run("returns the caller with roles", func(t *testing.T) {
		h, uc := newTestAuthHandler(t)
		userID := uuid.New()
		uc.EXPECT().Me(mock.Anything, userID).Return(&entity.User{ID: userID, Email: "ana@example.com", Name: "Ana"}, nil).Once()

		rec := serve(t, testRequest{
			method:  http.MethodGet,
			path:    "/api/v1/me",
			userID:  userID,
			roles:   entity.Roles{entity.RoleUser},
			handler: h.Me,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			User  userResponse `json:"user"`
			Roles []string     `json:"roles"`
		}
		decodeData(t, rec, &got)
		assert.Equal(t, userID.String(), got.User.ID)
		assert.Equal(t, []string{"user"}, got.Roles)
	})
}

func TestHealthCheck(t *testing.T) {
	rec := serve(t, testRequest{method: http.MethodGet, path: "/health", handler: HealthCheck})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decodeEnvelope(t, rec).Data))
}
