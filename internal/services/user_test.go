package service_test

import (
	"testing"

	appErrors "github.com/glamzz/glamzz-store/internal/errors"
	"github.com/glamzz/glamzz-store/internal/models"
	repository "github.com/glamzz/glamzz-store/internal/repositories"
	service "github.com/glamzz/glamzz-store/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWTKey = []byte("unit-test-signing-key")

func TestAuthenticate(t *testing.T) {

	t.Run("Success - Session Established And Token Minted", func(t *testing.T) {
		session := repository.NewSessionStore()
		svc := service.NewUserService(session, testJWTKey)

		resp, err := svc.Authenticate(&models.AuthRequest{
			Name:     "Priya",
			Email:    "priya@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Priya", resp.User.Name)

		user := session.Get()
		require.NotNil(t, user)
		assert.Equal(t, "priya@example.com", user.Email)

		claims := &models.Claims{}
		token, err := jwt.ParseWithClaims(resp.Token, claims, func(token *jwt.Token) (any, error) {
			return testJWTKey, nil
		})
		require.NoError(t, err)
		assert.True(t, token.Valid)
		assert.Equal(t, resp.User.ID, claims.UserID)
		assert.Equal(t, "priya@example.com", claims.Email)
	})

	t.Run("Success - Missing Name Falls Back To Guest", func(t *testing.T) {
		session := repository.NewSessionStore()
		svc := service.NewUserService(session, testJWTKey)

		resp, err := svc.Authenticate(&models.AuthRequest{
			Email:    "guest@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.Equal(t, "Guest User", resp.User.Name)
	})

	t.Run("Success - Later Login Replaces The Session User", func(t *testing.T) {
		session := repository.NewSessionStore()
		svc := service.NewUserService(session, testJWTKey)

		_, err := svc.Authenticate(&models.AuthRequest{Name: "First", Email: "first@example.com", Password: "secret123"})
		require.NoError(t, err)

		_, err = svc.Authenticate(&models.AuthRequest{Name: "Second", Email: "second@example.com", Password: "secret123"})
		require.NoError(t, err)

		user := session.Get()
		require.NotNil(t, user)
		assert.Equal(t, "Second", user.Name)
	})
}

func TestLogout(t *testing.T) {

	t.Run("Clears Only The Session", func(t *testing.T) {
		repos := repository.New()
		svc := service.NewUserService(repos.Session, testJWTKey)

		_, err := svc.Authenticate(&models.AuthRequest{Name: "Priya", Email: "priya@example.com", Password: "secret123"})
		require.NoError(t, err)

		cartSvc := service.NewCartService(repos.Cart, mustLoadCatalog(t))
		_, err = cartSvc.AddItem(&models.AddItemRequest{ProductID: "arena-leggings", Size: "M"})
		require.NoError(t, err)

		svc.Logout()

		assert.Nil(t, repos.Session.Get())
		assert.Equal(t, 1, repos.Cart.Len(), "cart is not scoped to the session user")
	})
}

func TestProfile(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		session := repository.NewSessionStore()
		svc := service.NewUserService(session, testJWTKey)

		_, err := svc.Authenticate(&models.AuthRequest{Name: "Priya", Email: "priya@example.com", Password: "secret123"})
		require.NoError(t, err)

		user, err := svc.Profile()

		require.NoError(t, err)
		assert.Equal(t, "Priya", user.Name)
	})

	t.Run("Failure - Not Logged In", func(t *testing.T) {
		svc := service.NewUserService(repository.NewSessionStore(), testJWTKey)

		_, err := svc.Profile()

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)
	})
}
