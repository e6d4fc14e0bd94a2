package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Aruzhan01/academy-system/middleware"
	"github.com/Aruzhan01/academy-system/models"
	"github.com/Aruzhan01/academy-system/services"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	admin *models.Admin
	err   error
}

func (s *stubAuthService) Login(ctx context.Context, input services.LoginInput) (*models.Admin, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.admin, nil
}

func (s *stubAuthService) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	return nil
}

func TestLogin_IssuesAdminToken(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{admin: &models.Admin{Username: "admin"}}, "test-secret")

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin","password":"s3cret"}`))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)

	token, err := jwt.Parse(response.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, "admin", claims["username"])
	require.Equal(t, middleware.RoleAdmin, claims["role"])
	require.Contains(t, claims, "exp")
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{err: services.ErrAuthInvalidCredentials}, "test-secret")

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_RequiresBothFields(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{admin: &models.Admin{Username: "admin"}}, "test-secret")

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin"}`))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
