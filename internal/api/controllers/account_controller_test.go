package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripwise/internal/api/controllers"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/services"
	"tripwise/pkg/middleware"
	"tripwise/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAccountService struct {
	createAccount func(ctx context.Context, req request_models.SignUpRequest) (*response_models.AccountResponse, error)
	login         func(ctx context.Context, req request_models.LoginRequest) (string, error)
}

var _ services.AccountServiceInterface = (*mockAccountService)(nil)

func (m *mockAccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	return m.createAccount(ctx, req)
}

func (m *mockAccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	return m.login(ctx, req)
}

func newAuthRouter(svc services.AccountServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	ac := controllers.NewAccountController(svc)
	auth := r.Group("/api/auth")
	auth.POST("/register", ac.Register)
	auth.POST("/login", ac.Login)

	return r
}

func TestRegister_OK(t *testing.T) {
	svc := &mockAccountService{
		createAccount: func(_ context.Context, req request_models.SignUpRequest) (*response_models.AccountResponse, error) {
			assert.Equal(t, "ana@example.com", req.Email)
			assert.Equal(t, "Ana", req.DisplayName)
			return &response_models.AccountResponse{ID: "acc-1", Email: req.Email, Name: req.DisplayName}, nil
		},
	}

	body := []byte(`{"email":"ana@example.com","password":"secret1","name":"Ana"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newAuthRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.TraceID)
}

func TestRegister_InvalidPayload400(t *testing.T) {
	svc := &mockAccountService{}

	// Password too short for the binding rule.
	body := []byte(`{"email":"ana@example.com","password":"abc","name":"Ana"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newAuthRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", decodeEnvelope(t, rec).Status)
}

func TestRegister_DuplicateEmail409(t *testing.T) {
	svc := &mockAccountService{
		createAccount: func(context.Context, request_models.SignUpRequest) (*response_models.AccountResponse, error) {
			return nil, utils.ErrEmailAlreadyExists
		},
	}

	body := []byte(`{"email":"ana@example.com","password":"secret1","name":"Ana"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newAuthRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_OK(t *testing.T) {
	svc := &mockAccountService{
		login: func(_ context.Context, req request_models.LoginRequest) (string, error) {
			assert.Equal(t, "ana@example.com", req.Email)
			return "signed-token", nil
		},
	}

	body := []byte(`{"email":"ana@example.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newAuthRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.Equal(t, "success", resp.Status)

	payload, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(payload, &data))
	assert.Equal(t, "signed-token", data.Token)
}

func TestLogin_BadCredentials401(t *testing.T) {
	svc := &mockAccountService{
		login: func(context.Context, request_models.LoginRequest) (string, error) {
			return "", utils.ErrInvalidCredentials
		},
	}

	body := []byte(`{"email":"ana@example.com","password":"wrong-pass"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newAuthRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
