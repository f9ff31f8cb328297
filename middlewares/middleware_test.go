package middlewares

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gin-shoplist/apperrors"
	"gin-shoplist/constants"
	"gin-shoplist/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type stubTokenService struct {
	identities map[string]*services.TokenIdentity
	err        error
}

func (s *stubTokenService) Issue(ctx context.Context, email string, password string) (*string, error) {
	return nil, nil
}

func (s *stubTokenService) Verify(tokenString string) (*services.TokenIdentity, error) {
	if s.err != nil {
		return nil, s.err
	}
	if identity, ok := s.identities[tokenString]; ok {
		return identity, nil
	}
	return nil, services.ErrInvalidToken
}

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(ctx *gin.Context) {
		caller, _ := ctx.Get(constants.ContextCaller)
		ctx.JSON(http.StatusOK, gin.H{"userId": caller.(services.Caller).UserID})
	})
	r.GET("/", handlers...)
	return r
}

func doRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var tokens = &stubTokenService{identities: map[string]*services.TokenIdentity{
	"user-token":  {UserID: "u1", Role: constants.RoleUser},
	"admin-token": {UserID: "a1", Role: constants.RoleAdmin},
}}

func TestAuthMiddleware(t *testing.T) {
	r := newTestRouter(AuthMiddleware(tokens))

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "user-token").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Bearer nope").Code)

	w := doRequest(r, "Bearer user-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"u1"}`, w.Body.String())
}

func TestOptionalAuthMiddleware(t *testing.T) {
	r := newTestRouter(OptionalAuthMiddleware(tokens))

	w := doRequest(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":""}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Bearer nope").Code)

	w = doRequest(r, "Bearer admin-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"a1"}`, w.Body.String())
}

func TestAuthMiddlewareMisconfigured(t *testing.T) {
	r := newTestRouter(AuthMiddleware(&stubTokenService{err: apperrors.NewConfiguration("JWT_SECRET not set")}))

	w := doRequest(r, "Bearer anything")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "JWT_SECRET")
}

func TestRoleBasedAccessControl(t *testing.T) {
	r := newTestRouter(AuthMiddleware(tokens), RoleBasedAccessControl(constants.RoleAdmin))

	assert.Equal(t, http.StatusForbidden, doRequest(r, "Bearer user-token").Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "Bearer admin-token").Code)

	withoutAuth := newTestRouter(RoleBasedAccessControl(constants.RoleAdmin))
	assert.Equal(t, http.StatusUnauthorized, doRequest(withoutAuth, "").Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	r := newTestRouter(RequestLogger(logger), OptionalAuthMiddleware(tokens))

	doRequest(r, "")

	assert.Contains(t, buf.String(), `"method":"GET"`)
	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"message":"http_request"`)
}
