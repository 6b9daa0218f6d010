package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerr "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/stars-roulette/mocks/port/core"
	mockprovider "github.com/amirhossein-jamali/stars-roulette/mocks/port/provider"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domainerr.ErrUnauthorized, http.StatusUnauthorized},
		{domainerr.ErrForbidden, http.StatusForbidden},
		{domainerr.ErrUserNotFound, http.StatusNotFound},
		{domainerr.ErrRequestNotFound, http.StatusNotFound},
		{domainerr.NewInsufficientBalanceError(1, 10, 5), http.StatusBadRequest},
		{domainerr.NewInsufficientTicketsError(1, "sneakers", 10, 5), http.StatusBadRequest},
		{domainerr.ErrInvalidPrizeType, http.StatusBadRequest},
		{domainerr.ErrLotExhausted, http.StatusConflict},
		{domainerr.ErrUserLocked, http.StatusConflict},
		{domainerr.ErrShuttingDown, http.StatusServiceUnavailable},
		{fmt.Errorf("%w: boom", domainerr.ErrDatabaseConnection), http.StatusInternalServerError},
		{errors.New("anything"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestNewErrorResponse_HidesServerCauses(t *testing.T) {
	status, body := NewErrorResponse(fmt.Errorf("%w: users: password authentication failed", domainerr.ErrDatabaseConnection))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, domainerr.CodeDatabaseConnection, body.Code)
	assert.NotContains(t, body.Message, "password")

	_, body = NewErrorResponse(fmt.Errorf("%w: telegram timeout", domainerr.ErrInvoiceUnavailable))
	assert.Equal(t, domainerr.ErrInvoiceUnavailable.Error(), body.Message)
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := mockcore.NewMockLogger(t)
	log.EXPECT().Error("Panic recovered in API request", mock.Anything).Once()

	r := gin.New()
	r.Use(ErrorHandler(log))
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestErrorHandler_LogsOnlyServerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := mockcore.NewMockLogger(t)
	log.EXPECT().Error("Request failed", mock.Anything).Once()

	r := gin.New()
	r.Use(ErrorHandler(log))
	r.GET("/conflict", func(c *gin.Context) { _ = c.Error(domainerr.ErrLotExhausted) })
	r.GET("/down", func(c *gin.Context) { _ = c.Error(domainerr.ErrDatabaseConnection) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/conflict", nil))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/down", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestInternalToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name   string
		token  string
		header string
		want   int
	}{
		{"open when unset", "", "", http.StatusOK},
		{"match", "s3cret", "s3cret", http.StatusOK},
		{"mismatch", "s3cret", "s3cre", http.StatusForbidden},
		{"missing", "s3cret", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/x", InternalToken(tt.token), func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodPost, "/x", nil)
			if tt.header != "" {
				req.Header.Set(internalTokenHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestLogger_PropagatesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(logger.NewNoopLogger()))

	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = c.GetString(RequestIDKey)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(requestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", w.Header().Get(requestIDHeader))
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"https://app.example.org"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.example.org")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.org", w.Header().Get("Access-Control-Allow-Origin"))
}

type verifierFunc func(string) (int64, error)

func (f verifierFunc) Verify(initData string) (int64, error) { return f(initData) }

type ensurerFunc func(int64) error

func (f ensurerFunc) EnsureUser(_ context.Context, userID int64) error { return f(userID) }

func TestTelegramAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := verifierFunc(func(initData string) (int64, error) {
		if initData == "good" {
			return 42, nil
		}
		return 0, fmt.Errorf("%w: bad hash", domainerr.ErrUnauthorized)
	})

	tests := []struct {
		name      string
		header    string
		query     string
		ensureErr error
		want      int
	}{
		{"header", "good", "", nil, http.StatusOK},
		{"initData query", "", "?initData=good", nil, http.StatusOK},
		{"init_data query", "", "?init_data=good", nil, http.StatusOK},
		{"missing", "", "", nil, http.StatusUnauthorized},
		{"bad signature", "forged", "", nil, http.StatusUnauthorized},
		{"ensure fails", "good", "", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ensured []int64
			ensurer := ensurerFunc(func(id int64) error {
				ensured = append(ensured, id)
				return tt.ensureErr
			})

			var seen int64
			r := gin.New()
			r.GET("/x", TelegramAuth(verifier, ensurer, logger.NewNoopLogger()), func(c *gin.Context) {
				seen, _ = UserID(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/x"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set(initDataHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, int64(42), seen)
				assert.Equal(t, []int64{42}, ensured)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	admins := mockprovider.NewMockAdminDirectory(t)
	admins.EXPECT().IsAdmin(int64(1)).Return(true)
	admins.EXPECT().IsAdmin(int64(2)).Return(false)

	r := gin.New()
	r.GET("/x/:id", func(c *gin.Context) {
		if id := c.Param("id"); id != "0" {
			c.Set(userIDKey, map[string]int64{"1": 1, "2": 2}[id])
		}
		c.Next()
	}, RequireAdmin(admins), func(c *gin.Context) { c.Status(http.StatusOK) })

	for path, want := range map[string]int{"/x/1": http.StatusOK, "/x/2": http.StatusForbidden, "/x/0": http.StatusUnauthorized} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, w.Code, path)
	}
}
