package middlewares

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/groph-checkout/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := logrus.New()
	l.SetOutput(io.Discard)

	r := gin.New()
	r.Use(Logger(l), Errors())
	r.GET("/public", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusPaymentRequired, errors.New("Payment declined")).SetType(gin.ErrorTypePublic)
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("db is down")).SetType(gin.ErrorTypePrivate)
	})
	r.GET("/admin", AdminRequired(secret), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CurrentAdminKey))
	})
	return r
}

func serve(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrors(t *testing.T) {
	r := newTestRouter([]byte("secret"))

	w := serve(r, "/public", nil)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.JSONEq(t, `{"error":"Payment declined"}`, w.Body.String())

	w = serve(r, "/private", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())

	w = serve(r, "/private", map[string]string{"Accept": "text/plain"})
	assert.Equal(t, "internal server error", w.Body.String())
}

func TestAdminRequired(t *testing.T) {
	secret := []byte("secret")
	r := newTestRouter(secret)

	token, err := tokens.GenerateAdminJWT("ops", time.Hour, secret)
	require.NoError(t, err)
	foreign, err := tokens.GenerateAdminJWT("ops", time.Hour, []byte("another"))
	require.NoError(t, err)

	cases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "no header", wantStatus: http.StatusUnauthorized},
		{name: "no bearer", header: token, wantStatus: http.StatusUnauthorized},
		{name: "foreign key", header: "Bearer " + foreign, wantStatus: http.StatusUnauthorized},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			headers := map[string]string{}
			if c.header != "" {
				headers["Authorization"] = c.header
			}
			w := serve(r, "/admin", headers)
			assert.Equal(t, c.wantStatus, w.Code)
			if c.wantStatus == http.StatusOK {
				assert.Equal(t, "ops", w.Body.String())
			}
		})
	}
}
