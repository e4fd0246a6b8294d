package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telehealth-server/internal/models"
	"telehealth-server/internal/session"
	"telehealth-server/internal/storage"
	"telehealth-server/internal/utils"
	"telehealth-server/pkg/logging"
)

const secret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(sessions *session.Manager) *gin.Engine {
	r := gin.New()
	r.GET("/me", SessionMiddleware(sessions, secret), RequireUser(), func(c *gin.Context) {
		sess, ok := GetSessionFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, sess.Store.User().ID)
	})
	return r
}

func get(r *gin.Engine, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionMiddleware(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStorage(), time.Hour, nil, nil)
	defer sessions.Close()
	r := newRouter(sessions)

	sess, _ := sessions.Create(context.Background(), "")
	token, err := utils.GenerateSessionToken(sess.ID, sess.ClientID, secret, time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name string
		auth string
		want int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"bad token", "Bearer garbage", http.StatusUnauthorized},
		{"no user yet", "Bearer " + token, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, get(r, tt.auth).Code)
		})
	}

	sess.Store.SetUser(context.Background(), &models.User{ID: "u1"})
	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
}

func TestSessionMiddlewareRejectsForeignClient(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStorage(), time.Hour, nil, nil)
	defer sessions.Close()
	sess, _ := sessions.Create(context.Background(), "")

	token, err := utils.GenerateSessionToken(sess.ID, "someone-else", secret, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(newRouter(sessions), "Bearer "+token).Code)
}

func TestRequireUserWithoutSession(t *testing.T) {
	r := gin.New()
	r.GET("/me", RequireUser(), func(c *gin.Context) { c.Status(http.StatusOK) })
	assert.Equal(t, http.StatusInternalServerError, get(r, "").Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(logging.NewWithWriter(&buf, "info"), nil))
	r.GET("/me", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	get(r, "")
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"path":"/me"`)
}
