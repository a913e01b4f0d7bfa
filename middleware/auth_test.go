package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"travelbharat/services"

	"github.com/gin-gonic/gin"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/admin", AuthMiddleware("admin"), func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 0})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 1, "username": claims.Username})
	})

	router.GET("/any", AuthMiddleware("user", "admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 1})
	})

	return router
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := setupRouter()

	w := doRequest(router, "/admin", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := setupRouter()

	w := doRequest(router, "/admin", "garbage.token.value")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareWrongRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := setupRouter()

	token, err := services.GenerateToken(1, "alice", "user")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	w := doRequest(router, "/admin", token)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestAuthMiddlewareAllowsMatchingRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := setupRouter()

	token, err := services.GenerateToken(2, "root", "admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	w := doRequest(router, "/admin", token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
	if body := w.Body.String(); !strings.Contains(body, `"username":"root"`) {
		t.Errorf("claims not threaded into handler, body %s", body)
	}
}

func TestAuthMiddlewareUserRoleOnSharedRoute(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := setupRouter()

	token, err := services.GenerateToken(3, "bob", "user")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	w := doRequest(router, "/any", token)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}
