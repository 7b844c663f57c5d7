package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newProtectedRouter(t *testing.T, role string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", RequireAuth(testKey, testIssuer))
	group.GET("/me", func(c *gin.Context) {
		claims, ok := FromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "claims missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"uid": claims.UserID, "role": claims.Role})
	})
	group.GET("/restricted", RequireRole(role), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r := newProtectedRouter(t, "supervisor")
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRequireAuth_MalformedToken(t *testing.T) {
	r := newProtectedRouter(t, "supervisor")
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRequireAuth_ValidToken(t *testing.T) {
	token, _, err := Issue("user-1", "user", testIssuer, testKey, time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	r := newProtectedRouter(t, "supervisor")
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
}

func TestRequireRole_Denied(t *testing.T) {
	token, _, err := Issue("user-1", "user", testIssuer, testKey, time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	r := newProtectedRouter(t, "supervisor")
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/restricted", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestRequireRole_Allowed(t *testing.T) {
	token, _, err := Issue("user-1", "supervisor", testIssuer, testKey, time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	r := newProtectedRouter(t, "supervisor")
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/restricted", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}
