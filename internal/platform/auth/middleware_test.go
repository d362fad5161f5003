package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "acct-1",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func adminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("", RequireAuth(testSecret), RequireRole(RoleAdmin))
	grp.DELETE("/auth/accounts/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "deleted"})
	})
	return r
}

func TestAdminRoutesRejectMissingToken(t *testing.T) {
	r := adminRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/auth/accounts/acct-2", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAdminRoutesRejectGatewayRole(t *testing.T) {
	r := adminRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/auth/accounts/acct-2", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, RoleGateway))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestAdminRoutesAllowAdmin(t *testing.T) {
	r := adminRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/auth/accounts/acct-2", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, RoleAdmin))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequireAuthRejectsWrongSecret(t *testing.T) {
	r := adminRouter()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "acct-1", "role": RoleAdmin, "exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/auth/accounts/acct-2", nil)
	req.Header.Set("Authorization", "Bearer "+s)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
