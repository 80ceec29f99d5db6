package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "test-secret"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/whoami", RequireAuth(testSecret), func(ctx *gin.Context) {
		id, ok := CurrentUserID(ctx)
		if !ok {
			ctx.String(http.StatusInternalServerError, "no identity")
			return
		}
		ctx.String(http.StatusOK, strconv.FormatUint(uint64(id), 10))
	})
	return router
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func request(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	router := newAuthRouter()

	for _, header := range []string{"", "Basic abc", "Bearer", "token-without-scheme"} {
		resp := request(router, header)
		if resp.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, resp.Code)
		}
	}
}

func TestRequireAuthRejectsBadTokens(t *testing.T) {
	router := newAuthRouter()

	wrongSecret := signToken(t, "other-secret", jwt.MapClaims{"sub": float64(7)})
	expired := signToken(t, testSecret, jwt.MapClaims{
		"sub": float64(7),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	cases := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.jwt"},
		{"wrong secret", wrongSecret},
		{"expired", expired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := request(router, "Bearer "+tc.token)
			if resp.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d (body %q)", resp.Code, resp.Body.String())
			}
		})
	}
}

func TestRequireAuthRejectsTokenWithoutIdentity(t *testing.T) {
	router := newAuthRouter()

	token := signToken(t, testSecret, jwt.MapClaims{"email": "user@example.com"})
	resp := request(router, "Bearer "+token)
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.Code)
	}
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	router := newAuthRouter()

	cases := []struct {
		name   string
		claims jwt.MapClaims
		wantID string
	}{
		{"sub claim", jwt.MapClaims{"sub": float64(42)}, "42"},
		{"user_id claim", jwt.MapClaims{"user_id": float64(7)}, "7"},
		{"sub wins over user_id", jwt.MapClaims{"sub": float64(3), "user_id": float64(9)}, "3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token := signToken(t, testSecret, tc.claims)
			resp := request(router, "Bearer "+token)
			if resp.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d (body %q)", resp.Code, resp.Body.String())
			}
			if resp.Body.String() != tc.wantID {
				t.Errorf("expected user id %q, got %q", tc.wantID, resp.Body.String())
			}
		})
	}
}

func TestCurrentUserIDWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	if id, ok := CurrentUserID(ctx); ok || id != 0 {
		t.Errorf("expected no identity, got id=%d ok=%v", id, ok)
	}
}
