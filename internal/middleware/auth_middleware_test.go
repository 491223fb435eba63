package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"user_id":     "user-1",
		"employee_id": "emp-1",
		"company_id":  "comp-1",
		"role":        "staff",
		"exp":         time.Now().Add(time.Hour).Unix(),
	}
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":     c.GetString("user_id"),
			"employee_id": c.GetString("employee_id"),
			"company_id":  c.GetString("company_id"),
		})
	})
	return r
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	return env.Error.Code
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(req *http.Request)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing token",
			setup:      func(req *http.Request) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name: "garbage token",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer not-a-jwt")
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name: "expired token",
			setup: func(req *http.Request) {
				claims := validClaims()
				claims["exp"] = time.Now().Add(-time.Minute).Unix()
				req.Header.Set("Authorization", "Bearer "+signToken(t, claims))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "TOKEN_EXPIRED",
		},
		{
			name: "missing company claim",
			setup: func(req *http.Request) {
				claims := validClaims()
				delete(claims, "company_id")
				req.Header.Set("Authorization", "Bearer "+signToken(t, claims))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name: "valid bearer",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims()))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "valid cookie",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, validClaims())})
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()

			newAuthRouter().ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, w.Body.Bytes()))
				return
			}

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "user-1", body["user_id"])
			assert.Equal(t, "emp-1", body["employee_id"])
			assert.Equal(t, "comp-1", body["company_id"])
		})
	}
}

func TestAuthMiddleware_RejectsOtherSigningMethod(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims()).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	newAuthRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
