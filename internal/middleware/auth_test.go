package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func testRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	protected := r.Group("/api", AuthMiddleware(cfg))
	protected.GET("/me", func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})

	instructor := protected.Group("", RoleMiddleware(model.Instructor))
	instructor.POST("/courses", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	return r
}

func tokenFor(t *testing.T, role model.UserRole, secret string) string {
	t.Helper()
	u := &model.User{Email: "user@example.com", Role: role}
	u.ID = 7
	token, err := util.GenerateJWT(u, secret, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthMiddleware(t *testing.T) {
	secret := "test-secret-test-secret-test-secret!"
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	r := testRouter(cfg)

	cases := []struct {
		name   string
		header string
		query  string
		want   int
	}{
		{"missing token", "", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", "", http.StatusUnauthorized},
		{"valid bearer", "Bearer " + tokenFor(t, model.Student, secret), "", http.StatusOK},
		{"valid query token", "", tokenFor(t, model.Student, secret), http.StatusOK},
		{"wrong secret", "Bearer " + tokenFor(t, model.Student, "another-secret-another-secret-ok!"), "", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			url := "/api/me"
			if tc.query != "" {
				url += "?token=" + tc.query
			}
			req := httptest.NewRequest(http.MethodGet, url, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("expected %d got %d", tc.want, w.Code)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	secret := "test-secret-test-secret-test-secret!"
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	r := testRouter(cfg)

	cases := []struct {
		name string
		role model.UserRole
		want int
	}{
		{"student blocked", model.Student, http.StatusForbidden},
		{"instructor allowed", model.Instructor, http.StatusCreated},
		{"admin passes any gate", model.Admin, http.StatusCreated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/courses", nil)
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, tc.role, secret))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("expected %d got %d", tc.want, w.Code)
			}
		})
	}
}
