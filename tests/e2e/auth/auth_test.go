//go:build e2e

package auth_test

import (
	"net/http"
	"testing"
	"time"

	"hostel-admin/internal/domain/user"
	"hostel-admin/internal/handler/dto/request"
	resdto "hostel-admin/internal/handler/dto/response"
	"hostel-admin/tests/common/authtest"
	"hostel-admin/tests/common/builder"
	"hostel-admin/tests/common/dbtest"
	"hostel-admin/tests/common/httptest"
	"hostel-admin/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
	usersURL  = "/api/users"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@hostel.test", user.RoleAdmin)
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@hostel.test", user.RoleRecepcion)
	_, err := s.DB.Exec(s.T().Context(), "UPDATE staff_users SET is_active = false WHERE email = 'inactive@hostel.test'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "admin@hostel.test", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@hostel.test", password: dbtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "admin@hostel.test", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@hostel.test", password: dbtest.DefaultPassword, expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: dbtest.DefaultPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "admin@hostel.test", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}
			var res resdto.LoginResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.NotEmpty(t, res.AccessToken)
			require.Greater(t, res.ExpiresIn, int64(0))
			require.NotNil(t, httptest.ExtractCookie(w, "access_token"))

			var lastLogin *time.Time
			err := s.DB.QueryRow(t.Context(), "SELECT last_login_at FROM staff_users WHERE email = $1", tt.email).Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin, "last_login_at was not stamped")
		})
	}

	s.Run("unknown user and wrong password share one message", func() {
		t := s.T()
		unknown := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "nobody@hostel.test", Password: dbtest.DefaultPassword}, "")
		wrong := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@hostel.test", Password: "wrongpassword"}, "")
		require.JSONEq(t, unknown.Body.String(), wrong.Body.String())
	})
}

func (s *authSuite) TestMe() {
	s.Run("bearer token", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "keeper@hostel.test", user.RoleHousekeeping)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "keeper@hostel.test")
		require.Contains(t, w.Body.String(), "housekeeping")
		require.NotContains(t, w.Body.String(), "password")
	})

	s.Run("session cookie", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "cookie@hostel.test", user.RoleViewer)
		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "cookie@hostel.test", Password: dbtest.DefaultPassword}, "")
		require.Equal(t, http.StatusOK, login.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, httptest.ExtractCookies(login), "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("rejected tokens", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "expiry@hostel.test", user.RoleAdmin)

		for name, token := range map[string]string{
			"missing": "",
			"garbage": "invalid-token",
			"expired": s.jwt.CreateExpiredToken(t, userID, user.RoleAdmin),
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, http.StatusUnauthorized, w.Code, name)
		}
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the session cookie", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "bye@hostel.test", user.RoleRecepcion)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)
		cookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cookie)
		require.Empty(t, cookie.Value)
	})

	s.Run("cookie session", func() {
		t := s.T()
		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@hostel.test", Password: dbtest.DefaultPassword}, "")
		require.Equal(t, http.StatusOK, login.Code)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(login))
	})

	s.Run("requires authentication", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestCreateUserRequiresSuperadmin() {
	body := builder.NewUserBuilder().
		WithEmail("new.staff@hostel.test").
		WithRole(user.RoleRecepcion).
		BuildCreateRequest("longenough1")

	s.Run("admin is forbidden", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "boss@hostel.test", user.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, body, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("superadmin creates, then the email is taken", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "root@hostel.test", user.RoleSuperadmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, body, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		again := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, body, token)
		require.Equal(t, http.StatusConflict, again.Code, again.Body.String())

		authtest.LoginUser(t, s.Router, body.Email, body.Password)
	})
}

func (s *authSuite) TestRoleGating() {
	tests := []struct {
		role     user.Role
		path     string
		expected int
	}{
		{role: user.RoleViewer, path: "/api/reservations", expected: http.StatusForbidden},
		{role: user.RoleViewer, path: "/api/rooms", expected: http.StatusOK},
		{role: user.RoleHousekeeping, path: "/api/housekeeping", expected: http.StatusOK},
		{role: user.RoleHousekeeping, path: "/api/guests", expected: http.StatusForbidden},
		{role: user.RoleRecepcion, path: "/api/reservations", expected: http.StatusOK},
		{role: user.RoleRecepcion, path: "/api/reports/dashboard", expected: http.StatusForbidden},
		{role: user.RoleAdmin, path: "/api/reports/dashboard", expected: http.StatusOK},
	}

	for _, tt := range tests {
		s.Run(string(tt.role)+" "+tt.path, func() {
			t := s.T()
			token := s.jwt.GenerateToken(t, dbtest.CreateTestUser(t, s.DB, string(tt.role)+"@hostel.test", tt.role), tt.role)

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, tt.path, nil, token)
			require.Equal(t, tt.expected, w.Code, w.Body.String())
		})
	}
}
