package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/assistco/assist-api/internal/models"
)

func TestSignup(t *testing.T) {
	env := setupTestEnv(t)

	token := env.signupClient(t, "alice@example.com", "+15550001111")
	require.Len(t, token, 40)

	var client models.Client
	err := env.db.Where("email = ?", "alice@example.com").First(&client).Error
	require.NoError(t, err)
	require.Equal(t, "Test", client.FirstName)
	require.True(t, client.IsActive)
	require.NotEqual(t, "supersecret", client.PasswordHash)

	var stored models.AuthToken
	err = env.db.Where("key = ?", token).First(&stored).Error
	require.NoError(t, err)
	require.Equal(t, models.UserTypeClient, stored.UserType)
	require.Equal(t, client.ID, stored.UserID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	env.signupClient(t, "alice@example.com", "+15550001111")

	// Email comparison is case-insensitive.
	w := env.request(t, http.MethodPost, "/api/signup", "", map[string]string{
		"email":         "ALICE@Example.com",
		"password":      "supersecret",
		"first_name":    "Other",
		"last_name":     "Person",
		"date_of_birth": "1991-02-02",
		"phone":         "+15550002222",
		"gender":        "male",
		"profession":    "doctor",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string][]string
	decodeJSON(t, w, &resp)
	require.Equal(t, []string{"Email already exists"}, resp["email"])
}

func TestSignupDuplicatePhone(t *testing.T) {
	env := setupTestEnv(t)
	env.signupClient(t, "alice@example.com", "+15550001111")

	w := env.request(t, http.MethodPost, "/api/signup", "", map[string]string{
		"email":         "bob@example.com",
		"password":      "supersecret",
		"first_name":    "Bob",
		"last_name":     "Person",
		"date_of_birth": "1991-02-02",
		"phone":         "+15550001111",
		"gender":        "male",
		"profession":    "doctor",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string][]string
	decodeJSON(t, w, &resp)
	require.Equal(t, []string{"Phone number already exists"}, resp["phone"])
}

func TestSignupCollectsFieldErrors(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/signup", "", map[string]string{
		"email":         "not-an-email",
		"password":      "supersecret",
		"date_of_birth": "01/01/1990",
		"gender":        "unicorn",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string][]string
	decodeJSON(t, w, &resp)
	require.Equal(t, []string{"Enter a valid email address."}, resp["email"])
	require.Equal(t, []string{"This field is required."}, resp["first_name"])
	require.Equal(t, []string{"This field is required."}, resp["last_name"])
	require.Equal(t, []string{"This field is required."}, resp["phone"])
	require.Equal(t, []string{"Date has wrong format. Use YYYY-MM-DD."}, resp["date_of_birth"])
	require.Equal(t, []string{"Object with permalink=unicorn does not exist."}, resp["gender"])
}

func TestLogin(t *testing.T) {
	env := setupTestEnv(t)
	signupToken := env.signupClient(t, "alice@example.com", "+15550001111")

	w := env.request(t, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "Alice@Example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]string
	decodeJSON(t, w, &resp)
	// Tokens are reused until logout.
	require.Equal(t, signupToken, resp["token"])

	var client models.Client
	require.NoError(t, env.db.Where("email = ?", "alice@example.com").First(&client).Error)
	require.NotNil(t, client.LastLoginAt)
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.signupClient(t, "alice@example.com", "+15550001111")

	w := env.request(t, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string][]string
	decodeJSON(t, w, &resp)
	require.Equal(t, []string{"Unable to log in with provided credentials."}, resp["non_field_errors"])
}

func TestLoginDisabledAccount(t *testing.T) {
	env := setupTestEnv(t)
	env.signupClient(t, "alice@example.com", "+15550001111")

	require.NoError(t, env.db.Model(&models.Client{}).
		Where("email = ?", "alice@example.com").
		Update("is_active", false).Error)

	w := env.request(t, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string][]string
	decodeJSON(t, w, &resp)
	require.Equal(t, []string{"User account is disabled."}, resp["non_field_errors"])
}

func TestLogoutInvalidatesToken(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")

	w := env.request(t, http.MethodDelete, "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]bool
	decodeJSON(t, w, &resp)
	require.True(t, resp["success"])

	w = env.request(t, http.MethodGet, "/api/clients", token, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// A fresh login issues a new token.
	w = env.request(t, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login map[string]string
	decodeJSON(t, w, &login)
	require.NotEmpty(t, login["token"])
	require.NotEqual(t, token, login["token"])
}

func TestTokenSchemeAccepted(t *testing.T) {
	env := setupTestEnv(t)
	key := env.signupClient(t, "alice@example.com", "+15550001111")

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Token "+key)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/clients", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodGet, "/api/clients", "bogus-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
