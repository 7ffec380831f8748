package handlers_test

import (
	"net/http"
	"testing"

	"food-order-api/config"
	"food-order-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterAndLogin(t *testing.T) {
	r := setupRouter(t)

	token, id := register(t, r, "user", "Alice", "555-0101")
	assert.NotZero(t, id)
	assert.NotEmpty(t, token)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"role":     "user",
		"phone":    "555-0101",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "user", body["role"])
	assert.NotEmpty(t, body["token"])
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"role":     "admin",
		"name":     "Mallory",
		"phone":    "555-0102",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid role")
}

// Duplicate phones are refused by the unique index itself, so the conflict
// is reported even when a prior existence check would have raced.
func TestRegisterDuplicatePhone(t *testing.T) {
	r := setupRouter(t)

	register(t, r, "user", "Alice", "555-0103")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"role":     "restaurant",
		"name":     "Trattoria",
		"phone":    "555-0103",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Phone already registered")

	var count int64
	require.NoError(t, config.DB.Model(&models.Account{}).Where("phone = ?", "555-0103").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestStoredPasswordIsHashed(t *testing.T) {
	r := setupRouter(t)

	register(t, r, "user", "Alice", "555-0104")

	var account models.Account
	require.NoError(t, config.DB.Where("phone = ?", "555-0104").First(&account).Error)
	assert.NotEqual(t, "secret123", account.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.Password), []byte("secret123")))
}

// A wrong password and a nonexistent account must be indistinguishable to
// the caller.
func TestLoginFailuresIndistinguishable(t *testing.T) {
	r := setupRouter(t)

	register(t, r, "user", "Alice", "555-0105")

	wrongPassword := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"role":     "user",
		"phone":    "555-0105",
		"password": "wrong-password",
	})
	noSuchAccount := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"role":     "user",
		"phone":    "555-9999",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, http.StatusBadRequest, noSuchAccount.Code)
	assert.Equal(t, noSuchAccount.Body.String(), wrongPassword.Body.String())
}

// Login resolves accounts by (phone, role), so the same phone under the
// wrong role must fail like any other bad credential.
func TestLoginRoleMismatch(t *testing.T) {
	r := setupRouter(t)

	register(t, r, "user", "Alice", "555-0106")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"role":     "restaurant",
		"phone":    "555-0106",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestProfileReturnsCaller(t *testing.T) {
	r := setupRouter(t)

	token, id := register(t, r, "restaurant", "Trattoria", "555-0107")

	w := doJSON(t, r, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	account := decode(t, w)["account"].(map[string]any)
	assert.Equal(t, float64(id), account["id"])
	assert.Equal(t, "restaurant", account["role"])
	assert.NotContains(t, w.Body.String(), "password")
}
