package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"food-order-api/config"
	"food-order-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// setupRouter gives each test a fresh database and a fully wired engine.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.InitDB(filepath.Join(t.TempDir(), "test.db"))
	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// register creates an account and returns its token and id.
func register(t *testing.T, r *gin.Engine, role, name, phone string) (string, uint) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"role":     role,
		"name":     name,
		"phone":    phone,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	account := body["account"].(map[string]any)
	return token, uint(account["id"].(float64))
}

func addMeal(t *testing.T, r *gin.Engine, token, name string, price float64) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/meals", token, gin.H{"name": name, "price": price})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	meal := decode(t, w)["meal"].(map[string]any)
	return uint(meal["id"].(float64))
}

func placeOrder(t *testing.T, r *gin.Engine, token string, mealID uint) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/orders", token, gin.H{"meal_id": mealID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decode(t, w)["order_id"].(float64))
}
