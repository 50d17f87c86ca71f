package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AdminUser{}))
	return db
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string) *models.AdminUser {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.AdminUser{Email: email, PasswordHash: string(hash), Role: "admin"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func postLogin(r *gin.Engine, email, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := setupTestDB(t)
	seedAdmin(t, db, "admin@example.com", "correct-password")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/login", LoginHandler(db))

	t.Run("Success", func(t *testing.T) {
		w := postLogin(r, "admin@example.com", "correct-password")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
			User  struct {
				ID    uint   `json:"id"`
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)
		assert.Equal(t, "admin@example.com", resp.User.Email)
		assert.Equal(t, "admin", resp.User.Role)

		claims, err := ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, claims.UserID)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("NoEnumeration", func(t *testing.T) {
		wrongPassword := postLogin(r, "admin@example.com", "wrong-password")
		unknownEmail := postLogin(r, "nobody@example.com", "whatever")

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String(),
			"wrong password and unknown email must be indistinguishable")
	})

	t.Run("MissingFields", func(t *testing.T) {
		w := postLogin(r, "admin@example.com", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.AdminUser{ID: 7, Email: "admin@example.com", Role: "admin"}

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := GenerateToken(user)
		require.NoError(t, err)

		claims, err := ParseToken(token)
		require.NoError(t, err)
		assert.EqualValues(t, 7, claims.UserID)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": 7,
			"email":   "admin@example.com",
			"role":    "admin",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		signed, err := forged.SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, err = ParseToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": 7,
			"email":   "admin@example.com",
			"role":    "admin",
			"exp":     time.Now().Add(-time.Minute).Unix(),
		})
		signed, err := expired.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = ParseToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestVerifyHandler(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/auth/verify", VerifyHandler())

	t.Run("Valid", func(t *testing.T) {
		token, err := GenerateToken(&models.AdminUser{ID: 1, Email: "admin@example.com", Role: "admin"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			User Claims `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "admin@example.com", resp.User.Email)
	})

	t.Run("Missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Garbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
