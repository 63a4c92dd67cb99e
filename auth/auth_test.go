package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mylaramshashank/academicshelf/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Cart{},
		&models.CartItem{},
	))
	return db
}

func newAuthRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", RegisterHandler(db))
	r.POST("/auth/login", LoginHandler(db))
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type authResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

const ashaJSON = `{"name":"Asha","rollNo":"21CS01","email":"asha@x.edu","password":"p1"}`

func TestRegisterThenLogin(t *testing.T) {
	db := openTestDB(t)
	r := newAuthRouter(t, db)

	w := post(r, "/auth/register", ashaJSON)
	require.Equal(t, http.StatusCreated, w.Code)

	var registered authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.Equal(t, "Asha", registered.User.Name)
	assert.Equal(t, "21CS01", registered.User.RollNo)
	assert.Equal(t, "asha@x.edu", registered.User.Email)
	assert.Equal(t, models.RoleStudent, registered.User.Role)
	assert.NotEmpty(t, registered.Token)
	assert.NotContains(t, w.Body.String(), "passwordHash")

	// Registration creates the user's cart
	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", registered.User.ID).First(&cart).Error)

	// Same credentials log in
	w = post(r, "/auth/login", `{"email":"asha@x.edu","password":"p1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var logged authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logged))
	assert.Equal(t, registered.User.ID, logged.User.ID)
	assert.NotEmpty(t, logged.Token)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := openTestDB(t)
	r := newAuthRouter(t, db)

	require.Equal(t, http.StatusCreated, post(r, "/auth/register", ashaJSON).Code)

	w := post(r, "/auth/login", `{"email":"asha@x.edu","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	// Unknown account looks the same as a wrong password
	w = post(r, "/auth/login", `{"email":"nobody@x.edu","password":"p1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	r := newAuthRouter(t, db)

	require.Equal(t, http.StatusCreated, post(r, "/auth/register", ashaJSON).Code)

	w := post(r, "/auth/register", ashaJSON)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Case-insensitively unique
	w = post(r, "/auth/register", `{"name":"Asha","rollNo":"21CS01","email":"ASHA@X.EDU","password":"p2"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	db := openTestDB(t)
	r := newAuthRouter(t, db)

	for _, body := range []string{
		`{}`,
		`{"name":"Asha","rollNo":"21CS01","password":"p1"}`,
		`{"name":"Asha","rollNo":"21CS01","email":"not-an-email","password":"p1"}`,
	} {
		w := post(r, "/auth/register", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestEnsureAdminUser(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, EnsureAdminUser(db, "Admin@Samskruti.edu", "admin123"))

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@samskruti.edu").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// Idempotent: a second call does not duplicate or overwrite
	require.NoError(t, EnsureAdminUser(db, "admin@samskruti.edu", "different"))
	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
