package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"

	"github.com/thegera4/ecommerce-api/auth"
	"github.com/thegera4/ecommerce-api/config"
	"github.com/thegera4/ecommerce-api/middleware"
	"github.com/thegera4/ecommerce-api/models"
)

type fakeMailer struct {
	sent []models.User
	err  error
}

func (f *fakeMailer) SendVerification(user *models.User) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, *user)
	return nil
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	tokens *auth.TokenService
	mailer *fakeMailer
}

// newTestEnv wires the handlers against an in-memory database, mirroring the
// route table in routes.SetupRoutes (importing it here would be a cycle).
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	db.AutoMigrate(&models.User{}, &models.Business{}, &models.Product{}, &models.Category{})
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		Secret:    "test-secret",
		ServerURL: "http://localhost:8080",
		StaticDir: t.TempDir(),
	}
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.StaticDir, "images"), 0o755))

	tokens := auth.NewTokenService(cfg.Secret, time.Hour)
	mailer := &fakeMailer{}
	ctl := New(db, cfg, tokens, mailer)

	router := gin.New()
	router.LoadHTMLGlob("../templates/*.html")

	router.GET("/", ctl.Index)
	router.GET("/health", ctl.Health)
	router.POST("/token", ctl.Token)
	router.POST("/registration", ctl.Register)
	router.GET("/verification", ctl.VerifyEmail)
	router.GET("/users", ctl.GetUsers)
	router.GET("/products", ctl.GetProducts)
	router.GET("/products/:id", ctl.GetProduct)
	router.GET("/categories", ctl.GetCategories)
	router.GET("/categories/:id", ctl.GetCategory)
	router.GET("/businesses", ctl.GetBusinesses)
	router.GET("/businesses/:id", ctl.GetBusiness)

	protected := router.Group("/")
	protected.Use(middleware.Authenticate(db, tokens))
	{
		protected.GET("/users/me", ctl.Me)
		protected.POST("/products", ctl.CreateProduct)
		protected.PUT("/products/:id", ctl.UpdateProduct)
		protected.DELETE("/products/:id", ctl.DeleteProduct)
		protected.POST("/categories", ctl.CreateCategory)
		protected.PUT("/businesses/:id", ctl.UpdateBusiness)
		protected.DELETE("/businesses/:id", ctl.DeleteBusiness)
		protected.POST("/uploadfile/profile", ctl.UploadProfilePicture)
		protected.POST("/uploadfile/product/:id", ctl.UploadProductPicture)
	}

	return &testEnv{router: router, db: db, cfg: cfg, tokens: tokens, mailer: mailer}
}

func (e *testEnv) do(t *testing.T, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doJSON(t *testing.T, method, path, body, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	headers := map[string]string{"Content-Type": "application/json"}
	if authHeader != "" {
		headers["Authorization"] = authHeader
	}
	return e.do(t, method, path, strings.NewReader(body), headers)
}

// register creates a user through the registration endpoint and returns the
// persisted row.
func (e *testEnv) register(t *testing.T, username, email, password string) models.User {
	t.Helper()
	body := `{"username":"` + username + `","email":"` + email + `","password":"` + password + `"}`
	w := e.doJSON(t, http.MethodPost, "/registration", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user models.User
	require.NoError(t, e.db.Where("username = ?", username).First(&user).Error)
	return user
}

func (e *testEnv) authHeader(t *testing.T, user models.User) string {
	t.Helper()
	token, err := e.tokens.Issue(user.ID, user.Username)
	require.NoError(t, err)
	return "Bearer " + token
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func multipartFile(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}
