package mockapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mertsakar/wantmart/internal/logging"
)

func newTestServer(t *testing.T) (*gorm.DB, *echo.Echo) {
	t.Helper()
	db, err := OpenDatabase(filepath.Join(t.TempDir(), "mockapi.db"))
	require.NoError(t, err)

	_, e := New(db, []byte("test-secret"), logging.New(io.Discard, "error"))
	return db, e
}

func do(t *testing.T, e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

// registerAndLogin creates a verified-enough account and returns its id
// and bearer token.
func registerAndLogin(t *testing.T, e *echo.Echo, email string) (string, string) {
	t.Helper()
	rr := do(t, e, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":     email,
		"password":  "secret123",
		"firstName": "Ada",
		"lastName":  "Lovelace",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = do(t, e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var user userDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &user))
	require.NotEmpty(t, user.Token)
	return user.ID, user.Token
}

func createProduct(t *testing.T, e *echo.Echo, token string) productDTO {
	t.Helper()
	rr := do(t, e, http.MethodPost, "/products", token, productFields{
		Title:       "iPhone 14 Pro Max",
		Description: "Looking for a lightly used one, 256GB.",
		CategoryID:  1,
		Quantity:    1,
		Price:       5500,
		Image:       "https://images.example.org/iphone.jpg",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var p productDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &p))
	return p
}

// ------------ auth ------------

func TestRegister_DuplicateEmail(t *testing.T) {
	_, e := newTestServer(t)
	registerAndLogin(t, e, "ada@example.org")

	rr := do(t, e, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "ada@example.org",
		"password": "another123",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.False(t, decodeEnvelope(t, rr).Success)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, e := newTestServer(t)
	registerAndLogin(t, e, "ada@example.org")

	rr := do(t, e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ada@example.org",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestVerifyEmail_Flow(t *testing.T) {
	db, e := newTestServer(t)
	userID, _ := registerAndLogin(t, e, "ada@example.org")

	var stored User
	require.NoError(t, db.First(&stored, "id = ?", userID).Error)
	require.NotEmpty(t, stored.VerificationCode)

	wrong := "000001"
	if stored.VerificationCode == wrong {
		wrong = "000002"
	}
	rr := do(t, e, http.MethodPost, "/api/auth/verify-email", "", map[string]string{
		"userId":           userID,
		"verificationCode": wrong,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, e, http.MethodPost, "/api/auth/verify-email", "", map[string]string{
		"userId":           userID,
		"verificationCode": stored.VerificationCode,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	env := decodeEnvelope(t, rr)
	assert.Equal(t, "Email verified successfully", env.Message)

	var user userDTO
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.True(t, user.IsVerified)
	assert.NotEmpty(t, user.Token)

	// A second verification attempt finds no code to match.
	rr = do(t, e, http.MethodPost, "/api/auth/verify-email", "", map[string]string{
		"userId":           userID,
		"verificationCode": stored.VerificationCode,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestResendVerification_AlreadyVerified(t *testing.T) {
	db, e := newTestServer(t)
	userID, _ := registerAndLogin(t, e, "ada@example.org")

	require.NoError(t, db.Model(&User{}).Where("id = ?", userID).Update("is_verified", true).Error)

	rr := do(t, e, http.MethodPost, "/api/auth/resend-verification", "", map[string]string{"userId": userID})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ------------ products ------------

func TestProducts_WriteRequiresAuth(t *testing.T) {
	_, e := newTestServer(t)

	rr := do(t, e, http.MethodPost, "/products", "", productFields{Title: "anything"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = do(t, e, http.MethodPost, "/products", "garbage-token", productFields{Title: "anything"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestProducts_CreateAndGet(t *testing.T) {
	_, e := newTestServer(t)
	userID, token := registerAndLogin(t, e, "ada@example.org")

	created := createProduct(t, e, token)
	assert.Equal(t, userID, created.User.ID)
	assert.Equal(t, "Ada Lovelace", created.User.Username)
	assert.Equal(t, 1, created.Quantity)
	assert.Equal(t, "electronics", created.Category.Slug)

	rr := do(t, e, http.MethodGet, "/products/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got productDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &got))
	assert.Equal(t, created.ID, got.ID)
}

func TestProducts_GetMissing(t *testing.T) {
	_, e := newTestServer(t)

	rr := do(t, e, http.MethodGet, "/products/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProducts_ListWithCategoryFilter(t *testing.T) {
	_, e := newTestServer(t)
	_, token := registerAndLogin(t, e, "ada@example.org")
	createProduct(t, e, token)

	rr := do(t, e, http.MethodGet, "/products?category=electronics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var list []productDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &list))
	assert.Len(t, list, 1)

	rr = do(t, e, http.MethodGet, "/products?category=books", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &list))
	assert.Empty(t, list)

	rr = do(t, e, http.MethodGet, "/products?category=nonsense", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestProducts_UpdateOwnerOnly(t *testing.T) {
	_, e := newTestServer(t)
	_, ownerToken := registerAndLogin(t, e, "owner@example.org")
	_, otherToken := registerAndLogin(t, e, "other@example.org")

	created := createProduct(t, e, ownerToken)
	fields := productFields{Title: "iPhone 15 Pro", Description: created.Description, CategoryID: 1, Quantity: 1, Price: 6000, Image: created.Image}

	rr := do(t, e, http.MethodPut, "/products/"+created.ID, otherToken, fields)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = do(t, e, http.MethodPut, "/products/"+created.ID, ownerToken, fields)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var updated productDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &updated))
	assert.Equal(t, "iPhone 15 Pro", updated.Title)
}

// ------------ offers ------------

func TestOffers_CreateAndListByOwner(t *testing.T) {
	_, e := newTestServer(t)
	ownerID, ownerToken := registerAndLogin(t, e, "owner@example.org")
	_, bidderToken := registerAndLogin(t, e, "bidder@example.org")

	product := createProduct(t, e, ownerToken)

	rr := do(t, e, http.MethodPost, "/offer/create/"+product.ID, bidderToken, map[string]float64{"amount": 4950})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var offer offerDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &offer))
	assert.Equal(t, "pending", offer.Status)
	assert.Equal(t, float64(4950), offer.Amount)
	assert.Equal(t, "Ada Lovelace", offer.User.Username)

	rr = do(t, e, http.MethodGet, "/offer/user/"+ownerID, ownerToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var list []offerDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, product.ID, list[0].ProductID)

	// Another user's listing does not include these offers.
	rr = do(t, e, http.MethodGet, "/offer/user/someone-else", ownerToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &list))
	assert.Empty(t, list)
}

func TestOffers_OwnerCannotOfferOnOwnRequest(t *testing.T) {
	_, e := newTestServer(t)
	_, ownerToken := registerAndLogin(t, e, "owner@example.org")
	product := createProduct(t, e, ownerToken)

	rr := do(t, e, http.MethodPost, "/offer/create/"+product.ID, ownerToken, map[string]float64{"amount": 4950})
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestOffers_Validation(t *testing.T) {
	_, e := newTestServer(t)
	_, ownerToken := registerAndLogin(t, e, "owner@example.org")
	_, bidderToken := registerAndLogin(t, e, "bidder@example.org")
	product := createProduct(t, e, ownerToken)

	rr := do(t, e, http.MethodPost, "/offer/create/"+product.ID, bidderToken, map[string]float64{"amount": 0})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, e, http.MethodPost, "/offer/create/missing", bidderToken, map[string]float64{"amount": 100})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, e, http.MethodPost, "/offer/create/"+product.ID, "", map[string]float64{"amount": 100})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ------------ seed ------------

func TestSeed_IdempotentAndBootstrapsCatalog(t *testing.T) {
	db, _ := newTestServer(t)

	require.NoError(t, Seed(db))
	var first int64
	require.NoError(t, db.Model(&Product{}).Count(&first).Error)
	assert.Equal(t, int64(3), first)

	require.NoError(t, Seed(db))
	var second int64
	require.NoError(t, db.Model(&Product{}).Count(&second).Error)
	assert.Equal(t, first, second)
}
