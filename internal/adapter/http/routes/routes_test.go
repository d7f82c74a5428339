package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quickquote/internal/adapter/blob"
	"quickquote/internal/adapter/identity"
	"quickquote/internal/adapter/persistence/docstore"
	"quickquote/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func (a apiClient) do(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

const residentialRates = `{
	"baseRates": {"XS": 5, "SM": 10, "MD": 15, "LG": 20, "XL": 30},
	"interiorPercentage": 50,
	"dirtLevelAdjustments": {"1": 5, "2": 10, "3": 20},
	"accessibilityCharge": 10,
	"contractDiscount": 10,
	"extraCharge": 25
}`

func TestRouter_QuoteLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := zerolog.Nop()
	verifier := identity.NewJWTVerifier("s3cret")
	cfg := &config.Config{Environment: "development", HTTP: config.HTTPConfig{Host: "127.0.0.1", Port: 8080}}
	router := NewRouter(cfg, log, Dependencies{
		Documents: docstore.NewMemoryStore(nil, log),
		Blobs:     blob.NewMemoryStore(""),
		Verifier:  verifier,
	})

	tokenFor := func(providerID string) string {
		token, err := verifier.Issue(providerID, time.Hour)
		require.NoError(t, err)
		return token
	}
	anon := apiClient{t: t, router: router}
	p1 := apiClient{t: t, router: router, token: tokenFor("p1")}
	p2 := apiClient{t: t, router: router, token: tokenFor("p2")}

	assert.Equal(t, http.StatusOK, anon.do(http.MethodGet, "/v1/ping", "").Code)
	assert.Equal(t, http.StatusUnauthorized, anon.do(http.MethodGet, "/v1/rates", "").Code)

	// no rate card yet
	assert.Equal(t, http.StatusConflict, p1.do(http.MethodGet, "/v1/rates", "").Code)
	assert.Equal(t, http.StatusConflict, p1.do(http.MethodPost, "/v1/quotes", `{"windows":{"XS":2}}`).Code)

	w := p1.do(http.MethodPut, "/v1/rates", residentialRates)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, http.StatusOK, p1.do(http.MethodGet, "/v1/rates", "").Code)

	var preview struct {
		Total float64 `json:"total"`
	}
	w = p1.do(http.MethodPost, "/v1/quotes/preview", `{"windows":{"XS":2}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &preview)
	assert.Equal(t, 35.5, preview.Total)

	type quoteBody struct {
		ID         string  `json:"id"`
		FinalPrice float64 `json:"finalPrice"`
		Images     []struct {
			ImageURL string `json:"imageUrl"`
			Comment  string `json:"comment"`
		} `json:"images"`
	}
	var created quoteBody
	w = p1.do(http.MethodPost, "/v1/quotes", `{
		"windows": {"XS": 2},
		"customer": {"name": "Maria"},
		"images": [{"fileName": "front.jpg", "contentType": "image/jpeg", "data": "aGVsbG8=", "comment": "front"}]
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decode(t, w, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 35.5, created.FinalPrice)
	require.Len(t, created.Images, 1)
	assert.True(t, strings.HasPrefix(created.Images[0].ImageURL, "http://localhost/blobs/local/quotes/p1/"+created.ID+"/"), created.Images[0].ImageURL)
	assert.Equal(t, "front", created.Images[0].Comment)

	var list struct {
		Count int `json:"count"`
	}
	decode(t, p1.do(http.MethodGet, "/v1/quotes?search=mar", ""), &list)
	assert.Equal(t, 1, list.Count)
	decode(t, p2.do(http.MethodGet, "/v1/quotes", ""), &list)
	assert.Equal(t, 0, list.Count)

	assert.Equal(t, http.StatusNotFound, p2.do(http.MethodGet, "/v1/quotes/"+created.ID, "").Code)

	var edited quoteBody
	w = p1.do(http.MethodPut, "/v1/quotes/"+created.ID, `{"quoteDetails":{"dirtLevel":1,"extraCharge":0}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &edited)
	assert.Equal(t, 10.5, edited.FinalPrice)
	assert.Len(t, edited.Images, 1)

	w = p1.do(http.MethodDelete, "/v1/quotes/"+created.ID+"/images/0", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &edited)
	assert.Empty(t, edited.Images)

	assert.Equal(t, http.StatusNotFound, p2.do(http.MethodDelete, "/v1/quotes/"+created.ID, "").Code)
	assert.Equal(t, http.StatusNoContent, p1.do(http.MethodDelete, "/v1/quotes/"+created.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, p1.do(http.MethodGet, "/v1/quotes/"+created.ID, "").Code)
}

func TestRouter_CORSInDevelopment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := zerolog.Nop()
	cfg := &config.Config{Environment: "development"}
	router := NewRouter(cfg, log, Dependencies{
		Documents: docstore.NewMemoryStore(nil, log),
		Blobs:     blob.NewMemoryStore(""),
		Verifier:  identity.NewJWTVerifier("s3cret"),
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set("Origin", "http://localhost:19006")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
