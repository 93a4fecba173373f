package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physiquist/internal/api"
	"physiquist/internal/auth"
	"physiquist/internal/config"
	"physiquist/internal/formula"
	"physiquist/internal/present"
)

func testConfig() config.Config {
	return config.Config{RateLimit: 1000, RateBurst: 1000}
}

func do(h http.Handler, method, path, body string, header ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCatalogRoutes(t *testing.T) {
	h := api.NewHandler(testConfig())

	rec := do(h, http.MethodGet, "/api/formulas", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []api.FormulaView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&all))
	assert.Len(t, all, len(formula.Default().Formulas()))

	rec = do(h, http.MethodGet, "/api/formulas?category=Optics", "")
	var optics []api.FormulaView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&optics))
	assert.Len(t, optics, len(formula.Default().ByCategory("Optics")))

	rec = do(h, http.MethodGet, "/api/formulas/"+url.PathEscape("Ohm's Law"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var ohm api.FormulaView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&ohm))
	assert.Equal(t, []string{"V", "I", "R"}, ohm.Targets)
	assert.Equal(t, []string{"Ω", "kΩ", "MΩ"}, ohm.Variables[2].Units)

	rec = do(h, http.MethodGet, "/api/formulas/Nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(h, http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mechanics")

	rec = do(h, http.MethodGet, "/api/units/current", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"kind":"current","si":"A","units":["A","mA","kA"]}`, rec.Body.String())

	rec = do(h, http.MethodGet, "/api/units/flux", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSolveRoute(t *testing.T) {
	h := api.NewHandler(testConfig())
	rec := do(h, http.MethodPost, "/api/solve",
		`{"formula":"Force","target":"F","inputs":{"m":{"value":2,"unit":"kg"},"a":{"value":3}}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res present.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 6.0, res.SIValue)
}

func TestSolveRouteRequiresToken(t *testing.T) {
	cfg := testConfig()
	cfg.TokenKey = "secret"
	h := api.NewHandler(cfg)
	body := `{"formula":"Force","target":"F","inputs":{"m":{"value":2,"unit":"kg"},"a":{"value":3}}}`

	rec := do(h, http.MethodPost, "/api/solve", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := auth.NewToken([]byte("secret"), "test", time.Minute)
	require.NoError(t, err)
	rec = do(h, http.MethodPost, "/api/solve", body, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)

	// the catalog stays public
	rec = do(h, http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit, cfg.RateBurst = 0.001, 1
	h := api.NewHandler(cfg)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/categories", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(h, http.MethodGet, "/api/categories", "").Code)
}

func TestCORSAndHealth(t *testing.T) {
	h := api.NewHandler(testConfig())

	rec := do(h, http.MethodOptions, "/api/solve", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
