// Package api wires the HTTP routes of the physiquist server.
package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"physiquist/internal/auth"
	"physiquist/internal/calc"
	"physiquist/internal/calc/batch"
	"physiquist/internal/calc/importer"
	"physiquist/internal/calc/report"
	"physiquist/internal/config"
	"physiquist/internal/formula"
	"physiquist/internal/units"
)

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+auth.APIKeyHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// LogRequests logs every request with its status and duration.
func LogRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Info("request")
	})
}

// HandleList registers every route on r.
func HandleList(r *mux.Router, cfg config.Config) {
	catalogH := &CatalogHandler{Catalog: formula.Default(), Units: units.Default()}
	calcH := &calc.Handler{}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	reportH := &report.Handler{}

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/formulas", catalogH.Formulas).Methods("GET")
	api.HandleFunc("/formulas/{name}", catalogH.Formula).Methods("GET")
	api.HandleFunc("/categories", catalogH.Categories).Methods("GET")
	api.HandleFunc("/units/{kind}", catalogH.UnitsFor).Methods("GET")

	solveApi := api.NewRoute().Subrouter()
	authEnv := &auth.Authenv{JWTkey: []byte(cfg.TokenKey), APIKeyHash: []byte(cfg.APIKeyHash)}
	if authEnv.Enabled() {
		solveApi.Use(authEnv.AuthMiddleware)
	} else {
		log.Warn("no TOKEN_KEY or PHYSIQUIST_API_KEY_HASH set, calculation routes are open")
	}

	solveApi.HandleFunc("/solve", calcH.Calc).Methods("POST")
	solveApi.HandleFunc("/solve/batch", batchH.Calc).Methods("POST")
	solveApi.HandleFunc("/solve/import", importH.Import).Methods("POST")
	solveApi.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		calc.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
}

// NewHandler builds the complete server handler.
func NewHandler(cfg config.Config) http.Handler {
	r := mux.NewRouter()
	HandleList(r, cfg)
	return LogRequests(CORS(r))
}
