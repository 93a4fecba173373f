package auth

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"physiquist/internal/calc"
)

type contextKey string

const subjectKey contextKey = "subject"

// APIKeyHeader carries a static API key as an alternative to a bearer token.
const APIKeyHeader = "X-API-Key"

var ErrNoKey = errors.New("auth: signing key is not set")

// Authenv verifies callers of the API. Requests are accepted with a bearer token
// signed with JWTkey or with an API key matching the bcrypt hash APIKeyHash.
type Authenv struct {
	JWTkey     []byte
	APIKeyHash []byte
}

// Enabled reports whether any credential is configured.
func (env *Authenv) Enabled() bool {
	return len(env.JWTkey) > 0 || len(env.APIKeyHash) > 0
}

// LimiterIdle is how long a client's limiter is kept after its last request.
const LimiterIdle = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type IPRateLimiter struct {
	ips map[string]*visitor
	mu  sync.Mutex
	r   rate.Limit
	b   int

	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:       make(map[string]*visitor),
		r:         r,
		b:         b,
		idle:      LimiterIdle,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	if now.Sub(i.lastSweep) >= i.idle {
		i.sweep(now)
	}

	v, exists := i.ips[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep drops clients idle for longer than i.idle. Callers hold i.mu.
func (i *IPRateLimiter) sweep(now time.Time) {
	for ip, v := range i.ips {
		if now.Sub(v.lastSeen) >= i.idle {
			delete(i.ips, ip)
		}
	}
	i.lastSweep = now
}

// Rate limiting middleware
func (i *IPRateLimiter) LimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := i.getLimiter(clientIP(r))
		if !limiter.Allow() {
			calc.WriteJSON(w, http.StatusTooManyRequests, calc.ErrorBody{Error: "Too Many Requests. Try again later."})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// HashKey returns the bcrypt hash stored in place of an API key.
func HashKey(key string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	return string(bytes), err
}

// NewToken signs a token for subject that expires after ttl.
func NewToken(key []byte, subject string, ttl time.Duration) (string, error) {
	if len(key) == 0 {
		return "", ErrNoKey
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return token.SignedString(key)
}

func (env *Authenv) parseToken(tokenString string) (string, bool) {
	if len(env.JWTkey) == 0 {
		return "", false
	}
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return env.JWTkey, nil
	})
	if err != nil {
		log.WithError(err).Debug("token rejected")
		return "", false
	}
	return claims.Subject, token.Valid
}

func (env *Authenv) checkAPIKey(key string) bool {
	if len(env.APIKeyHash) == 0 || key == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(env.APIKeyHash, []byte(key)) == nil
}

// AuthMiddleware rejects requests without valid credentials. The token subject, or
// "api-key", is stored in the request context.
func (env *Authenv) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var subject string
		ok := false
		if bearer := bearerToken(r); bearer != "" {
			subject, ok = env.parseToken(bearer)
		} else if env.checkAPIKey(r.Header.Get(APIKeyHeader)) {
			subject, ok = "api-key", true
		}
		if !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			calc.WriteJSON(w, http.StatusUnauthorized, calc.ErrorBody{Error: "Unauthorized"})
			return
		}

		ctx := context.WithValue(r.Context(), subjectKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Subject returns the authenticated caller stored by AuthMiddleware.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey).(string)
	return s
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	if cookie, err := r.Cookie("session_token"); err == nil {
		return cookie.Value
	}
	return ""
}
