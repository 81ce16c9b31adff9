// internal/auth/basic.go
package auth

import (
	"crypto/subtle"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// FailedAttemptsPerMinute bounds rejected logins per client address. Once a
// client exhausts it, every request from that address gets 429 until a token
// refills. Other addresses are not affected.
const FailedAttemptsPerMinute = 5

// maxTrackedClients bounds the limiter map; fully refilled entries are
// dropped when it is reached.
const maxTrackedClients = 1024

// failureLimiter keeps one failed-login bucket per client address.
type failureLimiter struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
}

func newFailureLimiter() *failureLimiter {
	return &failureLimiter{clients: make(map[string]*rate.Limiter)}
}

func (f *failureLimiter) get(client string) *rate.Limiter {
	f.mu.Lock()
	defer f.mu.Unlock()

	if l, ok := f.clients[client]; ok {
		return l
	}
	if len(f.clients) >= maxTrackedClients {
		for addr, l := range f.clients {
			if l.Tokens() >= FailedAttemptsPerMinute {
				delete(f.clients, addr)
			}
		}
	}
	l := rate.NewLimiter(rate.Every(time.Minute/FailedAttemptsPerMinute), FailedAttemptsPerMinute)
	f.clients[client] = l
	return l
}

// clientAddr is the host part of RemoteAddr. chi's RealIP middleware may have
// already replaced it with a bare IP.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// BasicAuth guards a handler with HTTP basic auth against a single account.
// An empty passwordHash disables the check.
func BasicAuth(realm, username, passwordHash string, logger *zap.Logger) func(http.Handler) http.Handler {
	failures := newFailureLimiter()

	return func(next http.Handler) http.Handler {
		if passwordHash == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientAddr(r)
			limiter := failures.get(client)
			if limiter.Tokens() < 1 {
				logger.Warn("Admin login throttled", zap.String("path", r.URL.Path), zap.String("client", client))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			user, pass, ok := r.BasicAuth()
			if ok && subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1 {
				valid, err := VerifyPassword(pass, passwordHash)
				if err != nil {
					logger.Error("Failed to verify admin password", zap.Error(err))
				}
				if valid {
					next.ServeHTTP(w, r)
					return
				}
			}

			limiter.Allow()
			logger.Warn("Rejected admin credentials",
				zap.String("path", r.URL.Path),
				zap.String("user", user),
				zap.String("client", client),
			)
			w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`", charset="UTF-8"`)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		})
	}
}
