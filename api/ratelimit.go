// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/vechain/stakepool/cache"
)

const maxLimitedClients = 4096

// rateLimiter applies a token bucket per client IP. Buckets of the least recently
// seen clients are evicted once maxLimitedClients is reached.
type rateLimiter struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	clients *cache.LRU
}

// newRateLimiter returns nil if rps is not positive.
func newRateLimiter(rps float64, burst int) *rateLimiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = max(1, int(rps))
	}
	clients, _ := cache.NewLRU(maxLimitedClients)
	return &rateLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		clients: clients,
	}
}

func (l *rateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, _, _ := l.clients.GetOrLoad(key, func(any) (any, error) {
		return rate.NewLimiter(l.limit, l.burst), nil
	})
	return v.(*rate.Limiter).Allow()
}

func (l *rateLimiter) handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(clientIP(r)) {
			metricRateLimited().Add(1)
			http.Error(w, "too many requests", http.StatusTooManyRequests)
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
