// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/vechain/stakepool/api/node"
	"github.com/vechain/stakepool/api/pool"
	"github.com/vechain/stakepool/api/stakes"
	"github.com/vechain/stakepool/client"
	"github.com/vechain/stakepool/genesis"
	"github.com/vechain/stakepool/log"
	"github.com/vechain/stakepool/runtime"
)

var logger = log.WithContext("pkg", "api")

type Options struct {
	AllowedOrigins  string
	EnableReqLogger bool
	EnableMetrics   bool

	// RateLimit is the requests per second allowed per client IP, 0 disables limiting.
	RateLimit      float64
	RateLimitBurst int
}

// New return the read-only api router.
func New(meta *genesis.Meta, rt *runtime.Runtime, opts Options) http.Handler {
	origins := strings.Split(strings.TrimSpace(opts.AllowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}

	c := client.New(rt)
	router := mux.NewRouter()

	stakes.New(c).
		Mount(router, "/stakes")
	pool.New(c).
		Mount(router, "/pool")
	node.New(meta, rt).
		Mount(router, "/node")

	if opts.EnableMetrics {
		router.Use(metricsMiddleware)
	}

	handler := handlers.CompressHandler(router)
	handler = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"content-type"}),
	)(handler)

	if limiter := newRateLimiter(opts.RateLimit, opts.RateLimitBurst); limiter != nil {
		handler = limiter.handler(handler)
	}
	if opts.EnableReqLogger {
		handler = requestLoggerHandler(handler)
	}
	return handler
}

// requestLoggerHandler logs every request at debug level.
func requestLoggerHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("API Request", "method", r.Method, "url", r.URL.String(), "remote", r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}
