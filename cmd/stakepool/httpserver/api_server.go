// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package httpserver

import (
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vechain/stakepool/log"
)

var logger = log.WithContext("pkg", "httpserver")

// StartAPIServer serves handler on addr and returns its url and a close func.
func StartAPIServer(addr string, handler http.Handler) (string, func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "listen API addr [%v]", addr)
	}

	return "http://" + listener.Addr().String() + "/", serve(newServer(handler), listener), nil
}

func newServer(handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
}

// serve runs srv in the background. The returned func closes it and waits for Serve to return.
func serve(srv *http.Server, listener net.Listener) func() {
	var group errgroup.Group
	group.Go(func() error {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("http server stopped", "addr", listener.Addr(), "err", err)
		}
		return nil
	})
	return func() {
		srv.Close()
		group.Wait()
	}
}
