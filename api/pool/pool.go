// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vechain/stakepool/api/utils"
	"github.com/vechain/stakepool/client"
	"github.com/vechain/stakepool/thor"
)

// Pool is the response of GET /pool.
type Pool struct {
	Address     thor.Address  `json:"address"`
	Initialized bool          `json:"initialized"`
	Authority   *thor.Address `json:"authority"`
	LockPeriod  uint64        `json:"lockPeriod"`
	TotalStaked string        `json:"totalStaked"`
	Custody     string        `json:"custody"`
	Stakers     int           `json:"stakers"`
}

type Handler struct {
	client *client.Client
}

func New(c *client.Client) *Handler {
	return &Handler{c}
}

func (h *Handler) handleGetPool(w http.ResponseWriter, req *http.Request) error {
	info, err := h.client.PoolInfo(req.Context())
	if err != nil {
		return err
	}
	p := &Pool{
		Address:     info.Address,
		Initialized: info.Initialized,
		LockPeriod:  info.LockPeriod,
		TotalStaked: thor.FormatCoins(info.TotalStaked),
		Custody:     thor.FormatCoins(info.Custody),
		Stakers:     info.Stakers,
	}
	if info.Initialized {
		authority := info.Authority
		p.Authority = &authority
	}
	return utils.WriteJSON(w, p)
}

func (h *Handler) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodGet).
		Name("pool_get_pool").
		HandlerFunc(utils.WrapHandlerFunc(h.handleGetPool))
}
