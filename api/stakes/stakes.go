// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/vechain/stakepool/api/utils"
	"github.com/vechain/stakepool/client"
	"github.com/vechain/stakepool/thor"
)

type Stakes struct {
	client *client.Client
}

func New(c *client.Client) *Stakes {
	return &Stakes{c}
}

func (s *Stakes) handleGetStake(w http.ResponseWriter, req *http.Request) error {
	owner, err := thor.ParseAddress(mux.Vars(req)["owner"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "owner"))
	}
	info, err := s.client.StakeInfo(req.Context(), owner)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, newStake(info))
}

func (s *Stakes) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/{owner}").
		Methods(http.MethodGet).
		Name("stakes_get_stake").
		HandlerFunc(utils.WrapHandlerFunc(s.handleGetStake))
}
