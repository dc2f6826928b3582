// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package node

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vechain/stakepool/api/utils"
	"github.com/vechain/stakepool/genesis"
	"github.com/vechain/stakepool/runtime"
	"github.com/vechain/stakepool/thor"
)

// Info describes the chain served by the node.
type Info struct {
	Network   string       `json:"network"`
	GenesisID thor.Bytes32 `json:"genesisId"`
	ChainTag  byte         `json:"chainTag"`
	Program   thor.Address `json:"program"`
	Time      uint64       `json:"time"`
}

type Node struct {
	meta *genesis.Meta
	rt   *runtime.Runtime
}

func New(meta *genesis.Meta, rt *runtime.Runtime) *Node {
	return &Node{meta, rt}
}

func (n *Node) handleNodeInfo(w http.ResponseWriter, _ *http.Request) error {
	now, err := n.rt.Now()
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Info{
		Network:   n.meta.Name,
		GenesisID: n.meta.ID,
		ChainTag:  n.meta.ChainTag(),
		Program:   n.meta.Program,
		Time:      now,
	})
}

func (n *Node) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/info").
		Methods(http.MethodGet).
		Name("node_get_info").
		HandlerFunc(utils.WrapHandlerFunc(n.handleNodeInfo))
}
