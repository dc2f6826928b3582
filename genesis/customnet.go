// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vechain/stakepool/staking"
	"github.com/vechain/stakepool/thor"
)

// CustomGenesis is user customized genesis
type CustomGenesis struct {
	Name       string          `yaml:"name"`
	LaunchTime uint64          `yaml:"launchTime"`
	Program    *thor.Address   `yaml:"program"`
	Params     *staking.Params `yaml:"params"`
	Accounts   []Account       `yaml:"accounts"`
}

// Account is the account will set to the genesis state
type Account struct {
	Address thor.Address `yaml:"address"`
	Balance uint64       `yaml:"balance"`
}

// LoadCustomGenesis reads a YAML genesis file.
func LoadCustomGenesis(path string) (*CustomGenesis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCustomGenesis(data)
}

// ParseCustomGenesis decodes a YAML genesis document.
func ParseCustomGenesis(data []byte) (*CustomGenesis, error) {
	var gen CustomGenesis
	if err := yaml.Unmarshal(data, &gen); err != nil {
		return nil, errors.Wrap(err, "parse genesis")
	}
	return &gen, nil
}

// NewCustomNet create custom network genesis.
func NewCustomNet(gen *CustomGenesis) (*Genesis, error) {
	if gen.LaunchTime == 0 {
		return nil, errors.New("launchTime must be set")
	}
	if len(gen.Accounts) == 0 {
		return nil, errors.New("at least one account must be allocated")
	}

	program := DefaultProgram
	if gen.Program != nil {
		if gen.Program.IsZero() {
			return nil, errors.New("program must not be the zero address")
		}
		program = *gen.Program
	}
	params := staking.DefaultParams
	if gen.Params != nil {
		params = *gen.Params
	}
	name := gen.Name
	if name == "" {
		name = "customnet"
	}

	builder := new(Builder).
		Timestamp(gen.LaunchTime).
		Program(program).
		Params(params).
		State(allocate(gen.Accounts))

	return newGenesis(name, builder)
}
