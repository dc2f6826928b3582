// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/stakepool/genesis"
	"github.com/vechain/stakepool/log"
	"github.com/vechain/stakepool/lvldb"
	"github.com/vechain/stakepool/runtime"
	"github.com/vechain/stakepool/state"
	"github.com/vechain/stakepool/thor"
)

func readIntFromUInt64Flag(val uint64) (int, error) {
	i := int(val)
	if i < 0 || uint64(i) != val || val > math.MaxInt32 {
		return 0, fmt.Errorf("invalid value %d", val)
	}
	return i, nil
}

func initLogger(ctx *cli.Context) error {
	lvl, err := readIntFromUInt64Flag(ctx.Uint64(verbosityFlag.Name))
	if err != nil {
		return errors.Wrap(err, "parse verbosity flag")
	}
	jsonLogs := ctx.Bool(jsonLogsFlag.Name)
	useColor := !jsonLogs && (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))
	log.SetDefault(log.NewHandler(os.Stderr, lvl, jsonLogs, useColor))
	return nil
}

func handleExitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)

		sig := <-exitSignalCh
		log.Info("exit signal received", "signal", sig)
		cancel()
	}()
	return ctx
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".stakepool")
}

func openDB(dataDir string) (*lvldb.LevelDB, error) {
	if dataDir == "" {
		return nil, errors.Errorf("unable to infer default data dir, use -%s to specify", dataDirFlag.Name)
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "create data dir [%v]", dataDir)
	}
	db, err := lvldb.New(filepath.Join(dataDir, "main.db"), lvldb.Options{
		CacheSize:              16,
		OpenFilesCacheCapacity: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open main database")
	}
	return db, nil
}

func selectGenesis(isDev bool, genesisFile string) (*genesis.Genesis, error) {
	switch {
	case isDev && genesisFile != "":
		return nil, errors.Errorf("-%s and -%s are exclusive", devFlag.Name, genesisFlag.Name)
	case isDev:
		return genesis.NewDevnet(), nil
	case genesisFile != "":
		gen, err := genesis.LoadCustomGenesis(genesisFile)
		if err != nil {
			return nil, errors.Wrap(err, "load genesis file")
		}
		return genesis.NewCustomNet(gen)
	default:
		return nil, errors.Errorf("either -%s or -%s is required", devFlag.Name, genesisFlag.Name)
	}
}

// initChain writes the genesis state and meta into an empty database.
func initChain(db *lvldb.LevelDB, gene *genesis.Genesis) (*genesis.Meta, error) {
	existing, err := genesis.ReadMeta(db)
	switch {
	case err == nil:
		if existing.ID == gene.ID() {
			return existing, nil
		}
		return nil, errors.Errorf("data dir already initialized with genesis %v", existing.ID)
	case !errors.Is(err, genesis.ErrNotInitialized):
		return nil, err
	}

	meta, err := gene.Build(state.NewStater(db))
	if err != nil {
		return nil, errors.Wrap(err, "build genesis")
	}
	if err := genesis.WriteMeta(db, meta); err != nil {
		return nil, errors.Wrap(err, "write genesis meta")
	}
	return meta, nil
}

// loadRuntime opens the chain stored in db against the given clock.
func loadRuntime(db *lvldb.LevelDB, clock runtime.Clock) (*genesis.Meta, *runtime.Runtime, error) {
	meta, err := genesis.ReadMeta(db)
	if err != nil {
		if errors.Is(err, genesis.ErrNotInitialized) {
			return nil, nil, errors.Wrap(err, "run 'stakepool init' first")
		}
		return nil, nil, err
	}
	rt := runtime.New(state.NewStater(db), meta.Program, meta.ChainTag(), meta.Params, clock)
	return meta, rt, nil
}

func newMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// keyFromMnemonic derives a secp256k1 key from the BIP39 seed of mnemonic.
func keyFromMnemonic(mnemonic string) (*ecdsa.PrivateKey, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, errors.Wrap(err, "invalid mnemonic")
	}
	return crypto.ToECDSA(thor.Blake2b(seed).Bytes())
}

func saveKey(keyFile string, key *ecdsa.PrivateKey) error {
	if keyFile == "" {
		return errors.Errorf("-%s is required", keyFileFlag.Name)
	}
	if _, err := os.Stat(keyFile); err == nil {
		return errors.Errorf("key file [%v] already exists", keyFile)
	}
	if err := os.MkdirAll(filepath.Dir(keyFile), 0o700); err != nil {
		return err
	}
	return crypto.SaveECDSA(keyFile, key)
}

func loadKey(keyFile string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.LoadECDSA(keyFile)
	if err != nil {
		return nil, errors.Wrapf(err, "load key file [%v]", keyFile)
	}
	return key, nil
}

// loadSigner returns the key selected by either -keyfile or -dev-account.
func loadSigner(keyFile string, devIndex int) (*ecdsa.PrivateKey, error) {
	switch {
	case keyFile != "" && devIndex >= 0:
		return nil, errors.Errorf("-%s and -%s are exclusive", keyFileFlag.Name, devAccountFlag.Name)
	case keyFile != "":
		return loadKey(keyFile)
	case devIndex >= 0:
		accs := genesis.DevAccounts()
		if devIndex >= len(accs) {
			return nil, errors.Errorf("dev account index out of range [0, %d)", len(accs))
		}
		return accs[devIndex].PrivateKey, nil
	default:
		return nil, errors.Errorf("either -%s or -%s is required", keyFileFlag.Name, devAccountFlag.Name)
	}
}

func keyAddress(key *ecdsa.PrivateKey) thor.Address {
	return thor.Address(crypto.PubkeyToAddress(key.PublicKey))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
