// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/stakepool/log"
)

var (
	dataDirFlag = cli.StringFlag{
		Name:   "data-dir",
		Value:  defaultDataDir(),
		Usage:  "directory for block-chain databases",
		EnvVar: "STAKEPOOL_DATA_DIR",
	}
	verbosityFlag = cli.Uint64Flag{
		Name:   "verbosity",
		Value:  log.LegacyLevelInfo,
		Usage:  "log verbosity (0-9)",
		EnvVar: "STAKEPOOL_VERBOSITY",
	}
	jsonLogsFlag = cli.BoolFlag{
		Name:   "json-logs",
		Usage:  "output logs in JSON format",
		EnvVar: "STAKEPOOL_JSON_LOGS",
	}
	devFlag = cli.BoolFlag{
		Name:  "dev",
		Usage: "initialize with the dev network genesis",
	}
	genesisFlag = cli.StringFlag{
		Name:  "genesis",
		Usage: "path to a custom genesis file in YAML",
	}
	keyFileFlag = cli.StringFlag{
		Name:   "keyfile",
		Usage:  "private key file path",
		EnvVar: "STAKEPOOL_KEYFILE",
	}
	devAccountFlag = cli.IntFlag{
		Name:  "dev-account",
		Value: -1,
		Usage: "sign with the dev account at the given index (0-9)",
	}
	mnemonicFlag = cli.StringFlag{
		Name:  "mnemonic",
		Usage: "recover the key from a BIP39 mnemonic instead of generating one",
	}
	lockPeriodFlag = cli.Uint64Flag{
		Name:  "lock-period",
		Usage: "staking period in seconds",
	}
	amountFlag = cli.StringFlag{
		Name:  "amount",
		Usage: "amount in coins, up to 9 decimals",
	}
	ownerFlag = cli.StringFlag{
		Name:  "owner",
		Usage: "stake owner address, hex or base58",
	}
	apiAddrFlag = cli.StringFlag{
		Name:   "api-addr",
		Value:  "localhost:8669",
		Usage:  "API service listening address",
		EnvVar: "STAKEPOOL_API_ADDR",
	}
	apiCorsFlag = cli.StringFlag{
		Name:   "api-cors",
		Value:  "",
		Usage:  "comma separated list of domains from which to accept cross origin requests to API",
		EnvVar: "STAKEPOOL_API_CORS",
	}
	enableAPILogsFlag = cli.BoolFlag{
		Name:  "enable-api-logs",
		Usage: "enables API requests logging",
	}
	apiRateLimitFlag = cli.Float64Flag{
		Name:   "api-rate-limit",
		Usage:  "requests per second allowed per client IP, 0 means unlimited",
		EnvVar: "STAKEPOOL_API_RATE_LIMIT",
	}
	apiRateBurstFlag = cli.IntFlag{
		Name:  "api-rate-burst",
		Usage: "burst size of the per client rate limit",
	}
	enableMetricsFlag = cli.BoolFlag{
		Name:   "enable-metrics",
		Usage:  "enables metrics collection",
		EnvVar: "STAKEPOOL_ENABLE_METRICS",
	}
	metricsAddrFlag = cli.StringFlag{
		Name:   "metrics-addr",
		Value:  "localhost:2112",
		Usage:  "metrics service listening address",
		EnvVar: "STAKEPOOL_METRICS_ADDR",
	}
)

// commonFlags are accepted by every command.
var commonFlags = []cli.Flag{
	dataDirFlag,
	verbosityFlag,
	jsonLogsFlag,
}

// signerFlags select the key signing a transaction.
var signerFlags = []cli.Flag{
	keyFileFlag,
	devAccountFlag,
}

func withFlags(groups ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, g := range groups {
		flags = append(flags, g...)
	}
	return flags
}
