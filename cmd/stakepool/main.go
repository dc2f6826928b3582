// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// stakepool runs and drives a time-locked staking program on a local ledger.
package main

import (
	"fmt"
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

var (
	version       string
	gitCommit     string
	gitTag        string
	copyrightYear string
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "Stakepool",
		Usage:     "Time-locked staking pool",
		Copyright: fmt.Sprintf("2025-%s VeChain Foundation <https://vechain.org/>", copyrightYear),
		Commands: []cli.Command{
			{
				Name:   "init",
				Usage:  "Initialize the data dir with a genesis",
				Flags:  withFlags(commonFlags, []cli.Flag{devFlag, genesisFlag}),
				Action: initAction,
			},
			{
				Name:  "account",
				Usage: "Manage signing keys",
				Subcommands: []cli.Command{
					{
						Name:   "new",
						Usage:  "Create a key backed by a BIP39 mnemonic",
						Flags:  []cli.Flag{keyFileFlag, mnemonicFlag},
						Action: accountNewAction,
					},
					{
						Name:   "show",
						Usage:  "Print the address of a key",
						Flags:  signerFlags,
						Action: accountShowAction,
					},
				},
			},
			{
				Name:   "initialize",
				Usage:  "Create the staking pool with the signer as authority",
				Flags:  withFlags(commonFlags, signerFlags, []cli.Flag{lockPeriodFlag}),
				Action: initializeAction,
			},
			{
				Name:   "adjust-lock-period",
				Usage:  "Change the staking period of the pool",
				Flags:  withFlags(commonFlags, signerFlags, []cli.Flag{lockPeriodFlag}),
				Action: adjustLockPeriodAction,
			},
			{
				Name:   "stake",
				Usage:  "Deposit coins into the pool",
				Flags:  withFlags(commonFlags, signerFlags, []cli.Flag{amountFlag}),
				Action: stakeAction,
			},
			{
				Name:   "unstake",
				Usage:  "Withdraw the whole stake once the staking period is over",
				Flags:  withFlags(commonFlags, signerFlags),
				Action: unstakeAction,
			},
			{
				Name:   "info",
				Usage:  "Show the stake of an owner",
				Flags:  withFlags(commonFlags, signerFlags, []cli.Flag{ownerFlag}),
				Action: infoAction,
			},
			{
				Name:   "pool",
				Usage:  "Show the pool",
				Flags:  commonFlags,
				Action: poolAction,
			},
			{
				Name:  "serve",
				Usage: "Serve the read-only API",
				Flags: withFlags(commonFlags, []cli.Flag{
					apiAddrFlag,
					apiCorsFlag,
					enableAPILogsFlag,
					apiRateLimitFlag,
					apiRateBurstFlag,
					enableMetricsFlag,
					metricsAddrFlag,
				}),
				Action: serveAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
