// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/stakepool/api"
	"github.com/vechain/stakepool/client"
	"github.com/vechain/stakepool/cmd/stakepool/httpserver"
	"github.com/vechain/stakepool/log"
	"github.com/vechain/stakepool/metrics"
	"github.com/vechain/stakepool/runtime"
	"github.com/vechain/stakepool/thor"
	"github.com/vechain/stakepool/tx"
)

func initAction(ctx *cli.Context) error {
	if err := initLogger(ctx); err != nil {
		return err
	}
	gene, err := selectGenesis(ctx.Bool(devFlag.Name), ctx.String(genesisFlag.Name))
	if err != nil {
		return err
	}

	db, err := openDB(ctx.String(dataDirFlag.Name))
	if err != nil {
		return err
	}
	defer db.Close()

	meta, err := initChain(db, gene)
	if err != nil {
		return err
	}
	log.Info("chain initialized",
		"network", meta.Name,
		"genesis", meta.ID,
		"chainTag", fmt.Sprintf("0x%02x", meta.ChainTag()),
		"program", meta.Program,
	)
	return nil
}

func accountNewAction(ctx *cli.Context) error {
	mnemonic := ctx.String(mnemonicFlag.Name)
	generated := mnemonic == ""
	if generated {
		var err error
		if mnemonic, err = newMnemonic(); err != nil {
			return errors.Wrap(err, "generate mnemonic")
		}
	}

	key, err := keyFromMnemonic(mnemonic)
	if err != nil {
		return err
	}
	if err := saveKey(ctx.String(keyFileFlag.Name), key); err != nil {
		return errors.Wrap(err, "save key")
	}

	addr := keyAddress(key)
	fmt.Println("Address:", addr)
	fmt.Println("Base58: ", addr.Base58())
	if generated {
		fmt.Println("Mnemonic (write it down, it is not stored):")
		fmt.Println(mnemonic)
	}
	return nil
}

func accountShowAction(ctx *cli.Context) error {
	key, err := loadSigner(ctx.String(keyFileFlag.Name), ctx.Int(devAccountFlag.Name))
	if err != nil {
		return err
	}
	addr := keyAddress(key)
	fmt.Println("Address:", addr)
	fmt.Println("Base58: ", addr.Base58())
	return nil
}

// sendInstruction signs ins with the selected key, executes it and prints the receipt.
func sendInstruction(ctx *cli.Context, ins tx.Instruction) error {
	if err := initLogger(ctx); err != nil {
		return err
	}
	key, err := loadSigner(ctx.String(keyFileFlag.Name), ctx.Int(devAccountFlag.Name))
	if err != nil {
		return err
	}

	db, err := openDB(ctx.String(dataDirFlag.Name))
	if err != nil {
		return err
	}
	defer db.Close()

	_, rt, err := loadRuntime(db, runtime.SystemClock{})
	if err != nil {
		return err
	}

	receipt, err := client.New(rt).SignAndSend(handleExitSignal(), key, ins)
	if err != nil {
		return err
	}
	if err := printJSON(receipt); err != nil {
		return err
	}
	return receipt.Err()
}

func initializeAction(ctx *cli.Context) error {
	return sendInstruction(ctx, tx.Initialize{LockPeriod: ctx.Uint64(lockPeriodFlag.Name)})
}

func adjustLockPeriodAction(ctx *cli.Context) error {
	return sendInstruction(ctx, tx.AdjustLockPeriod{LockPeriod: ctx.Uint64(lockPeriodFlag.Name)})
}

func stakeAction(ctx *cli.Context) error {
	amount, err := thor.ParseCoins(ctx.String(amountFlag.Name))
	if err != nil {
		return errors.Wrapf(err, "-%s", amountFlag.Name)
	}
	return sendInstruction(ctx, tx.Stake{Amount: amount})
}

func unstakeAction(ctx *cli.Context) error {
	return sendInstruction(ctx, tx.Unstake{})
}

// openClient opens the chain read-only for queries.
func openClient(ctx *cli.Context, fn func(c *client.Client) error) error {
	if err := initLogger(ctx); err != nil {
		return err
	}
	db, err := openDB(ctx.String(dataDirFlag.Name))
	if err != nil {
		return err
	}
	defer db.Close()

	_, rt, err := loadRuntime(db, runtime.SystemClock{})
	if err != nil {
		return err
	}
	return fn(client.New(rt))
}

func infoAction(ctx *cli.Context) error {
	var owner thor.Address
	if s := ctx.String(ownerFlag.Name); s != "" {
		addr, err := thor.ParseAddress(s)
		if err != nil {
			return errors.Wrapf(err, "-%s", ownerFlag.Name)
		}
		owner = addr
	} else {
		key, err := loadSigner(ctx.String(keyFileFlag.Name), ctx.Int(devAccountFlag.Name))
		if err != nil {
			return errors.Wrapf(err, "-%s or signer", ownerFlag.Name)
		}
		owner = keyAddress(key)
	}

	return openClient(ctx, func(c *client.Client) error {
		info, err := c.StakeInfo(context.Background(), owner)
		if err != nil {
			return err
		}
		fmt.Println("Owner:          ", info.Owner)
		fmt.Println("Balance:        ", thor.FormatCoins(info.Balance))
		fmt.Println("Staked amount:  ", thor.FormatCoins(info.StakedAmount))
		fmt.Println("Total staked:   ", thor.FormatCoins(info.TotalStaked))
		fmt.Println("Staking period: ", info.LockPeriod, "seconds")
		if info.StakedAmount > 0 {
			fmt.Println("Unlock time:    ", info.UnlockTime)
			fmt.Println("Remaining:      ", info.Remaining, "seconds")
		}
		return nil
	})
}

func poolAction(ctx *cli.Context) error {
	return openClient(ctx, func(c *client.Client) error {
		info, err := c.PoolInfo(context.Background())
		if err != nil {
			return err
		}
		return printJSON(info)
	})
}

func serveAction(ctx *cli.Context) error {
	defer func() { log.Info("exited") }()

	if err := initLogger(ctx); err != nil {
		return err
	}
	db, err := openDB(ctx.String(dataDirFlag.Name))
	if err != nil {
		return err
	}
	defer func() { log.Info("closing main database..."); db.Close() }()

	meta, rt, err := loadRuntime(db, runtime.SystemClock{})
	if err != nil {
		return err
	}

	exitSignal := handleExitSignal()
	group, groupCtx := errgroup.WithContext(exitSignal)

	enableMetrics := ctx.Bool(enableMetricsFlag.Name)
	if enableMetrics {
		metrics.InitializePrometheusMetrics()
		url, closeFunc, err := httpserver.StartMetricsServer(ctx.String(metricsAddrFlag.Name))
		if err != nil {
			return errors.Wrap(err, "start metrics server")
		}
		log.Info("metrics server started", "url", url)
		group.Go(stopOnDone(groupCtx, closeFunc))
	}

	handler := api.New(meta, rt, api.Options{
		AllowedOrigins:  ctx.String(apiCorsFlag.Name),
		EnableReqLogger: ctx.Bool(enableAPILogsFlag.Name),
		EnableMetrics:   enableMetrics,
		RateLimit:       ctx.Float64(apiRateLimitFlag.Name),
		RateLimitBurst:  ctx.Int(apiRateBurstFlag.Name),
	})
	url, closeFunc, err := httpserver.StartAPIServer(ctx.String(apiAddrFlag.Name), handler)
	if err != nil {
		return errors.Wrap(err, "start API server")
	}
	log.Info("API server started", "url", url, "network", meta.Name, "program", meta.Program)
	group.Go(stopOnDone(groupCtx, func() {
		log.Info("stopping API server...")
		closeFunc()
	}))

	return group.Wait()
}

func stopOnDone(ctx context.Context, stop func()) func() error {
	return func() error {
		<-ctx.Done()
		stop()
		return nil
	}
}
