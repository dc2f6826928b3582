// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// UnitsPerCoin is the number of native currency units in one whole coin.
const UnitsPerCoin = uint64(1_000_000_000)

// FormatCoins renders an amount of native units as whole coins with trailing zeros trimmed.
func FormatCoins(units uint64) string {
	whole := strconv.FormatUint(units/UnitsPerCoin, 10)
	frac := units % UnitsPerCoin
	if frac == 0 {
		return whole
	}
	f := strconv.FormatUint(frac, 10)
	f = strings.Repeat("0", 9-len(f)) + f
	return whole + "." + strings.TrimRight(f, "0")
}

// ParseCoins parses a decimal amount of whole coins, with at most 9 fraction digits, into native units.
func ParseCoins(s string) (uint64, error) {
	whole, frac, hasFrac := strings.Cut(strings.TrimSpace(s), ".")
	if whole == "" && (!hasFrac || frac == "") {
		return 0, errors.New("empty amount")
	}
	if hasFrac && (frac == "" || len(frac) > 9) {
		return 0, errors.New("invalid fraction")
	}

	var w, f uint64
	var err error
	if whole != "" {
		if w, err = strconv.ParseUint(whole, 10, 64); err != nil {
			return 0, err
		}
	}
	if hasFrac {
		if f, err = strconv.ParseUint(frac+strings.Repeat("0", 9-len(frac)), 10, 64); err != nil {
			return 0, err
		}
	}
	if w > (math.MaxUint64-f)/UnitsPerCoin {
		return 0, errors.New("amount overflows")
	}
	return w*UnitsPerCoin + f, nil
}
