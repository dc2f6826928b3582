// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import "net/http"

// discard is the backend in use until prometheus is initialized.
// Every meter it hands out drops its samples.
type discard struct{}

func defaultNoopMetrics() Metrics { return discard{} }

func (discard) GetOrCreateCountMeter(string) CountMeter                  { return discardMeter{} }
func (discard) GetOrCreateCountVecMeter(string, []string) CountVecMeter  { return discardMeter{} }
func (discard) GetOrCreateGaugeMeter(string) GaugeMeter                  { return discardMeter{} }
func (discard) GetOrCreateHistogramMeter(string, []int64) HistogramMeter { return discardMeter{} }

// GetOrCreateHandler reports 404 so a scrape makes the missing backend obvious.
func (discard) GetOrCreateHandler() http.Handler { return http.NotFoundHandler() }

type discardMeter struct{}

func (discardMeter) Add(int64)                             {}
func (discardMeter) AddWithLabel(int64, map[string]string) {}
func (discardMeter) Set(int64)                             {}
func (discardMeter) Observe(int64)                         {}
