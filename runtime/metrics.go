// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import "github.com/vechain/stakepool/metrics"

var (
	metricInstructionCount  = metrics.LazyLoadCounterVec("instruction_count", []string{"kind", "result"})
	metricExecutionDuration = metrics.LazyLoadHistogram("instruction_duration_us", metrics.BucketExecution)
	metricTotalStaked       = metrics.LazyLoadGauge("total_staked")
)
