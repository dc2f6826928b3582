// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureJSON(t *testing.T, verbosity int) *bytes.Buffer {
	var buf bytes.Buffer
	SetDefault(NewHandler(&buf, verbosity, true, false))
	t.Cleanup(func() { SetDefault(DiscardHandler()) })
	return &buf
}

func TestWithContext(t *testing.T) {
	buf := captureJSON(t, LegacyLevelInfo)

	logger := WithContext("pkg", "staking").With("owner", "0x01")
	logger.Info("staked", "amount", 5)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "staked", rec["msg"])
	assert.Equal(t, "staking", rec["pkg"])
	assert.Equal(t, "0x01", rec["owner"])
	assert.EqualValues(t, 5, rec["amount"])
}

func TestVerbosity(t *testing.T) {
	buf := captureJSON(t, LegacyLevelWarn)

	Debug("hidden")
	Info("hidden")
	Warn("shown")
	Error("shown too")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}
