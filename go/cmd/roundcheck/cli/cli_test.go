/*
Copyright 2026 The Roundcheck Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundcheck/roundcheck/go/decimal"
)

// execute resets the command state and runs Main with the given
// arguments, capturing its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	verbose = false
	negative = false
	workers = 1
	policy.mode = decimal.ToNearestAway

	var buf strings.Builder
	Main.SetOut(&buf)
	Main.SetErr(&buf)
	Main.SetArgs(args)
	err := Main.Execute()
	return buf.String(), err
}

func TestRunSummary(t *testing.T) {
	out, err := execute(t, "2")
	require.NoError(t, err)
	assert.Contains(t, out, "=> 4 / 222 mismatch(es) for depth 0-2")
	assert.Contains(t, out, "elapsed time:")
}

func TestRunVerbose(t *testing.T) {
	out, err := execute(t, "--verbose", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "'value' :'depth':")
	assert.Contains(t, out, "0.5")
	assert.Contains(t, out, "0 <> 1")
	assert.Contains(t, out, "=> 1 / 2 mismatch(es) for depth 0-0")
}

func TestRunHalfEvenPolicy(t *testing.T) {
	out, err := execute(t, "--policy", "half-even", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "=> 0 / 22 mismatch(es) for depth 0-1")
}

func TestRunNegative(t *testing.T) {
	out, err := execute(t, "--negative", "--verbose", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "-0.5")
	assert.Contains(t, out, "-0 <> -1")
}

func TestRunParallelWorkers(t *testing.T) {
	out, err := execute(t, "--workers", "4", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "=> 4 / 222 mismatch(es) for depth 0-2")
}

func TestRunInvalidArgs(t *testing.T) {
	for _, args := range [][]string{
		{"16"},
		{"-1"},
		{"six"},
		{"--policy", "stochastic", "2"},
	} {
		_, err := execute(t, args...)
		assert.Error(t, err, "args %v", args)
	}
}
