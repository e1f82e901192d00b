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

package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(g *Generator) []Candidate {
	var out []Candidate
	for {
		c, ok := g.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

func TestGeneratorDepthZero(t *testing.T) {
	got := drain(NewGenerator(0, false))
	require.Len(t, got, 2)
	assert.Equal(t, "0.4", got[0].Text)
	assert.Equal(t, "0.5", got[1].Text)
	assert.Equal(t, 0.4, got[0].Value)
	assert.Equal(t, 0.5, got[1].Value)
}

func TestGeneratorDepthOne(t *testing.T) {
	got := drain(NewGenerator(1, false))
	require.Len(t, got, 20)
	assert.Equal(t, "0.04", got[0].Text)
	assert.Equal(t, "0.05", got[1].Text)
	assert.Equal(t, "0.14", got[2].Text)
	assert.Equal(t, "0.15", got[3].Text)
	assert.Equal(t, "0.94", got[18].Text)
	assert.Equal(t, "0.95", got[19].Text)
}

func TestGeneratorLen(t *testing.T) {
	for depth := 0; depth <= 4; depth++ {
		g := NewGenerator(depth, false)
		assert.Equal(t, g.Len(), uint64(len(drain(g))), "depth %d", depth)
	}
	assert.Equal(t, uint64(2), NewGenerator(0, false).Len())
	assert.Equal(t, uint64(2_000_000), NewGenerator(6, false).Len())
}

func TestGeneratorDeterministicAndRestartable(t *testing.T) {
	g := NewGenerator(2, false)
	first := drain(g)
	g.Reset()
	second := drain(g)
	assert.Equal(t, first, second)
	assert.Equal(t, first, drain(NewGenerator(2, false)))
}

func TestGeneratorNegativeMirrorsPositive(t *testing.T) {
	pos := drain(NewGenerator(2, false))
	neg := drain(NewGenerator(2, true))
	require.Len(t, neg, len(pos))
	for i := range pos {
		assert.Equal(t, "-"+pos[i].Text, neg[i].Text)
		assert.Equal(t, -pos[i].Value, neg[i].Value)
	}
}

func TestGeneratorDepthOutOfRange(t *testing.T) {
	assert.Panics(t, func() { NewGenerator(-1, false) })
	assert.Panics(t, func() { NewGenerator(16, false) })
}
