// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointString(t *testing.T) {
	p := Point{Lat: 37.4979420, Lng: 127.0276108}
	assert.Equal(t, "POINT(127.027611 37.497942)", p.String())
}

func TestHaversineDistance(t *testing.T) {
	// Gangnam station to Yeoksam station, roughly 700m apart.
	gangnam := Point{Lat: 37.497942, Lng: 127.027611}
	yeoksam := Point{Lat: 37.500622, Lng: 127.036456}

	d := gangnam.HaversineDistance(&yeoksam)
	assert.Greater(t, d, 700.0)
	assert.Less(t, d, 1000.0)

	assert.InDelta(t, 0, gangnam.HaversineDistance(&gangnam), 1e-9)
}

func TestCellToken(t *testing.T) {
	p := Point{Lat: 37.50, Lng: 127.02}

	token, err := CellToken(p, 9)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Deterministic for identical input.
	again, err := CellToken(p, 9)
	require.NoError(t, err)
	assert.Equal(t, token, again)

	// Coarser resolution yields a different cell.
	coarse, err := CellToken(p, 3)
	require.NoError(t, err)
	assert.NotEqual(t, token, coarse)
}
