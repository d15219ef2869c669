// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddColumn(t *testing.T) {
	table := New([]string{"id", "name"})
	require.NoError(t, table.AppendRow([]string{"1", "a"}))

	table.AddColumn("extra")

	assert.Equal(t, []string{"id", "name", "extra"}, table.Columns())

	value, ok := table.Get(0, "extra")
	require.True(t, ok)
	assert.Empty(t, value)

	// adding twice is a no-op
	table.AddColumn("extra")
	assert.Equal(t, []string{"id", "name", "extra"}, table.Columns())
}

func TestAppendRowRejectsWrongWidth(t *testing.T) {
	table := New([]string{"id", "name"})

	err := table.AppendRow([]string{"1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 values")
	assert.Zero(t, table.Len())
}

func TestGetSet(t *testing.T) {
	table := New([]string{"id"})
	require.NoError(t, table.AppendRow([]string{"1"}))

	require.NoError(t, table.Set(0, "id", "2"))

	value, ok := table.Get(0, "id")
	require.True(t, ok)
	assert.Equal(t, "2", value)

	_, ok = table.Get(0, "missing")
	assert.False(t, ok)

	_, ok = table.Get(5, "id")
	assert.False(t, ok)

	require.Error(t, table.Set(0, "missing", "x"))
	require.Error(t, table.Set(5, "id", "x"))
}

func TestRowReturnsCopy(t *testing.T) {
	table := New([]string{"id"})
	require.NoError(t, table.AppendRow([]string{"1"}))

	row := table.Row(0)
	row[0] = "mutated"

	value, _ := table.Get(0, "id")
	assert.Equal(t, "1", value)
}
