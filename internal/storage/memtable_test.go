package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemTableSetGet(t *testing.T) {
	table := NewMemTable()

	table.Set("k", "v1")
	value, ok := table.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v1", value)

	table.Set("k", "v2")
	value, ok = table.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v2", value)
}

func TestMemTableGetAbsentKey(t *testing.T) {
	table := NewMemTable()

	value, ok := table.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", value)
}

func TestMemTableStoredSentinelString(t *testing.T) {
	// A stored value equal to a legacy "not found" sentinel must be
	// distinguishable from an absent key.
	table := NewMemTable()
	table.Set("k", "NULL")

	value, ok := table.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "NULL", value)

	_, ok = table.Get("other")
	assert.False(t, ok)
}

func TestMemTableKeysSorted(t *testing.T) {
	table := NewMemTable()
	table.Set("c", "3")
	table.Set("a", "1")
	table.Set("b", "2")

	assert.Equal(t, []string{"a", "b", "c"}, table.Keys())
	assert.Equal(t, 3, table.Len())
}
