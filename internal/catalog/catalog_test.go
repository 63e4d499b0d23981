package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	it, ok := Get(1)
	require.True(t, ok)
	assert.Equal(t, "ProPulse Band", it.Name)
	assert.True(t, it.Price.Equal(decimal.RequireFromString("29.90")))

	_, ok = Get(99)
	assert.False(t, ok, "неизвестный id отвергается")
	_, ok = Get(0)
	assert.False(t, ok)
}

func TestAll_OrderedByID(t *testing.T) {
	items := All()
	require.Len(t, items, 4)
	for i := 1; i < len(items); i++ {
		assert.Less(t, items[i-1].ID, items[i].ID)
	}
}
