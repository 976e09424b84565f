package cart

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddLine_Merge(t *testing.T) {
	c := NewCart(Key{Phone: "+998901234567", ShopID: 1}, time.Now())

	first, err := c.AddLine(1, 101, decimal.NewFromInt(35000), 2)
	require.NoError(t, err)
	second, err := c.AddLine(2, 101, decimal.NewFromInt(35000), 1)
	require.NoError(t, err)

	assert.Same(t, first, second, "duplicate add must merge into one line")
	assert.Len(t, c.Items, 1)
	assert.Equal(t, 3, second.Quantity)
	assert.Equal(t, int64(1), second.ID, "merged line keeps its original id")
}

func TestCart_AddLine_DistinctProducts(t *testing.T) {
	c := NewCart(Key{Phone: "+998901234567", ShopID: 1}, time.Now())

	_, err := c.AddLine(1, 101, decimal.NewFromInt(35000), 2)
	require.NoError(t, err)
	line, err := c.AddLine(2, 102, decimal.NewFromInt(45000), 1)
	require.NoError(t, err)

	assert.Len(t, c.Items, 2)
	assert.Equal(t, int64(2), line.ID)
	assert.Equal(t, int64(1), line.CartID)
}

func TestCart_AddLine_InvalidQuantity(t *testing.T) {
	c := NewCart(Key{Phone: "+998901234567", ShopID: 1}, time.Now())

	_, err := c.AddLine(1, 101, decimal.NewFromInt(35000), 0)
	assert.Error(t, err)
	assert.Empty(t, c.Items)
}

func TestCart_RemoveLineByProduct(t *testing.T) {
	c := NewCart(Key{Phone: "+998901234567", ShopID: 1}, time.Now())
	_, err := c.AddLine(1, 101, decimal.NewFromInt(35000), 2)
	require.NoError(t, err)

	assert.True(t, c.RemoveLineByProduct(101))
	assert.False(t, c.RemoveLineByProduct(101))
	assert.Empty(t, c.Items)
}

func TestCart_RemoveLineByID(t *testing.T) {
	c := NewCart(Key{Phone: "+998901234567", ShopID: 1}, time.Now())
	_, err := c.AddLine(7, 101, decimal.NewFromInt(35000), 2)
	require.NoError(t, err)

	assert.False(t, c.RemoveLineByID(8))
	assert.True(t, c.RemoveLineByID(7))
	assert.Empty(t, c.Items)
}

func TestCart_FindLine(t *testing.T) {
	c := NewCart(Key{Phone: "+998901234567", ShopID: 1}, time.Now())
	_, err := c.AddLine(1, 101, decimal.NewFromInt(35000), 2)
	require.NoError(t, err)

	assert.NotNil(t, c.FindLine(101))
	assert.Nil(t, c.FindLine(999))
}
