package cart

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fooddelivery/backend/internal/domain/cart"
)

// MockCartRepository is a mock implementation of cart.Repository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Find(ctx context.Context, key cart.Key) (*cart.Cart, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) AddLine(ctx context.Context, key cart.Key, productID int64, price decimal.Decimal, quantity int) (*cart.Line, *cart.Cart, error) {
	args := m.Called(ctx, key, productID, price, quantity)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*cart.Line), args.Get(1).(*cart.Cart), args.Error(2)
}

func (m *MockCartRepository) UpdateQuantity(ctx context.Context, productID int64, quantity int) (*cart.Line, *cart.Cart, bool, error) {
	args := m.Called(ctx, productID, quantity)
	var line *cart.Line
	if args.Get(0) != nil {
		line = args.Get(0).(*cart.Line)
	}
	var c *cart.Cart
	if args.Get(1) != nil {
		c = args.Get(1).(*cart.Cart)
	}
	return line, c, args.Bool(2), args.Error(3)
}

func (m *MockCartRepository) DeleteLine(ctx context.Context, lineID int64) error {
	args := m.Called(ctx, lineID)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, key cart.Key) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCartRepository) FindAll(ctx context.Context) ([]*cart.Cart, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*cart.Cart), args.Error(1)
}

func testTime() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func intPtr(i int) *int { return &i }

func TestService_Get_AbsentCartYieldsEmptySlice(t *testing.T) {
	repo := new(MockCartRepository)
	key := cart.Key{Phone: "+998901234567", ShopID: 1}
	repo.On("Find", mock.Anything, key).Return(nil, nil)

	svc := NewService(repo)
	lines, err := svc.Get(context.Background(), "+998901234567", 1)
	require.NoError(t, err)
	require.NotNil(t, lines)
	assert.Empty(t, lines)
	repo.AssertExpectations(t)
}

func TestService_Get_ReturnsLines(t *testing.T) {
	key := cart.Key{Phone: "+998901234567", ShopID: 1}
	c := cart.NewCart(key, testTime())
	line, err := c.AddLine(1, 101, decimal.NewFromInt(35000), 2)
	require.NoError(t, err)

	repo := new(MockCartRepository)
	repo.On("Find", mock.Anything, key).Return(c, nil)

	svc := NewService(repo)
	lines, err := svc.Get(context.Background(), "+998901234567", 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Same(t, line, lines[0])
}

func TestService_AddItem(t *testing.T) {
	key := cart.Key{Phone: "+998901234567", ShopID: 1}
	c := cart.NewCart(key, testTime())
	price := decimal.NewFromInt(35000)
	line, err := c.AddLine(1, 101, price, 2)
	require.NoError(t, err)

	repo := new(MockCartRepository)
	repo.On("AddLine", mock.Anything, key, int64(101), price, 2).Return(line, c, nil)

	svc := NewService(repo)
	gotLine, gotCart, err := svc.AddItem(context.Background(), AddItemRequest{
		Phone:     "+998901234567",
		ShopID:    1,
		ProductID: 101,
		Price:     decPtr(price),
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.Same(t, line, gotLine)
	assert.Same(t, c, gotCart)
	repo.AssertExpectations(t)
}

func TestService_UpdateQuantity_Removal(t *testing.T) {
	key := cart.Key{Phone: "+998901234567", ShopID: 1}
	c := cart.NewCart(key, testTime())

	repo := new(MockCartRepository)
	repo.On("UpdateQuantity", mock.Anything, int64(101), 0).Return(nil, c, true, nil)

	svc := NewService(repo)
	line, gotCart, removed, err := svc.UpdateQuantity(context.Background(), UpdateQuantityRequest{
		CartID:    new(int64),
		ProductID: 101,
		Quantity:  intPtr(0),
	})
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Nil(t, line)
	assert.Same(t, c, gotCart)
	repo.AssertExpectations(t)
}

func TestService_DeleteItem(t *testing.T) {
	repo := new(MockCartRepository)
	repo.On("DeleteLine", mock.Anything, int64(5)).Return(nil)

	svc := NewService(repo)
	require.NoError(t, svc.DeleteItem(context.Background(), 5))
	repo.AssertExpectations(t)
}

func TestService_Clear(t *testing.T) {
	repo := new(MockCartRepository)
	repo.On("Clear", mock.Anything, cart.Key{Phone: "+998901234567", ShopID: 1}).Return(nil)

	svc := NewService(repo)
	require.NoError(t, svc.Clear(context.Background(), "+998901234567", 1))
	repo.AssertExpectations(t)
}
