package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-demo/internal/domain"
)

func TestOrderRepo_LinesKeepPositionOrder(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	customerID := f.customer(t, "yaho")
	beer := f.product(t, "beer", 20_000)
	chicken := f.product(t, "chicken", 10_000)

	o, err := f.orders.Create(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, customerID, o.CustomerID)
	assert.Empty(t, o.Lines)

	require.NoError(t, f.orders.AppendLine(ctx, o.ID, domain.SnapshotLine(0, beer, 5)))
	require.NoError(t, f.orders.AppendLine(ctx, o.ID, domain.SnapshotLine(1, chicken, 2)))

	found, err := f.orders.FindByID(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, found.Lines, 2)
	assert.Equal(t, beer.ID, found.Lines[0].ProductID)
	assert.Equal(t, chicken.ID, found.Lines[1].ProductID)
	assert.Equal(t, "beer", found.Lines[0].Name)
	assert.Equal(t, int64(20_000), found.Lines[0].Price)
	assert.Equal(t, 5, found.Lines[0].Quantity)
}

func TestOrderRepo_LineSurvivesProductDeletion(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	customerID := f.customer(t, "yaho")
	p := f.product(t, "beer", 20_000)
	o, err := f.orders.Create(ctx, customerID)
	require.NoError(t, err)
	require.NoError(t, f.orders.AppendLine(ctx, o.ID, domain.SnapshotLine(0, p, 1)))

	require.NoError(t, f.products.Delete(ctx, p.ID))

	found, err := f.orders.FindByID(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, found.Lines, 1)
	assert.Equal(t, "beer", found.Lines[0].Name)
}

func TestOrderRepo_DuplicatePositionRejected(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	customerID := f.customer(t, "yaho")
	p := f.product(t, "beer", 20_000)
	o, err := f.orders.Create(ctx, customerID)
	require.NoError(t, err)

	require.NoError(t, f.orders.AppendLine(ctx, o.ID, domain.SnapshotLine(0, p, 1)))
	err = f.orders.AppendLine(ctx, o.ID, domain.SnapshotLine(0, p, 1))
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestOrderRepo_FindAllByCustomer_OldestFirst(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	yaho := f.customer(t, "yaho")
	other := f.customer(t, "other")

	first, err := f.orders.Create(ctx, yaho)
	require.NoError(t, err)
	_, err = f.orders.Create(ctx, other)
	require.NoError(t, err)
	second, err := f.orders.Create(ctx, yaho)
	require.NoError(t, err)

	orders, err := f.orders.FindAllByCustomer(ctx, yaho)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
}

func TestOrderRepo_FindByID_Missing(t *testing.T) {
	f := setupFixture(t)

	_, err := f.orders.FindByID(context.Background(), 12345)
	assert.True(t, domain.IsNotFound(err))
}
