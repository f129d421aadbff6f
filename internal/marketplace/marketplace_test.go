package marketplace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
)

var blueBooba = domain.ItemFields{Type: "classic", Name: "Blue Booba", Image: "blue.png", Rarity: "rare"}

func newFakeService(t *testing.T) (Service, *FakeRepository) {
	t.Helper()
	repo := NewFakeRepository()
	return NewService(repo), repo
}

func mustGrant(t *testing.T, svc Service, owner string) int64 {
	t.Helper()
	id, err := svc.AddInventoryItem(context.Background(), owner, blueBooba)
	require.NoError(t, err)
	return id
}

func mustList(t *testing.T, svc Service, seller string, itemID int64, price int) int64 {
	t.Helper()
	id, err := svc.CreateListing(context.Background(), seller, itemID, price)
	require.NoError(t, err)
	return id
}

func TestUnknownUserHasDefaultBalance(t *testing.T) {
	svc, _ := newFakeService(t)

	balance, err := svc.GetBalance(context.Background(), "stranger")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBalance, balance)
}

func TestBuy_AliceBobCarol(t *testing.T) {
	svc, _ := newFakeService(t)
	ctx := context.Background()

	item := mustGrant(t, svc, "A")
	listing := mustList(t, svc, "A", item, 30)

	result, err := svc.Buy(ctx, "B", listing)
	require.NoError(t, err)
	assert.Equal(t, 20, result.BuyerBalance)
	assert.Equal(t, item, result.InventoryItemID)

	balanceA, _ := svc.GetBalance(ctx, "A")
	balanceB, _ := svc.GetBalance(ctx, "B")
	assert.Equal(t, 80, balanceA)
	assert.Equal(t, 20, balanceB)

	invB, err := svc.GetInventory(ctx, "B")
	require.NoError(t, err)
	require.Len(t, invB.Items, 1)
	assert.Equal(t, item, invB.Items[0].ID)

	listings, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)

	_, err = svc.Buy(ctx, "C", listing)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
	balanceC, _ := svc.GetBalance(ctx, "C")
	assert.Equal(t, domain.DefaultBalance, balanceC)
}

func TestBuy_ConservesMoney(t *testing.T) {
	svc, _ := newFakeService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetBalance(ctx, "seller", 13))
	require.NoError(t, svc.SetBalance(ctx, "buyer", 99))
	item := mustGrant(t, svc, "seller")
	listing := mustList(t, svc, "seller", item, 42)

	_, err := svc.Buy(ctx, "buyer", listing)
	require.NoError(t, err)

	s, _ := svc.GetBalance(ctx, "seller")
	b, _ := svc.GetBalance(ctx, "buyer")
	assert.Equal(t, 13+99, s+b)
	assert.Equal(t, 55, s)
	assert.Equal(t, 57, b)
}

func TestBuy_ExactBalanceSucceeds(t *testing.T) {
	svc, _ := newFakeService(t)
	item := mustGrant(t, svc, "A")
	listing := mustList(t, svc, "A", item, domain.DefaultBalance)

	result, err := svc.Buy(context.Background(), "B", listing)

	require.NoError(t, err)
	assert.Equal(t, 0, result.BuyerBalance)
}

func TestBuy_InsufficientFundsLeavesStateUntouched(t *testing.T) {
	svc, repo := newFakeService(t)
	item := mustGrant(t, svc, "A")
	listing := mustList(t, svc, "A", item, 51)
	before := repo.Snapshot()

	_, err := svc.Buy(context.Background(), "B", listing)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	after := repo.Snapshot()
	assert.Equal(t, before.balances, after.balances)
	assert.Equal(t, before.items, after.items)
	assert.Equal(t, before.listings, after.listings)
}

func TestBuy_SelfTradeLeavesStateUntouched(t *testing.T) {
	svc, repo := newFakeService(t)
	item := mustGrant(t, svc, "A")
	listing := mustList(t, svc, "A", item, 10)
	before := repo.Snapshot()

	_, err := svc.Buy(context.Background(), "A", listing)

	assert.ErrorIs(t, err, domain.ErrSelfTrade)
	assert.Equal(t, before.listings, repo.Snapshot().listings)
	assert.Equal(t, before.balances, repo.Snapshot().balances)
}

func TestBuy_DivergedOwnershipIsPurged(t *testing.T) {
	svc, repo := newFakeService(t)
	ctx := context.Background()
	item := mustGrant(t, svc, "A")
	listing := mustList(t, svc, "A", item, 10)
	repo.SetOwner(item, "Z")

	_, err := svc.Buy(ctx, "B", listing)

	assert.ErrorIs(t, err, domain.ErrInternal)
	assert.ErrorIs(t, err, domain.ErrConflict)

	state := repo.Snapshot()
	assert.Empty(t, state.listings)
	assert.Equal(t, "Z", state.items[item].OwnerUserID)
	balanceB, _ := svc.GetBalance(ctx, "B")
	balanceA, _ := svc.GetBalance(ctx, "A")
	assert.Equal(t, domain.DefaultBalance, balanceB)
	assert.Equal(t, domain.DefaultBalance, balanceA)
}

func TestCreateListing_Rules(t *testing.T) {
	svc, _ := newFakeService(t)
	ctx := context.Background()
	item := mustGrant(t, svc, "A")

	_, err := svc.CreateListing(ctx, "B", item, 10)
	assert.ErrorIs(t, err, domain.ErrItemNotEligible, "non-owner cannot list")

	_, err = svc.CreateListing(ctx, "A", 9999, 10)
	assert.ErrorIs(t, err, domain.ErrItemNotEligible, "missing item cannot be listed")

	first := mustList(t, svc, "A", item, 10)
	_, err = svc.CreateListing(ctx, "A", item, 20)
	assert.ErrorIs(t, err, domain.ErrItemNotEligible, "item can only be listed once")

	require.NoError(t, svc.Cancel(ctx, "A", first))
	second := mustList(t, svc, "A", item, 20)
	assert.NotEqual(t, first, second)
}

func TestCreateListing_SnapshotsDisplayFields(t *testing.T) {
	svc, _ := newFakeService(t)
	item := mustGrant(t, svc, "A")
	mustList(t, svc, "A", item, 10)

	listings, err := svc.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, blueBooba.Type, listings[0].ItemType)
	assert.Equal(t, blueBooba.Name, listings[0].Name)
	assert.Equal(t, blueBooba.Image, listings[0].ImageRef)
	assert.Equal(t, blueBooba.Rarity, listings[0].Rarity)
	assert.Equal(t, "A", listings[0].SellerID)
}

func TestListActive_NewestFirst(t *testing.T) {
	svc, _ := newFakeService(t)
	var ids []int64
	for i := 0; i < 3; i++ {
		item := mustGrant(t, svc, "A")
		ids = append(ids, mustList(t, svc, "A", item, 10+i))
	}

	listings, err := svc.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, listings, 3)
	assert.Equal(t, ids[2], listings[0].ID)
	assert.Equal(t, ids[1], listings[1].ID)
	assert.Equal(t, ids[0], listings[2].ID)
}

func TestCancel_Authorization(t *testing.T) {
	svc, _ := newFakeService(t)
	ctx := context.Background()
	item := mustGrant(t, svc, "A")
	listing := mustList(t, svc, "A", item, 10)

	assert.ErrorIs(t, svc.Cancel(ctx, "B", listing), domain.ErrUnauthorized)

	listings, _ := svc.ListActive(ctx)
	assert.Len(t, listings, 1, "foreign cancel must not remove the listing")

	require.NoError(t, svc.Cancel(ctx, "A", listing))
	assert.ErrorIs(t, svc.Cancel(ctx, "A", listing), domain.ErrListingNotFound)

	inv, _ := svc.GetInventory(ctx, "A")
	assert.Len(t, inv.Items, 1, "cancel keeps the item with its owner")
}

func TestGetInventory_NewestFirst(t *testing.T) {
	svc, _ := newFakeService(t)
	first := mustGrant(t, svc, "A")
	second := mustGrant(t, svc, "A")

	inv, err := svc.GetInventory(context.Background(), "A")

	require.NoError(t, err)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, second, inv.Items[0].ID)
	assert.Equal(t, first, inv.Items[1].ID)
	assert.Equal(t, domain.DefaultBalance, inv.Balance)
}
