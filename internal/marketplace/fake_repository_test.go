package marketplace

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
	"github.com/osse101/BoobaMarket_Go/internal/repository"
)

// FakeRepository is a stateful in-memory repository.Marketplace.
// Units of work are fully serialized: BeginTx blocks until the previous
// transaction commits or rolls back, and writes land only on Commit.
type FakeRepository struct {
	txMu    sync.Mutex
	stateMu sync.RWMutex
	state   fakeState
}

type fakeState struct {
	balances      map[string]int
	items         map[int64]domain.InventoryItem
	listings      map[int64]domain.MarketListing
	nextItemID    int64
	nextListingID int64
	clock         time.Time
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		state: fakeState{
			balances: make(map[string]int),
			items:    make(map[int64]domain.InventoryItem),
			listings: make(map[int64]domain.MarketListing),
			clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func (s fakeState) clone() fakeState {
	c := s
	c.balances = make(map[string]int, len(s.balances))
	for k, v := range s.balances {
		c.balances[k] = v
	}
	c.items = make(map[int64]domain.InventoryItem, len(s.items))
	for k, v := range s.items {
		c.items[k] = v
	}
	c.listings = make(map[int64]domain.MarketListing, len(s.listings))
	for k, v := range s.listings {
		c.listings[k] = v
	}
	return c
}

// tick advances the fake clock so timestamps are strictly increasing
func (s *fakeState) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (f *FakeRepository) BeginTx(ctx context.Context) (repository.MarketplaceTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.txMu.Lock()
	f.stateMu.RLock()
	working := f.state.clone()
	f.stateMu.RUnlock()
	return &fakeTx{repo: f, state: working}, nil
}

func (f *FakeRepository) GetActiveListings(ctx context.Context) ([]domain.MarketListing, error) {
	f.stateMu.RLock()
	defer f.stateMu.RUnlock()
	return f.state.activeListings(), nil
}

func (f *FakeRepository) GetItemsByOwner(ctx context.Context, ownerID string) ([]domain.InventoryItem, error) {
	f.stateMu.RLock()
	defer f.stateMu.RUnlock()
	return f.state.itemsByOwner(ownerID), nil
}

func (f *FakeRepository) GetBalance(ctx context.Context, userID string) (int, error) {
	f.stateMu.RLock()
	defer f.stateMu.RUnlock()
	return f.state.balance(userID), nil
}

// SetOwner rewrites an item's owner outside any unit of work, simulating
// an out-of-band change that leaves a listing pointing at a foreign item.
func (f *FakeRepository) SetOwner(itemID int64, owner string) {
	f.txMu.Lock()
	defer f.txMu.Unlock()
	f.stateMu.Lock()
	defer f.stateMu.Unlock()
	item := f.state.items[itemID]
	item.OwnerUserID = owner
	f.state.items[itemID] = item
}

// Snapshot returns a copy of the committed state
func (f *FakeRepository) Snapshot() fakeState {
	f.stateMu.RLock()
	defer f.stateMu.RUnlock()
	return f.state.clone()
}

func (s fakeState) balance(userID string) int {
	if b, ok := s.balances[userID]; ok {
		return b
	}
	return domain.DefaultBalance
}

func (s fakeState) activeListings() []domain.MarketListing {
	out := make([]domain.MarketListing, 0, len(s.listings))
	for _, l := range s.listings {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ListedAt.Equal(out[j].ListedAt) {
			return out[i].ListedAt.After(out[j].ListedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (s fakeState) itemsByOwner(ownerID string) []domain.InventoryItem {
	out := []domain.InventoryItem{}
	for _, it := range s.items {
		if it.OwnerUserID == ownerID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AcquiredAt.Equal(out[j].AcquiredAt) {
			return out[i].AcquiredAt.After(out[j].AcquiredAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

type fakeTx struct {
	repo   *FakeRepository
	state  fakeState
	closed bool
}

var errFakeTxClosed = errors.New(domain.ErrMsgTxClosed)

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.closed {
		return errFakeTxClosed
	}
	t.closed = true
	t.repo.stateMu.Lock()
	t.repo.state = t.state
	t.repo.stateMu.Unlock()
	t.repo.txMu.Unlock()
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.closed {
		return errFakeTxClosed
	}
	t.closed = true
	t.repo.txMu.Unlock()
	return nil
}

func (t *fakeTx) GetBalance(ctx context.Context, userID string) (int, error) {
	return t.state.balance(userID), nil
}

func (t *fakeTx) AdjustBalance(ctx context.Context, userID string, delta int) (int, error) {
	next := t.state.balance(userID) + delta
	if next < 0 {
		return 0, domain.ErrInsufficientFunds
	}
	t.state.balances[userID] = next
	return next, nil
}

func (t *fakeTx) SetBalance(ctx context.Context, userID string, balance int) error {
	if balance < 0 {
		return domain.ErrNegativeBalance
	}
	t.state.balances[userID] = balance
	return nil
}

func (t *fakeTx) AddItem(ctx context.Context, ownerID string, fields domain.ItemFields) (int64, error) {
	if _, ok := t.state.balances[ownerID]; !ok {
		t.state.balances[ownerID] = domain.DefaultBalance
	}
	t.state.nextItemID++
	id := t.state.nextItemID
	t.state.items[id] = domain.InventoryItem{
		ID:          id,
		OwnerUserID: ownerID,
		ItemType:    fields.Type,
		Name:        fields.Name,
		ImageRef:    fields.Image,
		Rarity:      fields.Rarity,
		AcquiredAt:  t.state.tick(),
	}
	return id, nil
}

func (t *fakeTx) GetItem(ctx context.Context, itemID int64) (*domain.InventoryItem, error) {
	item, ok := t.state.items[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

func (t *fakeTx) GetOwner(ctx context.Context, itemID int64) (string, error) {
	item, ok := t.state.items[itemID]
	if !ok {
		return "", domain.ErrItemNotFound
	}
	return item.OwnerUserID, nil
}

func (t *fakeTx) TransferOwnership(ctx context.Context, itemID int64, expectedOwner, newOwner string) error {
	item, ok := t.state.items[itemID]
	if !ok || item.OwnerUserID != expectedOwner {
		return domain.ErrConflict
	}
	if _, ok := t.state.balances[newOwner]; !ok {
		t.state.balances[newOwner] = domain.DefaultBalance
	}
	item.OwnerUserID = newOwner
	item.AcquiredAt = t.state.tick()
	t.state.items[itemID] = item
	return nil
}

func (t *fakeTx) GetItemsByOwner(ctx context.Context, ownerID string) ([]domain.InventoryItem, error) {
	return t.state.itemsByOwner(ownerID), nil
}

func (t *fakeTx) CreateListing(ctx context.Context, sellerID string, itemID int64, price int, snapshot domain.ListingSnapshot) (int64, error) {
	item, ok := t.state.items[itemID]
	if !ok || item.OwnerUserID != sellerID {
		return 0, domain.ErrItemNotEligible
	}
	for _, l := range t.state.listings {
		if l.InventoryItemID == itemID {
			return 0, domain.ErrItemNotEligible
		}
	}
	t.state.nextListingID++
	id := t.state.nextListingID
	t.state.listings[id] = domain.MarketListing{
		ID:              id,
		SellerID:        sellerID,
		InventoryItemID: itemID,
		Price:           price,
		ListingSnapshot: snapshot,
		ListedAt:        t.state.tick(),
	}
	return id, nil
}

func (t *fakeTx) GetListingByID(ctx context.Context, listingID int64) (*domain.MarketListing, error) {
	l, ok := t.state.listings[listingID]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return &l, nil
}

func (t *fakeTx) RemoveListingIfPresent(ctx context.Context, listingID int64) (bool, error) {
	if _, ok := t.state.listings[listingID]; !ok {
		return false, nil
	}
	delete(t.state.listings, listingID)
	return true, nil
}

func (t *fakeTx) RemoveListingOwnedBy(ctx context.Context, listingID int64, sellerID string) error {
	l, ok := t.state.listings[listingID]
	if !ok {
		return domain.ErrListingNotFound
	}
	if l.SellerID != sellerID {
		return domain.ErrUnauthorized
	}
	delete(t.state.listings, listingID)
	return nil
}

func (t *fakeTx) GetActiveListings(ctx context.Context) ([]domain.MarketListing, error) {
	return t.state.activeListings(), nil
}

var (
	_ repository.Marketplace   = (*FakeRepository)(nil)
	_ repository.MarketplaceTx = (*fakeTx)(nil)
)
