package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
)

func createListing(ctx context.Context, q querier, sellerID string, itemID int64, price int, snapshot domain.ListingSnapshot) (int64, error) {
	// Lock the item so a concurrent transfer or listing of it waits for us
	var owner string
	err := q.QueryRow(ctx, `SELECT user_id FROM inventory WHERE id = $1 FOR UPDATE`, itemID).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: item %d does not exist", domain.ErrItemNotEligible, itemID)
		}
		return 0, fmt.Errorf("failed to check item owner: %w", err)
	}
	if owner != sellerID {
		return 0, fmt.Errorf("%w: item %d is not owned by seller", domain.ErrItemNotEligible, itemID)
	}

	var id int64
	err = q.QueryRow(ctx, `
		INSERT INTO market_listings (seller_id, inventory_id, price, booba_type, booba_name, booba_image, booba_rarity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (inventory_id) DO NOTHING
		RETURNING id
	`, sellerID, itemID, price, snapshot.ItemType, snapshot.Name, snapshot.ImageRef, snapshot.Rarity).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isPgError(err, PgErrorCodeUniqueViolation) {
			return 0, fmt.Errorf("%w: item %d is already listed", domain.ErrItemNotEligible, itemID)
		}
		return 0, fmt.Errorf("failed to create listing: %w", err)
	}
	return id, nil
}

func getListingByID(ctx context.Context, q querier, listingID int64, lock bool) (*domain.MarketListing, error) {
	query := forUpdate(`SELECT `+listingColumns+` FROM market_listings WHERE id = $1`, lock)

	listing, err := scanListing(q.QueryRow(ctx, query, listingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return listing, nil
}

// removeListingIfPresent is the compare-and-delete claim: only one caller sees true
func removeListingIfPresent(ctx context.Context, q querier, listingID int64) (bool, error) {
	tag, err := q.Exec(ctx, `DELETE FROM market_listings WHERE id = $1`, listingID)
	if err != nil {
		return false, fmt.Errorf("failed to remove listing: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func removeListingOwnedBy(ctx context.Context, q querier, listingID int64, sellerID string) error {
	tag, err := q.Exec(ctx, `DELETE FROM market_listings WHERE id = $1 AND seller_id = $2`, listingID, sellerID)
	if err != nil {
		return fmt.Errorf("failed to cancel listing: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	err = q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM market_listings WHERE id = $1)`, listingID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check listing: %w", err)
	}
	if exists {
		return domain.ErrUnauthorized
	}
	return domain.ErrListingNotFound
}

func getActiveListings(ctx context.Context, q querier) ([]domain.MarketListing, error) {
	rows, err := q.Query(ctx, `
		SELECT `+listingColumns+`
		FROM market_listings
		ORDER BY listed_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	listings := []domain.MarketListing{}
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, *listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate listings: %w", err)
	}
	return listings, nil
}

func scanListing(row pgx.Row) (*domain.MarketListing, error) {
	var l domain.MarketListing
	err := row.Scan(
		&l.ID,
		&l.SellerID,
		&l.InventoryItemID,
		&l.Price,
		&l.ItemType,
		&l.Name,
		&l.ImageRef,
		&l.Rarity,
		&l.ListedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
