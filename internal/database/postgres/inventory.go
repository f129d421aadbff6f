package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
)

func addItem(ctx context.Context, q querier, ownerID string, fields domain.ItemFields) (int64, error) {
	if err := ensureUser(ctx, q, ownerID); err != nil {
		return 0, err
	}

	var id int64
	err := q.QueryRow(ctx, `
		INSERT INTO inventory (user_id, booba_type, booba_name, booba_image, booba_rarity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, ownerID, fields.Type, fields.Name, fields.Image, fields.Rarity).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to add item: %w", err)
	}
	return id, nil
}

func getItem(ctx context.Context, q querier, itemID int64, lock bool) (*domain.InventoryItem, error) {
	query := forUpdate(`SELECT `+inventoryColumns+` FROM inventory WHERE id = $1`, lock)

	item, err := scanItem(q.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

func getOwner(ctx context.Context, q querier, itemID int64) (string, error) {
	var owner string
	err := q.QueryRow(ctx, `SELECT user_id FROM inventory WHERE id = $1`, itemID).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrItemNotFound
		}
		return "", fmt.Errorf("failed to get item owner: %w", err)
	}
	return owner, nil
}

// transferOwnership is a compare-and-swap on the owner column
func transferOwnership(ctx context.Context, q querier, itemID int64, expectedOwner, newOwner string) error {
	if err := ensureUser(ctx, q, newOwner); err != nil {
		return err
	}

	tag, err := q.Exec(ctx, `
		UPDATE inventory
		SET user_id = $3, acquired_at = NOW()
		WHERE id = $1 AND user_id = $2
	`, itemID, expectedOwner, newOwner)
	if err != nil {
		return fmt.Errorf("failed to transfer ownership: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: item %d is not owned by %s", domain.ErrConflict, itemID, expectedOwner)
	}
	return nil
}

func getItemsByOwner(ctx context.Context, q querier, ownerID string) ([]domain.InventoryItem, error) {
	rows, err := q.Query(ctx, `
		SELECT `+inventoryColumns+`
		FROM inventory
		WHERE user_id = $1
		ORDER BY acquired_at DESC, id DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory: %w", err)
	}
	return items, nil
}

func scanItem(row pgx.Row) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := row.Scan(
		&item.ID,
		&item.OwnerUserID,
		&item.ItemType,
		&item.Name,
		&item.ImageRef,
		&item.Rarity,
		&item.AcquiredAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
