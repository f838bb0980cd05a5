package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"drivethru/internal/domain"
)

type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

// ArchiveOrder writes a finalized order and its lines to durable storage.
// The ephemeral order ID becomes external_ref; replays of the same message
// are no-ops, which keeps the at-least-once delivery safe.
func (s *PostgresStore) ArchiveOrder(ctx context.Context, order *domain.OrderSession) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}
	defer tx.Rollback()

	var orderID int
	err = tx.QueryRow(`
		INSERT INTO archived_orders (external_ref, session_id, restaurant_id, status, subtotal, tax_amount, total_amount, created_at, finalized_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP)
		ON CONFLICT (external_ref) DO NOTHING
		RETURNING id
	`, order.ID, order.SessionID, order.RestaurantID, order.Status,
		order.Subtotal, order.TaxAmount, order.TotalAmount, order.CreatedAt).Scan(&orderID)
	if err == sql.ErrNoRows {
		// Already archived by an earlier delivery.
		return nil
	}
	if err != nil {
		return fmt.Errorf("insert archived order: %w", err)
	}

	for _, line := range order.Items {
		mods, _ := json.Marshal(line.Modifications)
		_, err := tx.Exec(`
			INSERT INTO archived_order_items (archived_order_id, line_ref, menu_item_id, quantity, unit_price, total_price, modifications)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, orderID, line.ID, line.MenuItemID, line.Quantity, line.UnitPrice, line.TotalPrice, mods)
		if err != nil {
			return fmt.Errorf("insert archived order item: %w", err)
		}
	}

	return tx.Commit()
}
