package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PurchaseRepository defines operations for managing purchases.
type PurchaseRepository interface {
	FindActivePurchase(ctx context.Context, userID string) (*Purchase, error)
	FindByUserID(ctx context.Context, userID string) ([]Purchase, error)
	Create(ctx context.Context, purchase *Purchase) error
	UpdateStatus(ctx context.Context, id string, status PurchaseStatus, expiresAt *time.Time) error
}

// DBPurchaseRepository implements PurchaseRepository using MySQL.
type DBPurchaseRepository struct {
	db *sqlx.DB
}

// NewDBPurchaseRepository creates a new DBPurchaseRepository.
func NewDBPurchaseRepository(db *sqlx.DB) *DBPurchaseRepository {
	return &DBPurchaseRepository{db: db}
}

// FindActivePurchase returns the most recent purchase still granting the
// premium tier, or nil if the user has none. Expiry is evaluated here rather
// than in SQL so the active rule lives in one place (Purchase.IsActive).
func (r *DBPurchaseRepository) FindActivePurchase(ctx context.Context, userID string) (*Purchase, error) {
	purchases, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, purchase := range purchases {
		if purchase.IsActive() {
			return &purchase, nil
		}
	}
	return nil, nil
}

// FindByUserID returns all purchases for the user, most recent first.
func (r *DBPurchaseRepository) FindByUserID(ctx context.Context, userID string) ([]Purchase, error) {
	var purchases []Purchase
	if err := r.db.SelectContext(ctx, &purchases,
		"SELECT * FROM purchases WHERE user_id = ? ORDER BY purchased_at DESC",
		userID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(purchases) > %w", err)
	}
	return purchases, nil
}

// Create inserts a new purchase, assigning an ID when none is set.
func (r *DBPurchaseRepository) Create(ctx context.Context, purchase *Purchase) error {
	if purchase.ID == "" {
		purchase.ID = uuid.NewString()
	}
	if purchase.Type == "" {
		purchase.Type = PurchaseTypeOneTime
	}
	if purchase.Plan == "" {
		purchase.Plan = "Premium"
	}
	if purchase.Status == "" {
		purchase.Status = PurchaseStatusActive
	}
	if purchase.Currency == "" {
		purchase.Currency = "sek"
	}
	if purchase.PurchasedAt.IsZero() {
		purchase.PurchasedAt = time.Now().UTC()
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO purchases (id, user_id, stripe_customer_id, stripe_session_id, stripe_payment_intent_id,
			purchase_type, plan, status, expires_at, amount, currency, purchased_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		purchase.ID, purchase.UserID, purchase.StripeCustomerID, purchase.StripeSessionID,
		purchase.StripePaymentIntentID, purchase.Type, purchase.Plan, purchase.Status,
		purchase.ExpiresAt, purchase.Amount, purchase.Currency, purchase.PurchasedAt); err != nil {
		return fmt.Errorf("db.ExecContext(insert purchase) > %w", err)
	}
	return nil
}

// UpdateStatus transitions a purchase to a new status and expiry.
func (r *DBPurchaseRepository) UpdateStatus(ctx context.Context, id string, status PurchaseStatus, expiresAt *time.Time) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE purchases SET status = ?, expires_at = ? WHERE id = ?",
		status, expiresAt, id); err != nil {
		return fmt.Errorf("db.ExecContext(update purchase status) > %w", err)
	}
	return nil
}
