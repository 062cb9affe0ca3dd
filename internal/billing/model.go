// Package billing provides premium purchase domain models and repository
// interfaces.
package billing

import (
	"time"
)

type PurchaseType string

const (
	PurchaseTypeOneTime      PurchaseType = "one-time"
	PurchaseTypeSubscription PurchaseType = "subscription"
)

type PurchaseStatus string

const (
	PurchaseStatusActive    PurchaseStatus = "active"
	PurchaseStatusTrialing  PurchaseStatus = "trialing"
	PurchaseStatusExpired   PurchaseStatus = "expired"
	PurchaseStatusCancelled PurchaseStatus = "cancelled"
)

// Purchase records one premium purchase or subscription for a user.
type Purchase struct {
	ID                    string         `db:"id"`
	UserID                string         `db:"user_id"`
	StripeCustomerID      string         `db:"stripe_customer_id"`
	StripeSessionID       string         `db:"stripe_session_id"`
	StripePaymentIntentID string         `db:"stripe_payment_intent_id"`
	Type                  PurchaseType   `db:"purchase_type"`
	Plan                  string         `db:"plan"`
	Status                PurchaseStatus `db:"status"`
	// ExpiresAt nil means lifetime access.
	ExpiresAt   *time.Time `db:"expires_at"`
	Amount      int64      `db:"amount"`
	Currency    string     `db:"currency"`
	PurchasedAt time.Time  `db:"purchased_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// IsActive reports whether the purchase currently grants the premium tier.
func (p Purchase) IsActive() bool {
	if p.Status != PurchaseStatusActive && p.Status != PurchaseStatusTrialing {
		return false
	}
	if p.ExpiresAt != nil && p.ExpiresAt.Before(time.Now()) {
		return false
	}
	return true
}
