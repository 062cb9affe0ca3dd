// Package account provides user domain models and repository interfaces.
package account

import (
	"database/sql"
	"time"
)

// User represents one extension installation, keyed by the opaque identifier
// the extension generates on install.
type User struct {
	ID               int64          `db:"id"`
	UserID           string         `db:"user_id"`
	Email            sql.NullString `db:"email"`
	StripeCustomerID sql.NullString `db:"stripe_customer_id"`
	LookupCount      int64          `db:"lookup_count"`
	LastSeenAt       time.Time      `db:"last_seen_at"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}
