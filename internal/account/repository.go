package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// UserRepository defines operations for managing users.
type UserRepository interface {
	FindByUserID(ctx context.Context, userID string) (*User, error)
	FindOrCreate(ctx context.Context, userID string) (*User, error)
	TouchLastSeen(ctx context.Context, userID string) error
	IncrementLookupCount(ctx context.Context, userID string) error
	LinkStripeCustomer(ctx context.Context, userID, stripeCustomerID string) error
}

// DBUserRepository implements UserRepository using MySQL.
type DBUserRepository struct {
	db *sqlx.DB
}

// NewDBUserRepository creates a new DBUserRepository.
func NewDBUserRepository(db *sqlx.DB) *DBUserRepository {
	return &DBUserRepository{db: db}
}

// FindByUserID returns the user with the given identifier, or nil if not found.
func (r *DBUserRepository) FindByUserID(ctx context.Context, userID string) (*User, error) {
	var user User
	err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(user) > %w", err)
	}
	return &user, nil
}

// FindOrCreate returns the user with the given identifier, inserting a new
// row first if none exists.
func (r *DBUserRepository) FindOrCreate(ctx context.Context, userID string) (*User, error) {
	user, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO users (user_id, last_seen_at) VALUES (?, ?)",
		userID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("db.ExecContext(insert user) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("result.LastInsertId() > %w", err)
	}

	created, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("user %d not found after insert", id)
	}
	return created, nil
}

// TouchLastSeen records activity for the user.
func (r *DBUserRepository) TouchLastSeen(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE users SET last_seen_at = ? WHERE user_id = ?",
		time.Now().UTC(), userID); err != nil {
		return fmt.Errorf("db.ExecContext(touch user) > %w", err)
	}
	return nil
}

// IncrementLookupCount bumps the user's lifetime lookup counter.
func (r *DBUserRepository) IncrementLookupCount(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE users SET lookup_count = lookup_count + 1 WHERE user_id = ?",
		userID); err != nil {
		return fmt.Errorf("db.ExecContext(increment lookup_count) > %w", err)
	}
	return nil
}

// LinkStripeCustomer associates the user with a payment provider customer.
func (r *DBUserRepository) LinkStripeCustomer(ctx context.Context, userID, stripeCustomerID string) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE users SET stripe_customer_id = ? WHERE user_id = ?",
		stripeCustomerID, userID); err != nil {
		return fmt.Errorf("db.ExecContext(link stripe customer) > %w", err)
	}
	return nil
}
