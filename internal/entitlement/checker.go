// Package entitlement answers whether a user currently holds the premium
// tier. The lookup pipeline only ever sees the resulting boolean.
package entitlement

import (
	"context"
	"strings"

	"github.com/enorett/enorett/internal/billing"
)

// Checker reports whether a user currently holds a valid, unexpired premium
// entitlement.
type Checker interface {
	IsEntitled(ctx context.Context, userID string) (bool, error)
}

//go:generate mockgen -source=checker.go -destination=../mocks/entitlement/mock_checker.go -package=mock_entitlement

// PurchaseChecker derives entitlement from the purchase records.
type PurchaseChecker struct {
	purchases billing.PurchaseRepository
}

// NewPurchaseChecker creates a new PurchaseChecker.
func NewPurchaseChecker(purchases billing.PurchaseRepository) *PurchaseChecker {
	return &PurchaseChecker{purchases: purchases}
}

// IsEntitled reports whether the user has any purchase still granting the
// premium tier. An empty user identifier is never entitled.
func (c *PurchaseChecker) IsEntitled(ctx context.Context, userID string) (bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return false, nil
	}
	purchase, err := c.purchases.FindActivePurchase(ctx, userID)
	if err != nil {
		return false, err
	}
	return purchase != nil, nil
}
