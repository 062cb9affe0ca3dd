package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPurchase_IsActive(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		name     string
		purchase Purchase
		want     bool
	}{
		{
			name:     "active without expiry is lifetime access",
			purchase: Purchase{Status: PurchaseStatusActive},
			want:     true,
		},
		{
			name:     "active with future expiry",
			purchase: Purchase{Status: PurchaseStatusActive, ExpiresAt: &future},
			want:     true,
		},
		{
			name:     "trialing counts as active",
			purchase: Purchase{Status: PurchaseStatusTrialing, ExpiresAt: &future},
			want:     true,
		},
		{
			name:     "active but expired",
			purchase: Purchase{Status: PurchaseStatusActive, ExpiresAt: &past},
			want:     false,
		},
		{
			name:     "cancelled",
			purchase: Purchase{Status: PurchaseStatusCancelled},
			want:     false,
		},
		{
			name:     "expired status",
			purchase: Purchase{Status: PurchaseStatusExpired, ExpiresAt: &future},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.purchase.IsActive())
		})
	}
}
