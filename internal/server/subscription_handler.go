package server

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/enorett/enorett/internal/account"
	"github.com/enorett/enorett/internal/billing"
)

// SubscriptionHandler handles premium purchase verification and status.
type SubscriptionHandler struct {
	users     account.UserRepository
	purchases billing.PurchaseRepository
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(users account.UserRepository, purchases billing.PurchaseRepository) *SubscriptionHandler {
	return &SubscriptionHandler{users: users, purchases: purchases}
}

type verifyRequest struct {
	UserID                string     `json:"userId"`
	StripeCustomerID      string     `json:"customerId"`
	StripeSessionID       string     `json:"sessionId"`
	StripePaymentIntentID string     `json:"paymentIntentId"`
	Type                  string     `json:"type"`
	Plan                  string     `json:"plan"`
	Amount                int64      `json:"amount"`
	Currency              string     `json:"currency"`
	ExpiresAt             *time.Time `json:"expiresAt"`
}

// Verify records a provider-confirmed purchase for a user. The payment flow
// itself happens outside this service; this endpoint only persists its
// outcome and answers the new entitlement state.
func (h *SubscriptionHandler) Verify(c fiber.Ctx) error {
	if h.users == nil || h.purchases == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "purchase store unavailable")
	}

	var request verifyRequest
	if err := c.Bind().Body(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if request.UserID == "" || request.StripeSessionID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "userId and sessionId are required")
	}

	user, err := h.users.FindOrCreate(c.Context(), request.UserID)
	if err != nil {
		slog.Error("failed to load user for purchase", "userId", request.UserID, "error", err)
		return fiber.ErrInternalServerError
	}
	if request.StripeCustomerID != "" && user.StripeCustomerID.String != request.StripeCustomerID {
		if err := h.users.LinkStripeCustomer(c.Context(), user.UserID, request.StripeCustomerID); err != nil {
			slog.Warn("failed to link customer", "userId", user.UserID, "error", err)
		}
	}

	purchase := &billing.Purchase{
		UserID:                request.UserID,
		StripeCustomerID:      request.StripeCustomerID,
		StripeSessionID:       request.StripeSessionID,
		StripePaymentIntentID: request.StripePaymentIntentID,
		Type:                  billing.PurchaseType(request.Type),
		Plan:                  request.Plan,
		Amount:                request.Amount,
		Currency:              request.Currency,
		ExpiresAt:             request.ExpiresAt,
	}
	if err := h.purchases.Create(c.Context(), purchase); err != nil {
		slog.Error("failed to record purchase", "userId", request.UserID, "error", err)
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"purchaseId": purchase.ID,
		"status":     purchase.Status,
		"active":     purchase.IsActive(),
	})
}

// Status answers GET /api/subscription/status/:userId with the user's
// current entitlement state.
func (h *SubscriptionHandler) Status(c fiber.Ctx) error {
	if h.purchases == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "purchase store unavailable")
	}

	userID := c.Params("userId")
	if userID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "userId is required")
	}

	purchase, err := h.purchases.FindActivePurchase(c.Context(), userID)
	if err != nil {
		slog.Error("failed to check subscription status", "userId", userID, "error", err)
		return fiber.ErrInternalServerError
	}
	if purchase == nil {
		return c.JSON(fiber.Map{"active": false})
	}

	response := fiber.Map{
		"active": true,
		"plan":   purchase.Plan,
		"status": purchase.Status,
		"type":   purchase.Type,
	}
	if purchase.ExpiresAt != nil {
		response["expiresAt"] = purchase.ExpiresAt
	}
	return c.JSON(response)
}
