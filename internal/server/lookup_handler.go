package server

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/enorett/enorett/internal/account"
	"github.com/enorett/enorett/internal/entitlement"
	"github.com/enorett/enorett/internal/i18n"
	"github.com/enorett/enorett/internal/lookup"
	"github.com/enorett/enorett/internal/metrics"
)

// WordResolver is the lookup pipeline entry point the handler calls.
type WordResolver interface {
	Resolve(ctx context.Context, rawWord string, isEntitled bool) lookup.Result
}

// LookupHandler handles word lookup requests.
type LookupHandler struct {
	resolver     WordResolver
	entitlements entitlement.Checker
	users        account.UserRepository
	catalog      *i18n.Catalog
	metrics      *metrics.Metrics
}

// NewLookupHandler creates a new LookupHandler. The user repository may be
// nil when the service runs without a database.
func NewLookupHandler(
	resolver WordResolver,
	entitlements entitlement.Checker,
	users account.UserRepository,
	catalog *i18n.Catalog,
	m *metrics.Metrics,
) *LookupHandler {
	return &LookupHandler{
		resolver:     resolver,
		entitlements: entitlements,
		users:        users,
		catalog:      catalog,
		metrics:      m,
	}
}

// Lookup resolves GET /api/lookup?word=...&userId=... . Entitlement is
// resolved here so the pipeline only ever sees a boolean; an entitlement
// check failure degrades to the free tier rather than failing the lookup.
func (h *LookupHandler) Lookup(c fiber.Ctx) error {
	word := c.Query("word")
	userID := c.Query("userId")

	isEntitled := false
	if userID != "" {
		entitled, err := h.entitlements.IsEntitled(c.Context(), userID)
		if err != nil {
			slog.Warn("entitlement check failed", "userId", userID, "error", err)
		} else {
			isEntitled = entitled
		}
	}

	result := h.resolver.Resolve(c.Context(), word, isEntitled)
	h.metrics.RecordLookup(resolutionTier(result), string(result.Confidence))
	h.recordUserActivity(userID, result)

	status := fiber.StatusOK
	if result.ErrorCode == lookup.ErrorWordRequired {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(newLookupResponse(result, h.catalog))
}

// recordUserActivity bumps per-user lookup stats off the request path.
func (h *LookupHandler) recordUserActivity(userID string, result lookup.Result) {
	if h.users == nil || userID == "" || !result.Found() {
		return
	}
	go func() {
		ctx := context.Background()
		if err := h.users.IncrementLookupCount(ctx, userID); err != nil {
			slog.Warn("failed to record lookup stats", "userId", userID, "error", err)
			return
		}
		if err := h.users.TouchLastSeen(ctx, userID); err != nil {
			slog.Warn("failed to record user activity", "userId", userID, "error", err)
		}
	}()
}

func resolutionTier(result lookup.Result) string {
	switch {
	case result.Sources.Dictionary && result.IsPremiumData:
		return metrics.TierFull
	case result.Sources.Dictionary:
		return metrics.TierFree
	case result.RequiresPremium:
		return metrics.TierFull
	case result.Found():
		return metrics.TierRemote
	default:
		return metrics.TierNone
	}
}
