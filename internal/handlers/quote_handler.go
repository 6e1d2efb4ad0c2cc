package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/miniproductivity/backend/internal/dto"
	"github.com/miniproductivity/backend/internal/services"
)

// QuoteFetcher is the slice of QuoteService the handler needs.
type QuoteFetcher interface {
	Random(ctx context.Context) (*dto.QuoteResponse, error)
}

type QuoteHandler struct {
	quotes QuoteFetcher
}

func NewQuoteHandler(quotes QuoteFetcher) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// Random proxies one motivational quote. Upstream failures are logged and
// surface as a generic 500; an empty upstream result is a 404.
func (h *QuoteHandler) Random(c *fiber.Ctx) error {
	quote, err := h.quotes.Random(c.UserContext())
	if err != nil {
		if errors.Is(err, services.ErrNoQuote) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: "No quote found",
			})
		}
		slog.Error("quote fetch failed", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to fetch quote",
		})
	}
	return c.JSON(quote)
}
