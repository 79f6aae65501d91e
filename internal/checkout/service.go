package checkout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"storefront-backend/internal/catalog"
	"storefront-backend/internal/payments/stripe"
	"storefront-backend/internal/shared/metrics"
	"storefront-backend/internal/shared/telemetry"
)

// SessionCreator is the payment-gateway surface the service needs.
type SessionCreator interface {
	CreateCheckoutSession(ctx context.Context, params stripe.SessionParams) (stripe.Session, error)
}

// Service builds gateway checkout sessions from cart contents.
type Service struct {
	Gateway    SessionCreator
	Catalog    *catalog.Service
	SuccessURL string
	CancelURL  string
}

// Request is one checkout session build.
type Request struct {
	Items         []CartItem
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	SessionID     string
	UserID        string
}

// Result is the created session plus the informational summary.
type Result struct {
	URL       string  `json:"url"`
	SessionID string  `json:"sessionId"`
	Summary   Summary `json:"summary"`
}

// Create partitions cart items into legacy and enhanced shapes, re-prices
// enhanced items from the catalog, and creates the gateway session.
func (s *Service) Create(ctx context.Context, req Request) (Result, error) {
	if s.Gateway == nil {
		return Result{}, ErrNotConfigured
	}
	legacy, enhanced, err := partition(req.Items)
	if err != nil {
		return Result{}, err
	}

	lines := make([]stripe.LineItem, 0, len(legacy)+len(enhanced))
	for _, item := range legacy {
		lines = append(lines, stripe.LineItem{
			PriceID:  item.PriceRef,
			Quantity: item.Quantity,
		})
	}
	for _, item := range enhanced {
		line, err := s.priceFromCatalog(ctx, item)
		if err != nil {
			return Result{}, err
		}
		lines = append(lines, line)
	}

	summary := Summarize(req.Items)

	successURL := firstNonEmpty(req.SuccessURL, s.SuccessURL)
	cancelURL := firstNonEmpty(req.CancelURL, s.CancelURL)

	session, err := s.Gateway.CreateCheckoutSession(ctx, stripe.SessionParams{
		LineItems:         lines,
		CustomerEmail:     req.CustomerEmail,
		SuccessURL:        successURL,
		CancelURL:         cancelURL,
		ClientReferenceID: req.SessionID,
		AllowedCountries:  []string{"US", "CA", "GB"},
		Metadata: map[string]string{
			"items_summary": summary.ItemsSummary,
			"item_count":    fmt.Sprintf("%d", summary.ItemCount),
		},
	})
	if err != nil {
		metrics.IncCheckoutFailed()
		telemetry.Error("checkout session creation failed", map[string]interface{}{
			"session_id": req.SessionID,
			"error":      err.Error(),
		})
		return Result{}, err
	}

	metrics.IncCheckoutSession()
	return Result{
		URL:       session.URL,
		SessionID: session.ID,
		Summary:   summary,
	}, nil
}

// priceFromCatalog fetches the product's current price, name and image,
// ignoring whatever price the client sent.
func (s *Service) priceFromCatalog(ctx context.Context, item EnhancedItem) (stripe.LineItem, error) {
	product, err := s.Catalog.Get(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return stripe.LineItem{}, fmt.Errorf("%w: unknown product %q", ErrBadItem, item.ProductID)
		}
		return stripe.LineItem{}, err
	}
	if product.StripePriceID != "" {
		return stripe.LineItem{PriceID: product.StripePriceID, Quantity: item.Quantity}, nil
	}
	line := stripe.LineItem{
		Name:       product.Name,
		UnitAmount: int64(math.Round(product.Price * 100)),
		Quantity:   item.Quantity,
	}
	if len(product.Images) > 0 {
		line.ImageURL = product.Images[0]
	}
	return line, nil
}

// Summarize computes the informational subtotal from client-supplied
// prices and a truncated item summary string.
func Summarize(items []CartItem) Summary {
	var subtotal, count int64
	parts := make([]string, 0, len(items))
	for _, item := range items {
		cents := int64(math.Round(item.Price * 100))
		subtotal += cents * item.Quantity
		count += item.Quantity
		name := item.Name
		if name == "" {
			name = firstNonEmpty(item.ProductID, item.PriceRef)
		}
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, name))
	}
	summary := strings.Join(parts, ", ")
	if len(summary) > maxSummaryChars {
		summary = summary[:maxSummaryChars]
	}
	return Summary{
		SubtotalCents: subtotal,
		ItemCount:     count,
		ItemsSummary:  summary,
	}
}

// partition resolves each raw cart item into its legacy or enhanced
// shape, rejecting empty carts and bad quantities up front.
func partition(items []CartItem) ([]LegacyItem, []EnhancedItem, error) {
	if len(items) == 0 {
		return nil, nil, ErrEmptyCart
	}
	var legacy []LegacyItem
	var enhanced []EnhancedItem
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, nil, fmt.Errorf("%w: quantity must be positive", ErrBadItem)
		}
		switch {
		case item.PriceRef != "":
			legacy = append(legacy, LegacyItem{PriceRef: item.PriceRef, Quantity: item.Quantity})
		case item.ProductID != "":
			enhanced = append(enhanced, EnhancedItem{
				ProductID:   item.ProductID,
				Quantity:    item.Quantity,
				ClientCents: int64(math.Round(item.Price * 100)),
				Name:        item.Name,
				Image:       item.Image,
			})
		default:
			return nil, nil, fmt.Errorf("%w: priceId or productId is required", ErrBadItem)
		}
	}
	return legacy, enhanced, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
