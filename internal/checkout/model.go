package checkout

import "errors"

// maxSummaryChars bounds the items_summary metadata value. The gateway
// caps metadata values at 500 characters; 450 leaves headroom.
const maxSummaryChars = 450

var (
	// ErrEmptyCart means the request carried no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrBadItem means an item was missing its identifier or had a
	// non-positive quantity.
	ErrBadItem = errors.New("invalid cart item")
	// ErrNotConfigured means no payment gateway key is present.
	ErrNotConfigured = errors.New("payment gateway not configured")
)

// CartItem is one raw cart entry as sent by the client. PriceRef marks a
// legacy item carrying a pre-existing gateway price id; ProductID marks
// an enhanced item priced from the catalog at checkout time.
type CartItem struct {
	PriceRef  string  `json:"priceId"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"` // client-side dollars, informational
	Quantity  int64   `json:"quantity"`
}

// LegacyItem references an existing gateway price object.
type LegacyItem struct {
	PriceRef string
	Quantity int64
}

// EnhancedItem is re-priced from current catalog data at checkout time.
type EnhancedItem struct {
	ProductID   string
	Quantity    int64
	ClientCents int64
	Name        string
	Image       string
}

// Summary is the informational response summary. Subtotal uses the
// client-supplied prices; the authoritative charge is whatever the
// gateway computes from the line items.
type Summary struct {
	SubtotalCents int64  `json:"subtotalCents"`
	ItemCount     int64  `json:"itemCount"`
	ItemsSummary  string `json:"itemsSummary"`
}
