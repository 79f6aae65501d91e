package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.stripe.com"

// LineItem is one checkout session line. Either PriceID references an
// existing gateway price, or Name/UnitAmount describe an ad-hoc one.
type LineItem struct {
	PriceID     string
	Name        string
	Description string
	ImageURL    string
	UnitAmount  int64 // cents
	Currency    string
	Quantity    int64
}

// SessionParams describes one checkout session to create.
type SessionParams struct {
	LineItems         []LineItem
	CustomerEmail     string
	SuccessURL        string
	CancelURL         string
	ClientReferenceID string
	Metadata          map[string]string
	AllowedCountries  []string
}

// Session is the created checkout session.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// APIError is a non-2xx gateway response.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("stripe: %s (%s, http %d)", e.Message, e.Code, e.Status)
}

// Client is a minimal checkout-sessions client for the payment gateway's
// form-encoded API.
type Client struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// New constructs a client. The secret key is required.
func New(secretKey string) (*Client, error) {
	if strings.TrimSpace(secretKey) == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	return &Client{
		secretKey: secretKey,
		baseURL:   defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// SetBaseURL overrides the gateway endpoint, used in tests.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = strings.TrimRight(base, "/")
}

// CreateCheckoutSession creates a hosted checkout session and returns
// its ID and redirect URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, params SessionParams) (Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	if params.CustomerEmail != "" {
		form.Set("customer_email", params.CustomerEmail)
	}
	if params.ClientReferenceID != "" {
		form.Set("client_reference_id", params.ClientReferenceID)
	}
	for key, value := range params.Metadata {
		form.Set("metadata["+key+"]", value)
	}
	for i, country := range params.AllowedCountries {
		form.Set(fmt.Sprintf("shipping_address_collection[allowed_countries][%d]", i), country)
	}
	for i, item := range params.LineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[quantity]", strconv.FormatInt(item.Quantity, 10))
		if item.PriceID != "" {
			form.Set(prefix+"[price]", item.PriceID)
			continue
		}
		currency := item.Currency
		if currency == "" {
			currency = "usd"
		}
		form.Set(prefix+"[price_data][currency]", currency)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmount, 10))
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		if item.Description != "" {
			form.Set(prefix+"[price_data][product_data][description]", item.Description)
		}
		if item.ImageURL != "" {
			form.Set(prefix+"[price_data][product_data][images][0]", item.ImageURL)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("stripe request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Session{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Session{}, parseError(resp.StatusCode, body)
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return Session{}, fmt.Errorf("stripe response parse: %w", err)
	}
	if session.ID == "" || session.URL == "" {
		return Session{}, fmt.Errorf("stripe response missing session id or url")
	}
	return session, nil
}

func parseError(status int, body []byte) error {
	var parsed struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Error.Message == "" {
		return &APIError{Status: status, Code: "unknown", Message: http.StatusText(status)}
	}
	return &APIError{Status: status, Code: parsed.Error.Code, Message: parsed.Error.Message}
}
