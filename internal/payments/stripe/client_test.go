package stripe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestNewRequiresSecretKey(t *testing.T) {
	if _, err := New("  "); err == nil {
		t.Fatal("expected error for blank secret key")
	}
	if _, err := New("sk_test_abc"); err != nil {
		t.Fatalf("New: %v", err)
	}
}

func TestCreateCheckoutSessionEncodesForm(t *testing.T) {
	var got url.Values
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/checkout/sessions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		got = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_test_xyz","url":"https://checkout.stripe.com/pay/cs_test_xyz"}`))
	}))
	defer srv.Close()

	client, err := New("sk_test_abc")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	client.SetBaseURL(srv.URL)

	session, err := client.CreateCheckoutSession(context.Background(), SessionParams{
		LineItems: []LineItem{
			{PriceID: "price_123", Quantity: 2},
			{Name: "Navy Suit", UnitAmount: 39900, Quantity: 1, ImageURL: "https://img.example/suit.jpg"},
		},
		CustomerEmail:     "buyer@example.com",
		SuccessURL:        "https://shop.example/success",
		CancelURL:         "https://shop.example/cart",
		ClientReferenceID: "sess-1",
		Metadata:          map[string]string{"item_count": "3"},
		AllowedCountries:  []string{"US", "CA"},
	})
	if err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}
	if session.ID != "cs_test_xyz" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if auth != "Bearer sk_test_abc" {
		t.Fatalf("unexpected authorization header: %q", auth)
	}

	checks := map[string]string{
		"mode":                       "payment",
		"success_url":                "https://shop.example/success",
		"customer_email":             "buyer@example.com",
		"client_reference_id":        "sess-1",
		"metadata[item_count]":       "3",
		"line_items[0][price]":       "price_123",
		"line_items[0][quantity]":    "2",
		"line_items[1][price_data][currency]":                   "usd",
		"line_items[1][price_data][unit_amount]":                "39900",
		"line_items[1][price_data][product_data][name]":         "Navy Suit",
		"line_items[1][price_data][product_data][images][0]":    "https://img.example/suit.jpg",
		"shipping_address_collection[allowed_countries][0]":     "US",
		"shipping_address_collection[allowed_countries][1]":     "CA",
	}
	for key, want := range checks {
		if got.Get(key) != want {
			t.Errorf("form[%q] = %q, want %q", key, got.Get(key), want)
		}
	}
	if got.Get("line_items[0][price_data][currency]") != "" {
		t.Error("price-referencing line must not carry price_data")
	}
}

func TestCreateCheckoutSessionAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"code":"card_declined","message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	client, err := New("sk_test_abc")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	client.SetBaseURL(srv.URL)

	_, err = client.CreateCheckoutSession(context.Background(), SessionParams{
		SuccessURL: "https://shop.example/success",
		CancelURL:  "https://shop.example/cart",
	})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusPaymentRequired || apiErr.Code != "card_declined" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestCreateCheckoutSessionMalformedErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client, err := New("sk_test_abc")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	client.SetBaseURL(srv.URL)

	_, err = client.CreateCheckoutSession(context.Background(), SessionParams{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != "unknown" {
		t.Fatalf("expected unknown code, got %q", apiErr.Code)
	}
}
