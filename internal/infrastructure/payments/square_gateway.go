package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"card_payments/internal/domain/entities"
)

const (
	SquareSandboxURL     = "https://connect.squareupsandbox.com"
	SquareProductionURL  = "https://connect.squareup.com"
	SquareDefaultVersion = "2025-01-23"
	SquareRequestTimeout = 30 * time.Second

	maxSquareResponseBytes = 1 << 20
)

var ErrMissingSquareAccessToken = errors.New("missing SQUARE_ACCESS_TOKEN")

// SquareOptions configures the REST client. BaseURL overrides the URL derived from
// Environment.
type SquareOptions struct {
	AccessToken string
	Environment string
	BaseURL     string
	APIVersion  string
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// SquareGateway talks JSON to the Square v2 API. One method, one request; there
// are no retries.
type SquareGateway struct {
	baseURL     string
	accessToken string
	apiVersion  string
	client      *http.Client
}

func NewSquareGateway(opts SquareOptions) (*SquareGateway, error) {
	token := strings.TrimSpace(opts.AccessToken)
	if token == "" {
		log.Printf("[square][gateway] missing SQUARE_ACCESS_TOKEN")
		return nil, ErrMissingSquareAccessToken
	}

	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = SquareSandboxURL
		if strings.EqualFold(strings.TrimSpace(opts.Environment), "production") {
			baseURL = SquareProductionURL
		}
	}
	version := strings.TrimSpace(opts.APIVersion)
	if version == "" {
		version = SquareDefaultVersion
	}
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = SquareRequestTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	log.Printf("[square][gateway] client initialized base_url=%s version=%s", baseURL, version)
	return &SquareGateway{baseURL: baseURL, accessToken: token, apiVersion: version, client: hc}, nil
}

func (g *SquareGateway) CreatePayment(ctx context.Context, p entities.ProviderCallParams) (entities.PaymentResult, error) {
	body := squareCreatePaymentRequest{
		IdempotencyKey: p.IdempotencyKey,
		SourceID:       p.SourceID,
		AmountMoney:    squareMoney{Amount: p.Amount, Currency: strings.ToUpper(p.Currency)},
		LocationID:     p.LocationID,
		CustomerID:     p.CustomerID,
		ReferenceID:    p.ReferenceID,
		Note:           p.Note,
		Autocomplete:   true,
	}

	var resp squarePaymentResponse
	if err := g.do(ctx, http.MethodPost, "/v2/payments", body, &resp, "Payment failed"); err != nil {
		return entities.PaymentResult{}, err
	}
	if resp.Payment == nil {
		return entities.PaymentResult{}, fmt.Errorf("%w: square response without payment", entities.ErrProviderUnavailable)
	}
	return resp.Payment.toResult(), nil
}

func (g *SquareGateway) GetPayment(ctx context.Context, id string) (entities.PaymentResult, error) {
	var resp squarePaymentResponse
	if err := g.do(ctx, http.MethodGet, "/v2/payments/"+url.PathEscape(id), nil, &resp, "Failed to retrieve payment"); err != nil {
		return entities.PaymentResult{}, err
	}
	if resp.Payment == nil {
		return entities.PaymentResult{}, fmt.Errorf("%w: square response without payment", entities.ErrProviderUnavailable)
	}
	return resp.Payment.toResult(), nil
}

func (g *SquareGateway) CreateCustomer(ctx context.Context, idempotencyKey string, in entities.CustomerInput) (entities.Customer, error) {
	body := squareCreateCustomerRequest{
		IdempotencyKey: idempotencyKey,
		GivenName:      in.GivenName,
		FamilyName:     in.FamilyName,
		EmailAddress:   in.EmailAddress,
		PhoneNumber:    in.PhoneNumber,
		CompanyName:    in.CompanyName,
		ReferenceID:    in.ReferenceID,
		Note:           in.Note,
	}

	var resp squareCustomerResponse
	if err := g.do(ctx, http.MethodPost, "/v2/customers", body, &resp, "Failed to create customer"); err != nil {
		return entities.Customer{}, err
	}
	if resp.Customer == nil {
		return entities.Customer{}, fmt.Errorf("%w: square response without customer", entities.ErrProviderUnavailable)
	}
	return resp.Customer.toEntity(), nil
}

func (g *SquareGateway) CreateCard(ctx context.Context, idempotencyKey string, in entities.CardInput) (entities.Card, error) {
	body := squareCreateCardRequest{IdempotencyKey: idempotencyKey, SourceID: in.SourceID}
	body.Card.CustomerID = in.CustomerID
	body.Card.CardholderName = in.CardholderName

	var resp squareCardResponse
	if err := g.do(ctx, http.MethodPost, "/v2/cards", body, &resp, "Failed to store card"); err != nil {
		return entities.Card{}, err
	}
	if resp.Card == nil {
		return entities.Card{}, fmt.Errorf("%w: square response without card", entities.ErrProviderUnavailable)
	}
	return resp.Card.toEntity(), nil
}

func (g *SquareGateway) ListLocations(ctx context.Context) ([]entities.Location, error) {
	var resp squareLocationsResponse
	if err := g.do(ctx, http.MethodGet, "/v2/locations", nil, &resp, "Failed to list locations"); err != nil {
		return nil, err
	}
	out := make([]entities.Location, 0, len(resp.Locations))
	for _, l := range resp.Locations {
		out = append(out, l.toEntity())
	}
	return out, nil
}

// do issues one request and decodes either the success body into out or the
// error list into a *entities.ProviderError. Anything else is a transport error.
func (g *SquareGateway) do(ctx context.Context, method, path string, in, out any, fallback string) error {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal square request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", entities.ErrProviderUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+g.accessToken)
	req.Header.Set("Square-Version", g.apiVersion)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[square][gateway] %s %s failed err=%v", method, path, err)
		return fmt.Errorf("%w: %v", entities.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxSquareResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", entities.ErrProviderUnavailable, err)
	}
	log.Printf("[square][gateway] %s %s status=%d elapsed=%s", method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp squareErrorResponse
		if jsonErr := json.Unmarshal(raw, &errResp); jsonErr != nil || len(errResp.Errors) == 0 {
			return fmt.Errorf("%w: square status %d", entities.ErrProviderUnavailable, resp.StatusCode)
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w: square status %d: %s", entities.ErrProviderUnavailable, resp.StatusCode, errResp.Errors[0].Detail)
		}
		return entities.NewProviderError(entities.ProviderSquare, resp.StatusCode, errResp.Errors, fallback)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode square response: %v", entities.ErrProviderUnavailable, err)
	}
	return nil
}
