package payments

import "card_payments/internal/domain/entities"

// Wire types of the Square v2 REST API. Money amounts are JSON integers in the
// smallest currency unit and decode straight into int64.

type squareMoney struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type squareCreatePaymentRequest struct {
	IdempotencyKey string      `json:"idempotency_key"`
	SourceID       string      `json:"source_id"`
	AmountMoney    squareMoney `json:"amount_money"`
	LocationID     string      `json:"location_id,omitempty"`
	CustomerID     string      `json:"customer_id,omitempty"`
	ReferenceID    string      `json:"reference_id,omitempty"`
	Note           string      `json:"note,omitempty"`
	Autocomplete   bool        `json:"autocomplete"`
}

type squareCard struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customer_id"`
	CardBrand      string `json:"card_brand"`
	Last4          string `json:"last_4"`
	ExpMonth       int64  `json:"exp_month"`
	ExpYear        int64  `json:"exp_year"`
	CardholderName string `json:"cardholder_name"`
	Enabled        bool   `json:"enabled"`
}

type squarePayment struct {
	ID            string       `json:"id"`
	Status        string       `json:"status"`
	AmountMoney   *squareMoney `json:"amount_money"`
	TotalMoney    *squareMoney `json:"total_money"`
	ReceiptNumber string       `json:"receipt_number"`
	ReceiptURL    string       `json:"receipt_url"`
	CustomerID    string       `json:"customer_id"`
	LocationID    string       `json:"location_id"`
	CreatedAt     string       `json:"created_at"`
	UpdatedAt     string       `json:"updated_at"`
	CardDetails   *struct {
		Status string      `json:"status"`
		Card   *squareCard `json:"card"`
	} `json:"card_details"`
}

type squarePaymentResponse struct {
	Payment *squarePayment `json:"payment"`
}

type squareCreateCustomerRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
	GivenName      string `json:"given_name,omitempty"`
	FamilyName     string `json:"family_name,omitempty"`
	EmailAddress   string `json:"email_address,omitempty"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	ReferenceID    string `json:"reference_id,omitempty"`
	Note           string `json:"note,omitempty"`
}

type squareCustomer struct {
	ID           string `json:"id"`
	GivenName    string `json:"given_name"`
	FamilyName   string `json:"family_name"`
	EmailAddress string `json:"email_address"`
	PhoneNumber  string `json:"phone_number"`
	CompanyName  string `json:"company_name"`
	ReferenceID  string `json:"reference_id"`
	CreatedAt    string `json:"created_at"`
}

type squareCustomerResponse struct {
	Customer *squareCustomer `json:"customer"`
}

type squareCreateCardRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
	SourceID       string `json:"source_id"`
	Card           struct {
		CustomerID     string `json:"customer_id"`
		CardholderName string `json:"cardholder_name,omitempty"`
	} `json:"card"`
}

type squareCardResponse struct {
	Card *squareCard `json:"card"`
}

type squareLocation struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Address      map[string]any `json:"address"`
	Status       string         `json:"status"`
	Capabilities []string       `json:"capabilities"`
}

type squareLocationsResponse struct {
	Locations []squareLocation `json:"locations"`
}

type squareErrorResponse struct {
	Errors []entities.ProviderErrorDetail `json:"errors"`
}

func (p *squarePayment) toResult() entities.PaymentResult {
	res := entities.PaymentResult{
		Provider:      entities.ProviderSquare,
		ID:            p.ID,
		Status:        p.Status,
		Outcome:       entities.OutcomeFor(entities.ProviderSquare, p.Status),
		ReceiptNumber: p.ReceiptNumber,
		ReceiptURL:    p.ReceiptURL,
		CustomerID:    p.CustomerID,
		LocationID:    p.LocationID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	money := p.AmountMoney
	if money == nil {
		money = p.TotalMoney
	}
	if money != nil {
		res.Amount = money.Amount
		res.Currency = money.Currency
	}
	if p.CardDetails != nil && p.CardDetails.Card != nil {
		c := p.CardDetails.Card
		res.Card = &entities.CardSummary{
			Brand:    c.CardBrand,
			LastFour: c.Last4,
			ExpMonth: c.ExpMonth,
			ExpYear:  c.ExpYear,
		}
	}
	return res
}

func (c *squareCard) toEntity() entities.Card {
	return entities.Card{
		ID:             c.ID,
		CustomerID:     c.CustomerID,
		CardBrand:      c.CardBrand,
		LastFour:       c.Last4,
		ExpMonth:       c.ExpMonth,
		ExpYear:        c.ExpYear,
		CardholderName: c.CardholderName,
		Enabled:        c.Enabled,
	}
}

func (c *squareCustomer) toEntity() entities.Customer {
	return entities.Customer{
		ID:           c.ID,
		GivenName:    c.GivenName,
		FamilyName:   c.FamilyName,
		EmailAddress: c.EmailAddress,
		PhoneNumber:  c.PhoneNumber,
		CompanyName:  c.CompanyName,
		ReferenceID:  c.ReferenceID,
		CreatedAt:    c.CreatedAt,
	}
}

func (l squareLocation) toEntity() entities.Location {
	loc := entities.Location{
		ID:           l.ID,
		Name:         l.Name,
		Status:       l.Status,
		Capabilities: l.Capabilities,
	}
	if l.Address != nil {
		loc.Address = l.Address
	}
	if loc.Capabilities == nil {
		loc.Capabilities = []string{}
	}
	return loc
}
