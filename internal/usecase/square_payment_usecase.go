package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"card_payments/internal/domain/entities"
	"card_payments/internal/usecase/interfaces"
)

// ISquarePaymentUseCase covers the point-of-sale flows: direct charges, customer
// records, card vaulting and charges against vaulted cards.
type ISquarePaymentUseCase interface {
	CreatePayment(ctx context.Context, in entities.PaymentInput) (entities.PaymentResult, error)
	PayWithStoredCard(ctx context.Context, in entities.PaymentInput) (entities.PaymentResult, error)
	CreateCustomer(ctx context.Context, in entities.CustomerInput) (entities.Customer, error)
	StoreCard(ctx context.Context, in entities.CardInput) (entities.Card, error)
	GetPayment(ctx context.Context, id string) (entities.PaymentResult, error)
	ListLocations(ctx context.Context) ([]entities.Location, error)
}

type SquarePaymentUseCase struct {
	gateway    interfaces.ISquareGateway
	keys       interfaces.IIdempotencyKeyGenerator
	recorder   interfaces.ITransactionRecorder
	policy     entities.PaymentPolicy
	locationID string
	now        func() time.Time
}

var _ ISquarePaymentUseCase = (*SquarePaymentUseCase)(nil)

func NewSquarePaymentUseCase(gateway interfaces.ISquareGateway, keys interfaces.IIdempotencyKeyGenerator, recorder interfaces.ITransactionRecorder, policy entities.PaymentPolicy, locationID string) *SquarePaymentUseCase {
	return &SquarePaymentUseCase{
		gateway:    gateway,
		keys:       keys,
		recorder:   recorder,
		policy:     policy,
		locationID: strings.TrimSpace(locationID),
		now:        time.Now,
	}
}

func (u *SquarePaymentUseCase) CreatePayment(ctx context.Context, in entities.PaymentInput) (entities.PaymentResult, error) {
	log.Printf("[square][usecase] create-payment start raw_amount=%q currency=%q", in.Amount, in.Currency)
	req, err := ValidatePayment(in, u.policy, FieldSourceID)
	if err != nil {
		log.Printf("[square][usecase] create-payment invalid input err=%v", err)
		return entities.PaymentResult{}, err
	}
	return u.charge(ctx, req, "")
}

// PayWithStoredCard charges a vaulted card; in.SourceID holds the card id.
func (u *SquarePaymentUseCase) PayWithStoredCard(ctx context.Context, in entities.PaymentInput) (entities.PaymentResult, error) {
	log.Printf("[square][usecase] pay-with-stored-card start raw_amount=%q customer_id=%q", in.Amount, in.CustomerID)
	req, err := ValidatePayment(in, u.policy, FieldCardID)
	if err != nil {
		log.Printf("[square][usecase] pay-with-stored-card invalid input err=%v", err)
		return entities.PaymentResult{}, err
	}
	return u.charge(ctx, req, req.SourceID)
}

func (u *SquarePaymentUseCase) charge(ctx context.Context, req entities.PaymentRequest, cardID string) (entities.PaymentResult, error) {
	if u.gateway == nil {
		log.Printf("[square][usecase] gateway not configured")
		return entities.PaymentResult{}, ErrGatewayNotConfigured
	}
	if req.LocationID == "" {
		req.LocationID = u.locationID
	}
	if req.ReferenceID == "" {
		req.ReferenceID = fmt.Sprintf("order_%d", u.now().UnixMilli())
	}

	ctx = context.WithoutCancel(ctx)
	params := entities.NewProviderCallParams(req, u.keys.NewKey(), req.ReferenceID)
	result, err := u.gateway.CreatePayment(ctx, params)
	if err != nil {
		log.Printf("[square][usecase] charge failed reference_id=%s err=%v", req.ReferenceID, err)
		return entities.PaymentResult{}, err
	}
	log.Printf("[square][usecase] charge success payment_id=%s status=%s amount=%d currency=%s", result.ID, result.Status, result.Amount, result.Currency)

	u.record(ctx, entities.NewTransaction(result, cardID, u.now()))
	return result, nil
}

// record never fails the charge it belongs to.
func (u *SquarePaymentUseCase) record(ctx context.Context, tx entities.Transaction) {
	if u.recorder == nil {
		log.Printf("[square][usecase] %v payment_id=%s", ErrRecorderNotConfigured, tx.ID)
		return
	}
	if err := u.recorder.Record(ctx, tx); err != nil {
		log.Printf("[square][usecase] record transaction failed payment_id=%s err=%v", tx.ID, err)
	}
}

func (u *SquarePaymentUseCase) CreateCustomer(ctx context.Context, in entities.CustomerInput) (entities.Customer, error) {
	in = trimCustomerInput(in)
	if in.GivenName == "" && in.FamilyName == "" && in.EmailAddress == "" && in.PhoneNumber == "" && in.CompanyName == "" {
		return entities.Customer{}, newValidationError("givenName", "At least one of givenName, familyName, emailAddress, phoneNumber or companyName is required")
	}
	if u.gateway == nil {
		return entities.Customer{}, ErrGatewayNotConfigured
	}

	customer, err := u.gateway.CreateCustomer(context.WithoutCancel(ctx), u.keys.NewKey(), in)
	if err != nil {
		log.Printf("[square][usecase] create-customer failed err=%v", err)
		return entities.Customer{}, err
	}
	log.Printf("[square][usecase] create-customer success customer_id=%s", customer.ID)
	return customer, nil
}

func trimCustomerInput(in entities.CustomerInput) entities.CustomerInput {
	in.GivenName = strings.TrimSpace(in.GivenName)
	in.FamilyName = strings.TrimSpace(in.FamilyName)
	in.EmailAddress = strings.TrimSpace(in.EmailAddress)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.ReferenceID = strings.TrimSpace(in.ReferenceID)
	in.Note = strings.TrimSpace(in.Note)
	return in
}

func (u *SquarePaymentUseCase) StoreCard(ctx context.Context, in entities.CardInput) (entities.Card, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.SourceID = strings.TrimSpace(in.SourceID)
	in.CardholderName = strings.TrimSpace(in.CardholderName)

	ve := &ValidationError{}
	if in.CustomerID == "" {
		ve.add(FieldCustomerID, "Customer ID is required")
	}
	if in.SourceID == "" {
		ve.add(FieldSourceID, "Source ID or card nonce is required")
	}
	if err := ve.orNil(); err != nil {
		return entities.Card{}, err
	}
	if u.gateway == nil {
		return entities.Card{}, ErrGatewayNotConfigured
	}

	card, err := u.gateway.CreateCard(context.WithoutCancel(ctx), u.keys.NewKey(), in)
	if err != nil {
		log.Printf("[square][usecase] store-card failed customer_id=%s err=%v", in.CustomerID, err)
		return entities.Card{}, err
	}
	log.Printf("[square][usecase] store-card success customer_id=%s card_id=%s brand=%s", in.CustomerID, card.ID, card.CardBrand)
	return card, nil
}

func (u *SquarePaymentUseCase) GetPayment(ctx context.Context, id string) (entities.PaymentResult, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	if u.gateway == nil {
		return entities.PaymentResult{}, ErrGatewayNotConfigured
	}
	result, err := u.gateway.GetPayment(context.WithoutCancel(ctx), id)
	if err != nil {
		log.Printf("[square][usecase] get-payment failed payment_id=%s err=%v", id, err)
		return entities.PaymentResult{}, err
	}
	return result, nil
}

func (u *SquarePaymentUseCase) ListLocations(ctx context.Context) ([]entities.Location, error) {
	if u.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}
	locations, err := u.gateway.ListLocations(context.WithoutCancel(ctx))
	if err != nil {
		log.Printf("[square][usecase] list-locations failed err=%v", err)
		return nil, err
	}
	if locations == nil {
		locations = []entities.Location{}
	}
	return locations, nil
}
