package entities

// CustomerInput carries the fields accepted when creating a customer record.
type CustomerInput struct {
	GivenName    string
	FamilyName   string
	EmailAddress string
	PhoneNumber  string
	CompanyName  string
	ReferenceID  string
	Note         string
}

// Customer is a provider side customer record.
type Customer struct {
	ID           string `json:"id"`
	GivenName    string `json:"givenName,omitempty"`
	FamilyName   string `json:"familyName,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	CompanyName  string `json:"companyName,omitempty"`
	ReferenceID  string `json:"referenceId,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// CardInput asks the provider to vault a tokenized card for a customer.
type CardInput struct {
	CustomerID     string
	SourceID       string
	CardholderName string
}

// Card is a vaulted card. Only masked data is ever returned by the provider.
type Card struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customerId,omitempty"`
	CardBrand      string `json:"cardBrand,omitempty"`
	LastFour       string `json:"last4,omitempty"`
	ExpMonth       int64  `json:"expMonth,omitempty"`
	ExpYear        int64  `json:"expYear,omitempty"`
	CardholderName string `json:"cardholderName,omitempty"`
	Enabled        bool   `json:"enabled"`
}

// Location is a configured point-of-sale location.
type Location struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      any      `json:"address,omitempty"`
	Status       string   `json:"status"`
	Capabilities []string `json:"capabilities"`
}
