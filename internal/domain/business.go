package domain

import "time"

// Business represents a rental business owning properties, payment methods
// and email templates. Created by seed data, rarely mutated.
type Business struct {
	ID    int64
	Name  string
	Email string
}

// Property represents a rentable unit. Belongs to exactly one business and
// owns its bookings, blocked dates and price ranges.
type Property struct {
	ID         int64
	BusinessID int64
	Name       string
}

// PaymentMethod is a plain attribute record with no interval logic.
type PaymentMethod struct {
	ID         int64
	BusinessID int64
	Name       string
	Active     bool
}

// EmailTemplate is a stored message template. The body carries placeholders;
// composition and delivery happen outside this service.
type EmailTemplate struct {
	ID         int64
	BusinessID int64
	Name       string
	Subject    string
	Body       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BankDetails holds the payment information surfaced to customers for
// advance payments, configured per business.
type BankDetails struct {
	BankName      string
	AccountHolder string
	IBAN          string
	BIC           string
}
