package domain

// Date format constant
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxCustomerNameLength = 200
	MaxContactInfoLength  = 300
	MaxNotesLength        = 1000
	MaxReasonLength       = 500
	MaxTemplateNameLength = 100
	MaxSubjectLength      = 300
)

// ActiveStatuses lists booking statuses that count toward availability conflicts.
var ActiveStatuses = []BookingStatus{
	StatusActive,
}

// InactiveStatuses lists booking statuses excluded from conflict checks.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
