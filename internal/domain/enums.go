package domain

// ToolType classifies rentable tools.
type ToolType string

const (
	ToolTypeLadder     ToolType = "LADDER"
	ToolTypeChainsaw   ToolType = "CHINSAW"
	ToolTypeJackhammer ToolType = "JACKHUMMER"
)

var toolTypeValues = map[ToolType]string{
	ToolTypeLadder:     "Ladder",
	ToolTypeChainsaw:   "Chainsaw",
	ToolTypeJackhammer: "Jackhummer",
}

func (t ToolType) String() string { return string(t) }

// Value returns the display name of t, or "" for an unknown type.
func (t ToolType) Value() string { return toolTypeValues[t] }

// HolidayType tells how a holiday date is resolved within its month.
type HolidayType string

const (
	HolidayExactDayOfMonth       HolidayType = "EXACT_DAY_OF_MONTH"
	HolidayFirstDayOfWeekInMonth HolidayType = "FIRST_DAY_OF_WEEK_IN_MONTH"
	HolidayLastDayOfWeekInMonth  HolidayType = "LAST_DAY_OF_WEEK_IN_MONTH"
)

func (h HolidayType) String() string { return string(h) }

// RentalStatus is the lifecycle state of a rental.
type RentalStatus string

const (
	RentalCreated    RentalStatus = "CREATED"
	RentalCheckedOut RentalStatus = "CHECKED_OUT"
	RentalCheckedIn  RentalStatus = "CHECKED_IN"
	RentalCancelled  RentalStatus = "CANCELLED"
)

func (s RentalStatus) String() string { return string(s) }

// RentalAgreementStatus records the customer's answer to an agreement.
type RentalAgreementStatus string

const (
	AgreementPending  RentalAgreementStatus = "PENDING"
	AgreementAccepted RentalAgreementStatus = "ACCEPTED"
	AgreementRejected RentalAgreementStatus = "REJECTED"
)

func (s RentalAgreementStatus) String() string { return string(s) }
