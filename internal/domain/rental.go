package domain

import (
	"github.com/shopspring/decimal"
)

// Customer rents tools.
type Customer struct {
	ID          int64  `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// Equal reports whether c and o are the same customer.
func (c *Customer) Equal(o *Customer) bool {
	if c == o {
		return c != nil
	}
	if c == nil || o == nil {
		return false
	}
	return c.ID != 0 && c.ID == o.ID
}

// Holiday is a non-working day recurring every year.
type Holiday struct {
	ID                       int64       `json:"id"`
	Name                     string      `json:"name"`
	HolidayType              HolidayType `json:"holidayType"`
	MonthNumber              int         `json:"monthNumber"`
	DayNumber                int         `json:"dayNumber"`
	ObservedOnClosestWeekday bool        `json:"observedOnClosestWeekday"`
}

// Equal reports whether h and o are the same holiday.
func (h *Holiday) Equal(o *Holiday) bool {
	if h == o {
		return h != nil
	}
	if h == nil || o == nil {
		return false
	}
	return h.ID != 0 && h.ID == o.ID
}

// Charge is the daily price of a tool type and the days it applies to.
type Charge struct {
	ID            int64           `json:"id"`
	ToolType      ToolType        `json:"toolType,omitempty"`
	DailyCharge   decimal.Decimal `json:"dailyCharge"`
	WeekdayCharge bool            `json:"weekdayCharge"`
	WeekendCharge bool            `json:"weekendCharge"`
	HolidayCharge bool            `json:"holidayCharge"`
}

// Equal reports whether c and o are the same charge.
func (c *Charge) Equal(o *Charge) bool {
	if c == o {
		return c != nil
	}
	if c == nil || o == nil {
		return false
	}
	return c.ID != 0 && c.ID == o.ID
}

// Rental is one checkout of a tool by a customer.
type Rental struct {
	ID              int64            `json:"id"`
	CheckOutDate    Date             `json:"checkOutDate"`
	DayCount        int              `json:"dayCount"`
	DiscountPercent int              `json:"discountPercent"`
	Status          RentalStatus     `json:"status"`
	ChargeAmount    decimal.Decimal  `json:"chargeAmount"`
	Customer        *Customer        `json:"customer"`
	Tool            *Tool            `json:"tool"`
	RentalAgreement *RentalAgreement `json:"-"`
}

// Equal reports whether r and o are the same rental.
func (r *Rental) Equal(o *Rental) bool {
	if r == o {
		return r != nil
	}
	if r == nil || o == nil {
		return false
	}
	return r.ID != 0 && r.ID == o.ID
}

// SetRentalAgreement links a to r on both sides. A nil a detaches the
// current agreement.
func (r *Rental) SetRentalAgreement(a *RentalAgreement) {
	if r.RentalAgreement != nil && r.RentalAgreement.Rental == r {
		r.RentalAgreement.Rental = nil
	}
	r.RentalAgreement = a
	if a != nil {
		a.Rental = r
	}
}

// RentalAgreement is the document a customer accepts for a rental.
type RentalAgreement struct {
	ID        int64                 `json:"id"`
	Agreement string                `json:"agreement"`
	Status    RentalAgreementStatus `json:"status"`
	Rental    *Rental               `json:"rental"`
}

// Equal reports whether a and o are the same agreement.
func (a *RentalAgreement) Equal(o *RentalAgreement) bool {
	if a == o {
		return a != nil
	}
	if a == nil || o == nil {
		return false
	}
	return a.ID != 0 && a.ID == o.ID
}
