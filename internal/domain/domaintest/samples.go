// Package domaintest provides sample entities for tests of code built on
// package domain. Every call returns a new value, so tests may mutate and
// link samples freely.
package domaintest

import (
	"math"
	"math/rand/v2"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/nimdaved/toolrent/internal/domain"
)

var (
	longCount atomic.Int64
	intCount  atomic.Int64
)

func init() {
	longCount.Store(rand.Int64N(math.MaxInt32) + 2*math.MaxInt32)
	intCount.Store(rand.Int64N(math.MaxInt16) + 2*math.MaxInt16)
}

func nextID() int64 { return longCount.Add(1) }

func nextInt() int { return int(intCount.Add(1)) }

// ToolSample1 returns tool "code1".
func ToolSample1() *domain.Tool {
	return &domain.Tool{Code: "code1", Brand: "brand1"}
}

// ToolSample2 returns tool "code2".
func ToolSample2() *domain.Tool {
	return &domain.Tool{Code: "code2", Brand: "brand2"}
}

// ToolRandomSample returns a tool with a random uuid code and brand.
func ToolRandomSample() *domain.Tool {
	return &domain.Tool{Code: uuid.NewString(), Brand: uuid.NewString()}
}

// ToolInventorySample1 returns inventory 1 with every count set to 1.
func ToolInventorySample1() *domain.ToolInventory {
	return &domain.ToolInventory{ID: 1, Location: "location1", StockCount: 1, CheckedOutCount: 1, OnHoldCount: 1}
}

// ToolInventorySample2 returns inventory 2 with every count set to 2.
func ToolInventorySample2() *domain.ToolInventory {
	return &domain.ToolInventory{ID: 2, Location: "location2", StockCount: 2, CheckedOutCount: 2, OnHoldCount: 2}
}

// ToolInventoryRandomSample returns an inventory with a fresh id and counts.
func ToolInventoryRandomSample() *domain.ToolInventory {
	return &domain.ToolInventory{
		ID:              nextID(),
		Location:        uuid.NewString(),
		StockCount:      nextInt(),
		CheckedOutCount: nextInt(),
		OnHoldCount:     nextInt(),
	}
}

// CustomerSample1 returns customer 1.
func CustomerSample1() *domain.Customer {
	return &domain.Customer{ID: 1, FullName: "fullName1", Email: "email1", PhoneNumber: "phoneNumber1"}
}

// CustomerSample2 returns customer 2.
func CustomerSample2() *domain.Customer {
	return &domain.Customer{ID: 2, FullName: "fullName2", Email: "email2", PhoneNumber: "phoneNumber2"}
}

// CustomerRandomSample returns a customer with a fresh id and uuid fields.
func CustomerRandomSample() *domain.Customer {
	return &domain.Customer{
		ID:          nextID(),
		FullName:    uuid.NewString(),
		Email:       uuid.NewString(),
		PhoneNumber: uuid.NewString(),
	}
}

// HolidaySample1 returns holiday 1 on January 1.
func HolidaySample1() *domain.Holiday {
	return &domain.Holiday{ID: 1, Name: "name1", MonthNumber: 1, DayNumber: 1}
}

// HolidaySample2 returns holiday 2 on February 2.
func HolidaySample2() *domain.Holiday {
	return &domain.Holiday{ID: 2, Name: "name2", MonthNumber: 2, DayNumber: 2}
}

// HolidayRandomSample returns a holiday with a fresh id. Its month and day
// come from a counter and are not valid calendar values.
func HolidayRandomSample() *domain.Holiday {
	return &domain.Holiday{
		ID:          nextID(),
		Name:        uuid.NewString(),
		MonthNumber: nextInt(),
		DayNumber:   nextInt(),
	}
}

// ChargeSample1 returns charge 1 with no price set.
func ChargeSample1() *domain.Charge { return &domain.Charge{ID: 1} }

// ChargeSample2 returns charge 2 with no price set.
func ChargeSample2() *domain.Charge { return &domain.Charge{ID: 2} }

// ChargeRandomSample returns a charge with a fresh id.
func ChargeRandomSample() *domain.Charge { return &domain.Charge{ID: nextID()} }

// RentalSample1 returns rental 1 for one day at 1% off.
func RentalSample1() *domain.Rental {
	return &domain.Rental{ID: 1, DayCount: 1, DiscountPercent: 1}
}

// RentalSample2 returns rental 2 for two days at 2% off.
func RentalSample2() *domain.Rental {
	return &domain.Rental{ID: 2, DayCount: 2, DiscountPercent: 2}
}

// RentalRandomSample returns a rental with a fresh id, day count and discount.
func RentalRandomSample() *domain.Rental {
	return &domain.Rental{ID: nextID(), DayCount: nextInt(), DiscountPercent: nextInt()}
}

// RentalAgreementSample1 returns agreement 1.
func RentalAgreementSample1() *domain.RentalAgreement {
	return &domain.RentalAgreement{ID: 1, Agreement: "agreement1"}
}

// RentalAgreementSample2 returns agreement 2.
func RentalAgreementSample2() *domain.RentalAgreement {
	return &domain.RentalAgreement{ID: 2, Agreement: "agreement2"}
}

// RentalAgreementRandomSample returns an agreement with a fresh id and uuid text.
func RentalAgreementRandomSample() *domain.RentalAgreement {
	return &domain.RentalAgreement{ID: nextID(), Agreement: uuid.NewString()}
}
