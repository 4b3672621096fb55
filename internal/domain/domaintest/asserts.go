package domaintest

import (
	"github.com/stretchr/testify/assert"

	"github.com/nimdaved/toolrent/internal/domain"
)

// The Assert* helpers compare two entities property by property and report
// every mismatch through t. They return true when all checked properties
// match. Relationships compare by entity identity, decimals by value.

type helper interface{ Helper() }

func markHelper(t assert.TestingT) {
	if h, ok := t.(helper); ok {
		h.Helper()
	}
}

// AssertToolAllPropertiesEquals checks generated and updatable properties.
func AssertToolAllPropertiesEquals(t assert.TestingT, expected, actual *domain.Tool) bool {
	markHelper(t)
	ok := AssertToolAutoGeneratedPropertiesEquals(t, expected, actual)
	return AssertToolAllUpdatablePropertiesEquals(t, expected, actual) && ok
}

// AssertToolAllUpdatablePropertiesEquals checks updatable fields and relationships.
func AssertToolAllUpdatablePropertiesEquals(t assert.TestingT, expected, actual *domain.Tool) bool {
	markHelper(t)
	ok := AssertToolUpdatableFieldsEquals(t, expected, actual)
	return AssertToolUpdatableRelationshipsEquals(t, expected, actual) && ok
}

// AssertToolAutoGeneratedPropertiesEquals always passes: a tool's code is
// assigned by the caller, not generated.
func AssertToolAutoGeneratedPropertiesEquals(t assert.TestingT, expected, actual *domain.Tool) bool {
	return true
}

// AssertToolUpdatableFieldsEquals checks code, toolType and brand.
func AssertToolUpdatableFieldsEquals(t assert.TestingT, expected, actual *domain.Tool) bool {
	markHelper(t)
	ok := assert.Equal(t, expected.Code, actual.Code, "check code")
	ok = assert.Equal(t, expected.ToolType, actual.ToolType, "check toolType") && ok
	return assert.Equal(t, expected.Brand, actual.Brand, "check brand") && ok
}

// AssertToolUpdatableRelationshipsEquals checks the linked inventory.
func AssertToolUpdatableRelationshipsEquals(t assert.TestingT, expected, actual *domain.Tool) bool {
	markHelper(t)
	e, a := expected.ToolInventory, actual.ToolInventory
	return assertSame(t, e == nil && a == nil, e.Equal(a), "check toolInventory", e, a)
}

// AssertRentalAllPropertiesEquals checks generated and updatable properties.
func AssertRentalAllPropertiesEquals(t assert.TestingT, expected, actual *domain.Rental) bool {
	markHelper(t)
	ok := AssertRentalAutoGeneratedPropertiesEquals(t, expected, actual)
	return AssertRentalAllUpdatablePropertiesEquals(t, expected, actual) && ok
}

// AssertRentalAllUpdatablePropertiesEquals checks updatable fields and relationships.
func AssertRentalAllUpdatablePropertiesEquals(t assert.TestingT, expected, actual *domain.Rental) bool {
	markHelper(t)
	ok := AssertRentalUpdatableFieldsEquals(t, expected, actual)
	return AssertRentalUpdatableRelationshipsEquals(t, expected, actual) && ok
}

// AssertRentalAutoGeneratedPropertiesEquals checks the generated id.
func AssertRentalAutoGeneratedPropertiesEquals(t assert.TestingT, expected, actual *domain.Rental) bool {
	markHelper(t)
	return assert.Equal(t, expected.ID, actual.ID, "check id")
}

// AssertRentalUpdatableFieldsEquals checks every column of the rental. chargeAmount
// compares by value, so 1.5 and 1.50 match.
func AssertRentalUpdatableFieldsEquals(t assert.TestingT, expected, actual *domain.Rental) bool {
	markHelper(t)
	ok := assert.Equal(t, expected.CheckOutDate, actual.CheckOutDate, "check checkOutDate")
	ok = assert.Equal(t, expected.DayCount, actual.DayCount, "check dayCount") && ok
	ok = assert.Equal(t, expected.DiscountPercent, actual.DiscountPercent, "check discountPercent") && ok
	ok = assert.Equal(t, expected.Status, actual.Status, "check status") && ok
	return assert.Truef(t, expected.ChargeAmount.Equal(actual.ChargeAmount),
		"check chargeAmount: expected %s, actual %s", expected.ChargeAmount, actual.ChargeAmount) && ok
}

// AssertRentalUpdatableRelationshipsEquals checks the linked customer and tool.
func AssertRentalUpdatableRelationshipsEquals(t assert.TestingT, expected, actual *domain.Rental) bool {
	markHelper(t)
	ec, ac := expected.Customer, actual.Customer
	ok := assertSame(t, ec == nil && ac == nil, ec.Equal(ac), "check customer", ec, ac)
	et, at := expected.Tool, actual.Tool
	return assertSame(t, et == nil && at == nil, et.Equal(at), "check tool", et, at) && ok
}

// assertSame passes when both sides are nil or name the same entity.
func assertSame(t assert.TestingT, bothNil, equal bool, msg string, expected, actual any) bool {
	markHelper(t)
	if bothNil {
		return true
	}
	return assert.Truef(t, equal, "%s: expected %+v, actual %+v", msg, expected, actual)
}
