package domaintest

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimdaved/toolrent/internal/domain"
)

func TestFixedSamples_AreDistinct(t *testing.T) {
	assert.False(t, ToolSample1().Equal(ToolSample2()))
	assert.False(t, ToolInventorySample1().Equal(ToolInventorySample2()))
	assert.False(t, CustomerSample1().Equal(CustomerSample2()))
	assert.False(t, HolidaySample1().Equal(HolidaySample2()))
	assert.False(t, ChargeSample1().Equal(ChargeSample2()))
	assert.False(t, RentalSample1().Equal(RentalSample2()))
	assert.False(t, RentalAgreementSample1().Equal(RentalAgreementSample2()))
}

func TestFixedSamples_ReturnFreshValues(t *testing.T) {
	a := CustomerSample1()
	a.FullName = "changed"
	require.Equal(t, "fullName1", CustomerSample1().FullName)
	require.NotSame(t, ToolSample1(), ToolSample1())
}

func TestRandomSamples_UniqueIdentity(t *testing.T) {
	const n = 64

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		ids   = make(map[int64]struct{}, n)
		codes = make(map[string]struct{}, n)
	)

	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := CustomerRandomSample()
			tl := ToolRandomSample()
			mu.Lock()
			ids[c.ID] = struct{}{}
			codes[tl.Code] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, ids, n)
	assert.Len(t, codes, n)
}

func TestRandomSamples_Fields(t *testing.T) {
	inv := ToolInventoryRandomSample()
	require.Positive(t, inv.ID)
	_, err := uuid.Parse(inv.Location)
	require.NoError(t, err)
	assert.Less(t, inv.StockCount, inv.CheckedOutCount)
	assert.Less(t, inv.CheckedOutCount, inv.OnHoldCount)

	h := HolidayRandomSample()
	assert.NotEmpty(t, h.Name)
	assert.NotEqual(t, h.MonthNumber, h.DayNumber)

	a := RentalAgreementRandomSample()
	b := RentalAgreementRandomSample()
	assert.Greater(t, b.ID, a.ID)
}

// recorder collects assertion failures instead of failing the test.
type recorder struct {
	errs []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func (r *recorder) failed(check string) bool {
	for _, e := range r.errs {
		if strings.Contains(e, check) {
			return true
		}
	}
	return false
}

func linkedRental() *domain.Rental {
	r := RentalSample1()
	r.CheckOutDate = domain.NewDate(2024, time.July, 2)
	r.Status = domain.RentalCheckedOut
	r.ChargeAmount = decimal.RequireFromString("1.5")
	r.Customer = CustomerSample1()
	r.Tool = ToolSample1()
	return r
}

func TestAssertRentalAllPropertiesEquals_Match(t *testing.T) {
	expected := linkedRental()
	actual := linkedRental()
	actual.ChargeAmount = decimal.RequireFromString("1.50")
	// Relationships compare by identity, not by field values.
	actual.Customer.FullName = "renamed"

	assert.True(t, AssertRentalAllPropertiesEquals(t, expected, actual))
}

func TestAssertRentalAllPropertiesEquals_ReportsEachMismatch(t *testing.T) {
	expected := linkedRental()
	actual := linkedRental()
	actual.ID = 2
	actual.DayCount = 3
	actual.ChargeAmount = decimal.RequireFromString("1.51")
	actual.Customer = CustomerSample2()
	actual.Tool = nil

	rec := &recorder{}
	require.False(t, AssertRentalAllPropertiesEquals(rec, expected, actual))

	for _, check := range []string{"check id", "check dayCount", "check chargeAmount", "check customer", "check tool"} {
		assert.True(t, rec.failed(check), "expected failure for %q in %v", check, rec.errs)
	}
	assert.False(t, rec.failed("check status"))
	assert.False(t, rec.failed("check checkOutDate"))
}

func TestAssertRentalUpdatableFieldsEquals_IgnoresIDAndRelationships(t *testing.T) {
	expected := linkedRental()
	actual := linkedRental()
	actual.ID = 99
	actual.Customer = nil

	assert.True(t, AssertRentalUpdatableFieldsEquals(t, expected, actual))

	rec := &recorder{}
	actual.CheckOutDate = domain.NewDate(2024, time.July, 3)
	assert.False(t, AssertRentalUpdatableFieldsEquals(rec, expected, actual))
	assert.True(t, rec.failed("check checkOutDate"))
}

func TestAssertToolAllPropertiesEquals(t *testing.T) {
	expected := ToolSample1()
	actual := ToolSample1()
	ToolInventorySample1().AddTool(expected)
	ToolInventorySample1().AddTool(actual)

	assert.True(t, AssertToolAllPropertiesEquals(t, expected, actual))

	rec := &recorder{}
	actual.Brand = "brand2"
	actual.ToolType = domain.ToolTypeLadder
	ToolInventorySample2().AddTool(actual)
	require.False(t, AssertToolAllPropertiesEquals(rec, expected, actual))
	assert.True(t, rec.failed("check brand"))
	assert.True(t, rec.failed("check toolType"))
	assert.True(t, rec.failed("check toolInventory"))
	assert.False(t, rec.failed("check code"))
}

func TestAssertToolUpdatableFieldsEquals_IgnoresInventory(t *testing.T) {
	expected := ToolSample2()
	actual := ToolSample2()
	ToolInventorySample1().AddTool(actual)

	assert.True(t, AssertToolUpdatableFieldsEquals(t, expected, actual))
	assert.True(t, AssertToolAutoGeneratedPropertiesEquals(t, expected, actual))

	rec := &recorder{}
	assert.False(t, AssertToolUpdatableRelationshipsEquals(rec, expected, actual))
}
