package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Encoded entities leave out the reference that points back at their
// owner, so a linked graph always encodes as a finite tree. Decoding uses
// the struct tags and accepts every field.

type toolFields struct {
	Code     string   `json:"code"`
	ToolType ToolType `json:"toolType"`
	Brand    string   `json:"brand"`
}

type toolInventoryFields struct {
	ID              int64  `json:"id"`
	Location        string `json:"location"`
	StockCount      int    `json:"stockCount"`
	CheckedOutCount int    `json:"checkedOutCount"`
	OnHoldCount     int    `json:"onHoldCount"`
}

type rentalFields struct {
	ID              int64           `json:"id"`
	CheckOutDate    Date            `json:"checkOutDate"`
	DayCount        int             `json:"dayCount"`
	DiscountPercent int             `json:"discountPercent"`
	Status          RentalStatus    `json:"status"`
	ChargeAmount    decimal.Decimal `json:"chargeAmount"`
}

func (t *Tool) fields() *toolFields {
	if t == nil {
		return nil
	}
	return &toolFields{Code: t.Code, ToolType: t.ToolType, Brand: t.Brand}
}

func (i *ToolInventory) fields() *toolInventoryFields {
	if i == nil {
		return nil
	}
	return &toolInventoryFields{
		ID:              i.ID,
		Location:        i.Location,
		StockCount:      i.StockCount,
		CheckedOutCount: i.CheckedOutCount,
		OnHoldCount:     i.OnHoldCount,
	}
}

func (r *Rental) fields() *rentalFields {
	if r == nil {
		return nil
	}
	return &rentalFields{
		ID:              r.ID,
		CheckOutDate:    r.CheckOutDate,
		DayCount:        r.DayCount,
		DiscountPercent: r.DiscountPercent,
		Status:          r.Status,
		ChargeAmount:    r.ChargeAmount,
	}
}

// MarshalJSON encodes the tool with its inventory but not the inventory's tools.
func (t Tool) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		toolFields
		ToolInventory *toolInventoryFields `json:"toolInventory"`
	}{*t.fields(), t.ToolInventory.fields()})
}

// MarshalJSON encodes the inventory with its tools, each without its inventory.
func (i ToolInventory) MarshalJSON() ([]byte, error) {
	tools := make([]*toolFields, 0, len(i.Tools))
	for _, t := range i.Tools {
		tools = append(tools, t.fields())
	}
	return json.Marshal(struct {
		toolInventoryFields
		Tools []*toolFields `json:"tools"`
	}{*i.fields(), tools})
}

// MarshalJSON encodes the rental with its customer and tool. The tool's
// inventory is left out.
func (r Rental) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		rentalFields
		Customer *Customer   `json:"customer"`
		Tool     *toolFields `json:"tool"`
	}{*r.fields(), r.Customer, r.Tool.fields()})
}

// MarshalJSON encodes the agreement with its rental's own fields only.
func (a RentalAgreement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        int64                 `json:"id"`
		Agreement string                `json:"agreement"`
		Status    RentalAgreementStatus `json:"status"`
		Rental    *rentalFields         `json:"rental"`
	}{a.ID, a.Agreement, a.Status, a.Rental.fields()})
}
