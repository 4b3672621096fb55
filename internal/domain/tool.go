// Package domain holds the entity shapes of the tool rental application.
//
// Entities compare by identity: two values are equal when they are the same
// pointer, or when their identity is assigned and the same.
package domain

// Tool is a rentable item identified by its code.
type Tool struct {
	Code          string         `json:"code"`
	ToolType      ToolType       `json:"toolType"`
	Brand         string         `json:"brand"`
	ToolInventory *ToolInventory `json:"toolInventory"`
}

// Equal reports whether t and o are the same tool.
func (t *Tool) Equal(o *Tool) bool {
	if t == o {
		return t != nil
	}
	if t == nil || o == nil {
		return false
	}
	return t.Code != "" && t.Code == o.Code
}

// ToolInventory tracks stock of tools at one location.
type ToolInventory struct {
	ID              int64   `json:"id"`
	Location        string  `json:"location"`
	StockCount      int     `json:"stockCount"`
	CheckedOutCount int     `json:"checkedOutCount"`
	OnHoldCount     int     `json:"onHoldCount"`
	Tools           []*Tool `json:"tools"`
}

// Equal reports whether i and o are the same inventory.
func (i *ToolInventory) Equal(o *ToolInventory) bool {
	if i == o {
		return i != nil
	}
	if i == nil || o == nil {
		return false
	}
	return i.ID != 0 && i.ID == o.ID
}

// AddTool links t to the inventory. Adding a tool already present is a no-op.
func (i *ToolInventory) AddTool(t *Tool) {
	if i.indexOf(t) < 0 {
		i.Tools = append(i.Tools, t)
	}
	t.ToolInventory = i
}

// RemoveTool unlinks t from the inventory.
func (i *ToolInventory) RemoveTool(t *Tool) {
	if n := i.indexOf(t); n >= 0 {
		i.Tools = append(i.Tools[:n], i.Tools[n+1:]...)
	}
	if t.ToolInventory == i {
		t.ToolInventory = nil
	}
}

// SetTools replaces the linked tools, detaching the ones no longer present.
func (i *ToolInventory) SetTools(tools []*Tool) {
	for _, t := range i.Tools {
		if t.ToolInventory == i {
			t.ToolInventory = nil
		}
	}
	i.Tools = nil
	for _, t := range tools {
		i.AddTool(t)
	}
}

func (i *ToolInventory) indexOf(t *Tool) int {
	for n, x := range i.Tools {
		if x == t || x.Equal(t) {
			return n
		}
	}
	return -1
}
