package domain

// RawTable is one extracted table: a header row plus untyped string records.
// Extraction upstream gives no guarantee about column count, order or locale
// formatting; the normalizers own all of that tolerance.
type RawTable struct {
	Header  []string   `json:"header"`
	Records [][]string `json:"records"`
}

// CanonicalLineItem is the normalized unit of reconciliation. Numeric fields
// are pointers: nil means the column was absent from the source table, while
// a garbled-but-present monetary cell degrades to 0.
type CanonicalLineItem struct {
	Description     string `json:"description"`
	FullDescription string `json:"full_description"`
	Unit            string `json:"unit"`

	QtyStandby     *float64 `json:"qty_standby"`
	QtyOperational *float64 `json:"qty_operational"`
	QtyOvertime    *float64 `json:"qty_overtime"`
	QtyTotal       *float64 `json:"qty_total"`

	UnitPriceStandby     *float64 `json:"unit_price_standby"`
	UnitPriceOperational *float64 `json:"unit_price_operational"`
	UnitPriceOvertime    *float64 `json:"unit_price_overtime"`

	TotalStandby       *float64 `json:"total_standby"`
	TotalOperational   *float64 `json:"total_operational"`
	TotalOvertime      *float64 `json:"total_overtime"`
	TotalOvertimeHours *float64 `json:"total_overtime_hours"`
	TotalBilled        *float64 `json:"total_billed"`
}

// Key returns the reconciliation key for this line item.
func (li CanonicalLineItem) Key() string {
	return BuildKey(li.Description, li.Unit)
}

// ContractReferenceItem is one contractual unit price. The set is loaded once
// per run and treated as read-only by every reconciliation in that run.
type ContractReferenceItem struct {
	ItemID          string  `json:"item_id"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	FullDescription string  `json:"full_description"`
	Unit            string  `json:"unit"`
	UnitPrice       float64 `json:"unit_price"`
	StandbyPrice    float64 `json:"standby_price"`
}

// Key returns the reconciliation key for this contract item.
func (ci ContractReferenceItem) Key() string {
	return BuildKey(ci.Description, ci.Unit)
}
