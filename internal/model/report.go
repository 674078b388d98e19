package model

// ChangeType classifies how an order line differs between the draft
// and submitted orders.
type ChangeType string

const (
	ChangeQuantity ChangeType = "Quantity Changed"
	ChangeAdded    ChangeType = "Added"
	ChangeRemoved  ChangeType = "Removed"
)

// ChangeRecord is one classified order line, optionally enriched with a
// matching forecast row. SubmittedQuantity is set only for quantity
// changes; Forecast is nil when no forecast row matched.
type ChangeRecord struct {
	Type              ChangeType   `json:"changeType"`
	Row               OrderRow     `json:"row"`
	SubmittedQuantity *float64     `json:"submittedQuantity,omitempty"`
	Forecast          *ForecastRow `json:"forecast,omitempty"`
}

// Report is the unified comparison result: a fixed column list plus one
// string row per enriched change record, in presentation order.
type Report struct {
	Columns []string           `json:"columns"`
	Rows    [][]string         `json:"rows"`
	Counts  map[ChangeType]int `json:"counts"`
}
