package model

// TableKind identifies one of the three input tables.
type TableKind string

const (
	TableDraft     TableKind = "draft"
	TableSubmitted TableKind = "submitted"
	TableForecast  TableKind = "forecast"
)

// OrderRow is one line item of a draft or submitted order.
// NDC holds the normalized identifier; Extra carries every free-form
// column of the source sheet untouched, keyed by header name.
type OrderRow struct {
	Notes       string            `json:"notes"`
	Name        string            `json:"name"`
	NDC         string            `json:"ndc"`
	Quantity    float64           `json:"quantity"`
	POReference string            `json:"poReferenceNumber"`
	Extra       map[string]string `json:"extra,omitempty"`

	// Key is the composite match key derived from (Notes, Name, NDC).
	Key string `json:"key"`
}

// OrderTable is one decoded order upload. Headers preserves the source
// column set so the presenter can tell which optional columns existed.
type OrderTable struct {
	Kind    TableKind  `json:"kind"`
	Headers []string   `json:"headers"`
	Rows    []OrderRow `json:"rows"`
}

// ForecastRow is one line of the forecast report, queried by
// (StationName, NDC). Metrics holds the optional quantity metric
// columns (Required Qty, On Hand Qty, PAR Min, ...), keyed by header.
type ForecastRow struct {
	StationName        string            `json:"stationName"`
	NDC                string            `json:"ndc"`
	DrugName           string            `json:"drugName"`
	ProductDescription string            `json:"productDescription"`
	Metrics            map[string]string `json:"metrics,omitempty"`
}

// ForecastTable is the decoded forecast upload.
type ForecastTable struct {
	Headers []string      `json:"headers"`
	Rows    []ForecastRow `json:"rows"`
}
