package report

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/model"
)

// baseColumns is the fixed leading column set of the unified report.
var baseColumns = []string{
	"ChangeType",
	"POReferenceNumber",
	"Notes",
	"Name",
	"DrugName",
	"NDC",
	"Quantity",
	"Submitted Quantity",
	"Product Description",
}

// forecastColumns is the canonical forecast metric column order. A
// metric is shown only when the uploaded data actually carried it.
var forecastColumns = []string{
	"Required Qty",
	"On Hand Qty",
	"Pending Qty",
	"Pending Treatment Qty",
	"Patient Qty",
	"Transfer In",
	"Transfer Out",
	"Net Qty",
	"PAR Min",
	"PAR Max",
	"Order Qty with PAR (in Inventory Units)",
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// selectColumns returns the display column list: the fixed base set
// plus every canonical forecast column present in the merged data.
// Absent forecast columns are silently omitted.
func selectColumns(present map[string]bool) []string {
	columns := make([]string, 0, len(baseColumns)+len(forecastColumns))
	columns = append(columns, baseColumns...)
	for _, col := range forecastColumns {
		if present[col] {
			columns = append(columns, col)
		}
	}
	return columns
}

// cellValue resolves one display column for one record. Columns the
// order table carried win over forecast-origin columns of the same
// name; the forecast value is only consulted when the order side never
// had that column (merge-suffix semantics).
func cellValue(rec *model.ChangeRecord, col string) string {
	switch col {
	case "ChangeType":
		return string(rec.Type)
	case "POReferenceNumber":
		return rec.Row.POReference
	case "Notes":
		return rec.Row.Notes
	case "Name":
		return rec.Row.Name
	case "NDC":
		return rec.Row.NDC
	case "Quantity":
		return formatQuantity(rec.Row.Quantity)
	case "Submitted Quantity":
		if rec.SubmittedQuantity == nil {
			return ""
		}
		return formatQuantity(*rec.SubmittedQuantity)
	}

	if v, ok := rec.Row.Extra[col]; ok {
		return v
	}
	if rec.Forecast == nil {
		return ""
	}
	switch col {
	case "DrugName":
		return rec.Forecast.DrugName
	case "Product Description":
		return rec.Forecast.ProductDescription
	}
	return rec.Forecast.Metrics[col]
}

// Present concatenates the enriched subsets (Quantity Changed first,
// then Added, then Removed) into the unified report.
func Present(c Classified, headerSets ...[]string) *model.Report {
	present := make(map[string]bool)
	for _, headers := range headerSets {
		for _, h := range headers {
			present[h] = true
		}
	}

	rep := &model.Report{
		Columns: selectColumns(present),
		Counts:  make(map[model.ChangeType]int),
	}

	subsets := [][]model.ChangeRecord{c.QuantityChanged, c.Added, c.Removed}
	for _, subset := range subsets {
		for i := range subset {
			rec := &subset[i]
			row := make([]string, len(rep.Columns))
			for j, col := range rep.Columns {
				row[j] = cellValue(rec, col)
			}
			rep.Rows = append(rep.Rows, row)
			rep.Counts[rec.Type]++
		}
	}

	return rep
}

// CSV serializes the report's exact column set and row order.
func CSV(rep *model.Report) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(rep.Columns); err != nil {
		return "", err
	}
	if err := w.WriteAll(rep.Rows); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
