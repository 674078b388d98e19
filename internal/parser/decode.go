package parser

import (
	"fmt"

	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/model"
)

// Column names the pipeline depends on.
const (
	colNotes       = "Notes"
	colName        = "Name"
	colNDC         = "NDC"
	colQuantity    = "Quantity"
	colPOReference = "POReferenceNumber"

	colStation  = "StationName"
	colDrugName = "DrugName"
	colProdDesc = "Product Description"
)

// MissingColumnError reports a required column absent from an upload.
// It is fatal for the run: no partial report is produced.
type MissingColumnError struct {
	Table  model.TableKind
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s table is missing required column %q", e.Table, e.Column)
}

func requireColumns(kind model.TableKind, idx map[string]int, columns ...string) error {
	for _, col := range columns {
		if _, ok := idx[col]; !ok {
			return &MissingColumnError{Table: kind, Column: col}
		}
	}
	return nil
}

func cell(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// DecodeOrder turns a raw sheet into a typed order table. Notes, Name
// and NDC are required; Quantity is coerced when the column exists and
// every line is keyed for matching. Unrecognized columns are kept in
// Extra so they survive to the report untouched.
func DecodeOrder(table *Table, kind model.TableKind) (*model.OrderTable, error) {
	idx := headerIndex(table.Headers)
	if err := requireColumns(kind, idx, colNotes, colName, colNDC); err != nil {
		return nil, err
	}

	_, hasQuantity := idx[colQuantity]

	out := &model.OrderTable{
		Kind:    kind,
		Headers: table.Headers,
		Rows:    make([]model.OrderRow, 0, len(table.Rows)),
	}

	for _, raw := range table.Rows {
		row := model.OrderRow{
			Notes:       cell(raw, idx, colNotes),
			Name:        cell(raw, idx, colName),
			NDC:         NormalizeNDC(cell(raw, idx, colNDC)),
			POReference: cell(raw, idx, colPOReference),
		}
		if hasQuantity {
			row.Quantity = CoerceQuantity(cell(raw, idx, colQuantity))
		}
		row.Key = MatchKey(row.Notes, row.Name, row.NDC)

		for i, header := range table.Headers {
			switch header {
			case colNotes, colName, colNDC, colQuantity, colPOReference:
				continue
			}
			if row.Extra == nil {
				row.Extra = make(map[string]string)
			}
			// Short rows read as blanks, so the column still exists on
			// the order side and wins over a same-named forecast column.
			if i < len(raw) {
				row.Extra[header] = raw[i]
			} else {
				row.Extra[header] = ""
			}
		}

		out.Rows = append(out.Rows, row)
	}

	return out, nil
}

// DecodeForecast turns a raw sheet into a typed forecast table.
// StationName and NDC are required; every other column lands in
// Metrics except the two descriptive fields promoted to the record.
func DecodeForecast(table *Table) (*model.ForecastTable, error) {
	idx := headerIndex(table.Headers)
	if err := requireColumns(model.TableForecast, idx, colStation, colNDC); err != nil {
		return nil, err
	}

	out := &model.ForecastTable{
		Headers: table.Headers,
		Rows:    make([]model.ForecastRow, 0, len(table.Rows)),
	}

	for _, raw := range table.Rows {
		row := model.ForecastRow{
			StationName:        cell(raw, idx, colStation),
			NDC:                NormalizeNDC(cell(raw, idx, colNDC)),
			DrugName:           cell(raw, idx, colDrugName),
			ProductDescription: cell(raw, idx, colProdDesc),
		}

		for i, header := range table.Headers {
			switch header {
			case colStation, colNDC, colDrugName, colProdDesc:
				continue
			}
			if row.Metrics == nil {
				row.Metrics = make(map[string]string)
			}
			if i < len(raw) {
				row.Metrics[header] = raw[i]
			} else {
				row.Metrics[header] = ""
			}
		}

		out.Rows = append(out.Rows, row)
	}

	return out, nil
}
