package report

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/model"
)

func columnIndex(columns []string, name string) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return -1
}

func TestGenerate_SubsetOrderAndColumns(t *testing.T) {
	t.Parallel()

	draft := orderTable(model.TableDraft,
		orderRow("storeA", "DrugX", "1", 5), // quantity changed
		orderRow("storeA", "DrugY", "2", 3), // removed
	)
	submitted := orderTable(model.TableSubmitted,
		orderRow("storeA", "DrugX", "1", 7),
		orderRow("storeB", "DrugZ", "3", 9), // added
	)
	forecast := forecastTable(
		forecastRow("storeA", "1", "Drug X 10mg", map[string]string{"Required Qty": "12", "On Hand Qty": "2"}),
	)

	rep := Generate(draft, submitted, forecast)

	// Quantity Changed first, then Added, then Removed.
	typeCol := columnIndex(rep.Columns, "ChangeType")
	if typeCol != 0 {
		t.Fatalf("ChangeType must be the first column, got %d", typeCol)
	}
	wantTypes := []model.ChangeType{model.ChangeQuantity, model.ChangeAdded, model.ChangeRemoved}
	if len(rep.Rows) != 3 {
		t.Fatalf("want 3 rows, got %d", len(rep.Rows))
	}
	for i, want := range wantTypes {
		if rep.Rows[i][typeCol] != string(want) {
			t.Fatalf("row %d want type %q got %q", i, want, rep.Rows[i][typeCol])
		}
	}

	// Fixed base columns, then only the forecast metrics that exist.
	wantColumns := []string{
		"ChangeType", "POReferenceNumber", "Notes", "Name", "DrugName",
		"NDC", "Quantity", "Submitted Quantity", "Product Description",
		"Required Qty", "On Hand Qty",
	}
	if len(rep.Columns) != len(wantColumns) {
		t.Fatalf("want columns %v got %v", wantColumns, rep.Columns)
	}
	for i, want := range wantColumns {
		if rep.Columns[i] != want {
			t.Fatalf("column %d want %q got %q", i, want, rep.Columns[i])
		}
	}

	// Quantity Changed carries both quantities; enrichment fills DrugName.
	qtyCol := columnIndex(rep.Columns, "Quantity")
	subCol := columnIndex(rep.Columns, "Submitted Quantity")
	drugCol := columnIndex(rep.Columns, "DrugName")
	reqCol := columnIndex(rep.Columns, "Required Qty")
	changed := rep.Rows[0]
	if changed[qtyCol] != "5" || changed[subCol] != "7" {
		t.Fatalf("quantities want 5/7 got %s/%s", changed[qtyCol], changed[subCol])
	}
	if changed[drugCol] != "Drug X 10mg" || changed[reqCol] != "12" {
		t.Fatalf("forecast enrichment missing: %v", changed)
	}

	// Added row matched no forecast station; enrichment stays empty but
	// the record is present.
	added := rep.Rows[1]
	if added[reqCol] != "" || added[drugCol] != "" {
		t.Fatalf("unmatched record should have empty enrichment: %v", added)
	}
	if added[subCol] != "" {
		t.Fatalf("Submitted Quantity is only set for quantity changes: %v", added)
	}

	if rep.Counts[model.ChangeQuantity] != 1 || rep.Counts[model.ChangeAdded] != 1 || rep.Counts[model.ChangeRemoved] != 1 {
		t.Fatalf("unexpected counts: %+v", rep.Counts)
	}
}

func TestGenerate_OmitsAbsentForecastColumns(t *testing.T) {
	t.Parallel()

	draft := orderTable(model.TableDraft, orderRow("storeA", "DrugX", "1", 5))
	submitted := orderTable(model.TableSubmitted)
	forecast := &model.ForecastTable{
		Headers: []string{"StationName", "NDC", "PAR Min"},
		Rows:    []model.ForecastRow{forecastRow("storeA", "1", "", map[string]string{"PAR Min": "4"})},
	}

	rep := Generate(draft, submitted, forecast)

	if columnIndex(rep.Columns, "PAR Min") == -1 {
		t.Fatalf("present forecast column omitted: %v", rep.Columns)
	}
	if columnIndex(rep.Columns, "Required Qty") != -1 {
		t.Fatalf("absent forecast column must be silently omitted: %v", rep.Columns)
	}
	// Base columns stay even when no table carries them.
	if columnIndex(rep.Columns, "POReferenceNumber") == -1 {
		t.Fatalf("base columns are fixed: %v", rep.Columns)
	}
}

func TestGenerate_OrderColumnWinsOverForecast(t *testing.T) {
	t.Parallel()

	draftRow := orderRow("storeA", "DrugX", "1", 5)
	draftRow.Extra = map[string]string{"DrugName": "order-side name"}
	draft := &model.OrderTable{
		Kind:    model.TableDraft,
		Headers: []string{"Notes", "Name", "NDC", "Quantity", "DrugName"},
		Rows:    []model.OrderRow{draftRow},
	}
	submitted := orderTable(model.TableSubmitted)
	forecast := forecastTable(forecastRow("storeA", "1", "forecast-side name", nil))

	rep := Generate(draft, submitted, forecast)

	drugCol := columnIndex(rep.Columns, "DrugName")
	if rep.Rows[0][drugCol] != "order-side name" {
		t.Fatalf("order-side column must win on collision, got %q", rep.Rows[0][drugCol])
	}
}

func TestCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	draft := orderTable(model.TableDraft,
		orderRow("storeA", "DrugX", "1", 5),
		orderRow("storeA", "DrugY", "2", 3),
	)
	submitted := orderTable(model.TableSubmitted,
		orderRow("storeA", "DrugX", "1", 7),
		orderRow("storeB", "DrugZ", "3", 9),
	)
	forecast := forecastTable(
		forecastRow("storeA", "1", "DrugX", map[string]string{"Required Qty": "12"}),
		forecastRow("storeA", "1", "DrugX", map[string]string{"Required Qty": "30"}),
	)

	rep := Generate(draft, submitted, forecast)
	text, err := CSV(rep)
	if err != nil {
		t.Fatalf("csv: %v", err)
	}

	parsed, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	if err != nil {
		t.Fatalf("parse produced csv: %v", err)
	}

	if len(parsed) != len(rep.Rows)+1 {
		t.Fatalf("row count mismatch: csv=%d table=%d", len(parsed)-1, len(rep.Rows))
	}
	for i, col := range rep.Columns {
		if parsed[0][i] != col {
			t.Fatalf("header mismatch at %d: %q vs %q", i, parsed[0][i], col)
		}
	}

	counts := make(map[model.ChangeType]int)
	typeCol := columnIndex(rep.Columns, "ChangeType")
	for _, row := range parsed[1:] {
		counts[model.ChangeType(row[typeCol])]++
	}
	for kind, want := range rep.Counts {
		if counts[kind] != want {
			t.Fatalf("%s count mismatch: csv=%d table=%d", kind, counts[kind], want)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	t.Parallel()

	if got := formatQuantity(5); got != "5" {
		t.Fatalf("want=5 got=%s", got)
	}
	if got := formatQuantity(3.5); got != "3.5" {
		t.Fatalf("want=3.5 got=%s", got)
	}
}
