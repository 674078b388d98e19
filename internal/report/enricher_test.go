package report

import (
	"testing"

	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/model"
	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/parser"
)

func forecastRow(station, ndc, drug string, metrics map[string]string) model.ForecastRow {
	return model.ForecastRow{
		StationName: station,
		NDC:         parser.NormalizeNDC(ndc),
		DrugName:    drug,
		Metrics:     metrics,
	}
}

func TestEnrich_NoMatchKeepsRecord(t *testing.T) {
	t.Parallel()

	records := []model.ChangeRecord{
		{Type: model.ChangeAdded, Row: orderRow("storeA", "DrugX", "1", 5)},
	}
	idx := BuildForecastIndex(forecastTable(
		forecastRow("storeB", "1", "DrugX", nil),
	))

	out := Enrich(records, idx)
	if len(out) != 1 {
		t.Fatalf("left join must never drop rows, got %d", len(out))
	}
	if out[0].Forecast != nil {
		t.Fatalf("no match expected, got %+v", out[0].Forecast)
	}
}

func TestEnrich_MatchOnStationAndNDC(t *testing.T) {
	t.Parallel()

	// Station matching is case-insensitive and trimmed, like the key.
	records := []model.ChangeRecord{
		{Type: model.ChangeRemoved, Row: orderRow(" StoreA ", "DrugX", "1", 5)},
	}
	idx := BuildForecastIndex(forecastTable(
		forecastRow("storea", "1", "DrugX", map[string]string{"Required Qty": "12"}),
	))

	out := Enrich(records, idx)
	if len(out) != 1 || out[0].Forecast == nil {
		t.Fatalf("expected one enriched record: %+v", out)
	}
	if out[0].Forecast.Metrics["Required Qty"] != "12" {
		t.Fatalf("forecast metrics not attached: %+v", out[0].Forecast)
	}
}

func TestEnrich_FanOutOnMultipleMatches(t *testing.T) {
	t.Parallel()

	records := []model.ChangeRecord{
		{Type: model.ChangeAdded, Row: orderRow("storeA", "DrugX", "1", 5)},
	}
	idx := BuildForecastIndex(forecastTable(
		forecastRow("storeA", "1", "DrugX", map[string]string{"Required Qty": "12"}),
		forecastRow("storeA", "1", "DrugX", map[string]string{"Required Qty": "30"}),
	))

	out := Enrich(records, idx)
	if len(out) != 2 {
		t.Fatalf("expected fan-out to 2 records, got %d", len(out))
	}
	if out[0].Forecast.Metrics["Required Qty"] != "12" || out[1].Forecast.Metrics["Required Qty"] != "30" {
		t.Fatalf("fan-out must preserve forecast row order: %+v", out)
	}
	// Both records still describe the same order line.
	if out[0].Row.Key != out[1].Row.Key {
		t.Fatalf("fan-out changed the order row")
	}
}

func TestEnrich_OutputAtLeastInputSize(t *testing.T) {
	t.Parallel()

	records := []model.ChangeRecord{
		{Type: model.ChangeAdded, Row: orderRow("storeA", "DrugX", "1", 5)},
		{Type: model.ChangeAdded, Row: orderRow("storeB", "DrugY", "2", 3)},
		{Type: model.ChangeAdded, Row: orderRow("storeC", "DrugZ", "3", 1)},
	}
	idx := BuildForecastIndex(forecastTable(
		forecastRow("storeA", "1", "DrugX", nil),
		forecastRow("storeA", "1", "DrugX", nil),
	))

	out := Enrich(records, idx)
	if len(out) < len(records) {
		t.Fatalf("enrichment dropped rows: in=%d out=%d", len(records), len(out))
	}
}
