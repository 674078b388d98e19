package report

import (
	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/model"
	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/parser"
)

// ForecastIndex maps (lowercase-trimmed station name, normalized NDC)
// to the forecast rows for that pair, in upload order.
type ForecastIndex map[string][]*model.ForecastRow

func joinKey(station, ndc string) string {
	return parser.StationKey(station) + "|" + ndc
}

// BuildForecastIndex indexes the forecast table for the enrichment join.
func BuildForecastIndex(table *model.ForecastTable) ForecastIndex {
	idx := make(ForecastIndex, len(table.Rows))
	for i := range table.Rows {
		row := &table.Rows[i]
		key := joinKey(row.StationName, row.NDC)
		idx[key] = append(idx[key], row)
	}
	return idx
}

// Enrich left-joins classified records against the forecast index on
// (Notes, NDC). Every input record appears at least once in the output;
// with no forecast match the record is kept with empty enrichment, and
// with multiple matches the join fans out to one record per match.
func Enrich(records []model.ChangeRecord, idx ForecastIndex) []model.ChangeRecord {
	out := make([]model.ChangeRecord, 0, len(records))
	for _, rec := range records {
		matches := idx[joinKey(rec.Row.Notes, rec.Row.NDC)]
		if len(matches) == 0 {
			out = append(out, rec)
			continue
		}
		for _, forecast := range matches {
			enriched := rec
			enriched.Forecast = forecast
			out = append(out, enriched)
		}
	}
	return out
}
