// Package report reconciles a draft order, a submitted order and a
// forecast report into one unified change report: classify order lines
// as Added / Removed / Quantity Changed, left-join each against the
// forecast, and present the result as a table plus CSV.
package report

import (
	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/model"
)

// Generate runs the full single-pass pipeline. The forecast table is an
// explicit parameter: nothing is shared between runs.
func Generate(draft, submitted *model.OrderTable, forecast *model.ForecastTable) *model.Report {
	classified := Diff(draft, submitted)

	idx := BuildForecastIndex(forecast)
	classified.QuantityChanged = Enrich(classified.QuantityChanged, idx)
	classified.Added = Enrich(classified.Added, idx)
	classified.Removed = Enrich(classified.Removed, idx)

	return Present(classified, draft.Headers, submitted.Headers, forecast.Headers)
}
