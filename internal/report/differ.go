package report

import (
	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/model"
)

// Classified holds the three change subsets in presentation order.
// Within each subset the source table's row order is preserved.
type Classified struct {
	QuantityChanged []model.ChangeRecord
	Added           []model.ChangeRecord
	Removed         []model.ChangeRecord
}

// quantityByKey builds the MatchKey -> Quantity lookup for one order
// table. On duplicate keys the last row wins; this collapse is the
// documented policy for duplicated (Notes, Name, NDC) lines.
func quantityByKey(table *model.OrderTable) map[string]float64 {
	m := make(map[string]float64, len(table.Rows))
	for _, row := range table.Rows {
		m[row.Key] = row.Quantity
	}
	return m
}

// Diff classifies order lines between the draft and submitted tables.
//
// A key present in both tables with unequal quantities is a quantity
// change; present only in submitted, an addition; present only in
// draft, a removal. Quantity comparison is exact (no epsilon).
// Classification selects rows by key membership, so rows sharing a
// duplicated key all carry the same classification. For quantity
// changes the draft row supplies every non-quantity column and the
// submitted-side quantity is attached separately.
func Diff(draft, submitted *model.OrderTable) Classified {
	draftQty := quantityByKey(draft)
	submittedQty := quantityByKey(submitted)

	var c Classified

	for _, row := range draft.Rows {
		subQty, inSubmitted := submittedQty[row.Key]
		switch {
		case inSubmitted && draftQty[row.Key] != subQty:
			qty := subQty
			c.QuantityChanged = append(c.QuantityChanged, model.ChangeRecord{
				Type:              model.ChangeQuantity,
				Row:               row,
				SubmittedQuantity: &qty,
			})
		case !inSubmitted:
			c.Removed = append(c.Removed, model.ChangeRecord{
				Type: model.ChangeRemoved,
				Row:  row,
			})
		}
	}

	for _, row := range submitted.Rows {
		if _, inDraft := draftQty[row.Key]; !inDraft {
			c.Added = append(c.Added, model.ChangeRecord{
				Type: model.ChangeAdded,
				Row:  row,
			})
		}
	}

	return c
}
