package orders

import (
	"github.com/kinoops/backoffice/internal/domain"
)

// Process filters transactions and decorates the survivors with their
// derived display fields. The filter is stable: output keeps the input
// order (most recent booking first, as delivered upstream).
func Process(txs []domain.Transaction, filter domain.TransactionFilter) []domain.OrderView {
	out := make([]domain.OrderView, 0, len(txs))

	for i := range txs {
		if !filter.Match(&txs[i]) {
			continue
		}

		out = append(out, domain.NewOrderView(txs[i]))
	}

	return out
}
