package reconcile

import "sort"

// Stocks builds the stock import list for the given catalog.
//
// Supplier records are walked in feed order; the first record matching a
// catalog offer id wins and consumes the id, so duplicate codes later in the
// feed are ignored. Offers the feed never mentions are appended afterwards
// with stock 0, in sorted id order for deterministic output.
//
// The result covers every id in offerIDs exactly once. The input set is not
// mutated.
func Stocks(records []SupplierRecord, offerIDs map[string]struct{}) ([]StockUpdate, error) {
	remaining := make(map[string]struct{}, len(offerIDs))
	for id := range offerIDs {
		remaining[id] = struct{}{}
	}

	updates := make([]StockUpdate, 0, len(offerIDs))
	for _, rec := range records {
		if _, ok := remaining[rec.Code]; !ok {
			continue
		}

		stock, err := ClassifyStock(rec.Quantity)
		if err != nil {
			if verr, ok := err.(*ValidationError); ok {
				verr.Code = rec.Code
			}
			return nil, err
		}

		updates = append(updates, StockUpdate{OfferID: rec.Code, Stock: stock})
		delete(remaining, rec.Code)
	}

	// Zero out catalog offers the feed did not cover.
	leftover := make([]string, 0, len(remaining))
	for id := range remaining {
		leftover = append(leftover, id)
	}
	sort.Strings(leftover)
	for _, id := range leftover {
		updates = append(updates, StockUpdate{OfferID: id, Stock: 0})
	}

	return updates, nil
}

// Prices builds the price import list for the given catalog.
//
// Only supplier records matching a catalog offer id produce an entry, in
// feed order. Unlike Stocks there is no fallback for uncovered offers: an
// offer absent from the feed keeps its current price.
func Prices(records []SupplierRecord, offerIDs map[string]struct{}) []PriceUpdate {
	var updates []PriceUpdate
	for _, rec := range records {
		if _, ok := offerIDs[rec.Code]; !ok {
			continue
		}

		updates = append(updates, PriceUpdate{
			AutoActionEnabled: AutoActionUnknown,
			CurrencyCode:      CurrencyRUB,
			OfferID:           rec.Code,
			OldPrice:          OldPriceZero,
			Price:             NormalizePrice(rec.Price),
		})
	}
	return updates
}
