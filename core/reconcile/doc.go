// Package reconcile maps supplier inventory records onto the marketplace
// catalog and produces the stock and price update lists submitted to the
// seller API.
//
// This is the decision core of the sync pipeline. Everything around it
// (catalog paging, feed download, batch submission) is plumbing; the rules
// that live here are deliberate business policy and must not drift:
//
//   - Stock bucketing: the feed reports quantity as a free-form string.
//     ">10" means "plenty", published as 100. "1" means the last unit is
//     reserved by the supplier and must be published as 0, not 1. Any other
//     value is taken at face value.
//
//   - Price normalization: feed prices arrive localized ("5'990.00 руб").
//     The marketplace wants a bare integer string, so the fractional part
//     and every non-digit rune are dropped.
//
//   - Coverage: every offer in the catalog gets exactly one stock entry
//     (offers the supplier never mentioned are zeroed out). Prices are only
//     published for offers the feed actually covers; there is no zero-price
//     fallback.
//
// All functions here are pure: inputs are never mutated, so running the same
// reconciliation twice yields identical output.
//
// # Usage
//
//	stocks, err := reconcile.Stocks(records, offerIDs)
//	prices := reconcile.Prices(records, offerIDs)
//	for _, batch := range reconcile.Chunk(stocks, 100) {
//	    // submit batch
//	}
package reconcile
