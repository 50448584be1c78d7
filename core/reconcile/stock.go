package reconcile

import "strconv"

// Supplier quantity tokens with special meaning.
const (
	// quantityPlenty is the feed's "more than ten" marker.
	quantityPlenty = ">10"

	// quantityReserved is the literal "1", which the supplier uses for a
	// unit that is reserved and must not be sold.
	quantityReserved = "1"
)

// plentyStock is the quantity published when the feed reports ">10".
const plentyStock = 100

// ClassifyStock converts the free-form quantity cell into the stock count
// to publish.
//
// The mapping is a business rule, not a numeric parse: ">10" becomes 100
// and "1" becomes 0 because a single remaining unit is considered reserved
// by the supplier. Every other value must be a plain integer and is taken
// at face value.
func ClassifyStock(raw string) (int, error) {
	switch raw {
	case quantityPlenty:
		return plentyStock, nil
	case quantityReserved:
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValidationError{Field: "quantity", Value: raw}
	}
	return n, nil
}
