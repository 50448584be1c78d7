package reconcile

// Chunk splits items into consecutive batches of at most size elements.
// Order is preserved across and within batches; the last batch holds the
// remainder. A non-positive size yields nil.
//
// Batches alias the backing array of items, which is fine for the one-shot
// submit loop they feed.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}

	batches := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}
