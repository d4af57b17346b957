package batch

// Split partitions candidates into contiguous chunks of at most size
// elements. Order is preserved within and across chunks; only the last
// chunk may be shorter. The chunks alias the input slice and must be
// treated as read-only. A size below 1 yields no chunks.
func Split(candidates []string, size int) [][]string {
	if size < 1 || len(candidates) == 0 {
		return nil
	}

	batches := make([][]string, 0, (len(candidates)+size-1)/size)
	for start := 0; start < len(candidates); start += size {
		end := start + size
		if end > len(candidates) {
			end = len(candidates)
		}
		batches = append(batches, candidates[start:end])
	}
	return batches
}
