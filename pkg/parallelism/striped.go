package parallelism

// Striped is a SIMDWork implementation that distributes a sequence of items
// across the workers of an array. The worker with index i processes items i,
// i+size, i+2*size, and so on, so each item is processed exactly once. A
// worker stops at the first item that fails.
type Striped struct {
	// Count is the number of items.
	Count int
	// Process processes the item with the specified index. It is invoked
	// concurrently for different items.
	Process func(item int) error
}

// Do implements SIMDWork.Do.
func (s *Striped) Do(index, size int) error {
	for item := index; item < s.Count; item += size {
		if err := s.Process(item); err != nil {
			return err
		}
	}
	return nil
}
