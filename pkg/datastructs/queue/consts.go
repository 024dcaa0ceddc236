package queue

const (
	// defaultInitialSlots is the first allocation for the backing ring.
	// Smaller capacities allocate exactly their capacity.
	defaultInitialSlots = 64

	// growThreshold is the slot count below which the ring doubles on growth.
	// At or above it the ring grows by 25% per step.
	growThreshold = 4 * 1024
)
