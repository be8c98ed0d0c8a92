// Package alloc holds the slot-capacity policy used by libcsd.List.
//
// Small lists grow through powers of two so that tiny arrays stay tiny.
// Once a list needs more than Step slots it grows in Step-sized chunks,
// which over-allocates at most one chunk per growth.
package alloc

// Step is both the largest power-of-two capacity and the chunk size used past it.
const Step = 1024

// AtLeast returns the capacity a list with space slots must move to in order
// to hold n elements. It returns space unchanged when no growth is needed.
// Capacities never shrink.
func AtLeast(space, n int) int {
	if space >= n {
		return space
	}

	size := Step
	for i := 0; i < 10; i++ {
		if 1<<i < n {
			continue
		}
		size = 1 << i
		break
	}

	if n > Step {
		size = ((n >> 10) << 10) + Step
	}
	return size
}

// Grow returns slots resized to AtLeast(len(slots), n).
// Existing pointers are carried over and the new tail is nil.
func Grow[P any](slots []*P, n int) []*P {
	size := AtLeast(len(slots), n)
	if size == len(slots) {
		return slots
	}
	grown := make([]*P, size)
	copy(grown, slots)
	return grown
}
