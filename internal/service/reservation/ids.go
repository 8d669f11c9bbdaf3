package reservation

import "math/rand"

// IDGenerator produces reservation ids. Injected so tests can supply
// deterministic ids and uniqueness can later be enforced without
// touching call sites.
type IDGenerator interface {
	NextID() int
}

type randomIDGenerator struct{}

// NewRandomIDGenerator returns the production generator: a uniform draw
// from [1000, 10999] with no uniqueness check, so duplicate ids are
// possible. Cancellation removes the oldest record for a duplicated id.
func NewRandomIDGenerator() IDGenerator {
	return randomIDGenerator{}
}

func (randomIDGenerator) NextID() int {
	return rand.Intn(10000) + 1000
}
