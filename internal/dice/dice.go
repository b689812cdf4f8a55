package dice

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_dice.go github.com/KirkDiggler/sipdeck/internal/dice Roller

// Roller provides the random draws of a play
type Roller interface {
	// Between returns a value in [min, max], both inclusive
	Between(min, max int) int

	// Intn returns a value in [0, n)
	Intn(n int) int

	// Shuffle permutes n elements using swap
	Shuffle(n int, swap func(i, j int))
}

// RandomRoller draws from a seeded math/rand source
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &RandomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Between returns an inclusive draw, swapping reversed bounds
func (r *RandomRoller) Between(min, max int) int {
	if min > max {
		min, max = max, min
	}
	if min == max {
		return min
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.random.Intn(max-min+1)
}

// Intn returns a value in [0, n), or 0 when n is not positive
func (r *RandomRoller) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// Shuffle permutes n elements
func (r *RandomRoller) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.random.Shuffle(n, swap)
}
