package models

// StatField names one of the counters kept for a player
type StatField string

const (
	StatGames StatField = "games"
	StatSips  StatField = "sips"
	StatShots StatField = "shots"
	StatEx    StatField = "ex"
)

// StatFields lists every counter in display order
var StatFields = []StatField{StatGames, StatSips, StatShots, StatEx}

// Stats are running counters for a player
type Stats struct {
	Games int
	Sips  int
	Shots int
	Ex    int
}

// Get returns the counter for a field
func (s *Stats) Get(field StatField) int {
	switch field {
	case StatGames:
		return s.Games
	case StatSips:
		return s.Sips
	case StatShots:
		return s.Shots
	case StatEx:
		return s.Ex
	}
	return 0
}

// Add increments the counter for a field
func (s *Stats) Add(field StatField, n int) {
	switch field {
	case StatGames:
		s.Games += n
	case StatSips:
		s.Sips += n
	case StatShots:
		s.Shots += n
	case StatEx:
		s.Ex += n
	}
}

// Plus returns the sum of two stats
func (s Stats) Plus(other Stats) Stats {
	for _, f := range StatFields {
		s.Add(f, other.Get(f))
	}
	return s
}

// Player holds the statistics of a user
type Player struct {
	// ID is the Discord user ID of the player
	ID string

	// Current are the counters of the game the player is in
	Current Stats

	// Total are the counters of every finished game
	Total Stats
}
