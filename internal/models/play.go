package models

import (
	"strconv"
	"strings"
	"time"
)

// ListDelimiter separates entries of the persisted play instance lists
const ListDelimiter = "|"

// PlayInstance is the live instantiation of a card in a session
type PlayInstance struct {
	// ID is the unique identifier for this play
	ID string

	// ChannelID is the session the play belongs to
	ChannelID string

	// CardID is the card being played
	CardID int

	// Participants were drawn once to fill the participant placeholders, in order
	Participants []string

	// Values holds one drawn value per effect of the card, 0 when the effect has none
	Values []int

	// Answers holds the canonical encoding of each recorded answer, in input order
	Answers []string

	// Revealed is set once the card text has been sent to the channel
	Revealed bool

	// CreatedAt is when the play was drawn
	CreatedAt time.Time
}

// JoinList encodes a list of entries into a delimited string
func JoinList(entries []string) string {
	return strings.Join(entries, ListDelimiter)
}

// SplitList decodes a delimited string, dropping empty entries
func SplitList(s string) []string {
	out := []string{}
	for _, entry := range strings.Split(s, ListDelimiter) {
		if entry != "" {
			out = append(out, entry)
		}
	}
	return out
}

// JoinInts encodes a list of numbers into a delimited string
func JoinInts(values []int) string {
	entries := make([]string, len(values))
	for i, v := range values {
		entries[i] = strconv.Itoa(v)
	}
	return JoinList(entries)
}

// SplitInts decodes a delimited string of numbers
func SplitInts(s string) ([]int, error) {
	entries := SplitList(s)
	values := make([]int, len(entries))
	for i, entry := range entries {
		v, err := strconv.Atoi(entry)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
