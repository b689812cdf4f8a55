package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		encoded string
	}{
		{"empty", []string{}, ""},
		{"single", []string{"alice"}, "alice"},
		{"several", []string{"alice", "bob", "true"}, "alice|bob|true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := JoinList(tt.entries)
			assert.Equal(t, tt.encoded, encoded)
			assert.Equal(t, tt.entries, SplitList(encoded))
		})
	}
}

func TestSplitListDropsEmptyEntries(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList("|a||b|"))
}

func TestIntsRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		encoded string
	}{
		{"empty", []int{}, ""},
		{"single", []int{3}, "3"},
		{"several", []int{1, 0, -2, 12}, "1|0|-2|12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := JoinInts(tt.values)
			assert.Equal(t, tt.encoded, encoded)

			decoded, err := SplitInts(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.values, decoded)
		})
	}
}

func TestSplitIntsRejectsGarbage(t *testing.T) {
	_, err := SplitInts("1|two|3")
	assert.Error(t, err)
}

func TestCountParticipantPlaceholders(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"Everybody drinks", 0},
		{"$user drinks", 1},
		{"$user gives $user a sip", 2},
		{"$user, $user and $user toast", 3},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, CountParticipantPlaceholders(tt.text))

			card := &Card{Text: tt.text}
			card.Normalize()
			assert.Equal(t, tt.want, card.RequiredParticipants)
		})
	}
}
