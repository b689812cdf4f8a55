package play

import (
	"fmt"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

// EffectResult is one effect resolved against a finished play
type EffectResult struct {
	// Index is the position of the effect on the card
	Index int

	Type models.EffectType

	// Amount is the drawn value, 0 when the effect has none
	Amount int

	// Label is the display text, e.g. "3 sips" or "ex"
	Label string

	Targets []string
}

// ResolveEffects resolves every effect whose condition holds against the recorded answers.
// Effects that cannot be resolved are left out and reported in the second return value.
func ResolveEffects(card *models.Card, instance *models.PlayInstance) ([]*EffectResult, []error) {
	resolver := NewResolver(instance)

	results := []*EffectResult{}
	var problems []error
	for i, effect := range card.Effects {
		if effect == nil {
			problems = append(problems, fmt.Errorf("card %d effect %d is empty", card.ID, i))
			continue
		}
		if !resolver.ConditionMet(effect.If) {
			continue
		}

		result := &EffectResult{
			Index:   i,
			Type:    effect.Type,
			Label:   string(effect.Type),
			Targets: resolver.Resolve(effect.Target),
		}

		if effect.Value != nil {
			if i >= len(instance.Values) {
				problems = append(problems, fmt.Errorf("card %d effect %d: %w", card.ID, i, ErrMissingValue))
				continue
			}
			result.Amount = instance.Values[i]
			result.Label = CountNoun(result.Amount, string(effect.Type))
		}

		results = append(results, result)
	}

	return results, problems
}

// Roller is the random source used to draw a play
type Roller interface {
	Between(min, max int) int
	Shuffle(n int, swap func(i, j int))
}

// DrawInput holds what a new play instance is drawn from
type DrawInput struct {
	Card   *models.Card
	Roster []string
	Roller Roller
}

// Draw picks the participants and values of a new play instance.
// Both are drawn exactly once and stay fixed for the lifetime of the play.
func Draw(input *DrawInput) (*models.PlayInstance, error) {
	if input == nil || input.Card == nil {
		return nil, fmt.Errorf("card cannot be nil")
	}
	if input.Roller == nil {
		return nil, fmt.Errorf("roller cannot be nil")
	}

	required := input.Card.RequiredParticipants
	if required > len(input.Roster) {
		return nil, fmt.Errorf("card %d needs %d participants, have %d: %w",
			input.Card.ID, required, len(input.Roster), ErrNotEnoughParticipants)
	}

	pool := make([]string, len(input.Roster))
	copy(pool, input.Roster)
	input.Roller.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	values := make([]int, len(input.Card.Effects))
	for i, effect := range input.Card.Effects {
		if effect != nil && effect.Value != nil {
			values[i] = input.Roller.Between(effect.Value.Min, effect.Value.Max)
		}
	}

	return &models.PlayInstance{
		CardID:       input.Card.ID,
		Participants: pool[:required],
		Values:       values,
		Answers:      []string{},
	}, nil
}
