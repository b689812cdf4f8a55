package play

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

var (
	affirmative = []string{"positive", "positiv", "true", "yes", "yup", "jap", "ja"}
	negative    = []string{"negativ", "negative", "false", "no", "nope", "nah"}
)

const (
	answerTrue  = "true"
	answerFalse = "false"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_lookup.go github.com/KirkDiggler/sipdeck/internal/play ParticipantLookup

// ParticipantLookup resolves the raw text of a participant answer.
// It returns nil without error when the text does not refer to anyone.
type ParticipantLookup interface {
	ResolveParticipant(ctx context.Context, token string) (*models.ParticipantRef, error)
}

// ParseBoolean matches an answer against the yes and no vocabularies, ignoring case
func ParseBoolean(raw string) (bool, error) {
	folder := cases.Fold()
	word := folder.String(strings.TrimSpace(raw))
	for _, yes := range affirmative {
		if word == folder.String(yes) {
			return true, nil
		}
	}
	for _, no := range negative {
		if word == folder.String(no) {
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidAnswer, raw)
}

// Machine walks through the questions of a card for one play instance
type Machine struct {
	card     *models.Card
	play     *models.PlayInstance
	resolver *Resolver
}

// NewMachine creates the question state machine for a play instance
func NewMachine(card *models.Card, instance *models.PlayInstance) *Machine {
	return &Machine{
		card:     card,
		play:     instance,
		resolver: NewResolver(instance),
	}
}

// Resolver returns the resolver bound to the play instance
func (m *Machine) Resolver() *Resolver {
	return m.resolver
}

// ActiveInputs returns the inputs whose condition holds against the current answers, by index
func (m *Machine) ActiveInputs() []*models.Input {
	active := []*models.Input{}
	for _, input := range m.card.Inputs {
		if m.resolver.ConditionMet(input.If) {
			active = append(active, input)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Index < active[j].Index
	})
	return active
}

// Pending returns the question waiting for an answer, or nil once complete
func (m *Machine) Pending() *models.Input {
	active := m.ActiveInputs()
	if len(m.play.Answers) >= len(active) {
		return nil
	}
	return active[len(m.play.Answers)]
}

// Complete reports whether every active input has been answered
func (m *Machine) Complete() bool {
	return len(m.ActiveInputs()) <= len(m.play.Answers)
}

// CanAnswer reports whether the participant is allowed to answer the input
func (m *Machine) CanAnswer(input *models.Input, participantID string, roster []string) bool {
	by := strings.TrimSpace(input.By)
	if by == "" || by == SelectAll {
		return contains(roster, participantID)
	}
	if ids, ok := m.resolver.ParseMention(by); ok {
		return contains(ids, participantID)
	}
	// a predicate has no actor to compare with: "other" lets anyone answer, "self" nobody
	if !contains(roster, participantID) {
		return false
	}
	return m.resolver.Selects(models.Selection{by}, participantID, "")
}

// HasSelectable reports whether anyone on the roster could be chosen for the input
// by at least one participant allowed to answer it
func (m *Machine) HasSelectable(input *models.Input, roster []string) bool {
	if input.Type != models.InputTypeParticipant {
		return true
	}
	for _, actor := range roster {
		if !m.CanAnswer(input, actor, roster) {
			continue
		}
		for _, candidate := range roster {
			if m.resolver.Selects(input.Selection, candidate, actor) {
				return true
			}
		}
	}
	return false
}

// AnswerInput is a raw answer submitted by a participant
type AnswerInput struct {
	ActorID string
	Raw     string

	// Roster holds the participants of the session
	Roster []string

	// Lookup resolves participant answers
	Lookup ParticipantLookup
}

// AnswerOutput describes an accepted answer
type AnswerOutput struct {
	Input *models.Input

	// Answer is the canonical encoding that was recorded
	Answer string

	// Participant is set for participant answers
	Participant *models.ParticipantRef

	Complete bool
}

// Accept validates an answer for the pending input and records it on the play instance
func (m *Machine) Accept(ctx context.Context, input *AnswerInput) (*AnswerOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	pending := m.Pending()
	if pending == nil {
		return nil, ErrNoPendingInput
	}

	if !m.CanAnswer(pending, input.ActorID, input.Roster) {
		return nil, ErrNotAllowed
	}

	output := &AnswerOutput{Input: pending}

	switch pending.Type {
	case models.InputTypeBoolean:
		value, err := ParseBoolean(input.Raw)
		if err != nil {
			return nil, err
		}
		output.Answer = answerFalse
		if value {
			output.Answer = answerTrue
		}
	case models.InputTypeParticipant:
		ref, err := m.resolveParticipant(ctx, input)
		if err != nil {
			return nil, err
		}
		output.Participant = ref
		output.Answer = ref.ID
	default:
		return nil, fmt.Errorf("card %d has input of unknown type %q", m.card.ID, pending.Type)
	}

	m.play.Answers = append(m.play.Answers, output.Answer)
	output.Complete = m.Complete()

	return output, nil
}

func (m *Machine) resolveParticipant(ctx context.Context, input *AnswerInput) (*models.ParticipantRef, error) {
	if input.Lookup == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParticipant, input.Raw)
	}

	ref, err := input.Lookup.ResolveParticipant(ctx, strings.TrimSpace(input.Raw))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve participant: %w", err)
	}
	if ref == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParticipant, input.Raw)
	}

	if !contains(input.Roster, ref.ID) {
		return nil, fmt.Errorf("%w: %s", ErrNotPlaying, displayName(ref))
	}

	pending := m.Pending()
	if !m.resolver.Selects(pending.Selection, ref.ID, input.ActorID) {
		return nil, fmt.Errorf("%w: %s", ErrSelectionRejected, displayName(ref))
	}

	return ref, nil
}

func displayName(ref *models.ParticipantRef) string {
	if ref.Name != "" {
		return ref.Name
	}
	return ref.ID
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
