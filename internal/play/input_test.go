package play

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/sipdeck/internal/models"
	"github.com/KirkDiggler/sipdeck/internal/play/mocks"
)

type MachineTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockLookup *mocks.MockParticipantLookup
	ctx        context.Context

	roster []string
	card   *models.Card
	play   *models.PlayInstance
}

func (s *MachineTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLookup = mocks.NewMockParticipantLookup(s.mockCtrl)
	s.ctx = context.Background()

	s.roster = []string{"alice", "bob", "carol"}

	// alice is asked whether she dares, and only then picks someone else
	s.card = &models.Card{
		ID:   7,
		Text: "$user, do you dare?",
		Inputs: []*models.Input{
			{Type: models.InputTypeBoolean, By: "$user[0]", Question: "Do you dare?", Index: 0},
			{Type: models.InputTypeParticipant, By: "$user[0]", Question: "Who drinks?", If: "$input[0]", Selection: models.Selection{"other"}, Index: 1},
		},
	}
	s.card.Normalize()

	s.play = &models.PlayInstance{
		CardID:       7,
		Participants: []string{"alice"},
		Answers:      []string{},
	}
}

func (s *MachineTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMachineTestSuite(t *testing.T) {
	suite.Run(t, new(MachineTestSuite))
}

func (s *MachineTestSuite) answer(actor, raw string) (*AnswerOutput, error) {
	return NewMachine(s.card, s.play).Accept(s.ctx, &AnswerInput{
		ActorID: actor,
		Raw:     raw,
		Roster:  s.roster,
		Lookup:  s.mockLookup,
	})
}

func (s *MachineTestSuite) TestParseBoolean() {
	for _, raw := range []string{"yes", "Yes", "jap", "TRUE", " yup "} {
		value, err := ParseBoolean(raw)
		s.NoError(err, raw)
		s.True(value, raw)
	}
	for _, raw := range []string{"no", "nope", "Nah", "negativ"} {
		value, err := ParseBoolean(raw)
		s.NoError(err, raw)
		s.False(value, raw)
	}
	for _, raw := range []string{"maybe", "", "yess"} {
		_, err := ParseBoolean(raw)
		s.ErrorIs(err, ErrInvalidAnswer, raw)
		s.True(IsAnswerError(err))
	}
}

func (s *MachineTestSuite) TestPendingFollowsConditions() {
	machine := NewMachine(s.card, s.play)
	s.Require().NotNil(machine.Pending())
	s.Equal(0, machine.Pending().Index)
	s.Len(machine.ActiveInputs(), 1, "second question is gated by the first answer")
	s.False(machine.Complete())
}

func (s *MachineTestSuite) TestDeclineCompletesCard() {
	out, err := s.answer("alice", "no")
	s.Require().NoError(err)
	s.Equal("false", out.Answer)
	s.True(out.Complete, "the gated question is skipped")
	s.Equal([]string{"false"}, s.play.Answers)
	s.Nil(NewMachine(s.card, s.play).Pending())
}

func (s *MachineTestSuite) TestAcceptFlow() {
	out, err := s.answer("alice", "Yes")
	s.Require().NoError(err)
	s.Equal("true", out.Answer)
	s.False(out.Complete)

	pending := NewMachine(s.card, s.play).Pending()
	s.Require().NotNil(pending)
	s.Equal(1, pending.Index)

	s.mockLookup.EXPECT().
		ResolveParticipant(s.ctx, "<@bob>").
		Return(&models.ParticipantRef{ID: "bob", Name: "Bob"}, nil)

	out, err = s.answer("alice", "<@bob>")
	s.Require().NoError(err)
	s.Equal("bob", out.Answer)
	s.Equal("Bob", out.Participant.Name)
	s.True(out.Complete)
	s.Equal([]string{"true", "bob"}, s.play.Answers)

	_, err = s.answer("alice", "yes")
	s.ErrorIs(err, ErrNoPendingInput)
}

func (s *MachineTestSuite) TestWrongAnswerer() {
	_, err := s.answer("bob", "yes")
	s.ErrorIs(err, ErrNotAllowed)
	s.Empty(s.play.Answers)
}

func (s *MachineTestSuite) TestInvalidBoolean() {
	_, err := s.answer("alice", "perhaps")
	s.ErrorIs(err, ErrInvalidAnswer)
	s.Empty(s.play.Answers)
}

func (s *MachineTestSuite) TestParticipantRejections() {
	s.play.Answers = []string{"true"}

	s.mockLookup.EXPECT().ResolveParticipant(s.ctx, "nobody").Return(nil, nil)
	_, err := s.answer("alice", "nobody")
	s.ErrorIs(err, ErrUnknownParticipant)

	s.mockLookup.EXPECT().ResolveParticipant(s.ctx, "<@dave>").Return(&models.ParticipantRef{ID: "dave"}, nil)
	_, err = s.answer("alice", "<@dave>")
	s.ErrorIs(err, ErrNotPlaying)

	s.mockLookup.EXPECT().ResolveParticipant(s.ctx, "<@alice>").Return(&models.ParticipantRef{ID: "alice"}, nil)
	_, err = s.answer("alice", "<@alice>")
	s.ErrorIs(err, ErrSelectionRejected, "other excludes the answerer")

	s.mockLookup.EXPECT().ResolveParticipant(s.ctx, "<@bob>").Return(nil, errors.New("gateway down"))
	_, err = s.answer("alice", "<@bob>")
	s.Error(err)
	s.False(IsAnswerError(err))

	s.Equal([]string{"true"}, s.play.Answers, "rejected answers are not recorded")
}

func (s *MachineTestSuite) TestAnyoneMayAnswerWithoutBy() {
	s.card.Inputs[0].By = ""

	_, err := s.answer("dave", "yes")
	s.ErrorIs(err, ErrNotAllowed, "only participants of the session may answer")

	out, err := s.answer("carol", "yes")
	s.Require().NoError(err)
	s.Equal("true", out.Answer)
}

func (s *MachineTestSuite) TestAnswererPredicates() {
	machine := NewMachine(s.card, s.play)
	input := &models.Input{Type: models.InputTypeBoolean}

	for _, tt := range []struct {
		by    string
		actor string
		want  bool
	}{
		{"other", "carol", true},
		{"other", "dave", false},
		{"all", "bob", true},
		{"self", "alice", false},
		{"$user[0]", "alice", true},
		{"$user[0]", "bob", false},
	} {
		input.By = tt.by
		s.Equal(tt.want, machine.CanAnswer(input, tt.actor, s.roster), "%s answered by %s", tt.by, tt.actor)
	}
}

func (s *MachineTestSuite) TestOtherMayAnswer() {
	s.card.Inputs[0].By = "other"

	out, err := s.answer("bob", "yes")
	s.Require().NoError(err)
	s.Equal("true", out.Answer)
}

func (s *MachineTestSuite) TestHasSelectable() {
	machine := NewMachine(s.card, s.play)
	input := s.card.Inputs[1]
	s.True(machine.HasSelectable(input, s.roster))

	input.Selection = models.Selection{"$user[3]"}
	s.False(machine.HasSelectable(input, s.roster))

	s.True(machine.HasSelectable(s.card.Inputs[0], s.roster), "boolean inputs need no selection")
}
