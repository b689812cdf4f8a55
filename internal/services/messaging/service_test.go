package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	diceMocks "github.com/KirkDiggler/sipdeck/internal/dice/mocks"
	"github.com/KirkDiggler/sipdeck/internal/models"
	"github.com/KirkDiggler/sipdeck/internal/play"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	service    Service
	ctx        context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockRoller.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()

	var err error
	s.service, err = NewService(&ServiceConfig{Roller: s.mockRoller})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestCardPayload() {
	card := &models.Card{
		ID:       1,
		Text:     "$user takes $sip sips*",
		Category: models.CategoryVirus,
		Effects:  []*models.Effect{{Type: models.EffectTypeSip, Value: &models.ValueRange{Min: 1, Max: 1}}},
	}
	instance := &models.PlayInstance{Participants: []string{"alice"}, Values: []int{1}}

	out, err := s.service.GetCardPayload(s.ctx, &GetCardPayloadInput{Card: card, Play: instance})
	s.Require().NoError(err)
	s.Equal("VIRUS", out.Payload.Title)
	s.Equal("<@alice> takes **1** sip", out.Payload.Body)
	s.Equal(ColorVirus, out.Payload.Color)
	s.Equal("alice", out.Payload.ParticipantID, "a single participant is shown as author")
	s.Empty(out.Unresolved)
}

func (s *MessagingServiceTestSuite) TestPlainCardHasNoTitle() {
	card := &models.Card{ID: 2, Text: "$user and $user cheers", Category: models.CategoryNone}
	instance := &models.PlayInstance{Participants: []string{"a", "b"}}

	out, err := s.service.GetCardPayload(s.ctx, &GetCardPayloadInput{Card: card, Play: instance})
	s.Require().NoError(err)
	s.Empty(out.Payload.Title)
	s.Empty(out.Payload.ParticipantID)
	s.Equal(ColorNone, out.Payload.Color)
}

func (s *MessagingServiceTestSuite) TestQuestionPayload() {
	out, err := s.service.GetQuestionPayload(s.ctx, &GetQuestionPayloadInput{
		Input:   &models.Input{Type: models.InputTypeParticipant},
		AskedID: "alice",
	})
	s.Require().NoError(err)
	s.Equal("Waiting for your decision", out.Payload.Title)
	s.Equal("alice", out.Payload.ParticipantID)
	s.Equal(LevelColor(models.LevelInfo), out.Payload.Color)
}

func (s *MessagingServiceTestSuite) TestAnswerPayload() {
	out, err := s.service.GetAnswerPayload(s.ctx, &GetAnswerPayloadInput{ActorID: "alice", Raw: " yes "})
	s.Require().NoError(err)
	s.Equal("You chose *yes*", out.Payload.Title)

	out, err = s.service.GetAnswerPayload(s.ctx, &GetAnswerPayloadInput{
		ActorID:     "alice",
		Participant: &models.ParticipantRef{ID: "bob", Name: "Bob"},
	})
	s.Require().NoError(err)
	s.Equal("Bob has been chosen", out.Payload.Title)
}

func (s *MessagingServiceTestSuite) TestEffectsPayload() {
	out, err := s.service.GetEffectsPayload(s.ctx, &GetEffectsPayloadInput{
		Effects: []*play.EffectResult{
			{Label: "2 sips", Targets: []string{"a", "b"}},
			{Label: "ex"},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Payload.Fields, 2)
	s.Equal(models.Field{Name: "2 sips", Value: "<@a>\n<@b>", Inline: true}, out.Payload.Fields[0])
	s.Equal("nobody", out.Payload.Fields[1].Value)
}

func (s *MessagingServiceTestSuite) TestJoinMessage() {
	out, err := s.service.GetJoinMessage(s.ctx, &GetJoinMessageInput{PlayerID: "bob", Participants: 1, MinPlayers: 2})
	s.Require().NoError(err)
	s.Contains(out.Payload.Title, "<@bob>")
	s.Equal("Waiting for more players [1/2]", out.Payload.Body)

	out, err = s.service.GetJoinMessage(s.ctx, &GetJoinMessageInput{PlayerID: "bob", Participants: 2, MinPlayers: 2})
	s.Require().NoError(err)
	s.Equal("Enough players to start [2/2]", out.Payload.Body)
}

func (s *MessagingServiceTestSuite) TestSessionStatusMessages() {
	out, err := s.service.GetSessionStatusMessage(s.ctx, &GetSessionStatusMessageInput{Event: SessionEventAbandoned})
	s.Require().NoError(err)
	s.Equal(models.LevelError, out.Payload.Level)

	out, err = s.service.GetSessionStatusMessage(s.ctx, &GetSessionStatusMessageInput{Event: SessionEventTransferred, ChannelID: "42"})
	s.Require().NoError(err)
	s.Equal("The game moved to <#42>", out.Payload.Title)

	out, err = s.service.GetSessionStatusMessage(s.ctx, &GetSessionStatusMessageInput{Event: SessionEventSkipped, CardInProgress: true})
	s.Require().NoError(err)
	s.Equal("Card skipped", out.Payload.Title)

	_, err = s.service.GetSessionStatusMessage(s.ctx, &GetSessionStatusMessageInput{Event: "party"})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestStatsPayload() {
	out, err := s.service.GetStatsPayload(s.ctx, &GetStatsPayloadInput{Player: &models.Player{
		ID:      "alice",
		Current: models.Stats{Games: 1, Sips: 3},
		Total:   models.Stats{Games: 4, Sips: 10, Shots: 2},
	}})
	s.Require().NoError(err)
	s.Require().Len(out.Payload.Fields, len(models.StatFields))
	s.Equal("Games", out.Payload.Fields[0].Name)
	s.Equal("1 (total 5)", out.Payload.Fields[0].Value)
	s.Equal("3 (total 13)", out.Payload.Fields[1].Value)
}

func (s *MessagingServiceTestSuite) TestStatsPayloadWithRecentDrinks() {
	out, err := s.service.GetStatsPayload(s.ctx, &GetStatsPayloadInput{
		Player: &models.Player{ID: "alice"},
		Recent: []*models.DrinkRecord{
			{Type: models.EffectTypeShot, Amount: 1, CardID: 4},
			{Type: models.EffectTypeSip, Amount: 3, CardID: 2},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Payload.Fields, len(models.StatFields)+1)
	last := out.Payload.Fields[len(out.Payload.Fields)-1]
	s.Equal("Last drinks", last.Name)
	s.Equal("1 shot (card 4)\n3 sips (card 2)", last.Value)
}

func (s *MessagingServiceTestSuite) TestSessionPayload() {
	session := &models.Session{
		ChannelID:    "chan",
		Status:       models.SessionStatusRunning,
		Participants: []string{"alice", "bob"},
	}
	card := &models.Card{ID: 1, Text: "$user drinks"}
	instance := &models.PlayInstance{Participants: []string{"bob"}, Revealed: true}

	out, err := s.service.GetSessionPayload(s.ctx, &GetSessionPayloadInput{
		Session: session,
		Card:    card,
		Play:    instance,
		Drinks: []*models.DrinkRecord{
			{Type: models.EffectTypeSip, Amount: 2},
			{Type: models.EffectTypeSip, Amount: 1},
			{Type: models.EffectTypeEx, Amount: 1},
		},
	})
	s.Require().NoError(err)
	s.Equal("Game running", out.Payload.Title)
	s.Equal("<@bob> drinks", out.Payload.Body)
	s.Require().Len(out.Payload.Fields, 2)
	s.Equal("Players 2", out.Payload.Fields[0].Name)
	s.Equal("<@alice>\n<@bob>", out.Payload.Fields[0].Value)
	s.Equal("3 sips, 1 ex", out.Payload.Fields[1].Value)

	instance.Revealed = false
	out, err = s.service.GetSessionPayload(s.ctx, &GetSessionPayloadInput{Session: session, Card: card, Play: instance})
	s.Require().NoError(err)
	s.Equal("dealing...", out.Payload.Body)
	s.Equal("nothing yet", out.Payload.Fields[1].Value)

	_, err = s.service.GetSessionPayload(s.ctx, &GetSessionPayloadInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestHelpPayload() {
	out, err := s.service.GetHelpPayload(s.ctx, &GetHelpPayloadInput{
		Prefix:   "p.",
		Commands: []Command{{Name: "join", Description: "Join the game"}, {Name: "stats", Usage: "[user]", Description: "Show stats"}},
	})
	s.Require().NoError(err)
	s.Equal("p.join", out.Payload.Fields[0].Name)
	s.Equal("p.stats [user]", out.Payload.Fields[1].Name)
}

func (s *MessagingServiceTestSuite) TestErrorPayload() {
	out, err := s.service.GetErrorPayload(s.ctx, &GetErrorPayloadInput{Err: errors.New("not enough players")})
	s.Require().NoError(err)
	s.Equal("Not enough players", out.Payload.Title)
	s.Equal(models.LevelError, out.Payload.Level)

	_, err = s.service.GetErrorPayload(s.ctx, &GetErrorPayloadInput{})
	s.Error(err)
}
