package discord

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/sipdeck/internal/dice"
	"github.com/KirkDiggler/sipdeck/internal/handlers/discord/mocks"
	"github.com/KirkDiggler/sipdeck/internal/models"
	"github.com/KirkDiggler/sipdeck/internal/play"
	"github.com/KirkDiggler/sipdeck/internal/services/game"
	gameMocks "github.com/KirkDiggler/sipdeck/internal/services/game/mocks"
	"github.com/KirkDiggler/sipdeck/internal/services/messaging"
	transportMocks "github.com/KirkDiggler/sipdeck/internal/transport/mocks"
)

type BotTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockAPI       *mocks.MockAPI
	mockGame      *gameMocks.MockService
	mockTransport *transportMocks.MockTransport
	bot           *Bot
	ctx           context.Context

	sent []*models.Payload
}

func (s *BotTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAPI = mocks.NewMockAPI(s.ctrl)
	s.mockGame = gameMocks.NewMockService(s.ctrl)
	s.mockTransport = transportMocks.NewMockTransport(s.ctrl)
	s.ctx = context.Background()
	s.sent = nil

	msgService, err := messaging.NewService(&messaging.ServiceConfig{
		Roller: dice.New(&dice.Config{Seed: 1}),
	})
	s.Require().NoError(err)

	s.bot, err = New(&Config{
		API:         s.mockAPI,
		GameService: s.mockGame,
		Messaging:   msgService,
		Transport:   s.mockTransport,
	})
	s.Require().NoError(err)

	s.mockTransport.EXPECT().SendPayload(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload *models.Payload) error {
			s.sent = append(s.sent, payload)
			return nil
		}).AnyTimes()
}

func (s *BotTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBotSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}

func (s *BotTestSuite) message(content string) *Message {
	return &Message{
		ChannelID: "chan",
		GuildID:   "guild",
		AuthorID:  "alice",
		Content:   content,
	}
}

func (s *BotTestSuite) ownerIs(id string) {
	s.mockAPI.EXPECT().Guild("guild").Return(&discordgo.Guild{ID: "guild", OwnerID: id}, nil).AnyTimes()
}

func (s *BotTestSuite) TestNewRequiresDependencies() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{GameService: s.mockGame, Transport: s.mockTransport})
	s.Error(err)

	_, err = New(&Config{GameService: s.mockGame, Messaging: s.bot.messaging, Transport: s.mockTransport})
	s.Error(err, "session or API is required")
}

func (s *BotTestSuite) TestDefaultPrefix() {
	s.Equal(DefaultPrefix, s.bot.config.Prefix)
}

func (s *BotTestSuite) TestCreateCommand() {
	s.mockGame.EXPECT().CreateSession(s.ctx, &game.CreateSessionInput{
		ChannelID: "chan",
		GuildID:   "guild",
		CreatorID: "alice",
	}).Return(&game.CreateSessionOutput{}, nil)

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("p.create")))
	s.Empty(s.sent)
}

func (s *BotTestSuite) TestPrefixAndAliasAreCaseInsensitive() {
	s.mockGame.EXPECT().CreateSession(s.ctx, gomock.Any()).Return(&game.CreateSessionOutput{}, nil)

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("P.NEW")))
}

func (s *BotTestSuite) TestUnknownCommandIsIgnored() {
	s.NoError(s.bot.HandleMessage(s.ctx, s.message("p.dance")))
	s.Empty(s.sent)
}

func (s *BotTestSuite) TestUserErrorIsShown() {
	s.mockGame.EXPECT().JoinSession(s.ctx, gomock.Any()).Return(nil, game.ErrSessionNotFound)

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("p.join")))
	s.Require().Len(s.sent, 1)
	s.Equal("There is no game in this channel", s.sent[0].Title)
	s.Equal(models.LevelError, s.sent[0].Level)
}

func (s *BotTestSuite) TestInternalErrorIsHidden() {
	s.mockGame.EXPECT().StartSession(s.ctx, gomock.Any()).Return(nil, errors.New("redis: connection refused"))

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("p.start")))
	s.Require().Len(s.sent, 1)
	s.Equal("Something went wrong", s.sent[0].Title)
}

func (s *BotTestSuite) TestForceRequiresGuildOwner() {
	s.ownerIs("someone-else")

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("p.force <@42>")))
	s.Require().Len(s.sent, 1)
	s.Equal("You are not allowed to do that", s.sent[0].Title)
}

func (s *BotTestSuite) TestForceJoinsMentionedPlayer() {
	s.ownerIs("alice")
	s.mockTransport.EXPECT().ResolveParticipant(s.ctx, "<@42>").
		Return(&models.ParticipantRef{ID: "42", Name: "bob"}, nil)
	s.mockGame.EXPECT().JoinSession(s.ctx, &game.JoinSessionInput{
		ChannelID: "chan",
		PlayerID:  "42",
	}).Return(&game.JoinSessionOutput{}, nil)

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("p.force <@42>")))
}

func (s *BotTestSuite) TestForceWithoutMention() {
	s.ownerIs("alice")

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("p.force")))
	s.Require().Len(s.sent, 1)
	s.Equal("Mention a player", s.sent[0].Title)
}

func (s *BotTestSuite) TestSkipPassesOwnerPrivilege() {
	s.ownerIs("alice")
	s.mockGame.EXPECT().SkipCard(s.ctx, &game.SkipCardInput{
		ChannelID:  "chan",
		PlayerID:   "alice",
		Privileged: true,
	}).Return(&game.SkipCardOutput{}, nil)

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("p.skip")))
}

func (s *BotTestSuite) TestTransferParsesChannel() {
	s.ownerIs("someone-else")
	s.mockGame.EXPECT().TransferSession(s.ctx, &game.TransferSessionInput{
		FromChannelID: "chan",
		ToChannelID:   "777",
		PlayerID:      "alice",
	}).Return(&game.TransferSessionOutput{}, nil)

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("p.move <#777>")))
}

func (s *BotTestSuite) TestTransferWithoutChannel() {
	s.NoError(s.bot.HandleMessage(s.ctx, s.message("p.transfer")))
	s.Require().Len(s.sent, 1)
	s.Equal("Mention the channel to move the game to", s.sent[0].Title)
}

func (s *BotTestSuite) TestStatsOfMentionedPlayer() {
	s.mockTransport.EXPECT().ResolveParticipant(s.ctx, "<@42>").
		Return(&models.ParticipantRef{ID: "42"}, nil)
	s.mockGame.EXPECT().GetPlayerStats(s.ctx, &game.GetPlayerStatsInput{PlayerID: "42"}).
		Return(&game.GetPlayerStatsOutput{Player: &models.Player{
			ID:    "42",
			Total: models.Stats{Sips: 4},
		}}, nil)

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("p.stats <@42>")))
	s.Require().Len(s.sent, 1)
	s.Equal("42", s.sent[0].ParticipantID)
}

func (s *BotTestSuite) TestStatus() {
	s.mockGame.EXPECT().GetSession(s.ctx, &game.GetSessionInput{ChannelID: "chan"}).
		Return(&game.GetSessionOutput{
			Session: &models.Session{
				ChannelID:    "chan",
				Status:       models.SessionStatusForming,
				Participants: []string{"alice"},
			},
		}, nil)

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("p.table")))
	s.Require().Len(s.sent, 1)
	s.Equal("Game forming", s.sent[0].Title)
	s.Equal("no card", s.sent[0].Body)
}

func (s *BotTestSuite) TestNSFWUsage() {
	s.NoError(s.bot.HandleMessage(s.ctx, s.message("p.nsfw maybe")))
	s.Require().Len(s.sent, 1)
	s.Equal("Use nsfw on or nsfw off", s.sent[0].Title)
}

func (s *BotTestSuite) TestNSFWOn() {
	s.ownerIs("someone-else")
	s.mockGame.EXPECT().SetNSFW(s.ctx, &game.SetNSFWInput{
		ChannelID: "chan",
		PlayerID:  "alice",
		Allow:     true,
	}).Return(&game.SetNSFWOutput{Session: &models.Session{AllowNSFW: true}}, nil)

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("p.nsfw on")))
	s.Require().Len(s.sent, 1)
	s.Equal("NSFW cards are on", s.sent[0].Title)
}

func (s *BotTestSuite) TestLike() {
	s.mockGame.EXPECT().LikeCurrentCard(s.ctx, gomock.Any()).
		Return(&game.LikeCurrentCardOutput{CardID: 3, Added: true, Likes: 2}, nil)

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("p.like")))
	s.Require().Len(s.sent, 1)
	s.Contains(s.sent[0].Title, "2")
}

func (s *BotTestSuite) TestHelpListsCommands() {
	s.NoError(s.bot.HandleMessage(s.ctx, s.message("p.help")))
	s.Require().Len(s.sent, 1)
	s.Equal("Commands", s.sent[0].Title)
	s.Len(s.sent[0].Fields, len(s.bot.ordered))
	s.Equal("p.create", s.sent[0].Fields[0].Name)
}

func (s *BotTestSuite) TestChatIsSubmittedAsAnswer() {
	s.mockGame.EXPECT().SubmitAnswer(s.ctx, &game.SubmitAnswerInput{
		ChannelID: "chan",
		PlayerID:  "alice",
		Raw:       "yes",
	}).Return(&game.SubmitAnswerOutput{}, nil)

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("  yes ")))
}

func (s *BotTestSuite) TestChatWithoutGameIsIgnored() {
	s.mockGame.EXPECT().SubmitAnswer(s.ctx, gomock.Any()).Return(nil, game.ErrSessionNotFound)

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("hello there")))
	s.Empty(s.sent)
}

func (s *BotTestSuite) TestRejectedAnswerIsQuietByDefault() {
	s.mockGame.EXPECT().SubmitAnswer(s.ctx, gomock.Any()).Return(nil, play.ErrInvalidAnswer)

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("banana")))
	s.Empty(s.sent)
}

func (s *BotTestSuite) TestRejectedAnswerIsShownWhenEnabled() {
	s.bot.config.SendInputErrors = true
	s.mockGame.EXPECT().SubmitAnswer(s.ctx, gomock.Any()).Return(nil, play.ErrInvalidAnswer)

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("banana")))
	s.Require().Len(s.sent, 1)
	s.Equal(models.LevelWarning, s.sent[0].Level)
}

func (s *BotTestSuite) TestAnswerChatterIsIgnored() {
	for _, err := range []error{game.ErrNotRunning, game.ErrNotJoined, game.ErrNoCardInProgress} {
		s.mockGame.EXPECT().SubmitAnswer(s.ctx, gomock.Any()).Return(nil, err)
		s.NoError(s.bot.HandleMessage(s.ctx, s.message("lol")))
	}
	s.Empty(s.sent)
}

func (s *BotTestSuite) TestAnswerExhaustedDeckIsReported() {
	s.mockGame.EXPECT().SubmitAnswer(s.ctx, gomock.Any()).
		Return(nil, fmt.Errorf("advance: %w", game.ErrNoPlayableCard))

	s.NoError(s.bot.HandleMessage(s.ctx, s.message("yes")))
	s.Require().Len(s.sent, 1)
	s.Equal("No playable card for this many players", s.sent[0].Title)
	s.Equal(models.LevelError, s.sent[0].Level)
}

func (s *BotTestSuite) TestAnswerInternalErrorIsReturned() {
	s.mockGame.EXPECT().SubmitAnswer(s.ctx, gomock.Any()).Return(nil, errors.New("redis down"))

	s.Error(s.bot.HandleMessage(s.ctx, s.message("yes")))
}
