package discord

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/sipdeck/internal/handlers/discord/mocks"
	"github.com/KirkDiggler/sipdeck/internal/models"
)

type TransportTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockAPI   *mocks.MockAPI
	transport *Transport
	ctx       context.Context
}

func (s *TransportTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAPI = mocks.NewMockAPI(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.transport, err = NewTransport(&TransportConfig{
		API:        s.mockAPI,
		PlayerRole: "role-1",
	})
	s.Require().NoError(err)
}

func (s *TransportTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTransportSuite(t *testing.T) {
	suite.Run(t, new(TransportTestSuite))
}

func (s *TransportTestSuite) TestNewTransportRequiresAPI() {
	_, err := NewTransport(&TransportConfig{})
	s.Error(err)

	_, err = NewTransport(nil)
	s.Error(err)
}

func (s *TransportTestSuite) TestSendPayloadWithAuthor() {
	s.mockAPI.EXPECT().User("42").Return(&discordgo.User{ID: "42", Username: "bob", GlobalName: "Bobby"}, nil)
	s.mockAPI.EXPECT().ChannelMessageSendEmbed("chan", gomock.Any()).
		DoAndReturn(func(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal("Drink up", embed.Title)
			s.Equal("Everybody sips", embed.Description)
			s.Require().NotNil(embed.Author)
			s.Equal("Bobby", embed.Author.Name)
			return &discordgo.Message{}, nil
		})

	err := s.transport.SendPayload(s.ctx, "chan", &models.Payload{
		Title:         "Drink up",
		Body:          "Everybody sips",
		ParticipantID: "42",
	})
	s.NoError(err)
}

func (s *TransportTestSuite) TestSendPayloadAuthorLookupFailure() {
	s.mockAPI.EXPECT().User("42").Return(nil, errors.New("boom"))
	s.mockAPI.EXPECT().ChannelMessageSendEmbed("chan", gomock.Any()).
		DoAndReturn(func(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Nil(embed.Author)
			return &discordgo.Message{}, nil
		})

	s.NoError(s.transport.SendPayload(s.ctx, "chan", &models.Payload{Title: "x", ParticipantID: "42"}))
}

func (s *TransportTestSuite) TestSendPayloadError() {
	s.mockAPI.EXPECT().ChannelMessageSendEmbed("chan", gomock.Any()).Return(nil, errors.New("missing access"))

	err := s.transport.SendPayload(s.ctx, "chan", &models.Payload{Title: "x"})
	s.Error(err)
	s.Contains(err.Error(), "missing access")
}

func (s *TransportTestSuite) TestResolveParticipant() {
	s.mockAPI.EXPECT().User("123").Return(&discordgo.User{ID: "123", Username: "alice"}, nil)

	ref, err := s.transport.ResolveParticipant(s.ctx, "<@!123>")
	s.Require().NoError(err)
	s.Require().NotNil(ref)
	s.Equal("123", ref.ID)
	s.Equal("alice", ref.Name)
}

func (s *TransportTestSuite) TestResolveParticipantNotAMention() {
	ref, err := s.transport.ResolveParticipant(s.ctx, "yes")
	s.NoError(err)
	s.Nil(ref)
}

func (s *TransportTestSuite) TestResolveParticipantUnknownUser() {
	s.mockAPI.EXPECT().User("999").Return(nil, &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusNotFound},
	})

	ref, err := s.transport.ResolveParticipant(s.ctx, "<@999>")
	s.NoError(err)
	s.Nil(ref)
}

func (s *TransportTestSuite) TestResolveParticipantAPIError() {
	s.mockAPI.EXPECT().User("999").Return(nil, errors.New("rate limited"))

	_, err := s.transport.ResolveParticipant(s.ctx, "999")
	s.Error(err)
}

func (s *TransportTestSuite) TestParticipantMarkers() {
	s.mockAPI.EXPECT().Channel("chan").Return(&discordgo.Channel{ID: "chan", GuildID: "guild"}, nil).Times(2)
	s.mockAPI.EXPECT().GuildMemberRoleAdd("guild", "42", "role-1").Return(nil)
	s.mockAPI.EXPECT().GuildMemberRoleRemove("guild", "42", "role-1").Return(nil)

	s.NoError(s.transport.AddParticipantMarker(s.ctx, "chan", "42"))
	s.NoError(s.transport.RemoveParticipantMarker(s.ctx, "chan", "42"))
}

func (s *TransportTestSuite) TestParticipantMarkersOutsideGuild() {
	s.mockAPI.EXPECT().Channel("dm").Return(&discordgo.Channel{ID: "dm"}, nil)

	s.Error(s.transport.AddParticipantMarker(s.ctx, "dm", "42"))
}

func (s *TransportTestSuite) TestParticipantMarkersWithoutRole() {
	transport, err := NewTransport(&TransportConfig{API: s.mockAPI})
	s.Require().NoError(err)

	// no API call expected
	s.NoError(transport.AddParticipantMarker(s.ctx, "chan", "42"))
	s.NoError(transport.RemoveParticipantMarker(s.ctx, "chan", "42"))
}
