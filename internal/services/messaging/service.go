package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/sipdeck/internal/dice"
	"github.com/KirkDiggler/sipdeck/internal/models"
	"github.com/KirkDiggler/sipdeck/internal/play"
)

// Category colors
const (
	ColorGame  = 0x099c18
	ColorNone  = 0x6379cf
	ColorVirus = 0xcfae2b
)

var levelColors = map[models.Level]int{
	models.LevelError:   0xE5433D,
	models.LevelWarning: 0xFFCC33,
	models.LevelInfo:    0x4CC7E6,
	models.LevelSuccess: 0x4CE65B,
}

var categoryColors = map[models.Category]int{
	models.CategoryGame:  ColorGame,
	models.CategoryNone:  ColorNone,
	models.CategoryVirus: ColorVirus,
}

// LevelColor returns the embed color of a level
func LevelColor(level models.Level) int {
	return levelColors[level]
}

// service implements the Service interface
type service struct {
	// Random source for selecting flavor lines
	roller dice.Roller
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	roller := dice.Roller(nil)
	if config != nil {
		roller = config.Roller
	}
	if roller == nil {
		roller = dice.New(nil)
	}

	return &service{
		roller: roller,
	}, nil
}

func (s *service) pick(lines []string) string {
	return lines[s.roller.Intn(len(lines))]
}

func mention(id string) string {
	return play.MentionMarkup{}.Mention(id)
}

// GetCardPayload renders a card, titled with its category unless it has none
func (s *service) GetCardPayload(ctx context.Context, input *GetCardPayloadInput) (*GetCardPayloadOutput, error) {
	if input == nil || input.Card == nil || input.Play == nil {
		return nil, errors.New("card and play cannot be nil")
	}

	rendered := play.RenderCard(input.Card, input.Play, input.Markup)

	payload := &models.Payload{
		Body:  rendered.Text,
		Color: categoryColors[input.Card.Category],
	}
	if input.Card.Category != models.CategoryNone {
		payload.Title = strings.ToUpper(string(input.Card.Category))
	}
	if len(input.Play.Participants) == 1 {
		payload.ParticipantID = input.Play.Participants[0]
	}

	return &GetCardPayloadOutput{
		Payload:    payload,
		Unresolved: rendered.Unresolved,
	}, nil
}

// GetQuestionPayload asks the pending question
func (s *service) GetQuestionPayload(ctx context.Context, input *GetQuestionPayloadInput) (*PayloadOutput, error) {
	if input == nil || input.Input == nil {
		return nil, errors.New("input cannot be nil")
	}

	title := input.Input.Question
	if title == "" {
		title = "Waiting for your decision"
	}

	body := "Answer with yes or no"
	if input.Input.Type == models.InputTypeParticipant {
		body = "Answer by mentioning a participant"
	}

	return &PayloadOutput{
		Payload: &models.Payload{
			Title:         title,
			Body:          body,
			ParticipantID: input.AskedID,
			Level:         models.LevelInfo,
			Color:         LevelColor(models.LevelInfo),
		},
	}, nil
}

// GetAnswerPayload confirms an accepted answer
func (s *service) GetAnswerPayload(ctx context.Context, input *GetAnswerPayloadInput) (*PayloadOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	title := fmt.Sprintf("You chose *%s*", strings.TrimSpace(input.Raw))
	if input.Participant != nil {
		name := input.Participant.Name
		if name == "" {
			name = mention(input.Participant.ID)
		}
		title = fmt.Sprintf("%s has been chosen", name)
	}

	return &PayloadOutput{
		Payload: &models.Payload{
			Title:         title,
			ParticipantID: input.ActorID,
		},
	}, nil
}

// GetEffectsPayload lists every applied effect with its targets
func (s *service) GetEffectsPayload(ctx context.Context, input *GetEffectsPayloadInput) (*PayloadOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	markup := input.Markup
	if markup == nil {
		markup = play.MentionMarkup{}
	}

	fields := make([]models.Field, 0, len(input.Effects))
	for _, effect := range input.Effects {
		targets := make([]string, len(effect.Targets))
		for i, id := range effect.Targets {
			targets[i] = markup.Mention(id)
		}
		value := strings.Join(targets, "\n")
		if value == "" {
			value = "nobody"
		}
		fields = append(fields, models.Field{
			Name:   effect.Label,
			Value:  value,
			Inline: true,
		})
	}

	return &PayloadOutput{
		Payload: &models.Payload{
			Title:  "Card effects",
			Level:  models.LevelInfo,
			Color:  LevelColor(models.LevelInfo),
			Fields: fields,
		},
	}, nil
}

func progress(participants, minPlayers int) string {
	return fmt.Sprintf("[%d/%d]", participants, minPlayers)
}

// GetJoinMessage greets a new participant
func (s *service) GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*PayloadOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	who := mention(input.PlayerID)
	lines := []string{
		fmt.Sprintf("%s pulled up a chair. Glasses ready!", who),
		fmt.Sprintf("Fresh blood! Welcome to the table, %s.", who),
		fmt.Sprintf("%s joined. The deck just got a little more dangerous.", who),
		fmt.Sprintf("A wild %s appears! Hope you brought something to drink.", who),
	}

	body := ""
	if !input.Running {
		if input.Participants >= input.MinPlayers {
			body = fmt.Sprintf("Enough players to start %s", progress(input.Participants, input.MinPlayers))
		} else {
			body = fmt.Sprintf("Waiting for more players %s", progress(input.Participants, input.MinPlayers))
		}
	}

	return &PayloadOutput{
		Payload: &models.Payload{
			Title:         s.pick(lines),
			Body:          body,
			ParticipantID: input.PlayerID,
			Level:         models.LevelSuccess,
			Color:         LevelColor(models.LevelSuccess),
		},
	}, nil
}

// GetSessionStatusMessage announces lifecycle changes
func (s *service) GetSessionStatusMessage(ctx context.Context, input *GetSessionStatusMessageInput) (*PayloadOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	payload := &models.Payload{
		ParticipantID: input.PlayerID,
		Level:         models.LevelInfo,
	}

	switch input.Event {
	case SessionEventCreated:
		payload.Title = s.pick([]string{
			"A new round is forming. Join before the first card hits the table!",
			"The deck is shuffled. Who is brave enough to join?",
			"New game! Bring a glass and a friend.",
		})
		payload.Body = fmt.Sprintf("Waiting for players %s", progress(input.Participants, input.MinPlayers))
		payload.Level = models.LevelSuccess
	case SessionEventStarted:
		payload.Title = s.pick([]string{
			"Let the cards decide!",
			"Game on! The first card is on its way.",
			"Here we go. No take-backs.",
		})
		payload.Level = models.LevelSuccess
	case SessionEventLeft:
		payload.Title = fmt.Sprintf("%s left the game", mention(input.PlayerID))
		payload.Body = progress(input.Participants, input.MinPlayers)
	case SessionEventDisbanded:
		payload.Title = "The game has been disbanded"
		payload.Level = models.LevelWarning
	case SessionEventAbandoned:
		payload.Title = "The game has been disbanded because too many players have left"
		payload.Level = models.LevelError
	case SessionEventTransferred:
		payload.Title = fmt.Sprintf("The game moved to <#%s>", input.ChannelID)
	case SessionEventSkipped:
		if input.CardInProgress {
			payload.Title = "Card skipped"
		} else {
			payload.Title = "Dealing the next card"
		}
	default:
		return nil, fmt.Errorf("unknown session event %q", input.Event)
	}

	payload.Color = LevelColor(payload.Level)
	return &PayloadOutput{Payload: payload}, nil
}

// GetStatsPayload shows current and total counters side by side
func (s *service) GetStatsPayload(ctx context.Context, input *GetStatsPayloadInput) (*PayloadOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.New("player cannot be nil")
	}

	total := input.Player.Current.Plus(input.Player.Total)

	fields := make([]models.Field, 0, len(models.StatFields))
	for _, field := range models.StatFields {
		fields = append(fields, models.Field{
			Name:   strings.ToUpper(string(field[:1])) + string(field[1:]),
			Value:  fmt.Sprintf("%d (total %d)", input.Player.Current.Get(field), total.Get(field)),
			Inline: true,
		})
	}
	if len(input.Recent) > 0 {
		fields = append(fields, models.Field{
			Name:  "Last drinks",
			Value: strings.Join(drinkLines(input.Recent), "\n"),
		})
	}

	return &PayloadOutput{
		Payload: &models.Payload{
			Title:         "Stats",
			ParticipantID: input.Player.ID,
			Level:         models.LevelInfo,
			Color:         LevelColor(models.LevelInfo),
			Fields:        fields,
		},
	}, nil
}

func drinkLines(records []*models.DrinkRecord) []string {
	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, fmt.Sprintf("%s (card %d)", play.CountNoun(record.Amount, string(record.Type)), record.CardID))
	}
	return lines
}

// GetSessionPayload shows who plays, what is on the table and how much was drunk
func (s *service) GetSessionPayload(ctx context.Context, input *GetSessionPayloadInput) (*PayloadOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("session cannot be nil")
	}
	session := input.Session

	players := make([]string, len(session.Participants))
	for i, id := range session.Participants {
		players[i] = mention(id)
	}
	playersValue := strings.Join(players, "\n")
	if playersValue == "" {
		playersValue = "nobody"
	}

	table := "no card"
	if input.Card != nil && input.Play != nil {
		table = "dealing..."
		if input.Play.Revealed {
			table = play.RenderCard(input.Card, input.Play, play.MentionMarkup{}).Text
		}
	}

	// sum per effect type, in the stable type order
	totals := make(map[models.EffectType]int)
	for _, record := range input.Drinks {
		totals[record.Type] += record.Amount
	}
	drunk := []string{}
	for _, effectType := range models.EffectTypes {
		if totals[effectType] > 0 {
			drunk = append(drunk, play.CountNoun(totals[effectType], string(effectType)))
		}
	}
	drunkValue := strings.Join(drunk, ", ")
	if drunkValue == "" {
		drunkValue = "nothing yet"
	}

	return &PayloadOutput{
		Payload: &models.Payload{
			Title: fmt.Sprintf("Game %s", session.Status),
			Body:  table,
			Level: models.LevelInfo,
			Color: LevelColor(models.LevelInfo),
			Fields: []models.Field{
				{Name: fmt.Sprintf("Players %d", len(session.Participants)), Value: playersValue, Inline: true},
				{Name: "Drunk so far", Value: drunkValue, Inline: true},
			},
		},
	}, nil
}

// GetHelpPayload lists the commands with their usage
func (s *service) GetHelpPayload(ctx context.Context, input *GetHelpPayloadInput) (*PayloadOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	fields := make([]models.Field, 0, len(input.Commands))
	for _, command := range input.Commands {
		usage := input.Prefix + command.Name
		if command.Usage != "" {
			usage += " " + command.Usage
		}
		fields = append(fields, models.Field{
			Name:  usage,
			Value: command.Description,
		})
	}

	return &PayloadOutput{
		Payload: &models.Payload{
			Title:  "Commands",
			Level:  models.LevelInfo,
			Color:  LevelColor(models.LevelInfo),
			Fields: fields,
		},
	}, nil
}

// GetErrorPayload shows the error text with a little flavor
func (s *service) GetErrorPayload(ctx context.Context, input *GetErrorPayloadInput) (*PayloadOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("error cannot be nil")
	}

	level := input.Level
	if level == "" {
		level = models.LevelError
	}

	return &PayloadOutput{
		Payload: &models.Payload{
			Title: capitalize(input.Err.Error()),
			Body: s.pick([]string{
				"Have another sip and try again.",
				"The cards are not amused.",
				"Nice try.",
			}),
			Level: level,
			Color: LevelColor(level),
		},
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
