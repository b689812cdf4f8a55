// Package cardpack imports authored card files into the card repository.
// Every file is named after the id of the card it holds, e.g. 12.json or 12.yaml.
package cardpack

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/sipdeck/internal/models"
	cardRepo "github.com/KirkDiggler/sipdeck/internal/repositories/card"
)

var extensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// Config holds the dependencies of the loader
type Config struct {
	CardRepo cardRepo.Repository
	Logger   *zap.Logger
}

// Loader reads card files and stores them
type Loader struct {
	cardRepo cardRepo.Repository
	logger   *zap.Logger
}

// NewLoader creates a new card loader
func NewLoader(cfg *Config) (*Loader, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.CardRepo == nil {
		return nil, errors.New("card repository cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Loader{
		cardRepo: cfg.CardRepo,
		logger:   logger.Named("cardpack"),
	}, nil
}

// ImportInput contains parameters for an import
type ImportInput struct {
	Dir string

	// Force imports even when cards are already stored
	Force bool
}

// ImportOutput reports what an import did
type ImportOutput struct {
	// Skipped is set when the repository already had cards
	Skipped bool

	Imported int

	// Failed lists the files that could not be imported
	Failed []string
}

// Import stores every card file of a directory. A broken file is logged and skipped.
func (l *Loader) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !input.Force {
		count, err := l.cardRepo.CountCards(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count cards: %w", err)
		}
		if count > 0 {
			l.logger.Debug("cards already imported", zap.Int("count", count))
			return &ImportOutput{Skipped: true}, nil
		}
	}

	entries, err := os.ReadDir(input.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read card directory: %w", err)
	}

	output := &ImportOutput{}
	for _, entry := range entries {
		if entry.IsDir() || !extensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		path := filepath.Join(input.Dir, entry.Name())
		if err := l.importFile(ctx, path); err != nil {
			l.logger.Warn("failed to import card", zap.String("file", entry.Name()), zap.Error(err))
			output.Failed = append(output.Failed, entry.Name())
			continue
		}
		output.Imported++
	}

	l.logger.Info("imported cards",
		zap.Int("imported", output.Imported),
		zap.Int("failed", len(output.Failed)))
	return output, nil
}

func (l *Loader) importFile(ctx context.Context, path string) error {
	name := filepath.Base(path)
	id, err := strconv.Atoi(strings.TrimSuffix(name, filepath.Ext(name)))
	if err != nil {
		return fmt.Errorf("file name is not a card id: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	card, err := ParseCard(id, data)
	if err != nil {
		return err
	}

	return l.cardRepo.SaveCard(ctx, &cardRepo.SaveCardInput{Card: card})
}

// ParseCard decodes one authored card. JSON is read by the YAML decoder as well.
func ParseCard(id int, data []byte) (*models.Card, error) {
	card := &models.Card{}
	if err := yaml.Unmarshal(data, card); err != nil {
		return nil, fmt.Errorf("failed to decode card %d: %w", id, err)
	}

	card.ID = id
	if card.Category == "" {
		card.Category = models.CategoryNone
	}
	if !card.Category.IsValid() {
		return nil, fmt.Errorf("card %d has unknown category %q", id, card.Category)
	}
	if strings.TrimSpace(card.Text) == "" {
		return nil, fmt.Errorf("card %d has no text", id)
	}

	for i, input := range card.Inputs {
		if input == nil {
			return nil, fmt.Errorf("card %d input %d is empty", id, i)
		}
		switch input.Type {
		case models.InputTypeBoolean, models.InputTypeParticipant, "user":
		default:
			return nil, fmt.Errorf("card %d input %d has unknown type %q", id, i, input.Type)
		}
	}
	for i, effect := range card.Effects {
		if effect == nil || effect.Type == "" {
			return nil, fmt.Errorf("card %d effect %d has no type", id, i)
		}
	}

	card.AssignInputIndexes()
	card.Normalize()
	return card, nil
}
