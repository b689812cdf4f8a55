package play

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

const (
	// MentionUser refers to the participants drawn for the play
	MentionUser = "user"

	// MentionInput refers to the recorded answers
	MentionInput = "input"
)

const (
	SelectSelf  = "self"
	SelectOther = "other"
	SelectAll   = "all"
)

var (
	mentionPattern   = regexp.MustCompile(`(?i)^\$([a-z]+)(?:\[([0-9]+)\])?$`)
	conditionPattern = regexp.MustCompile(`\$input(?:\[(\d+)\])?`)
)

// Resolver turns mention tokens and target specifications into participant IDs
type Resolver struct {
	play *models.PlayInstance
}

// NewResolver creates a resolver over the drawn participants and answers of a play
func NewResolver(instance *models.PlayInstance) *Resolver {
	return &Resolver{play: instance}
}

// ParseMention resolves a token like "$user" or "$input[1]".
// The boolean is false when the token is not a mention at all.
func (r *Resolver) ParseMention(token string) ([]string, bool) {
	match := mentionPattern.FindStringSubmatch(strings.TrimSpace(token))
	if match == nil {
		return nil, false
	}

	var entries []string
	switch strings.ToLower(match[1]) {
	case MentionUser:
		entries = r.play.Participants
	case MentionInput:
		entries = r.play.Answers
	}

	if match[2] == "" {
		out := make([]string, len(entries))
		copy(out, entries)
		return out, true
	}

	index, err := strconv.Atoi(match[2])
	if err != nil || index >= len(entries) {
		return []string{}, true
	}
	return []string{entries[index]}, true
}

// ConditionMet evaluates a condition against the recorded answers.
// An empty condition always holds, one without an input reference never does.
func (r *Resolver) ConditionMet(condition string) bool {
	if condition == "" {
		return true
	}

	match := conditionPattern.FindStringSubmatch(condition)
	if match == nil {
		return false
	}

	index := 0
	if match[1] != "" {
		i, err := strconv.Atoi(match[1])
		if err != nil {
			return false
		}
		index = i
	}

	if index >= len(r.play.Answers) {
		return false
	}
	return r.play.Answers[index] == "true"
}

// Resolve returns the participants a target refers to, without duplicates
func (r *Resolver) Resolve(target models.TargetSpec) []string {
	out := []string{}
	seen := map[string]bool{}
	r.collect(target, func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
	})
	return out
}

func (r *Resolver) collect(target models.TargetSpec, add func(string)) {
	switch target.Kind {
	case models.TargetMention:
		ids, _ := r.ParseMention(target.Mention)
		for _, id := range ids {
			add(id)
		}
	case models.TargetConditional:
		branch := target.IfFalse
		if r.ConditionMet(target.Condition) {
			branch = target.IfTrue
		}
		if branch != nil {
			r.collect(*branch, add)
		}
	case models.TargetList:
		for _, item := range target.Items {
			r.collect(item, add)
		}
	}
}

// Selects reports whether the selected participant satisfies any of the predicates
// relative to the acting participant. An empty selection means "other".
func (r *Resolver) Selects(selection models.Selection, selected, actor string) bool {
	if len(selection) == 0 {
		selection = models.Selection{SelectOther}
	}

	for _, predicate := range selection {
		predicate = strings.TrimSpace(predicate)
		if predicate == "" {
			predicate = SelectOther
		}

		switch predicate {
		case SelectOther:
			if selected != actor {
				return true
			}
		case SelectSelf:
			if selected == actor {
				return true
			}
		case SelectAll:
			return true
		default:
			ids, _ := r.ParseMention(predicate)
			for _, id := range ids {
				if id == selected {
					return true
				}
			}
		}
	}
	return false
}
