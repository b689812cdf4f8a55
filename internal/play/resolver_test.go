package play

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

type ResolverTestSuite struct {
	suite.Suite
	play     *models.PlayInstance
	resolver *Resolver
}

func (s *ResolverTestSuite) SetupTest() {
	s.play = &models.PlayInstance{
		Participants: []string{"alice", "bob"},
		Answers:      []string{"true", "carol", "false"},
	}
	s.resolver = NewResolver(s.play)
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) TestParseMention() {
	ids, ok := s.resolver.ParseMention("$user")
	s.True(ok)
	s.Equal([]string{"alice", "bob"}, ids)

	ids, ok = s.resolver.ParseMention("$user[1]")
	s.True(ok)
	s.Equal([]string{"bob"}, ids)

	ids, ok = s.resolver.ParseMention(" $INPUT[1] ")
	s.True(ok)
	s.Equal([]string{"carol"}, ids)

	ids, ok = s.resolver.ParseMention("$user[5]")
	s.True(ok, "out of range index is still a mention")
	s.Empty(ids)

	ids, ok = s.resolver.ParseMention("$dealer")
	s.True(ok)
	s.Empty(ids)

	_, ok = s.resolver.ParseMention("bob")
	s.False(ok)
}

func (s *ResolverTestSuite) TestConditionMet() {
	s.True(s.resolver.ConditionMet(""))
	s.True(s.resolver.ConditionMet("$input"))
	s.True(s.resolver.ConditionMet("$input[0]"))
	s.False(s.resolver.ConditionMet("$input[1]"), "non boolean answers are not true")
	s.False(s.resolver.ConditionMet("$input[2]"))
	s.False(s.resolver.ConditionMet("$input[7]"), "unanswered inputs are false")
	s.False(s.resolver.ConditionMet("whenever"), "unsupported expressions are false")
}

func (s *ResolverTestSuite) TestResolveTargets() {
	s.Equal([]string{"alice"}, s.resolver.Resolve(models.MentionTarget("$user[0]")))
	s.Empty(s.resolver.Resolve(models.TargetSpec{}))

	conditional := models.ConditionalTarget("$input[0]",
		models.MentionTarget("$input[1]"),
		models.MentionTarget("$user"),
	)
	s.Equal([]string{"carol"}, s.resolver.Resolve(conditional))

	negated := models.ConditionalTarget("$input[2]",
		models.MentionTarget("$input[1]"),
		models.ListTarget(models.MentionTarget("$user[1]"), models.MentionTarget("$user[0]")),
	)
	s.Equal([]string{"bob", "alice"}, s.resolver.Resolve(negated))

	list := models.ListTarget(
		models.MentionTarget("$user"),
		models.MentionTarget("$user[0]"),
		models.MentionTarget("$input[1]"),
	)
	s.Equal([]string{"alice", "bob", "carol"}, s.resolver.Resolve(list), "duplicates are dropped")
}

func (s *ResolverTestSuite) TestSelects() {
	s.True(s.resolver.Selects(models.Selection{"self"}, "alice", "alice"))
	s.False(s.resolver.Selects(models.Selection{"self"}, "bob", "alice"))

	s.True(s.resolver.Selects(models.Selection{"other"}, "bob", "alice"))
	s.False(s.resolver.Selects(models.Selection{"other"}, "alice", "alice"))

	s.True(s.resolver.Selects(models.Selection{"all"}, "alice", "alice"))
	s.True(s.resolver.Selects(models.Selection{"all"}, "bob", "alice"))

	s.True(s.resolver.Selects(nil, "bob", "alice"), "empty selection defaults to other")
	s.False(s.resolver.Selects(nil, "alice", "alice"))

	s.True(s.resolver.Selects(models.Selection{"$user[1]"}, "bob", "alice"))
	s.False(s.resolver.Selects(models.Selection{"$user[1]"}, "carol", "alice"))

	s.True(s.resolver.Selects(models.Selection{"self", "$user[1]"}, "alice", "alice"), "predicates are OR-combined")
	s.True(s.resolver.Selects(models.Selection{"self", "$user[1]"}, "bob", "alice"))
	s.False(s.resolver.Selects(models.Selection{"self", "$user[1]"}, "carol", "alice"))
}
