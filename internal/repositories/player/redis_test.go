package player

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) increment(playerID string, field models.StatField, amount int) {
	s.Require().NoError(s.repo.IncrementStat(s.ctx, &IncrementStatInput{
		PlayerID: playerID,
		Field:    field,
		Amount:   amount,
	}))
}

func (s *RedisRepositoryTestSuite) TestGetUnknownPlayer() {
	_, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: "ghost"})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestIncrementStat() {
	s.increment("alice", models.StatSips, 2)
	s.increment("alice", models.StatSips, 3)
	s.increment("alice", models.StatShots, 1)

	player, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: "alice"})
	s.Require().NoError(err)
	s.Equal(models.Stats{Sips: 5, Shots: 1}, player.Current)
	s.Equal(models.Stats{}, player.Total)
}

func (s *RedisRepositoryTestSuite) TestRollupStartsNewGame() {
	s.Require().NoError(s.repo.RollupStats(s.ctx, &RollupStatsInput{PlayerID: "alice", StartGame: true}))
	s.increment("alice", models.StatSips, 4)
	s.increment("alice", models.StatEx, 1)

	s.Require().NoError(s.repo.RollupStats(s.ctx, &RollupStatsInput{PlayerID: "alice", StartGame: true}))
	s.increment("alice", models.StatSips, 1)

	player, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: "alice"})
	s.Require().NoError(err)
	s.Equal(models.Stats{Games: 1, Sips: 1}, player.Current)
	s.Equal(models.Stats{Games: 1, Sips: 4, Ex: 1}, player.Total)
}

func (s *RedisRepositoryTestSuite) TestRollupWithoutNewGame() {
	s.increment("bob", models.StatGames, 1)
	s.increment("bob", models.StatShots, 2)

	s.Require().NoError(s.repo.RollupStats(s.ctx, &RollupStatsInput{PlayerID: "bob"}))

	player, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: "bob"})
	s.Require().NoError(err)
	s.Equal(models.Stats{}, player.Current)
	s.Equal(models.Stats{Games: 1, Shots: 2}, player.Total)
	s.Equal(models.Stats{Games: 1, Shots: 2}, player.Current.Plus(player.Total))
}

func (s *RedisRepositoryTestSuite) TestGetPlayersKeepsOrder() {
	s.increment("carol", models.StatSips, 1)
	s.increment("alice", models.StatSips, 2)

	output, err := s.repo.GetPlayers(s.ctx, &GetPlayersInput{PlayerIDs: []string{"alice", "ghost", "carol"}})
	s.Require().NoError(err)
	s.Require().Len(output.Players, 2)
	s.Equal("alice", output.Players[0].ID)
	s.Equal("carol", output.Players[1].ID)
}

func (s *RedisRepositoryTestSuite) TestInvalidInput() {
	s.Error(s.repo.IncrementStat(s.ctx, &IncrementStatInput{Field: models.StatSips, Amount: 1}))
	s.Error(s.repo.IncrementStat(s.ctx, &IncrementStatInput{PlayerID: "alice", Amount: 1}))
	s.Error(s.repo.RollupStats(s.ctx, nil))
}
