package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/leaguebot-go/internal/model"
	"github.com/mcoot/leaguebot-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Pipeline the record write and the scan-index update together
	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.ID), data, 0)
	pipe.SAdd(ctx, playersIndexKey(), string(player.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	ids, err := s.client.SMembers(ctx, playersIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)

	players := make([]*model.Player, 0, len(ids))
	for _, id := range ids {
		player, err := s.GetPlayer(ctx, model.PlayerID(id))
		if err != nil {
			// Index entry without a record; skip rather than fail the scan
			if errors.Is(err, model.ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

// Team operations

func (s *Storage) SaveTeam(ctx context.Context, team *model.Team) error {
	data, err := json.Marshal(team)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, teamKey(team.ID), data, 0)
	pipe.SAdd(ctx, teamsIndexKey(), string(team.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error) {
	data, err := s.client.Get(ctx, teamKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrTeamNotFound
		}
		return nil, err
	}

	var team model.Team
	if err := json.Unmarshal(data, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *Storage) ListTeams(ctx context.Context) ([]*model.Team, error) {
	ids, err := s.client.SMembers(ctx, teamsIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)

	teams := make([]*model.Team, 0, len(ids))
	for _, id := range ids {
		team, err := s.GetTeam(ctx, model.TeamID(id))
		if err != nil {
			if errors.Is(err, model.ErrTeamNotFound) {
				continue
			}
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, nil
}
