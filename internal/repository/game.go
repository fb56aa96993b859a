package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/connect4-bot/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

// GameRepository - journal of game snapshots observed by the bot.
type GameRepository interface {
	Append(ctx context.Context, game *entity.Game) error
	GetLatest(ctx context.Context, id uuid.UUID) (*entity.Game, error)
	List(ctx context.Context, id uuid.UUID) ([]*entity.Game, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func gameKey(id uuid.UUID) string {
	return "game:" + id.String()
}

func snapshotsKey(id uuid.UUID) string {
	return gameKey(id) + ":snapshots"
}

func (that *dbGame) Append(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKey(game.ID), gameJSON, 0)
		pipe.RPush(ctx, snapshotsKey(game.ID), gameJSON)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append game snapshot: %w", err)
	}

	return nil
}

func (that *dbGame) GetLatest(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var game entity.Game
	if err = json.Unmarshal([]byte(response), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

func (that *dbGame) List(ctx context.Context, id uuid.UUID) ([]*entity.Game, error) {
	items, err := that.client.LRange(ctx, snapshotsKey(id), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list game snapshots: %w", err)
	}

	games := make([]*entity.Game, 0, len(items))
	for _, item := range items {
		var game entity.Game
		if err = json.Unmarshal([]byte(item), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game snapshot: %w", err)
		}
		games = append(games, &game)
	}

	return games, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id uuid.UUID) error {
	deleted, err := that.client.Del(ctx, gameKey(id), snapshotsKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}
