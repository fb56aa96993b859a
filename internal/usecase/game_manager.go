package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connect4-bot/internal/apperror"
	"github.com/rocketscienceinc/connect4-bot/internal/entity"
)

type gameClient interface {
	Register(ctx context.Context, creds entity.Credentials) (uuid.UUID, error)
	NewGame(ctx context.Context, playerID uuid.UUID) error
	GetGameState(ctx context.Context, playerID uuid.UUID) (*entity.Game, error)
	MakeMove(ctx context.Context, playerID uuid.UUID, password string, column int) error
}

type moveSelector interface {
	NextMove(game *entity.Game) int
}

type presenter interface {
	Display(game *entity.Game, playerID uuid.UUID) error
	Printf(format string, args ...any) error
}

type gameJournal interface {
	Append(ctx context.Context, game *entity.Game) error
}

type Settings struct {
	Credentials  entity.Credentials
	PollInterval time.Duration
	// MaxFetchFailures - consecutive failed polls tolerated before giving up; zero or less never gives up.
	MaxFetchFailures int
}

// GameManager - drives one bot session: registration, a new game and the polling loop.
type GameManager struct {
	logger    *slog.Logger
	client    gameClient
	selector  moveSelector
	presenter presenter
	journal   gameJournal
	settings  Settings
}

func NewGameManager(logger *slog.Logger, client gameClient, selector moveSelector, presenter presenter, settings Settings) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		client:    client,
		selector:  selector,
		presenter: presenter,
		settings:  settings,
	}
}

// SetJournal - records every observed snapshot in journal.
func (that *GameManager) SetJournal(journal gameJournal) {
	that.journal = journal
}

// Run - registers, starts a new game and plays it until it is finished.
func (that *GameManager) Run(ctx context.Context) error {
	that.print("Hello Connect4!\n")

	playerID, err := that.Bootstrap(ctx)
	if err != nil {
		return err
	}

	return that.Play(ctx, playerID)
}

// Bootstrap - registers the team and requests a fresh game for it.
func (that *GameManager) Bootstrap(ctx context.Context) (uuid.UUID, error) {
	log := that.logger.With("method", "Bootstrap")

	playerID, err := that.client.Register(ctx, that.settings.Credentials)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to register team %q: %w", that.settings.Credentials.TeamName, err)
	}

	that.print("PlayerId = %s\n", playerID)
	log.Info("registered", "player_id", playerID)

	if err = that.client.NewGame(ctx, playerID); err != nil {
		return uuid.Nil, fmt.Errorf("failed to start new game: %w", err)
	}

	log.Info("new game requested", "player_id", playerID)

	return playerID, nil
}

// Play - polls the game until a finished state has been observed and displayed.
func (that *GameManager) Play(ctx context.Context, playerID uuid.UUID) error {
	log := that.logger.With("method", "Play", "player_id", playerID)

	failures := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		game, err := that.client.GetGameState(ctx, playerID)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			failures++
			log.Warn("failed to fetch game state, skipping iteration", "error", err, "failures", failures)

			if that.settings.MaxFetchFailures > 0 && failures >= that.settings.MaxFetchFailures {
				return fmt.Errorf("%w: %d in a row: %w", apperror.ErrTooManyFetchFailures, failures, err)
			}

			if err = that.wait(ctx); err != nil {
				return err
			}

			continue
		}

		failures = 0

		if err = that.presenter.Display(game, playerID); err != nil {
			log.Error("failed to display game", "error", err)
		}

		that.record(ctx, game)

		if game.IsFinished() {
			log.Info("game finished", "game_id", game.ID, "state", game.CurrentState.String())
			return nil
		}

		if game.IsOurTurn(playerID) {
			that.playMove(ctx, game, playerID)
		}

		if err = that.wait(ctx); err != nil {
			return err
		}
	}
}

func (that *GameManager) playMove(ctx context.Context, game *entity.Game, playerID uuid.UUID) {
	log := that.logger.With("method", "playMove", "player_id", playerID)

	column := that.selector.NextMove(game)
	that.print("Our move is column %d\n", column)

	if err := that.client.MakeMove(ctx, playerID, that.settings.Credentials.Password, column); err != nil {
		log.Warn("move was not accepted", "column", column, "error", err)
		return
	}

	log.Debug("move submitted", "column", column)
}

func (that *GameManager) record(ctx context.Context, game *entity.Game) {
	if that.journal == nil {
		return
	}

	if err := that.journal.Append(ctx, game); err != nil {
		that.logger.Error("failed to journal game snapshot", "game_id", game.ID, "error", err)
	}
}

func (that *GameManager) wait(ctx context.Context) error {
	if that.settings.PollInterval <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(that.settings.PollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (that *GameManager) print(format string, args ...any) {
	if err := that.presenter.Printf(format, args...); err != nil {
		that.logger.Error("failed to print", "error", err)
	}
}
