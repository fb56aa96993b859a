package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connect4-bot/internal/apperror"
	"github.com/rocketscienceinc/connect4-bot/internal/entity"
)

const (
	registerPath  = "api/Register"
	newGamePath   = "api/NewGame"
	gameStatePath = "api/GameState"
	makeMovePath  = "api/MakeMove"

	contentTypeJSON = "application/json"
)

// Client - talks to the Connect4 game service over its JSON REST API.
type Client struct {
	http    *http.Client
	baseURL *url.URL
}

func NewClient(httpClient *http.Client, baseAddress string) (*Client, error) {
	baseURL, err := url.Parse(baseAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base address: %w", err)
	}

	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("base address %q must be absolute", baseAddress)
	}

	if httpClient == nil {
		httpClient = new(http.Client)
	}

	return &Client{
		http:    httpClient,
		baseURL: baseURL,
	}, nil
}

type registerRequest struct {
	TeamName string `json:"TeamName"`
	Password string `json:"Password"`
}

type newGameRequest struct {
	PlayerID uuid.UUID `json:"playerID"`
}

type makeMoveRequest struct {
	PlayerID     uuid.UUID `json:"PlayerId"`
	Password     string    `json:"Password"`
	ColumnNumber int       `json:"ColumnNumber"`
}

// gameResponse mirrors the service payload; Cells arrive as a column-major array of arrays.
type gameResponse struct {
	ID             uuid.UUID              `json:"ID"`
	Cells          [][]entity.CellContent `json:"Cells"`
	CurrentState   *entity.GameState      `json:"CurrentState"`
	RedPlayerID    uuid.UUID              `json:"RedPlayerID"`
	YellowPlayerID uuid.UUID              `json:"YellowPlayerID"`
}

// Register - registers the team and returns the player identifier issued by the service.
func (that *Client) Register(ctx context.Context, creds entity.Credentials) (uuid.UUID, error) {
	resp, err := that.post(ctx, registerPath, registerRequest{
		TeamName: creds.TeamName,
		Password: creds.Password,
	})
	if err != nil {
		return uuid.Nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return uuid.Nil, fmt.Errorf("%w: status %d", apperror.ErrRegistrationRejected, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to read body: %w", err)
	}

	playerID, err := uuid.Parse(strings.Trim(strings.TrimSpace(string(body)), `"`))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid player id: %w", apperror.ErrRegistrationRejected, err)
	}

	if playerID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: empty player id", apperror.ErrRegistrationRejected)
	}

	return playerID, nil
}

// NewGame - asks the service to start a fresh game for the player.
func (that *Client) NewGame(ctx context.Context, playerID uuid.UUID) error {
	resp, err := that.post(ctx, newGamePath, newGameRequest{PlayerID: playerID})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return fmt.Errorf("%w: status %d", apperror.ErrNewGameRejected, resp.StatusCode)
	}

	return nil
}

// GetGameState - fetches the current snapshot of the player's game.
func (that *Client) GetGameState(ctx context.Context, playerID uuid.UUID) (*entity.Game, error) {
	u := that.baseURL.JoinPath(gameStatePath, playerID.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", apperror.ErrTransientFetch, err)
	}
	req.Header.Set("Accept", contentTypeJSON)

	resp, err := that.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %w", apperror.ErrTransientFetch, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return nil, fmt.Errorf("%w: status %d", apperror.ErrTransientFetch, resp.StatusCode)
	}

	var payload *gameResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode body: %w", apperror.ErrTransientFetch, err)
	}

	if payload == nil {
		return nil, fmt.Errorf("%w: %w: empty body", apperror.ErrTransientFetch, apperror.ErrMalformedGame)
	}

	game, err := payload.toEntity()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrTransientFetch, err)
	}

	return game, nil
}

// MakeMove - submits a move for the player into the given column.
func (that *Client) MakeMove(ctx context.Context, playerID uuid.UUID, password string, column int) error {
	if !entity.IsValidColumn(column) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidColumn, column)
	}

	resp, err := that.post(ctx, makeMovePath, makeMoveRequest{
		PlayerID:     playerID,
		Password:     password,
		ColumnNumber: column,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return fmt.Errorf("%w: status %d", apperror.ErrMoveRejected, resp.StatusCode)
	}

	return nil
}

func (that *Client) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	body := new(bytes.Buffer)
	if err := json.NewEncoder(body).Encode(payload); err != nil {
		return nil, fmt.Errorf("failed to encode body: %w", err)
	}

	u := that.baseURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)

	resp, err := that.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

func isSuccess(resp *http.Response) bool {
	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
}

func (that *gameResponse) toEntity() (*entity.Game, error) {
	if that.CurrentState == nil {
		return nil, fmt.Errorf("%w: missing state", apperror.ErrMalformedGame)
	}

	game := &entity.Game{
		ID:             that.ID,
		CurrentState:   *that.CurrentState,
		RedPlayerID:    that.RedPlayerID,
		YellowPlayerID: that.YellowPlayerID,
	}

	// a game that has not started yet may come without a board
	if len(that.Cells) == 0 && game.CurrentState == entity.GameNotStarted && game.ID != uuid.Nil {
		return game, nil
	}

	if len(that.Cells) != entity.NumberOfColumns {
		return nil, fmt.Errorf("%w: expected %d columns, got %d", apperror.ErrMalformedGame, entity.NumberOfColumns, len(that.Cells))
	}

	for x, column := range that.Cells {
		if len(column) != entity.NumberOfRows {
			return nil, fmt.Errorf("%w: expected %d rows in column %d, got %d", apperror.ErrMalformedGame, entity.NumberOfRows, x, len(column))
		}

		copy(game.Cells[x][:], column)
	}

	if err := game.Validate(); err != nil {
		return nil, err
	}

	return game, nil
}
