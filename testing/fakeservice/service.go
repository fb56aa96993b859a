package fakeservice

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/rocketscienceinc/connect4-bot/internal/entity"
)

// Poll - one scripted answer of the game state endpoint.
// When Status is zero the Game is served with 200, otherwise Status is returned with an empty body.
type Poll struct {
	Status int
	Game   *entity.Game
	Raw    string
}

type Registration struct {
	TeamName string
	Password string
}

type Move struct {
	PlayerID     uuid.UUID `json:"PlayerId"`
	Password     string
	ColumnNumber int
}

// Service - in-memory stand-in for the Connect4 game service.
type Service struct {
	*httptest.Server

	mu sync.Mutex

	playerID       uuid.UUID
	registerStatus int
	newGameStatus  int
	moveStatus     int

	polls []Poll

	registrations []Registration
	newGames      []uuid.UUID
	polledIDs     []uuid.UUID
	moves         []Move
	acceptHeaders []string
}

func New(t *testing.T) *Service {
	t.Helper()

	svc := &Service{
		playerID:       uuid.New(),
		registerStatus: http.StatusOK,
		newGameStatus:  http.StatusOK,
		moveStatus:     http.StatusOK,
	}

	router := chi.NewRouter()
	router.Post("/api/Register", svc.register)
	router.Post("/api/NewGame", svc.newGame)
	router.Get("/api/GameState/{playerID}", svc.gameState)
	router.Post("/api/MakeMove", svc.makeMove)

	svc.Server = httptest.NewServer(router)
	t.Cleanup(svc.Server.Close)

	return svc
}

// BaseAddress - base address with a trailing slash, the way the bot is configured.
func (that *Service) BaseAddress() string {
	return that.Server.URL + "/"
}

// Script - queues answers for the game state endpoint; the last one repeats.
func (that *Service) Script(polls ...Poll) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.polls = append(that.polls, polls...)
}

func (that *Service) SetPlayerID(id uuid.UUID) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.playerID = id
}

func (that *Service) FailRegister(status int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.registerStatus = status
}

func (that *Service) FailNewGame(status int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.newGameStatus = status
}

func (that *Service) FailMoves(status int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.moveStatus = status
}

func (that *Service) Registrations() []Registration {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]Registration(nil), that.registrations...)
}

func (that *Service) NewGames() []uuid.UUID {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]uuid.UUID(nil), that.newGames...)
}

func (that *Service) PolledIDs() []uuid.UUID {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]uuid.UUID(nil), that.polledIDs...)
}

func (that *Service) PollCount() int {
	return len(that.PolledIDs())
}

func (that *Service) SubmittedMoves() []Move {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]Move(nil), that.moves...)
}

// AcceptHeaders - Accept header of every register and game state request, in order.
func (that *Service) AcceptHeaders() []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]string(nil), that.acceptHeaders...)
}

func (that *Service) register(w http.ResponseWriter, r *http.Request) {
	that.mu.Lock()
	defer that.mu.Unlock()

	var req Registration
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	that.registrations = append(that.registrations, req)
	that.acceptHeaders = append(that.acceptHeaders, r.Header.Get("Accept"))

	if that.registerStatus != http.StatusOK {
		w.WriteHeader(that.registerStatus)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(that.playerID.String())
}

func (that *Service) newGame(w http.ResponseWriter, r *http.Request) {
	that.mu.Lock()
	defer that.mu.Unlock()

	var req struct {
		PlayerID uuid.UUID `json:"playerID"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	that.newGames = append(that.newGames, req.PlayerID)

	w.WriteHeader(that.newGameStatus)
}

func (that *Service) gameState(w http.ResponseWriter, r *http.Request) {
	that.mu.Lock()
	defer that.mu.Unlock()

	playerID, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		http.Error(w, "bad player id", http.StatusBadRequest)
		return
	}
	that.polledIDs = append(that.polledIDs, playerID)
	that.acceptHeaders = append(that.acceptHeaders, r.Header.Get("Accept"))

	if len(that.polls) == 0 {
		http.Error(w, "no game", http.StatusNotFound)
		return
	}

	poll := that.polls[0]
	if len(that.polls) > 1 {
		that.polls = that.polls[1:]
	}

	switch {
	case poll.Status != 0:
		w.WriteHeader(poll.Status)
	case poll.Raw != "":
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(poll.Raw))
	default:
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Encode(poll.Game))
	}
}

func (that *Service) makeMove(w http.ResponseWriter, r *http.Request) {
	that.mu.Lock()
	defer that.mu.Unlock()

	var move Move
	if err := json.NewDecoder(r.Body).Decode(&move); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	that.moves = append(that.moves, move)

	w.WriteHeader(that.moveStatus)
}

// WireGame - the game as the service serializes it.
type WireGame struct {
	Cells          [][]int
	CurrentState   int
	YellowPlayerID uuid.UUID
	RedPlayerID    uuid.UUID
	ID             uuid.UUID
}

func Encode(game *entity.Game) WireGame {
	cells := make([][]int, entity.NumberOfColumns)
	for x := range cells {
		cells[x] = make([]int, entity.NumberOfRows)
		for y := range cells[x] {
			cells[x][y] = int(game.Cells[x][y])
		}
	}

	return WireGame{
		Cells:          cells,
		CurrentState:   int(game.CurrentState),
		YellowPlayerID: game.YellowPlayerID,
		RedPlayerID:    game.RedPlayerID,
		ID:             game.ID,
	}
}
