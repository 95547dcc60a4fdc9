package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gamey/internal/domain/game"
	"gamey/internal/domain/gamey"
	errs "gamey/internal/errors"
)

// MaxBoardSize bounds games created by the server.
const MaxBoardSize = 64

type SessionStore interface {
	StoreSession(ctx context.Context, session game.Session) error
	GetSession(ctx context.Context, gameID string) (game.Session, error)
	DeleteSession(ctx context.Context, gameID string) error
}

type RecordStore interface {
	SaveGameRecord(ctx context.Context, record game.Record) error
}

type BotChooser interface {
	Choose(ctx context.Context, name string, g *gamey.GameY) (gamey.Coordinates, error)
}

// GameUseCase runs one engine cycle per call. sessions and records may be nil
// when Redis or Mongo is not configured.
type GameUseCase struct {
	sessions    SessionStore
	records     RecordStore
	bots        BotChooser
	log         *zap.SugaredLogger
	defaultSize int
	now         func() time.Time
}

func NewGameUseCase(sessions SessionStore, records RecordStore, bots BotChooser, log *zap.SugaredLogger, defaultSize int) *GameUseCase {
	return &GameUseCase{
		sessions:    sessions,
		records:     records,
		bots:        bots,
		log:         log,
		defaultSize: defaultSize,
		now:         time.Now,
	}
}

func (g *GameUseCase) NewGame(ctx context.Context, req game.NewGameRequest) (game.NewGameResponse, error) {
	size := req.Size
	if size == 0 {
		size = g.defaultSize
	}
	if size > MaxBoardSize {
		return game.NewGameResponse{}, fmt.Errorf("%w: %d is above %d", gamey.ErrInvalidSize, size, MaxBoardSize)
	}

	play, err := gamey.NewGame(size, gamey.DefaultPlayers)
	if err != nil {
		return game.NewGameResponse{}, err
	}

	resp := game.NewGameResponse{
		GameID: uuid.New().String(),
		Yen:    play.YEN(),
	}

	if g.sessions != nil {
		session := game.Session{GameID: resp.GameID, Yen: resp.Yen, StartedAt: g.now()}
		if err := g.sessions.StoreSession(ctx, session); err != nil {
			return game.NewGameResponse{}, fmt.Errorf("%w: %v", errs.ErrInternal, err)
		}
	}

	g.log.Infof("new game %s of size %d", resp.GameID, size)
	return resp, nil
}

func (g *GameUseCase) GetGame(ctx context.Context, gameID string) (game.Session, error) {
	if g.sessions == nil {
		return game.Session{}, errs.ErrStorageDisabled
	}
	if err := checkGameID(gameID); err != nil {
		return game.Session{}, err
	}
	return g.sessions.GetSession(ctx, gameID)
}

// game ids are always uuids; anything else cannot name a stored session
func checkGameID(gameID string) error {
	if _, err := uuid.Parse(gameID); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrGameNotFound, gameID)
	}
	return nil
}

// ApplyMove places a stone for whoever is to move in req.Yen.
func (g *GameUseCase) ApplyMove(ctx context.Context, req game.MoveRequest) (game.MoveResponse, error) {
	if req.GameID != "" {
		if err := checkGameID(req.GameID); err != nil {
			return game.MoveResponse{}, err
		}
	}

	play, err := gamey.NewGameFromYEN(req.Yen)
	if err != nil {
		return game.MoveResponse{}, err
	}

	if err := placeForNext(play, gamey.NewCoordinates(req.X, req.Y, req.Z)); err != nil {
		return game.MoveResponse{}, err
	}

	if req.GameID != "" {
		g.trackSession(ctx, req.GameID, play)
	}

	return game.NewMoveResponse(play), nil
}

// BotMove asks botID for a move in yen without applying it.
func (g *GameUseCase) BotMove(ctx context.Context, botID string, yen gamey.YEN) (gamey.Coordinates, error) {
	play, err := gamey.NewGameFromYEN(yen)
	if err != nil {
		return gamey.Coordinates{}, err
	}
	return g.bots.Choose(ctx, botID, play)
}

// StartPlay opens a game against a bot; the human moves first.
func (g *GameUseCase) StartPlay(ctx context.Context, size int) (game.PlayMessage, error) {
	created, err := g.NewGame(ctx, game.NewGameRequest{Size: size})
	if err != nil {
		return game.PlayMessage{}, err
	}
	play, err := gamey.NewGameFromYEN(created.Yen)
	if err != nil {
		return game.PlayMessage{}, err
	}
	return game.PlayMessage{GameID: created.GameID, MoveResponse: game.NewMoveResponse(play)}, nil
}

// PlayTurn applies the human move and, if the game goes on, the bot's reply.
// A non-empty gameID keeps the stored session in step with the board.
func (g *GameUseCase) PlayTurn(ctx context.Context, gameID, botID string, yen gamey.YEN, coords gamey.Coordinates) (game.PlayMessage, error) {
	if gameID != "" {
		if err := checkGameID(gameID); err != nil {
			return game.PlayMessage{}, err
		}
	}

	play, err := gamey.NewGameFromYEN(yen)
	if err != nil {
		return game.PlayMessage{}, err
	}
	if err := placeForNext(play, coords); err != nil {
		return game.PlayMessage{}, err
	}

	msg := game.PlayMessage{GameID: gameID}
	if !play.Status().Finished {
		botCoords, err := g.bots.Choose(ctx, botID, play)
		if err != nil {
			return game.PlayMessage{}, err
		}
		if err := placeForNext(play, botCoords); err != nil {
			return game.PlayMessage{}, fmt.Errorf("%w: %s played %s: %v", errs.ErrBotUnavailable, botID, botCoords, err)
		}
		msg.BotMove = &botCoords
	}

	if gameID != "" {
		g.trackSession(ctx, gameID, play)
	}

	msg.MoveResponse = game.NewMoveResponse(play)
	return msg, nil
}

func placeForNext(play *gamey.GameY, coords gamey.Coordinates) error {
	player, ok := play.NextPlayer()
	if !ok {
		return errs.ErrGameFinished
	}
	return play.AddMove(gamey.Placement{Player: player, Coords: coords})
}

// trackSession updates the stored session after a move. Storage failures are
// logged and do not fail the move.
func (g *GameUseCase) trackSession(ctx context.Context, gameID string, play *gamey.GameY) {
	startedAt := g.now()
	if g.sessions != nil {
		session, err := g.sessions.GetSession(ctx, gameID)
		switch {
		case err == nil:
			startedAt = session.StartedAt
		case errors.Is(err, errs.ErrGameNotFound):
			g.log.Warnf("move for unknown game %s, starting a new session", gameID)
		default:
			g.log.Errorf("failed to load session %s: %v", gameID, err)
		}
	}

	if !play.Status().Finished {
		if g.sessions == nil {
			return
		}
		session := game.Session{GameID: gameID, Yen: play.YEN(), StartedAt: startedAt}
		if err := g.sessions.StoreSession(ctx, session); err != nil {
			g.log.Errorf("failed to store session %s: %v", gameID, err)
		}
		return
	}

	if g.records != nil {
		record := NewRecord(gameID, play, startedAt, g.now())
		if err := g.records.SaveGameRecord(ctx, record); err != nil {
			g.log.Errorf("failed to save record of game %s: %v", gameID, err)
		}
	}
	if g.sessions != nil {
		if err := g.sessions.DeleteSession(ctx, gameID); err != nil {
			g.log.Errorf("failed to delete session %s: %v", gameID, err)
		}
	}
}

func NewRecord(gameID string, play *gamey.GameY, startedAt, finishedAt time.Time) game.Record {
	outcome := play.Outcome()
	record := game.Record{
		GameID:          gameID,
		BoardSize:       outcome.BoardSize,
		MovesCount:      outcome.MovesCount,
		Timestamp:       finishedAt.Unix(),
		DurationSeconds: int64(finishedAt.Sub(startedAt).Seconds()),
	}
	if outcome.Winner != nil {
		w := int(*outcome.Winner)
		record.Winner = &w
		record.WinnerSymbol = play.Players()[w]
	}
	return record
}
