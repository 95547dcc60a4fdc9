package game

import (
	"time"

	"gamey/internal/domain/gamey"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// MoveRequest carries a position and the cell the current player takes.
// GameID is optional and links the move to a stored session.
type MoveRequest struct {
	Yen    gamey.YEN `json:"yen"`
	X      int       `json:"x"`
	Y      int       `json:"y"`
	Z      int       `json:"z"`
	GameID string    `json:"game_id,omitempty"`
}

type MoveResponse struct {
	Yen        gamey.YEN `json:"yen"`
	Status     string    `json:"status"`
	Winner     *int      `json:"winner"`
	NextPlayer *int      `json:"next_player"`
}

type NewGameRequest struct {
	Size int `json:"size"`
}

type NewGameResponse struct {
	GameID string    `json:"game_id"`
	Yen    gamey.YEN `json:"yen"`
}

// Session is a game in progress, kept between requests.
type Session struct {
	GameID    string    `json:"game_id"`
	Yen       gamey.YEN `json:"yen"`
	StartedAt time.Time `json:"started_at"`
}

// Record is a finished game as stored in the games collection.
type Record struct {
	GameID          string `json:"game_id" bson:"game_id"`
	Winner          *int   `json:"winner" bson:"winner"`
	WinnerSymbol    string `json:"winner_symbol,omitempty" bson:"winner_symbol,omitempty"`
	BoardSize       int    `json:"board_size" bson:"board_size"`
	MovesCount      int    `json:"moves_count" bson:"moves_count"`
	Timestamp       int64  `json:"timestamp" bson:"timestamp"`
	DurationSeconds int64  `json:"duration_seconds" bson:"duration_seconds"`
}

// NewMoveResponse shapes the engine status for the wire.
func NewMoveResponse(g *gamey.GameY) MoveResponse {
	resp := MoveResponse{Yen: g.YEN()}
	status := g.Status()
	resp.Status = status.String()
	if status.Finished {
		w := int(status.Winner)
		resp.Winner = &w
		return resp
	}
	next := int(status.Next)
	resp.NextPlayer = &next
	return resp
}
