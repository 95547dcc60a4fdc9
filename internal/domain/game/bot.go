package game

import "gamey/internal/domain/gamey"

type BotChooseResponse struct {
	ApiVersion string            `json:"api_version"`
	BotID      string            `json:"bot_id"`
	Coords     gamey.Coordinates `json:"coords"`
}

// PlayMessage is one server frame of a websocket game against a bot.
type PlayMessage struct {
	GameID string `json:"game_id,omitempty"`
	MoveResponse
	BotMove *gamey.Coordinates `json:"bot_move,omitempty"`
}
