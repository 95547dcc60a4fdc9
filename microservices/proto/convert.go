package ybot

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"gamey/internal/domain/gamey"
)

var ErrMalformedMessage = errors.New("malformed bot service message")

// NewChooseRequest encodes {"bot_id": ..., "yen": {...}}.
func NewChooseRequest(botID string, yen gamey.YEN) (*structpb.Struct, error) {
	players := make([]interface{}, len(yen.Players))
	for i, p := range yen.Players {
		players[i] = p
	}
	return structpb.NewStruct(map[string]interface{}{
		"bot_id": botID,
		"yen": map[string]interface{}{
			"size":    yen.Size,
			"turn":    yen.Turn,
			"players": players,
			"layout":  yen.Layout,
		},
	})
}

func ParseChooseRequest(in *structpb.Struct) (string, gamey.YEN, error) {
	fields := in.GetFields()
	botID := fields["bot_id"].GetStringValue()
	yenValue := fields["yen"].GetStructValue()
	if botID == "" || yenValue == nil {
		return "", gamey.YEN{}, fmt.Errorf("%w: bot_id and yen are required", ErrMalformedMessage)
	}

	yf := yenValue.GetFields()
	players := make([]string, 0, 2)
	for _, p := range yf["players"].GetListValue().GetValues() {
		players = append(players, p.GetStringValue())
	}
	yen := gamey.YEN{
		Size:    int(yf["size"].GetNumberValue()),
		Turn:    int(yf["turn"].GetNumberValue()),
		Players: players,
		Layout:  yf["layout"].GetStringValue(),
	}
	return botID, yen, nil
}

// NewChooseReply encodes {"x": ..., "y": ..., "z": ...}.
func NewChooseReply(c gamey.Coordinates) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"x": c.X,
		"y": c.Y,
		"z": c.Z,
	})
}

func ParseChooseReply(out *structpb.Struct) (gamey.Coordinates, error) {
	fields := out.GetFields()
	for _, key := range []string{"x", "y", "z"} {
		if _, ok := fields[key]; !ok {
			return gamey.Coordinates{}, fmt.Errorf("%w: missing %s", ErrMalformedMessage, key)
		}
	}
	return gamey.Coordinates{
		X: int(fields["x"].GetNumberValue()),
		Y: int(fields["y"].GetNumberValue()),
		Z: int(fields["z"].GetNumberValue()),
	}, nil
}
