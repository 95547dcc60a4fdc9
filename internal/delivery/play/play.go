package play

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"gamey/internal/bootstrap"
	"gamey/internal/delivery"
	"gamey/internal/domain/gamey"
	"gamey/internal/httpresponse"
	gameuc "gamey/internal/usecase/game"
	"gamey/internal/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type PlayHandler struct {
	cfg    bootstrap.Config
	log    *zap.SugaredLogger
	gameUC *gameuc.GameUseCase
}

func NewPlayHandler(cfg bootstrap.Config, log *zap.SugaredLogger, gameUC *gameuc.GameUseCase) *PlayHandler {
	return &PlayHandler{
		cfg:    cfg,
		log:    log,
		gameUC: gameUC,
	}
}

// HandlePlay runs a game against the bot in the path over a websocket. The
// first frame is the empty board; every {x,y,z} frame from the client is
// answered with the position after the human move and the bot reply.
func (p *PlayHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	botID := chi.URLParam(r, "bot_id")
	version, err := delivery.CheckApiVersion(r, p.cfg.ApiVersion)
	if err != nil {
		delivery.WriteError(p.log, w, err, version, botID)
		return
	}

	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil {
			delivery.WriteError(p.log, w, delivery.MalformedRequest(err), version, botID)
			return
		}
	}

	ctx := r.Context()
	state, err := p.gameUC.StartPlay(ctx, size)
	if err != nil {
		delivery.WriteError(p.log, w, err, version, botID)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		p.log.Errorf("upgrade error: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(utils.MaxRequestBodyBytes)

	p.log.Infof("game %s against %s started", state.GameID, botID)
	if err := conn.WriteJSON(state); err != nil {
		p.log.Errorf("write error: %v", err)
		return
	}

	yen := state.Yen
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				p.log.Errorf("read error: %v", err)
			}
			return
		}

		var coords gamey.Coordinates
		if err := json.Unmarshal(data, &coords); err != nil {
			if !p.writeError(conn, delivery.MalformedRequest(err)) {
				return
			}
			continue
		}

		msg, err := p.gameUC.PlayTurn(ctx, state.GameID, botID, yen, coords)
		if err != nil {
			if !p.writeError(conn, err) {
				return
			}
			continue
		}

		yen = msg.Yen
		if err := conn.WriteJSON(msg); err != nil {
			p.log.Errorf("write error: %v", err)
			return
		}
	}
}

func (p *PlayHandler) writeError(conn *websocket.Conn, err error) bool {
	p.log.Debugf("move rejected: %v", err)
	if werr := conn.WriteJSON(httpresponse.ErrorResponse{Message: delivery.Message(err)}); werr != nil {
		p.log.Errorf("write error: %v", werr)
		return false
	}
	return true
}
