package game

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gamey/internal/bootstrap"
	"gamey/internal/delivery"
	"gamey/internal/domain/game"
	"gamey/internal/httpresponse"
	gameuc "gamey/internal/usecase/game"
	"gamey/internal/utils"
)

type GameHandler struct {
	cfg    bootstrap.Config
	log    *zap.SugaredLogger
	gameUC *gameuc.GameUseCase
}

func NewGameHandler(cfg bootstrap.Config, log *zap.SugaredLogger, gameUC *gameuc.GameUseCase) *GameHandler {
	return &GameHandler{
		cfg:    cfg,
		log:    log,
		gameUC: gameUC,
	}
}

// HandleMove applies a human move to the YEN in the body.
func (g *GameHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	version, err := delivery.CheckApiVersion(r, g.cfg.ApiVersion)
	if err != nil {
		delivery.WriteError(g.log, w, err, version, "")
		return
	}

	var req game.MoveRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		delivery.WriteError(g.log, w, delivery.MalformedRequest(err), version, "")
		return
	}

	resp, err := g.gameUC.ApplyMove(r.Context(), req)
	if err != nil {
		delivery.WriteError(g.log, w, err, version, "")
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

// HandleNewGame accepts an empty body for a board of the default size.
func (g *GameHandler) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	version, err := delivery.CheckApiVersion(r, g.cfg.ApiVersion)
	if err != nil {
		delivery.WriteError(g.log, w, err, version, "")
		return
	}

	body, err := utils.ReadRequestBody(r)
	if err != nil {
		delivery.WriteError(g.log, w, delivery.MalformedRequest(err), version, "")
		return
	}
	var req game.NewGameRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			delivery.WriteError(g.log, w, delivery.MalformedRequest(err), version, "")
			return
		}
	}

	resp, err := g.gameUC.NewGame(r.Context(), req)
	if err != nil {
		delivery.WriteError(g.log, w, err, version, "")
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusCreated, resp)
}

func (g *GameHandler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	version, err := delivery.CheckApiVersion(r, g.cfg.ApiVersion)
	if err != nil {
		delivery.WriteError(g.log, w, err, version, "")
		return
	}

	session, err := g.gameUC.GetGame(r.Context(), chi.URLParam(r, "game_id"))
	if err != nil {
		delivery.WriteError(g.log, w, err, version, "")
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, session)
}
