package bot

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gamey/internal/bootstrap"
	"gamey/internal/delivery"
	"gamey/internal/domain/game"
	"gamey/internal/domain/gamey"
	"gamey/internal/httpresponse"
	gameuc "gamey/internal/usecase/game"
	"gamey/internal/utils"
)

type BotHandler struct {
	cfg    bootstrap.Config
	log    *zap.SugaredLogger
	gameUC *gameuc.GameUseCase
}

func NewBotHandler(cfg bootstrap.Config, log *zap.SugaredLogger, gameUC *gameuc.GameUseCase) *BotHandler {
	return &BotHandler{
		cfg:    cfg,
		log:    log,
		gameUC: gameUC,
	}
}

// HandleChoose asks the bot in the path for a move. The move is not applied.
func (b *BotHandler) HandleChoose(w http.ResponseWriter, r *http.Request) {
	botID := chi.URLParam(r, "bot_id")
	version, err := delivery.CheckApiVersion(r, b.cfg.ApiVersion)
	if err != nil {
		delivery.WriteError(b.log, w, err, version, botID)
		return
	}

	var yen gamey.YEN
	if err := utils.DecodeJSONRequest(r, &yen); err != nil {
		delivery.WriteError(b.log, w, delivery.MalformedRequest(err), version, botID)
		return
	}

	coords, err := b.gameUC.BotMove(r.Context(), botID, yen)
	if err != nil {
		delivery.WriteError(b.log, w, err, version, botID)
		return
	}

	b.log.Debugf("%s chose %s", botID, coords)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, game.BotChooseResponse{
		ApiVersion: version,
		BotID:      botID,
		Coords:     coords,
	})
}
