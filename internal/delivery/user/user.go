package user

import (
	"net/http"

	"go.uber.org/zap"

	"gamey/internal/delivery"
	userDomain "gamey/internal/domain/user"
	"gamey/internal/httpresponse"
	userUC "gamey/internal/usecase/user"
	"gamey/internal/utils"
)

type UserHandler struct {
	usecaseHandler *userUC.UserUsecaseHandler
	log            *zap.SugaredLogger
}

func NewUserHandler(uc *userUC.UserUsecaseHandler, log *zap.SugaredLogger) *UserHandler {
	return &UserHandler{
		usecaseHandler: uc,
		log:            log,
	}
}

func (u *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req userDomain.CreateUserRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		delivery.WriteError(u.log, w, delivery.MalformedRequest(err), "", "")
		return
	}

	resp, err := u.usecaseHandler.CreateUser(r.Context(), req)
	if err != nil {
		delivery.WriteError(u.log, w, err, "", "")
		return
	}

	u.log.Infof("user %q created", req.Username)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}
