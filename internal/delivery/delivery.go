package delivery

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gamey/internal/domain/gamey"
	errs "gamey/internal/errors"
	"gamey/internal/httpresponse"
)

const internalErrorMessage = "Internal server error"

var illegalMoveErrors = []error{
	gamey.ErrGameOver,
	gamey.ErrWrongPlayer,
	gamey.ErrOutOfBounds,
	gamey.ErrCellOccupied,
	gamey.ErrUnsupportedMovement,
}

var badRequestErrors = []error{
	errs.ErrUnsupportedAPIVersion,
	errs.ErrGameFinished,
	errs.ErrEmptyUsername,
	errs.ErrUserExists,
	gamey.ErrInvalidSize,
	ErrMalformedRequest,
}

var ErrMalformedRequest = errors.New("malformed request")

// CheckApiVersion returns the version from the path and an error unless it is supported.
func CheckApiVersion(r *http.Request, supported string) (string, error) {
	version := chi.URLParam(r, "api_version")
	if version != supported {
		return version, fmt.Errorf("%w: %s, only %s is supported", errs.ErrUnsupportedAPIVersion, version, supported)
	}
	return version, nil
}

func isIllegalMove(err error) bool {
	for _, target := range illegalMoveErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isYenError(err error) bool {
	var yenErr *gamey.YenError
	return errors.As(err, &yenErr)
}

// StatusFor maps a use case error onto an HTTP status code.
func StatusFor(err error) int {
	switch {
	case isTooLarge(err):
		return http.StatusRequestEntityTooLarge
	case isYenError(err), isIllegalMove(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrBotNotFound), errors.Is(err, errs.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrBotUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrStorageDisabled):
		return http.StatusServiceUnavailable
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// Message is the text sent to clients; internal failures are not spelled out.
func Message(err error) string {
	switch {
	case isYenError(err):
		return "Invalid YEN format: " + err.Error()
	case isIllegalMove(err):
		return "Illegal move: " + err.Error()
	case StatusFor(err) == http.StatusInternalServerError:
		return internalErrorMessage
	}
	return err.Error()
}

func MalformedRequest(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformedRequest, err)
}

func isTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge)
}

// WriteError logs err and writes it as an ErrorResponse.
func WriteError(log *zap.SugaredLogger, w http.ResponseWriter, err error, apiVersion, botID string) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		log.Errorf("request failed: %v", err)
	} else {
		log.Debugf("request rejected: %v", err)
	}
	httpresponse.WriteErrorResponse(w, status, httpresponse.ErrorResponse{
		Message:    Message(err),
		ApiVersion: apiVersion,
		BotID:      botID,
	})
}
