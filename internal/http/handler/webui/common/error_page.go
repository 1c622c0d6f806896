package common

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/bornholm/burnin/internal/http/handler/webui/common/component"
	"github.com/bornholm/burnin/internal/slogx"
	"github.com/pkg/errors"
)

type HTTPError interface {
	error
	StatusCode() int
}

type UserFacingError interface {
	error
	UserMessage() string
}

// HandleError answers the request with the status and message carried by
// err. Clients asking for JSON only get a JSON body, others the error page.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	statusCode, message := describe(err)

	if statusCode >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed", slogx.Error(errors.WithStack(err)))
	} else {
		slog.DebugContext(ctx, "request rejected", slog.Int("status", statusCode), slogx.Error(err))
	}

	if prefersJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)

		payload := struct {
			Status  int    `json:"status"`
			Message string `json:"message"`
		}{statusCode, message}

		if err := json.NewEncoder(w).Encode(payload); err != nil {
			slog.ErrorContext(ctx, "could not encode error", slogx.Error(errors.WithStack(err)))
		}

		return
	}

	page := component.ErrorPage(component.ErrorPageVModel{Message: message})

	templ.Handler(page, templ.WithStatus(statusCode)).ServeHTTP(w, r)
}

func describe(err error) (int, string) {
	statusCode := http.StatusInternalServerError

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		statusCode = httpErr.StatusCode()
	}

	var userFacingErr UserFacingError
	if errors.As(err, &userFacingErr) && userFacingErr.UserMessage() != "" {
		return statusCode, userFacingErr.UserMessage()
	}

	return statusCode, http.StatusText(statusCode)
}

func prefersJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
