package handler

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/gatewaykit/dispatcher"
)

type MethodHandlerParams struct {
	fx.In

	Dispatcher dispatcher.Dispatcher
	Log        *zap.Logger
}

func NewMethodHandler(params MethodHandlerParams) *MethodHandler {
	return &MethodHandler{
		dispatcher: params.Dispatcher,
		log:        params.Log,
	}
}

// MethodHandler exposes a dispatcher over HTTP. Bodies that fail to
// parse are answered with 400 Bad Request.
type MethodHandler struct {
	dispatcher dispatcher.Dispatcher
	log        *zap.Logger
}

func (h *MethodHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	body, err := readRequestBody(w, r)
	if err != nil {
		log.Debug("failed to read body", zap.Error(err))

		if errors.Is(err, errBodyTooLarge) {
			writeError(w, log, http.StatusRequestEntityTooLarge, err.Error())
		} else {
			writeError(w, log, http.StatusBadRequest, "failed to read body")
		}
		return
	}

	request := dispatcher.Request{
		Method: r.Method,
		Body:   body,
	}

	response, err := h.dispatcher.Dispatch(r.Context(), request)
	if dispatcher.IsParseError(err) {
		log.Debug("invalid request body", zap.Error(err))
		writeError(w, log, http.StatusBadRequest, err.Error())
		return
	} else if err != nil {
		log.Error("failed to dispatch request", zap.Error(err))
		sentry.CaptureException(err)
		writeError(w, log, http.StatusInternalServerError, "internal server error")
		return
	}

	// Map response headers
	for k, v := range response.Header {
		for _, vv := range v {
			w.Header().Add(k, vv)
		}
	}

	// Write response headers and status code
	w.WriteHeader(response.StatusCode)

	// Write response body
	if _, err := w.Write(response.Body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}
