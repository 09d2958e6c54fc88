// Package dispatcher maps API Gateway style requests onto responses
// based on their HTTP method.
package dispatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params defines the dependencies for the method dispatcher.
type Params struct {
	fx.In

	Log *zap.Logger
}

// Dispatcher is the interface for dispatching requests by method.
type Dispatcher interface {
	Dispatch(ctx context.Context, req Request) (Response, error)
}

// MethodDispatcher dispatches GET, POST, PUT and DELETE requests and
// rejects every other method with 405 Method Not Allowed.
//
// It holds no mutable state and is safe for concurrent use.
type MethodDispatcher struct {
	log *zap.Logger
}

// New creates a new method dispatcher.
func New(params Params) Dispatcher {
	log := params.Log
	if log == nil {
		log = zap.NewNop()
	}

	return &MethodDispatcher{log: log}
}

// Dispatch maps req onto a response. A *ParseError is returned if a
// POST or PUT body is missing or is not valid JSON; the caller decides
// how to surface it.
func (d *MethodDispatcher) Dispatch(ctx context.Context, req Request) (Response, error) {
	log := d.log.With(zap.String("method", req.Method))

	switch req.Method {
	case http.MethodGet, http.MethodDelete:
		log.Debug("dispatching request")
		return newResponse(http.StatusOK, messageBody{
			Message: successMessage(req.Method),
		})

	case http.MethodPost, http.MethodPut:
		data, err := parseBody(req)
		if err != nil {
			log.Debug("failed to parse body", zap.Error(err))
			return Response{}, err
		}

		status := http.StatusOK
		if req.Method == http.MethodPost {
			status = http.StatusCreated
		}

		log.Debug("dispatching request", zap.Int("status", status))
		return newResponse(status, dataBody{
			Message: successMessage(req.Method),
			Data:    data,
		})

	default:
		log.Debug("method not allowed")
		return newMethodNotAllowedResponse()
	}
}

// parseBody decodes the JSON body of req.
func parseBody(req Request) (any, error) {
	if len(req.Body) == 0 {
		return nil, &ParseError{Method: req.Method, Err: ErrMissingBody}
	}

	dec := json.NewDecoder(bytes.NewReader(req.Body))
	// keep numbers as sent, float64 would round large integers
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, &ParseError{Method: req.Method, Err: err}
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); err != io.EOF {
		if err == nil {
			err = ErrTrailingData
		}
		return nil, &ParseError{Method: req.Method, Err: err}
	}

	return data, nil
}
