package server

import (
	"net/http"

	"go.uber.org/fx"
)

// HttpHandler is a handler mounted on the given ServeMux pattern.
type HttpHandler struct {
	Pattern string
	Handler http.Handler
}

type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

func AsHttpHandler(
	pattern string,
	handler http.Handler,
) HttpHandlerResult {
	return HttpHandlerResult{
		Handler: &HttpHandler{
			Pattern: pattern,
			Handler: handler,
		},
	}
}

// NewServeMux mounts all handlers on a new ServeMux.
func NewServeMux(handlers []*HttpHandler) *http.ServeMux {
	mux := http.NewServeMux()

	for _, handler := range handlers {
		mux.Handle(handler.Pattern, handler.Handler)
	}

	return mux
}
