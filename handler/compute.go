package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/gatewaykit/compute"
	"github.com/lambda-feedback/gatewaykit/compute/schema"
)

var computeAllowHeader = strings.Join([]string{http.MethodGet, http.MethodPost}, ", ")

type ComputeHandlerParams struct {
	fx.In

	Config compute.Config
	Log    *zap.Logger
}

// ComputeHandler serves the factorial and fibonacci samples.
type ComputeHandler struct {
	config compute.Config
	schema *schema.Schema
	log    *zap.Logger
}

func NewComputeHandler(params ComputeHandlerParams) (*ComputeHandler, error) {
	requestSchema, err := schema.NewRequestSchema()
	if err != nil {
		return nil, err
	}

	return &ComputeHandler{
		config: params.Config,
		schema: requestSchema,
		log:    params.Log,
	}, nil
}

type computeRequest struct {
	N *int `json:"n"`
}

type factorialResponse struct {
	Factorial uint64 `json:"factorial"`
}

type fibonacciResponse struct {
	Sequence []uint64 `json:"fibonacci_sequence"`
}

// Factorial returns the handler computing n!.
func (h *ComputeHandler) Factorial() http.Handler {
	return h.handler("factorial", h.config.FactorialDefault, func(n int) (any, error) {
		result, err := compute.Factorial(n)
		if err != nil {
			return nil, err
		}

		return factorialResponse{Factorial: result}, nil
	})
}

// Fibonacci returns the handler computing the first n Fibonacci numbers.
func (h *ComputeHandler) Fibonacci() http.Handler {
	return h.handler("fibonacci", h.config.FibonacciDefault, func(n int) (any, error) {
		sequence, err := compute.Fibonacci(n)
		if err != nil {
			return nil, err
		}

		return fibonacciResponse{Sequence: sequence}, nil
	})
}

func (h *ComputeHandler) handler(
	name string,
	defaultN int,
	fn func(n int) (any, error),
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := h.log.With(
			zap.String("function", name),
			zap.String("method", r.Method),
		)

		if r.Method != http.MethodGet && r.Method != http.MethodPost {
			log.Debug("method not allowed")
			w.Header().Set("Allow", computeAllowHeader)
			writeError(w, log, http.StatusMethodNotAllowed, "Method Not Allowed")
			return
		}

		n, err := h.readN(w, r, defaultN)
		if err != nil {
			log.Debug("invalid request", zap.Error(err))

			var validationErr *schema.ValidationError
			if errors.As(err, &validationErr) {
				writeError(w, log, http.StatusBadRequest, "invalid request", validationErr.Errors...)
			} else if errors.Is(err, errBodyTooLarge) {
				writeError(w, log, http.StatusRequestEntityTooLarge, err.Error())
			} else {
				writeError(w, log, http.StatusBadRequest, err.Error())
			}
			return
		}

		log = log.With(zap.Int("n", n))

		result, err := fn(n)
		if err != nil {
			log.Debug("failed to compute", zap.Error(err))
			writeError(w, log, http.StatusBadRequest, err.Error())
			return
		}

		log.Debug("computed result")

		writeJSON(w, log, http.StatusOK, result)
	})
}

// readN reads n from the query string or the JSON body, falling back
// to defaultN if neither specifies it.
func (h *ComputeHandler) readN(w http.ResponseWriter, r *http.Request, defaultN int) (int, error) {
	if query := r.URL.Query().Get("n"); query != "" {
		n, err := strconv.Atoi(query)
		if err != nil {
			return 0, errors.New("n must be an integer")
		}

		return n, nil
	}

	body, err := readRequestBody(w, r)
	if errors.Is(err, errBodyTooLarge) {
		return 0, err
	} else if err != nil {
		return 0, errors.New("failed to read body")
	}

	if len(body) == 0 {
		return defaultN, nil
	}

	if err := h.schema.Validate(body); err != nil {
		return 0, err
	}

	var req computeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return 0, err
	}

	if req.N == nil {
		return defaultN, nil
	}

	return *req.N, nil
}
