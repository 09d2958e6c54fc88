package handler

import (
	"github.com/lambda-feedback/gatewaykit/internal/server"
	"go.uber.org/zap"
)

func NewMethodRoute(handler *MethodHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("/", handler)
}

func NewFactorialRoute(handler *ComputeHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("/factorial", handler.Factorial())
}

func NewFibonacciRoute(handler *ComputeHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("/fibonacci", handler.Fibonacci())
}

func NewHealthRoute(log *zap.Logger) server.HttpHandlerResult {
	return server.AsHttpHandler("/health", NewHealthHandler(log))
}
