// Package invoke sends API Gateway proxy events to deployed Lambda
// functions.
package invoke

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"go.uber.org/zap"
)

var ErrMissingFunctionName = errors.New("missing function name")

// FunctionError is returned if the invoked function failed.
type FunctionError struct {
	Kind    string
	Payload []byte
}

func (e *FunctionError) Error() string {
	return fmt.Sprintf("function error (%s): %s", e.Kind, strings.TrimSpace(string(e.Payload)))
}

// LambdaAPI is the subset of the Lambda API used by the client.
type LambdaAPI interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// Request describes the proxy event sent to the function.
type Request struct {
	FunctionName string
	Method       string
	Path         string
	Body         string
	Headers      map[string]string
	Query        map[string]string
}

// ErrInvalidPair is returned by ParsePairs for entries without separator
// or key.
var ErrInvalidPair = errors.New("invalid key value pair")

// ParsePairs splits every entry of pairs at the first sep into a key
// and a value, both trimmed of surrounding whitespace. Later entries
// win on duplicate keys. A nil map is returned for no entries.
func ParsePairs(pairs []string, sep string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, sep)
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPair, pair)
		}
		out[key] = strings.TrimSpace(value)
	}

	return out, nil
}

// Client invokes functions through the Lambda API.
type Client struct {
	api LambdaAPI
	log *zap.Logger
}

func NewClient(api LambdaAPI, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{api: api, log: log}
}

// NewDefaultClient creates a client from the default AWS config chain.
// An empty region leaves the region to the config chain.
func NewDefaultClient(ctx context.Context, region string, log *zap.Logger) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return NewClient(lambda.NewFromConfig(cfg), log), nil
}

// Invoke sends req as an API Gateway proxy event and decodes the
// proxy response of the function.
func (c *Client) Invoke(ctx context.Context, req Request) (events.APIGatewayProxyResponse, error) {
	var res events.APIGatewayProxyResponse

	if req.FunctionName == "" {
		return res, ErrMissingFunctionName
	}

	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	path := req.Path
	if path == "" {
		path = "/"
	}

	log := c.log.With(
		zap.String("function", req.FunctionName),
		zap.String("method", method),
		zap.String("path", path),
	)

	payload, err := json.Marshal(events.APIGatewayProxyRequest{
		HTTPMethod:            method,
		Path:                  path,
		Body:                  req.Body,
		Headers:               req.Headers,
		QueryStringParameters: req.Query,
	})
	if err != nil {
		return res, err
	}

	log.Debug("invoking function")

	out, err := c.api.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(req.FunctionName),
		Payload:      payload,
	})
	if err != nil {
		log.Debug("failed to invoke function", zap.Error(err))
		return res, fmt.Errorf("failed to invoke %s: %w", req.FunctionName, err)
	}

	if out.FunctionError != nil {
		return res, &FunctionError{Kind: aws.ToString(out.FunctionError), Payload: out.Payload}
	}

	if err := json.Unmarshal(out.Payload, &res); err != nil {
		return res, fmt.Errorf("failed to decode proxy response: %w", err)
	}

	log.Debug("function invoked", zap.Int("status", res.StatusCode))

	return res, nil
}
