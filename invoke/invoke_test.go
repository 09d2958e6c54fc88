package invoke_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/gatewaykit/invoke"
)

type mockLambda struct {
	mock.Mock
}

func (m *mockLambda) Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*lambda.InvokeOutput)
	return out, args.Error(1)
}

func decodeEvent(t *testing.T, params *lambda.InvokeInput) events.APIGatewayProxyRequest {
	var evt events.APIGatewayProxyRequest
	require.NoError(t, json.Unmarshal(params.Payload, &evt))
	return evt
}

func TestClient_Invoke(t *testing.T) {
	api := new(mockLambda)

	payload, err := json.Marshal(events.APIGatewayProxyResponse{
		StatusCode: 201,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       `{"message":"POST request processed successfully!","data":{"x":1}}`,
	})
	require.NoError(t, err)

	api.On("Invoke", mock.Anything, mock.MatchedBy(func(params *lambda.InvokeInput) bool {
		evt := decodeEvent(t, params)
		return aws.ToString(params.FunctionName) == "methods" &&
			evt.HTTPMethod == "POST" &&
			evt.Path == "/" &&
			evt.Body == `{"x":1}`
	})).Return(&lambda.InvokeOutput{StatusCode: 200, Payload: payload}, nil)

	client := invoke.NewClient(api, zaptest.NewLogger(t))

	res, err := client.Invoke(context.Background(), invoke.Request{
		FunctionName: "methods",
		Method:       "post",
		Body:         `{"x":1}`,
	})
	require.NoError(t, err)

	assert.Equal(t, 201, res.StatusCode)
	assert.Equal(t, "application/json", res.Headers["Content-Type"])
	assert.JSONEq(t, `{"message":"POST request processed successfully!","data":{"x":1}}`, res.Body)
	api.AssertExpectations(t)
}

func TestClient_Invoke_Defaults(t *testing.T) {
	api := new(mockLambda)

	api.On("Invoke", mock.Anything, mock.MatchedBy(func(params *lambda.InvokeInput) bool {
		evt := decodeEvent(t, params)
		return evt.HTTPMethod == "GET" && evt.Path == "/"
	})).Return(&lambda.InvokeOutput{Payload: []byte(`{"statusCode":200,"body":"{}"}`)}, nil)

	res, err := invoke.NewClient(api, nil).Invoke(context.Background(), invoke.Request{
		FunctionName: "methods",
	})
	require.NoError(t, err)

	assert.Equal(t, 200, res.StatusCode)
	api.AssertExpectations(t)
}

func TestClient_Invoke_MissingFunctionName(t *testing.T) {
	api := new(mockLambda)

	_, err := invoke.NewClient(api, nil).Invoke(context.Background(), invoke.Request{})

	assert.ErrorIs(t, err, invoke.ErrMissingFunctionName)
	api.AssertNotCalled(t, "Invoke", mock.Anything, mock.Anything)
}

func TestClient_Invoke_FunctionError(t *testing.T) {
	api := new(mockLambda)
	api.On("Invoke", mock.Anything, mock.Anything).Return(&lambda.InvokeOutput{
		FunctionError: aws.String("Unhandled"),
		Payload:       []byte(`{"errorMessage":"boom"}`),
	}, nil)

	_, err := invoke.NewClient(api, nil).Invoke(context.Background(), invoke.Request{FunctionName: "methods"})

	var fnErr *invoke.FunctionError
	require.ErrorAs(t, err, &fnErr)
	assert.Equal(t, "Unhandled", fnErr.Kind)
	assert.Contains(t, err.Error(), "boom")
}

func TestClient_Invoke_APIError(t *testing.T) {
	api := new(mockLambda)
	apiErr := errors.New("access denied")
	api.On("Invoke", mock.Anything, mock.Anything).Return(nil, apiErr)

	_, err := invoke.NewClient(api, nil).Invoke(context.Background(), invoke.Request{FunctionName: "methods"})

	assert.ErrorIs(t, err, apiErr)
}

func TestClient_Invoke_InvalidPayload(t *testing.T) {
	api := new(mockLambda)
	api.On("Invoke", mock.Anything, mock.Anything).Return(&lambda.InvokeOutput{Payload: []byte(`not json`)}, nil)

	_, err := invoke.NewClient(api, nil).Invoke(context.Background(), invoke.Request{FunctionName: "methods"})

	assert.ErrorContains(t, err, "failed to decode proxy response")
}

func TestClient_Invoke_HeadersAndQuery(t *testing.T) {
	api := new(mockLambda)

	payload, err := json.Marshal(events.APIGatewayProxyResponse{
		StatusCode: 200,
		Body:       `{"factorial":120}`,
	})
	require.NoError(t, err)

	api.On("Invoke", mock.Anything, mock.MatchedBy(func(params *lambda.InvokeInput) bool {
		evt := decodeEvent(t, params)
		return evt.Path == "/factorial" &&
			evt.QueryStringParameters["n"] == "5" &&
			evt.Headers["Accept"] == "application/json"
	})).Return(&lambda.InvokeOutput{StatusCode: 200, Payload: payload}, nil)

	client := invoke.NewClient(api, zaptest.NewLogger(t))

	res, err := client.Invoke(context.Background(), invoke.Request{
		FunctionName: "compute",
		Path:         "/factorial",
		Headers:      map[string]string{"Accept": "application/json"},
		Query:        map[string]string{"n": "5"},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"factorial":120}`, res.Body)
	api.AssertExpectations(t)
}

func TestParsePairs(t *testing.T) {
	query, err := invoke.ParsePairs([]string{"n=5", "mode = fast", "empty=", "n=6"}, "=")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"n": "6", "mode": "fast", "empty": ""}, query)

	headers, err := invoke.ParsePairs([]string{"Accept: application/json", "X-Trace: a:b"}, ":")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Accept": "application/json", "X-Trace": "a:b"}, headers)

	none, err := invoke.ParsePairs(nil, "=")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestParsePairs_Invalid(t *testing.T) {
	for _, pair := range []string{"n", "=5", " : x"} {
		t.Run(pair, func(t *testing.T) {
			sep := "="
			if strings.Contains(pair, ":") {
				sep = ":"
			}

			_, err := invoke.ParsePairs([]string{pair}, sep)
			assert.ErrorIs(t, err, invoke.ErrInvalidPair)
		})
	}
}
