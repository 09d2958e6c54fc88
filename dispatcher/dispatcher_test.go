package dispatcher_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/gatewaykit/dispatcher"
)

func setupDispatcher(t *testing.T) dispatcher.Dispatcher {
	return dispatcher.New(dispatcher.Params{
		Log: zaptest.NewLogger(t),
	})
}

func parseBody(t *testing.T, res dispatcher.Response) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(res.Body, &body))
	return body
}

func TestDispatch_WithoutBody(t *testing.T) {
	tests := []struct {
		method string
		body   []byte
	}{
		{http.MethodGet, nil},
		{http.MethodGet, []byte(`{"ignored":true}`)},
		{http.MethodGet, []byte("not valid json")},
		{http.MethodDelete, nil},
		{http.MethodDelete, []byte("not valid json")},
	}

	d := setupDispatcher(t)

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			res, err := d.Dispatch(context.Background(), dispatcher.Request{
				Method: tt.method,
				Body:   tt.body,
			})
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, res.StatusCode)
			assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
			assert.Empty(t, res.Header.Get("Allow"))

			body := parseBody(t, res)
			assert.Equal(t, tt.method+" request processed successfully!", body["message"])
			assert.NotContains(t, body, "data")
		})
	}
}

func TestDispatch_Post(t *testing.T) {
	d := setupDispatcher(t)

	res, err := d.Dispatch(context.Background(), dispatcher.Request{
		Method: http.MethodPost,
		Body:   []byte(`{"x":1}`),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"message":"POST request processed successfully!","data":{"x":1}}`, string(res.Body))
}

func TestDispatch_Put(t *testing.T) {
	d := setupDispatcher(t)

	res, err := d.Dispatch(context.Background(), dispatcher.Request{
		Method: http.MethodPut,
		Body:   []byte(`{"y":2}`),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"message":"PUT request processed successfully!","data":{"y":2}}`, string(res.Body))
}

func TestDispatch_EchoesNonObjectData(t *testing.T) {
	d := setupDispatcher(t)

	tests := map[string]string{
		"array":  `[1,2,3]`,
		"string": `"hello"`,
		"number": `42`,
		"null":   `null`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := d.Dispatch(context.Background(), dispatcher.Request{
				Method: http.MethodPut,
				Body:   []byte(data),
			})
			require.NoError(t, err)

			expected := `{"message":"PUT request processed successfully!","data":` + data + `}`
			assert.JSONEq(t, expected, string(res.Body))
		})
	}
}

func TestDispatch_PreservesNumbers(t *testing.T) {
	d := setupDispatcher(t)

	tests := map[string]string{
		"above 2^53":     `{"id":9007199254740993}`,
		"above uint64":   `{"id":12345678901234567890}`,
		"trailing zero":  `{"v":1.0}`,
		"exponent":       `{"v":1e400}`,
		"nested numbers": `[1.50,{"n":-0.0}]`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := d.Dispatch(context.Background(), dispatcher.Request{
				Method: http.MethodPost,
				Body:   []byte(data),
			})
			require.NoError(t, err)

			expected := `{"message":"POST request processed successfully!","data":` + data + `}`
			assert.Equal(t, expected, string(res.Body))
		})
	}
}

func TestDispatch_TrailingData(t *testing.T) {
	d := setupDispatcher(t)

	tests := map[string]string{
		"second value": `{"x":1}{"y":2}`,
		"garbage":      `{"x":1} foo`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := d.Dispatch(context.Background(), dispatcher.Request{
				Method: http.MethodPut,
				Body:   []byte(body),
			})
			assert.True(t, dispatcher.IsParseError(err))
		})
	}

	_, err := d.Dispatch(context.Background(), dispatcher.Request{
		Method: http.MethodPost,
		Body:   []byte(`{"x":1}{"y":2}`),
	})
	assert.ErrorIs(t, err, dispatcher.ErrTrailingData)

	res, err := d.Dispatch(context.Background(), dispatcher.Request{
		Method: http.MethodPut,
		Body:   []byte("{\"x\":1}\n  "),
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestDispatch_MethodNotAllowed(t *testing.T) {
	tests := []string{http.MethodPatch, http.MethodHead, http.MethodOptions, "get", "FOO", ""}

	d := setupDispatcher(t)

	for _, method := range tests {
		t.Run(method, func(t *testing.T) {
			res, err := d.Dispatch(context.Background(), dispatcher.Request{
				Method: method,
				Body:   []byte(`{"x":1}`),
			})
			require.NoError(t, err)

			assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
			assert.Equal(t, "GET, POST, PUT, DELETE", res.Header.Get("Allow"))
			assert.JSONEq(t, `{"message":"Method Not Allowed"}`, string(res.Body))
		})
	}
}

func TestDispatch_InvalidBody(t *testing.T) {
	d := setupDispatcher(t)

	for _, method := range []string{http.MethodPost, http.MethodPut} {
		t.Run(method, func(t *testing.T) {
			res, err := d.Dispatch(context.Background(), dispatcher.Request{
				Method: method,
				Body:   []byte("not valid json"),
			})
			require.Error(t, err)

			var parseErr *dispatcher.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, method, parseErr.Method)
			assert.True(t, dispatcher.IsParseError(err))
			assert.Zero(t, res.StatusCode)
		})
	}
}

func TestDispatch_MissingBody(t *testing.T) {
	d := setupDispatcher(t)

	_, err := d.Dispatch(context.Background(), dispatcher.Request{
		Method: http.MethodPost,
	})

	assert.True(t, dispatcher.IsParseError(err))
	assert.ErrorIs(t, err, dispatcher.ErrMissingBody)
}

func TestIsParseError(t *testing.T) {
	assert.False(t, dispatcher.IsParseError(nil))
	assert.False(t, dispatcher.IsParseError(errors.New("foo")))
	assert.True(t, dispatcher.IsParseError(&dispatcher.ParseError{Method: http.MethodPut}))
}
