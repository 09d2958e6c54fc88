package dispatcher

import (
	"encoding/json"
	"net/http"
	"strings"
)

// AllowedMethods lists the methods the dispatcher handles, in the
// order they are advertised in the Allow header.
var AllowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
}

var allowHeader = strings.Join(AllowedMethods, ", ")

// newResponse marshals body and wraps it into a JSON response.
func newResponse(status int, body any) (Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return Response{}, err
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return Response{
		StatusCode: status,
		Body:       data,
		Header:     header,
	}, nil
}

// newMethodNotAllowedResponse creates the response for unsupported methods.
func newMethodNotAllowedResponse() (Response, error) {
	res, err := newResponse(http.StatusMethodNotAllowed, messageBody{
		Message: "Method Not Allowed",
	})
	if err != nil {
		return Response{}, err
	}

	res.Header.Set("Allow", allowHeader)

	return res, nil
}

func successMessage(method string) string {
	return method + " request processed successfully!"
}
