package handler

import (
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies at the payload limit of synchronous
// Lambda invocations.
var maxBodyBytes int64 = 6 << 20

var errBodyTooLarge = errors.New("request body too large")

// readRequestBody reads the body of r, failing with errBodyTooLarge
// once more than maxBodyBytes are read.
func readRequestBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return nil, errBodyTooLarge
	}

	return body, err
}
