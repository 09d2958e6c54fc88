package dispatcher

import "net/http"

// Request represents an incoming request.
type Request struct {
	Method string
	Body   []byte
}

// Response represents an outgoing response.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// messageBody is the body of responses without request data.
type messageBody struct {
	Message string `json:"message"`
}

// dataBody is the body of responses echoing the parsed request data.
type dataBody struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
