package api

import (
	"net/http"
	"net/url"
)

// request describes one API call: the interpolated path, the query
// parameters, and whether the call carries the Bearer credential.
// A request is never mutated after construction; retries re-send the
// same request.
//
// label is the path template the request was built from. It is used
// for logs and metrics so that per-endpoint series do not explode
// with one entry per address.
type request struct {
	method string
	path   string
	query  url.Values
	auth   bool
	label  string
}

func newGetRequest(label string, path string, query url.Values) request {
	if query == nil {
		query = url.Values{}
	}
	return request{
		method: http.MethodGet,
		path:   path,
		query:  query,
		auth:   true,
		label:  label,
	}
}
