package api

import "net/http"

// Response is the verbatim outcome of one store call.
type Response struct {
	Status int
	Body   string
}

// OK reports whether the status is in the 2xx range.
func (r Response) OK() bool {
	return r.Status >= http.StatusOK && r.Status < http.StatusMultipleChoices
}
