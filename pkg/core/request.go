package core

import "maps"

// Params is an ordered-by-name mapping of request parameter names to values.
// Optional parameters are simply absent from the map, never present as nil.
type Params map[string]any

// Request describes a single HTTP call against the exchange REST API.
// For GET requests the parameters travel as the query string; for POST,
// DELETE and PUT they travel as a JSON body. The cancel-order endpoint
// requires a JSON body on DELETE.
type Request struct {
	Method  string            `json:"method"`
	Path    string            `json:"path"`
	Query   Params            `json:"query,omitempty"`
	Body    any               `json:"body,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Signed  bool              `json:"signed"`
}

// NewRequest constructs a Request from the operation's endpoint descriptor.
func NewRequest(op Operation) *Request {
	ep := op.Endpoint()
	return &Request{
		Method: ep.Method,
		Path:   ep.Path,
		Signed: ep.Signed,
	}
}

// SetPath overrides the request path. Used for endpoints that interpolate a
// resource name into the path, such as the DNS domain endpoints.
func (r *Request) SetPath(path string) *Request {
	r.Path = path
	return r
}

// SetQuery sets a single query parameter.
func (r *Request) SetQuery(key string, value any) *Request {
	if r.Query == nil {
		r.Query = make(Params)
	}
	r.Query[key] = value
	return r
}

// SetQueryParams merges the given parameters into the query string.
func (r *Request) SetQueryParams(params Params) *Request {
	if r.Query == nil {
		r.Query = make(Params)
	}
	maps.Copy(r.Query, params)
	return r
}

// SetBody sets the JSON request body.
func (r *Request) SetBody(body any) *Request {
	r.Body = body
	return r
}

// SetHeader sets a single request header.
func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}
