package linode

import (
	"context"
	"net/http"
)

// doer dispatches one logical API operation. Client implements it with a
// single round trip; RetryingClient implements it with a retry loop around
// the base client. All operation methods are defined once, on API, against
// this interface.
type doer interface {
	Do(ctx context.Context, op, method, path string, body, out any) error
}

// API carries the full operation surface of the Linode client. It is
// embedded in both Client and RetryingClient so that callers see the
// identical set of methods regardless of which layer they hold.
type API struct {
	d    doer
	meta *metadataCache
}

// PagedResponse is the envelope Linode wraps every list endpoint in.
type PagedResponse[T any] struct {
	Data    []T `json:"data"`
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	Results int `json:"results"`
}

// doGet fetches a single resource.
func doGet[T any](ctx context.Context, d doer, op, path string) (*T, error) {
	var out T
	if err := d.Do(ctx, op, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// doList fetches one page of a list endpoint.
func doList[T any](ctx context.Context, d doer, op, path string) (*PagedResponse[T], error) {
	var out PagedResponse[T]
	if err := d.Do(ctx, op, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// doPost creates a resource and decodes the created object.
func doPost[T any](ctx context.Context, d doer, op, path string, body any) (*T, error) {
	var out T
	if err := d.Do(ctx, op, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// doPut updates a resource and decodes the updated object.
func doPut[T any](ctx context.Context, d doer, op, path string, body any) (*T, error) {
	var out T
	if err := d.Do(ctx, op, http.MethodPut, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// doAction posts to an action endpoint that returns no meaningful body.
func doAction(ctx context.Context, d doer, op, path string, body any) error {
	return d.Do(ctx, op, http.MethodPost, path, body, nil)
}

// doDelete removes a resource.
func doDelete(ctx context.Context, d doer, op, path string) error {
	return d.Do(ctx, op, http.MethodDelete, path, nil, nil)
}
