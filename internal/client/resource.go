package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"courseadmin/internal/domain"
)

// Resource is the list/get/create/update/delete/status set of calls that
// every dashboard entity shares. Paths are fixed per resource.
type Resource[T any] struct {
	client  *Client
	name    string
	path    string
	listKey string
}

func NewResource[T any](c *Client, name, path, listKey string) *Resource[T] {
	return &Resource[T]{client: c, name: name, path: path, listKey: listKey}
}

func (r *Resource[T]) Name() string {
	return r.name
}

func (r *Resource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

func (r *Resource[T]) List(ctx context.Context, token string, params domain.ListParams) (domain.Page[T], error) {
	params = params.Normalize()

	var raw json.RawMessage
	err := r.client.Query(ctx, Request{
		Method: http.MethodGet,
		Path:   r.path,
		Params: params.Values(),
		Token:  token,
	}, &raw)
	if err != nil {
		return domain.Page[T]{}, err
	}

	items, total, err := decodeList[T](raw, r.listKey)
	if err != nil {
		return domain.Page[T]{}, err
	}
	return domain.NewPage(items, total, params.Page, params.Limit), nil
}

func (r *Resource[T]) Get(ctx context.Context, token, id string) (T, error) {
	res, err := r.do(ctx, Request{Method: http.MethodGet, Path: r.itemPath(id), Token: token})
	return res.Data, err
}

func (r *Resource[T]) Create(ctx context.Context, token string, in any) (Result[T], error) {
	return r.do(ctx, Request{Method: http.MethodPost, Path: r.path, Body: in, Token: token})
}

func (r *Resource[T]) Update(ctx context.Context, token, id string, in any) (Result[T], error) {
	return r.do(ctx, Request{Method: http.MethodPut, Path: r.itemPath(id), Body: in, Token: token})
}

func (r *Resource[T]) Delete(ctx context.Context, token, id string) (string, error) {
	res, err := r.do(ctx, Request{Method: http.MethodDelete, Path: r.itemPath(id), Token: token})
	return res.Message, err
}

// SetStatus flips the active flag (or the review status for host requests).
func (r *Resource[T]) SetStatus(ctx context.Context, token, id string, body any) (Result[T], error) {
	return r.do(ctx, Request{Method: http.MethodPatch, Path: r.itemPath(id) + "/status", Body: body, Token: token})
}

func (r *Resource[T]) do(ctx context.Context, req Request) (Result[T], error) {
	var raw json.RawMessage
	if err := r.client.Query(ctx, req, &raw); err != nil {
		return Result[T]{}, err
	}
	return decodeOne[T](raw)
}
