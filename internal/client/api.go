package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"courseadmin/internal/domain"
)

// API groups one module per upstream resource.
type API struct {
	Courses       *Resource[domain.Course]
	Lectures      *Resource[domain.Lecture]
	Notes         *Resource[domain.Note]
	FlashCards    *Resource[domain.FlashCard]
	Questions     *Resource[domain.Question]
	Users         *Resource[domain.User]
	Countries     *Resource[domain.Country]
	Offers        *Resource[domain.Offer]
	Events        *Resource[domain.Event]
	Categories    *Resource[domain.Category]
	SubCategories *Resource[domain.SubCategory]
	Specialties   *Resource[domain.Specialty]
	HostRequests  *Resource[domain.HostCourseRequest]

	Pages *PagesAPI
	Auth  *AuthAPI

	client *Client
}

func NewAPI(c *Client) *API {
	return &API{
		Courses:       NewResource[domain.Course](c, "courses", "/courses", "courses"),
		Lectures:      NewResource[domain.Lecture](c, "lectures", "/lectures", "lectures"),
		Notes:         NewResource[domain.Note](c, "notes", "/notes", "notes"),
		FlashCards:    NewResource[domain.FlashCard](c, "flashcards", "/flashcards", "flashcards"),
		Questions:     NewResource[domain.Question](c, "questions", "/questions", "questions"),
		Users:         NewResource[domain.User](c, "users", "/users", "users"),
		Countries:     NewResource[domain.Country](c, "countries", "/countries", "countries"),
		Offers:        NewResource[domain.Offer](c, "offers", "/offers", "offers"),
		Events:        NewResource[domain.Event](c, "events", "/events", "events"),
		Categories:    NewResource[domain.Category](c, "categories", "/categories", "categories"),
		SubCategories: NewResource[domain.SubCategory](c, "subcategories", "/subcategories", "subcategories"),
		Specialties:   NewResource[domain.Specialty](c, "specialties", "/specialties", "specialties"),
		HostRequests:  NewResource[domain.HostCourseRequest](c, "host-course-requests", "/host-course-requests", "requests"),
		Pages:         &PagesAPI{client: c},
		Auth:          &AuthAPI{client: c},
		client:        c,
	}
}

func (a *API) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

type PagesAPI struct {
	client *Client
}

func (p *PagesAPI) Get(ctx context.Context, token, slug string) (domain.PageContent, error) {
	var raw json.RawMessage
	err := p.client.Query(ctx, Request{Method: http.MethodGet, Path: "/pages/" + url.PathEscape(slug), Token: token}, &raw)
	if err != nil {
		return domain.PageContent{}, err
	}
	res, err := decodeOne[domain.PageContent](raw)
	if res.Data.Slug == "" {
		res.Data.Slug = slug
	}
	return res.Data, err
}

func (p *PagesAPI) Update(ctx context.Context, token, slug string, in domain.PageContentInput) (Result[domain.PageContent], error) {
	var raw json.RawMessage
	err := p.client.Query(ctx, Request{Method: http.MethodPut, Path: "/pages/" + url.PathEscape(slug), Body: in, Token: token}, &raw)
	if err != nil {
		return Result[domain.PageContent]{}, err
	}
	res, err := decodeOne[domain.PageContent](raw)
	if res.Data.Slug == "" {
		res.Data.Slug = slug
	}
	return res, err
}

type AuthAPI struct {
	client *Client
}

type LoginResult struct {
	Token string
	Admin domain.Admin
}

type loginPayload struct {
	Token       string        `json:"token"`
	AccessToken string        `json:"access_token"`
	User        *domain.Admin `json:"user"`
	Admin       *domain.Admin `json:"admin"`
}

func (a *AuthAPI) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var raw json.RawMessage
	err := a.client.Query(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   map[string]string{"email": email, "password": password},
	}, &raw)
	if err != nil {
		return LoginResult{}, err
	}

	res, err := decodeOne[loginPayload](raw)
	if err != nil {
		return LoginResult{}, err
	}

	out := LoginResult{Token: res.Data.Token}
	if out.Token == "" {
		out.Token = res.Data.AccessToken
	}
	switch {
	case res.Data.Admin != nil:
		out.Admin = *res.Data.Admin
	case res.Data.User != nil:
		out.Admin = *res.Data.User
	}
	if out.Token == "" {
		return LoginResult{}, &APIError{Status: http.StatusBadGateway, Message: "login response has no token"}
	}
	return out, nil
}

func (a *AuthAPI) Me(ctx context.Context, token string) (domain.Admin, error) {
	var raw json.RawMessage
	if err := a.client.Query(ctx, Request{Method: http.MethodGet, Path: "/auth/me", Token: token}, &raw); err != nil {
		return domain.Admin{}, err
	}
	res, err := decodeOne[domain.Admin](raw)
	return res.Data, err
}

func (a *AuthAPI) Logout(ctx context.Context, token string) error {
	return a.client.Query(ctx, Request{Method: http.MethodPost, Path: "/auth/logout", Token: token}, nil)
}
