// Copyright (c) 2026 Jhair Studio. All rights reserved.

/*
Package sitekit is the client side of the content platform: everything the
website front end needs to read localized content from the API and keep it
coherent while the visitor switches languages.

Components:

  - Client: typed HTTP wrappers over the public content endpoints.
  - LangStore: the visitor's active locale, persisted and observable.
  - Assembler: concurrent page assembly with stale-load protection.
  - Listing: query state for the blog index (tags, search, pagination).

The kit never falls back across locales. A missing translation renders as
an empty string, exactly as the API serves it.
*/
package sitekit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jhairstudio/jhair-server/pkg/locale"
	"github.com/jhairstudio/jhair-server/pkg/pagination"
)

// # Data Transfer Types

// Tag is a localized blog tag.
type Tag struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// BlogPost is a localized post as served by the public API.
type BlogPost struct {
	ID           int       `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Content      string    `json:"content"`
	AuthorName   string    `json:"author_name"`
	ImageURL     string    `json:"image_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	PublishedAt  time.Time `json:"published_at"`
	Tags         []Tag     `json:"tags"`
}

// BlogList is one page of the blog index. Meta is nil when the server
// answered with a bare array instead of the paginated envelope.
type BlogList struct {
	Posts []BlogPost
	Meta  *pagination.Meta
}

// ServiceSection is one of the up to three content sections of a treatment.
type ServiceSection struct {
	Title string `json:"title"`
	Body  string `json:"content"`
}

// Service is a localized treatment from the catalogue.
type Service struct {
	ID          int              `json:"id"`
	Slug        string           `json:"slug"`
	Icon        string           `json:"icon"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Sections    []ServiceSection `json:"sections"`
	SortOrder   int              `json:"sort_order"`
}

// Partner is a brand shown in the partner strip. Not localized.
type Partner struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	LogoURL    string `json:"logo_url"`
	WebsiteURL string `json:"website_url"`
	SortOrder  int    `json:"sort_order"`
}

// ContactForm is the public contact form payload.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// ServiceRequestForm is the booking request payload for a treatment.
type ServiceRequestForm struct {
	ServiceID int    `json:"service_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// # Errors

// APIError is a non-2xx response from the content API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sitekit: api error %d (%s): %s", e.Status, e.Code, e.Message)
}

// IsNotFound reports whether err is a 404 from the content API.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// # Client

// Client reads the public content API.
//
// All methods are safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient returns a Client for the API at baseURL, e.g.
// "https://api.jhairstudio.com".
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

// envelope mirrors the API's response wrapper.
type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Meta  *pagination.Meta `json:"meta"`
	Error string           `json:"error"`
	Code  string           `json:"code"`
}

/*
getJSON performs a GET and decodes the response into out.

Description: Tolerates both response shapes the API family has used over
time. The current server wraps everything in {"data": ...}; older builds
served bare arrays for list endpoints. Both decode into out.

Parameters:
  - ctx: context.Context
  - path: URL path under the base, e.g. "/api/blogs"
  - query: Query parameters, may be nil
  - out: Destination for the data payload

Returns:
  - *pagination.Meta: Pagination info when the envelope carried one
  - error: *APIError for non-2xx responses, decoding or transport errors otherwise
*/
func (client *Client) getJSON(ctx context.Context, path string, query url.Values, out any) (*pagination.Meta, error) {
	target := client.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, 8<<20))
	if err != nil {
		return nil, err
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		apiErr := &APIError{Status: response.StatusCode, Code: "UNKNOWN", Message: http.StatusText(response.StatusCode)}
		var failed envelope
		if json.Unmarshal(body, &failed) == nil && failed.Error != "" {
			apiErr.Code = failed.Code
			apiErr.Message = failed.Error
		}
		return nil, apiErr
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		// Legacy bare-array shape, no meta available.
		return nil, json.Unmarshal(trimmed, out)
	}

	var wrapped envelope
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, fmt.Errorf("sitekit: malformed response from %s: %w", path, err)
	}
	if err := json.Unmarshal(wrapped.Data, out); err != nil {
		return nil, fmt.Errorf("sitekit: malformed data from %s: %w", path, err)
	}
	return wrapped.Meta, nil
}

// postJSON performs a POST with a JSON body. The response payload is discarded.
func (client *Client) postJSON(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(response.Body, 1<<20))
		apiErr := &APIError{Status: response.StatusCode, Code: "UNKNOWN", Message: http.StatusText(response.StatusCode)}
		var failed envelope
		if json.Unmarshal(raw, &failed) == nil && failed.Error != "" {
			apiErr.Code = failed.Code
			apiErr.Message = failed.Error
		}
		return apiErr
	}
	return nil
}

func langQuery(loc locale.Locale) url.Values {
	return url.Values{"lang": []string{string(loc)}}
}

// # Content Reads

// Page fetches one localized page record, e.g. "home" or "contact-form".
// The result is a flat map of field name to localized text.
func (client *Client) Page(ctx context.Context, name string, loc locale.Locale) (map[string]string, error) {
	fields := map[string]string{}
	_, err := client.getJSON(ctx, "/api/"+name, langQuery(loc), &fields)
	if err != nil {
		return nil, err
	}
	return fields, nil
}

// BlogQuery narrows the blog index.
type BlogQuery struct {
	Lang   locale.Locale
	Tags   []string
	Search string
	Page   int
	Limit  int
}

// Blogs fetches one page of the blog index.
func (client *Client) Blogs(ctx context.Context, q BlogQuery) (*BlogList, error) {
	values := langQuery(q.Lang)
	for _, slug := range q.Tags {
		values.Add("tag", slug)
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	posts := []BlogPost{}
	meta, err := client.getJSON(ctx, "/api/blogs", values, &posts)
	if err != nil {
		return nil, err
	}
	return &BlogList{Posts: posts, Meta: meta}, nil
}

// BlogBySlug fetches a single published post.
func (client *Client) BlogBySlug(ctx context.Context, slug string, loc locale.Locale) (*BlogPost, error) {
	post := &BlogPost{}
	if _, err := client.getJSON(ctx, "/api/blogs/"+url.PathEscape(slug), langQuery(loc), post); err != nil {
		return nil, err
	}
	return post, nil
}

// Tags fetches all blog tags, localized.
func (client *Client) Tags(ctx context.Context, loc locale.Locale) ([]Tag, error) {
	tags := []Tag{}
	if _, err := client.getJSON(ctx, "/api/tags", langQuery(loc), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// Services fetches the published treatment catalogue in display order.
func (client *Client) Services(ctx context.Context, loc locale.Locale) ([]Service, error) {
	services := []Service{}
	if _, err := client.getJSON(ctx, "/api/services", langQuery(loc), &services); err != nil {
		return nil, err
	}
	return services, nil
}

// ServiceBySlug fetches a single published treatment.
func (client *Client) ServiceBySlug(ctx context.Context, slug string, loc locale.Locale) (*Service, error) {
	service := &Service{}
	if _, err := client.getJSON(ctx, "/api/services/"+url.PathEscape(slug), langQuery(loc), service); err != nil {
		return nil, err
	}
	return service, nil
}

// Partners fetches the published partner strip.
func (client *Client) Partners(ctx context.Context) ([]Partner, error) {
	partners := []Partner{}
	if _, err := client.getJSON(ctx, "/api/partners", nil, &partners); err != nil {
		return nil, err
	}
	return partners, nil
}

// # Form Submissions

// SubmitContact sends the contact form.
func (client *Client) SubmitContact(ctx context.Context, form ContactForm) error {
	return client.postJSON(ctx, "/api/contact", form)
}

// SubmitServiceRequest sends a booking request for a treatment.
func (client *Client) SubmitServiceRequest(ctx context.Context, form ServiceRequestForm) error {
	return client.postJSON(ctx, "/api/service-request", form)
}
