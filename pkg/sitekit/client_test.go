package sitekit_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhairstudio/jhair-server/pkg/locale"
	"github.com/jhairstudio/jhair-server/pkg/sitekit"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *sitekit.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return sitekit.NewClient(server.URL, discardLogger())
}

/*
TestClient_BlogsEnvelopeShape verifies decoding of the current paginated
response shape, including the lang and filter query parameters sent.
*/
func TestClient_BlogsEnvelopeShape(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/blogs", request.URL.Path)
		assert.Equal(t, "nl", request.URL.Query().Get("lang"))
		assert.Equal(t, []string{"care", "color"}, request.URL.Query()["tag"])
		assert.Equal(t, "balayage", request.URL.Query().Get("search"))
		assert.Equal(t, "2", request.URL.Query().Get("page"))

		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`{
			"data": [{"id": 7, "slug": "zomer-kleuren", "title": "Zomer kleuren"}],
			"meta": {"page": 2, "limit": 6, "total": 13, "total_pages": 3}
		}`))
	})

	list, err := client.Blogs(context.Background(), sitekit.BlogQuery{
		Lang:   locale.NL,
		Tags:   []string{"care", "color"},
		Search: "balayage",
		Page:   2,
	})
	require.NoError(t, err)

	require.Len(t, list.Posts, 1)
	assert.Equal(t, "zomer-kleuren", list.Posts[0].Slug)
	require.NotNil(t, list.Meta)
	assert.Equal(t, 13, list.Meta.Total)
	assert.Equal(t, 3, list.Meta.TotalPages)
}

/*
TestClient_BlogsBareArrayShape verifies the legacy shape: a bare JSON array
with no envelope. Posts decode, meta is nil.
*/
func TestClient_BlogsBareArrayShape(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`[{"id": 1, "slug": "first-post", "title": "First"}]`))
	})

	list, err := client.Blogs(context.Background(), sitekit.BlogQuery{Lang: locale.EN})
	require.NoError(t, err)

	require.Len(t, list.Posts, 1)
	assert.Equal(t, "first-post", list.Posts[0].Slug)
	assert.Nil(t, list.Meta)
}

func TestClient_PageFields(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/home", request.URL.Path)
		assert.Equal(t, "es", request.URL.Query().Get("lang"))
		writer.Write([]byte(`{"data": {"hero_title": "Bienvenida", "hero_subtitle": ""}}`))
	})

	fields, err := client.Page(context.Background(), "home", locale.ES)
	require.NoError(t, err)

	assert.Equal(t, "Bienvenida", fields["hero_title"])
	assert.Equal(t, "", fields["hero_subtitle"], "missing translations arrive as empty strings")
}

func TestClient_NotFound(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		writer.Write([]byte(`{"error": "Blog not found", "code": "NOT_FOUND"}`))
	})

	_, err := client.BlogBySlug(context.Background(), "nope", locale.EN)
	require.Error(t, err)
	assert.True(t, sitekit.IsNotFound(err))

	apiErr, ok := err.(*sitekit.APIError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Blog not found", apiErr.Message)
}

func TestClient_SubmitContact(t *testing.T) {
	var received string
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/api/contact", request.URL.Path)

		body, _ := io.ReadAll(request.Body)
		received = string(body)

		writer.WriteHeader(http.StatusCreated)
		writer.Write([]byte(`{"data": {"id": 1}}`))
	})

	err := client.SubmitContact(context.Background(), sitekit.ContactForm{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Hola",
	})
	require.NoError(t, err)
	assert.Contains(t, received, `"email":"ana@example.com"`)
}
