package blog

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhairstudio/jhair-server/internal/core/tag"
	"github.com/jhairstudio/jhair-server/internal/platform/dberr"
	"github.com/jhairstudio/jhair-server/pkg/locale"
	"github.com/jhairstudio/jhair-server/pkg/pagination"
)

// memoryRepository is an in-memory Repository honoring the same filter
// semantics as the SQL implementation.
type memoryRepository struct {
	blogs []*Blog
}

func (repo *memoryRepository) matches(b *Blog, filter ListFilter) bool {
	if filter.PublishedOnly && !b.IsPublished {
		return false
	}

	if len(filter.TagSlugs) > 0 {
		found := false
		for _, want := range filter.TagSlugs {
			for _, t := range b.Tags {
				if t.Slug == want {
					found = true
				}
			}
		}
		if !found {
			return false
		}
	}

	if filter.Search != "" {
		view := b.Localize(filter.Lang)
		haystack := strings.ToLower(view.Title + " " + view.Description)
		if !strings.Contains(haystack, strings.ToLower(filter.Search)) {
			return false
		}
	}

	return true
}

func (repo *memoryRepository) List(_ context.Context, filter ListFilter) ([]*Blog, int, error) {
	matched := make([]*Blog, 0)
	for _, b := range repo.blogs {
		if repo.matches(b, filter) {
			matched = append(matched, b)
		}
	}

	total := len(matched)
	start := filter.Page.Offset()
	if start > total {
		start = total
	}
	end := start + filter.Page.Limit
	if filter.Page.Limit <= 0 || end > total {
		end = total
	}

	return matched[start:end], total, nil
}

func (repo *memoryRepository) GetBySlug(_ context.Context, slug string, publishedOnly bool) (*Blog, error) {
	for _, b := range repo.blogs {
		if b.Slug == slug {
			if publishedOnly && !b.IsPublished {
				return nil, dberr.ErrNotFound
			}
			return b, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *memoryRepository) GetByID(_ context.Context, id int) (*Blog, error) {
	for _, b := range repo.blogs {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *memoryRepository) Create(_ context.Context, b *Blog, _ []int) (*Blog, error) {
	b.ID = len(repo.blogs) + 1
	repo.blogs = append(repo.blogs, b)
	return b, nil
}

func (repo *memoryRepository) Update(_ context.Context, b *Blog, _ []int) (*Blog, error) {
	for i, existing := range repo.blogs {
		if existing.ID == b.ID {
			repo.blogs[i] = b
			return b, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *memoryRepository) Delete(_ context.Context, id int) error {
	for i, existing := range repo.blogs {
		if existing.ID == id {
			repo.blogs = append(repo.blogs[:i], repo.blogs[i+1:]...)
			return nil
		}
	}
	return dberr.ErrNotFound
}

func testService(blogs ...*Blog) *Service {
	return NewService(&memoryRepository{blogs: blogs}, slog.Default())
}

func post(id int, slug string, published bool, tags ...tag.Tag) *Blog {
	return &Blog{
		ID:            id,
		Slug:          slug,
		TitleEN:       "Post " + slug,
		TitleES:       "Entrada " + slug,
		DescriptionEN: "About " + slug,
		IsPublished:   published,
		PublishedAt:   time.Date(2026, 1, id, 0, 0, 0, 0, time.UTC),
		Tags:          tags,
	}
}

/*
TestListPublic_ExcludesDrafts verifies drafts never reach the public listing,
even when the caller forgets to set the filter flag.
*/
func TestListPublic_ExcludesDrafts(t *testing.T) {
	service := testService(
		post(1, "published-one", true),
		post(2, "draft", false),
		post(3, "published-two", true),
	)

	blogs, meta, err := service.ListPublic(context.Background(), ListFilter{
		Lang: locale.EN,
		Page: pagination.Params{Page: 1, Limit: 6},
	})

	require.NoError(t, err)
	assert.Len(t, blogs, 2)
	assert.Equal(t, 2, meta.Total)
	for _, b := range blogs {
		assert.NotEqual(t, "draft", b.Slug)
	}
}

/*
TestListPublic_TagFilter verifies tag filtering by slug.
*/
func TestListPublic_TagFilter(t *testing.T) {
	color := tag.Tag{ID: 1, Slug: "color", NameEN: "Color"}
	care := tag.Tag{ID: 2, Slug: "care", NameEN: "Care"}

	service := testService(
		post(1, "balayage", true, color),
		post(2, "keratin", true, care),
		post(3, "untagged", true),
	)

	blogs, meta, err := service.ListPublic(context.Background(), ListFilter{
		TagSlugs: []string{"color"},
		Lang:     locale.EN,
		Page:     pagination.Params{Page: 1, Limit: 6},
	})

	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "balayage", blogs[0].Slug)
	assert.Equal(t, 1, meta.Total)
}

/*
TestListPublic_SearchBeforePagination verifies the search filter applies to
the whole set, so metadata reflects matches rather than the raw table.
*/
func TestListPublic_SearchBeforePagination(t *testing.T) {
	service := testService(
		post(1, "balayage-basics", true),
		post(2, "keratin-guide", true),
		post(3, "balayage-advanced", true),
	)

	blogs, meta, err := service.ListPublic(context.Background(), ListFilter{
		Search: "balayage",
		Lang:   locale.EN,
		Page:   pagination.Params{Page: 1, Limit: 1},
	})

	require.NoError(t, err)
	assert.Len(t, blogs, 1)
	assert.Equal(t, 2, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}

/*
TestGetPublicBySlug verifies localization and the draft 404.
*/
func TestGetPublicBySlug(t *testing.T) {
	service := testService(
		post(1, "visible", true),
		post(2, "hidden-draft", false),
	)

	t.Run("published_localized", func(t *testing.T) {
		view, err := service.GetPublicBySlug(context.Background(), "visible", locale.ES)
		require.NoError(t, err)
		assert.Equal(t, "Entrada visible", view.Title)
	})

	t.Run("draft_is_404", func(t *testing.T) {
		_, err := service.GetPublicBySlug(context.Background(), "hidden-draft", locale.EN)
		assert.ErrorIs(t, err, dberr.ErrNotFound)
	})

	t.Run("unknown_is_404", func(t *testing.T) {
		_, err := service.GetPublicBySlug(context.Background(), "missing", locale.EN)
		assert.ErrorIs(t, err, dberr.ErrNotFound)
	})
}

/*
TestCreate_SlugFallback verifies slug derivation from the English title.
*/
func TestCreate_SlugFallback(t *testing.T) {
	service := testService()

	created, err := service.Create(context.Background(), &Input{
		TitleEN: "Balayage y Más 2026",
	})

	require.NoError(t, err)
	assert.Equal(t, "balayage-y-mas-2026", created.Slug)
	assert.False(t, created.PublishedAt.IsZero())
}

/*
TestCreate_Validation verifies the English title is mandatory.
*/
func TestCreate_Validation(t *testing.T) {
	service := testService()

	_, err := service.Create(context.Background(), &Input{TitleES: "Solo español"})
	require.Error(t, err)
}
