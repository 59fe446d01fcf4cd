package tag

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhairstudio/jhair-server/internal/platform/dberr"
	"github.com/jhairstudio/jhair-server/pkg/locale"
)

// memoryRepository keeps tags and their blog links in maps so tests can
// check what deletion does to each.
type memoryRepository struct {
	tags   map[int]*Tag
	links  map[int][]int // tag id -> linked blog ids
	nextID int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		tags:   map[int]*Tag{},
		links:  map[int][]int{},
		nextID: 1,
	}
}

func (repo *memoryRepository) ListTags(ctx context.Context) ([]*Tag, error) {
	tags := make([]*Tag, 0, len(repo.tags))
	for _, t := range repo.tags {
		tags = append(tags, t)
	}
	return tags, nil
}

func (repo *memoryRepository) GetTagByID(ctx context.Context, id int) (*Tag, error) {
	t, ok := repo.tags[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return t, nil
}

func (repo *memoryRepository) CreateTag(ctx context.Context, t *Tag) (*Tag, error) {
	t.ID = repo.nextID
	repo.nextID++
	repo.tags[t.ID] = t
	return t, nil
}

func (repo *memoryRepository) UpdateTag(ctx context.Context, t *Tag) (*Tag, error) {
	if _, ok := repo.tags[t.ID]; !ok {
		return nil, dberr.ErrNotFound
	}
	repo.tags[t.ID] = t
	return t, nil
}

func (repo *memoryRepository) DeleteTag(ctx context.Context, id int) error {
	if _, ok := repo.tags[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repo.tags, id)
	delete(repo.links, id)
	return nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateTag_SlugFallback(t *testing.T) {
	service := newTestService(newMemoryRepository())

	created, err := service.CreateTag(context.Background(), &Input{
		NameEN: "Hair Care",
		NameES: "Cuidado del cabello",
		NameNL: "Haarverzorging",
	})
	require.NoError(t, err)
	assert.Equal(t, "hair-care", created.Slug)
}

func TestCreateTag_Validation(t *testing.T) {
	service := newTestService(newMemoryRepository())

	_, err := service.CreateTag(context.Background(), &Input{NameES: "Color"})
	assert.Error(t, err, "name_en is required")

	_, err = service.CreateTag(context.Background(), &Input{NameEN: "Color", Slug: "Not A Slug"})
	assert.Error(t, err)
}

func TestListLocalized(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	_, err := service.CreateTag(context.Background(), &Input{
		Slug: "color", NameEN: "Color", NameES: "Coloración",
	})
	require.NoError(t, err)

	es, err := service.ListLocalized(context.Background(), locale.ES)
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.Equal(t, "Coloración", es[0].Name)

	// Dutch has no translation; the name is empty, never English.
	nl, err := service.ListLocalized(context.Background(), locale.NL)
	require.NoError(t, err)
	assert.Equal(t, "", nl[0].Name)
}

/*
TestDeleteTag verifies deletion removes the tag and its blog links while
leaving other tags (and, by extension, blogs) untouched.
*/
func TestDeleteTag(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	kept, err := service.CreateTag(context.Background(), &Input{Slug: "care", NameEN: "Care"})
	require.NoError(t, err)
	doomed, err := service.CreateTag(context.Background(), &Input{Slug: "color", NameEN: "Color"})
	require.NoError(t, err)

	repo.links[kept.ID] = []int{1, 2}
	repo.links[doomed.ID] = []int{2, 3}

	require.NoError(t, service.DeleteTag(context.Background(), doomed.ID))

	_, err = service.GetTag(context.Background(), doomed.ID)
	assert.ErrorIs(t, err, dberr.ErrNotFound)

	assert.NotContains(t, repo.links, doomed.ID)
	assert.Equal(t, []int{1, 2}, repo.links[kept.ID], "other tags keep their links")

	err = service.DeleteTag(context.Background(), 999)
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}
