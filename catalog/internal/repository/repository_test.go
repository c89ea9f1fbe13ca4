package repository_test

import (
	"context"
	"testing"

	"github.com/Astemirdum/book-catalog/catalog/internal/errs"
	"github.com/Astemirdum/book-catalog/catalog/internal/model"
	"github.com/Astemirdum/book-catalog/catalog/internal/repository"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newBook(id int) model.Book {
	return model.Book{
		ID:            id,
		Title:         "The Hobbit",
		Author:        "J. R. R. Tolkien",
		Genre:         model.GenreFantasy,
		PublishedYear: 1937,
		Availability:  model.Available(),
	}
}

func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	repo, err := repository.NewRepository(zap.NewNop())
	require.NoError(t, err)
	return repo
}

func TestRepository_InsertOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)

	ids := []int{5, 1, 3, 2}
	for _, id := range ids {
		require.NoError(t, repo.Insert(ctx, newBook(id)))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, len(ids), list.Total)
	for i, b := range list.Items {
		require.Equal(t, ids[i], b.ID)
	}
}

func TestRepository_InsertDuplicate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.Insert(ctx, newBook(1)))
	before, err := repo.List(ctx)
	require.NoError(t, err)

	dup := newBook(1)
	dup.Title = "Other"
	err = repo.Insert(ctx, dup)
	require.True(t, errors.Is(err, errs.ErrDuplicateID))

	after, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestRepository_ListReturnsCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)
	require.NoError(t, repo.Insert(ctx, newBook(1)))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list.Items[0].Title = "mutated"

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "The Hobbit", got.Title)
}

func TestRepository_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)
	require.NoError(t, repo.Insert(ctx, newBook(1)))

	_, err := repo.Update(ctx, 2, func(*model.Book) error { return nil })
	require.True(t, errors.Is(err, errs.ErrNotFound))

	fnErr := errors.New("rejected")
	_, err = repo.Update(ctx, 1, func(b *model.Book) error {
		b.Title = "half-applied"
		return fnErr
	})
	require.True(t, errors.Is(err, fnErr))
	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, newBook(1), got)

	_, err = repo.Update(ctx, 1, func(b *model.Book) error {
		b.ID = 9
		return nil
	})
	require.True(t, errors.Is(err, errs.ErrValidation))

	updated, err := repo.Update(ctx, 1, func(b *model.Book) error {
		b.Title = "There and Back Again"
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "There and Back Again", updated.Title)
	got, err = repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, updated, got)
}

func TestRepository_SearchAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)
	for _, id := range []int{1, 2, 3} {
		require.NoError(t, repo.Insert(ctx, newBook(id)))
	}

	found, err := repo.Search(ctx, model.FieldAuthor, "J. R. R. Tolkien")
	require.NoError(t, err)
	require.Len(t, found, 3)

	require.NoError(t, repo.Delete(ctx, 2))
	require.Equal(t, 2, repo.Count(ctx))
	require.True(t, errors.Is(repo.Delete(ctx, 2), errs.ErrNotFound))
	require.Equal(t, 2, repo.Count(ctx))

	found, err = repo.Search(ctx, model.FieldID, 2)
	require.NoError(t, err)
	require.Empty(t, found)

	found, err = repo.Search(ctx, model.FieldID, 3)
	require.NoError(t, err)
	require.Equal(t, []model.Book{newBook(3)}, found)

	// a freed id can be reused
	require.NoError(t, repo.Insert(ctx, newBook(2)))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, list.Items[2].ID)
}

func TestRepository_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)

	const workers = 32
	var g errgroup.Group
	dupCount := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			err := repo.Insert(ctx, newBook(1))
			if errors.Is(err, errs.ErrDuplicateID) {
				dupCount <- struct{}{}
				return nil
			}
			return err
		})
	}
	require.NoError(t, g.Wait())
	close(dupCount)
	require.Len(t, dupCount, workers-1)
	require.Equal(t, 1, repo.Count(ctx))

	var checkedOut int64
	results := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			_, err := repo.Update(ctx, 1, func(b *model.Book) error {
				next, err := b.Availability.Checkout("2024-10-01")
				if err != nil {
					return err
				}
				b.Availability = next
				return nil
			})
			results <- err == nil
			if err != nil && !errors.Is(err, errs.ErrIllegalTransition) {
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	close(results)
	for ok := range results {
		if ok {
			checkedOut++
		}
	}
	require.EqualValues(t, 1, checkedOut)
}
