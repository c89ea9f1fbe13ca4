package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/Astemirdum/book-catalog/catalog/internal/errs"
	"github.com/Astemirdum/book-catalog/catalog/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	Insert(ctx context.Context, book model.Book) error
	List(ctx context.Context) (model.ListBooks, error)
	Get(ctx context.Context, id int) (model.Book, error)
	Search(ctx context.Context, field model.Field, value any) ([]model.Book, error)
	Update(ctx context.Context, id int, fn func(book *model.Book) error) (model.Book, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) int
}

// repository keeps books in insertion order. Every method holds mu for its
// whole duration, so locate-then-mutate sequences are atomic.
type repository struct {
	mu    sync.RWMutex
	books []model.Book
	log   *zap.Logger
}

var _ Repository = (*repository)(nil)

func NewRepository(log *zap.Logger) (*repository, error) {
	return &repository{
		books: make([]model.Book, 0),
		log:   log.Named("repo"),
	}, nil
}

func (r *repository) indexOf(id int) int {
	return slices.IndexFunc(r.books, func(b model.Book) bool { return b.ID == id })
}

func (r *repository) Insert(_ context.Context, book model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(book.ID) != -1 {
		return errors.Wrapf(errs.ErrDuplicateID, "book %d", book.ID)
	}
	r.books = append(r.books, book)
	r.log.Debug("Insert", zap.Int("id", book.ID), zap.Int("size", len(r.books)))
	return nil
}

func (r *repository) List(_ context.Context) (model.ListBooks, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return model.ListBooks{
		Total: len(r.books),
		Items: slices.Clone(r.books),
	}, nil
}

func (r *repository) Get(_ context.Context, id int) (model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i == -1 {
		return model.Book{}, errors.Wrapf(errs.ErrNotFound, "book %d", id)
	}
	return r.books[i], nil
}

func (r *repository) Search(_ context.Context, field model.Field, value any) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make([]model.Book, 0)
	for _, b := range r.books {
		if b.Matches(field, value) {
			found = append(found, b)
		}
	}
	r.log.Debug("Search", zap.String("field", string(field)), zap.Any("value", value), zap.Int("found", len(found)))
	return found, nil
}

// Update applies fn to a copy of the book and stores the copy only if fn succeeds.
func (r *repository) Update(_ context.Context, id int, fn func(book *model.Book) error) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return model.Book{}, errors.Wrapf(errs.ErrNotFound, "book %d", id)
	}
	book := r.books[i]
	if err := fn(&book); err != nil {
		return r.books[i], err
	}
	if book.ID != id {
		return r.books[i], errors.Wrapf(errs.ErrValidation, "book %d: id is immutable", id)
	}
	r.books[i] = book
	return book, nil
}

func (r *repository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return errors.Wrapf(errs.ErrNotFound, "book %d", id)
	}
	r.books = slices.Delete(r.books, i, i+1)
	r.log.Debug("Delete", zap.Int("id", id), zap.Int("size", len(r.books)))
	return nil
}

func (r *repository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books)
}
