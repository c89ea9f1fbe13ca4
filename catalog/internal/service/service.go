package service

import (
	"context"

	"github.com/Astemirdum/book-catalog/catalog/internal/errs"
	"github.com/Astemirdum/book-catalog/catalog/internal/model"
	"github.com/Astemirdum/book-catalog/catalog/internal/repository"
	"github.com/Astemirdum/book-catalog/pkg/validate"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Service struct {
	log          *zap.Logger
	repo         repository.Repository
	validator    *validate.CustomValidator
	catalogUid   string
	strictUpdate bool
}

type Option func(s *Service)

// WithStrictUpdate makes Update reject changes to availability or due date.
func WithStrictUpdate(strict bool) Option {
	return func(s *Service) {
		s.strictUpdate = strict
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	uid := uuid.NewString()
	s := &Service{
		log:        log.Named("service").With(zap.String("catalogUid", uid)),
		repo:       repo,
		validator:  newValidator(),
		catalogUid: uid,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newValidator() *validate.CustomValidator {
	v := validate.NewCustomValidator()
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		g, ok := fl.Field().Interface().(model.Genre)
		return ok && g.Valid()
	})
	_ = v.RegisterValidation("status", func(fl validator.FieldLevel) bool {
		st, ok := fl.Field().Interface().(model.Status)
		return ok && st.Valid()
	})
	return v
}

func (s *Service) CatalogUid() string {
	return s.catalogUid
}

func (s *Service) Insert(ctx context.Context, book model.Book) error {
	if err := s.validator.Validate(book); err != nil {
		s.log.Warn("Insert: invalid book", zap.Int("id", book.ID), zap.Error(err))
		return errors.Wrap(errs.ErrValidation, err.Error())
	}
	if !book.Consistent() {
		s.log.Warn("Insert: available book with due date", zap.Int("id", book.ID))
		return errors.Wrapf(errs.ErrValidation, "book %d: available book cannot have a due date", book.ID)
	}
	if err := s.repo.Insert(ctx, book); err != nil {
		s.log.Warn("Insert: book was not added", zap.Int("id", book.ID), zap.Error(err))
		return err
	}
	s.log.Info("book has been added to catalog",
		zap.Int("id", book.ID),
		zap.String("title", book.Title),
		zap.String("author", book.Author))
	return nil
}

// List returns every book in insertion order. An empty catalog yields an
// empty list together with errs.ErrEmptyCatalog.
func (s *Service) List(ctx context.Context) (model.ListBooks, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return model.ListBooks{}, err
	}
	if books.Total == 0 {
		s.log.Info("no books in catalog")
		return books, errs.ErrEmptyCatalog
	}
	s.log.Info("listing books", zap.Int("total", books.Total))
	for _, b := range books.Items {
		s.log.Info("book",
			zap.Int("id", b.ID),
			zap.String("title", b.Title),
			zap.String("author", b.Author))
	}
	return books, nil
}

// SearchByField returns books whose field strictly equals value. No match is
// not an error.
func (s *Service) SearchByField(ctx context.Context, field string, value any) ([]model.Book, error) {
	f, err := model.ParseField(field)
	if err != nil {
		s.log.Warn("SearchByField", zap.String("field", field), zap.Error(err))
		return nil, err
	}
	books, err := s.repo.Search(ctx, f, value)
	if err != nil {
		return nil, err
	}
	s.log.Info("books found", zap.String("field", field), zap.Any("value", value), zap.Int("count", len(books)))
	return books, nil
}

func (s *Service) Get(ctx context.Context, id int) (model.Book, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Count(ctx context.Context) int {
	return s.repo.Count(ctx)
}

// Update merges the supplied fields into the book. Unless strict mode is on,
// status and due date are written as given, without the checkout/return rules.
func (s *Service) Update(ctx context.Context, id int, upd model.BookUpdate) (model.Book, error) {
	book, err := s.repo.Update(ctx, id, func(b *model.Book) error {
		if s.strictUpdate && upd.TouchesAvailability() {
			return errors.Wrapf(errs.ErrAvailabilityUpdate, "book %d", id)
		}
		if upd.Genre != nil && !upd.Genre.Valid() {
			return errors.Wrapf(errs.ErrValidation, "genre %d is out of domain", int(*upd.Genre))
		}
		if upd.Status != nil && !upd.Status.Valid() {
			return errors.Wrapf(errs.ErrValidation, "availability %q is out of domain", *upd.Status)
		}
		upd.Apply(b)
		return nil
	})
	if err != nil {
		s.log.Warn("Update: book not updated", zap.Int("id", id), zap.Error(err))
		return model.Book{}, err
	}
	s.log.Info("book has been updated", zap.Int("id", id))
	return book, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Warn("Delete: book not deleted", zap.Int("id", id), zap.Error(err))
		return err
	}
	s.log.Info("book has been deleted", zap.Int("id", id))
	return nil
}

// Checkout moves an available book to checked out with the given due date.
func (s *Service) Checkout(ctx context.Context, id int, dueDate string) (model.Book, error) {
	if err := s.validator.Validate(model.CheckoutRequest{ID: id, DueDate: dueDate}); err != nil {
		s.log.Warn("Checkout: invalid request", zap.Int("id", id), zap.Error(err))
		return model.Book{}, errors.Wrap(errs.ErrValidation, err.Error())
	}
	book, err := s.repo.Update(ctx, id, func(b *model.Book) error {
		next, err := b.Availability.Checkout(dueDate)
		if err != nil {
			return errors.Wrapf(err, "book %d", id)
		}
		b.Availability = next
		return nil
	})
	if err != nil {
		s.log.Warn("book is not available for checkout", zap.Int("id", id), zap.Error(err))
		return model.Book{}, err
	}
	s.log.Info("book has been checked out", zap.Int("id", id), zap.String("dueDate", dueDate))
	return book, nil
}

// Return moves a checked out book back to available.
func (s *Service) Return(ctx context.Context, id int) (model.Book, error) {
	book, err := s.repo.Update(ctx, id, func(b *model.Book) error {
		next, err := b.Availability.Return()
		if err != nil {
			return errors.Wrapf(err, "book %d", id)
		}
		b.Availability = next
		return nil
	})
	if err != nil {
		s.log.Warn("book is either not checked out or not found", zap.Int("id", id), zap.Error(err))
		return model.Book{}, err
	}
	s.log.Info("book has been returned and is now available", zap.Int("id", id))
	return book, nil
}
