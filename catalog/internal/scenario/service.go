package scenario

import (
	"context"

	"github.com/Astemirdum/book-catalog/catalog/internal/model"
	"github.com/Astemirdum/book-catalog/catalog/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	Insert(ctx context.Context, book model.Book) error
	List(ctx context.Context) (model.ListBooks, error)
	SearchByField(ctx context.Context, field string, value any) ([]model.Book, error)
	Update(ctx context.Context, id int, upd model.BookUpdate) (model.Book, error)
	Delete(ctx context.Context, id int) error
	Checkout(ctx context.Context, id int, dueDate string) (model.Book, error)
	Return(ctx context.Context, id int) (model.Book, error)
}

var _ CatalogService = (*service.Service)(nil)
