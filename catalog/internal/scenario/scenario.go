// Package scenario drives a catalog through the demo usage sequence.
package scenario

import (
	"context"

	"github.com/Astemirdum/book-catalog/catalog/internal/model"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var Books = []model.Book{
	{
		ID:            1,
		Title:         "ว้าวซ่ากับนายกล้วย",
		Author:        "กล้วยหอมสายฟ้า",
		Genre:         model.GenreFantasy,
		PublishedYear: 2010,
		Availability:  model.Available(),
	},
	{
		ID:            2,
		Title:         "สายไฟฟาด",
		Author:        "นายแว่นมหัศจรรย์",
		Genre:         model.GenreFiction,
		PublishedYear: 2011,
		Availability:  model.Available(),
	},
	{
		ID:            3,
		Title:         "อิอิอิอิ",
		Author:        "คิคิคิคิ",
		Genre:         model.GenreLearning,
		PublishedYear: 2016,
		Availability:  model.CheckedOut(""),
	},
}

const DueDate = "2024-10-01"

type Step struct {
	Name string
	Err  error
}

// Run executes every step even when earlier ones fail and returns the outcome of each.
func Run(ctx context.Context, svc CatalogService, log *zap.Logger) []Step {
	log = log.Named("scenario")
	var steps []Step
	record := func(name string, err error) {
		if err != nil {
			log.Warn(name, zap.Error(err))
		}
		steps = append(steps, Step{Name: name, Err: err})
	}
	list := func() {
		books, err := svc.List(ctx)
		if err == nil {
			if raw, mErr := json.MarshalToString(books.Items); mErr == nil {
				log.Debug("catalog", zap.String("books", raw))
			}
		}
		record("list", err)
	}

	for _, b := range Books {
		record("insert", svc.Insert(ctx, b))
	}
	list()

	newTitle := Books[1].Title
	_, err := svc.Update(ctx, 1, model.BookUpdate{Title: &newTitle})
	record("update", err)
	list()

	found, err := svc.SearchByField(ctx, string(model.FieldTitle), Books[0].Title)
	if err == nil {
		log.Info("books found by title", zap.Int("count", len(found)))
	}
	record("search", err)

	record("delete", svc.Delete(ctx, 4))
	list()

	_, err = svc.Checkout(ctx, 1, DueDate)
	record("checkout", err)
	list()

	_, err = svc.Return(ctx, 1)
	record("return", err)
	_, err = svc.Return(ctx, 2)
	record("return", err)
	list()

	return steps
}
