package model

import (
	"reflect"

	"github.com/Astemirdum/book-catalog/catalog/internal/errs"
	"github.com/pkg/errors"
)

// Field names a searchable Book attribute.
type Field string

const (
	FieldID            Field = "id"
	FieldTitle         Field = "title"
	FieldAuthor        Field = "author"
	FieldGenre         Field = "genre"
	FieldPublishedYear Field = "publishedYear"
	FieldAvailability  Field = "availability"
)

func ParseField(name string) (Field, error) {
	switch f := Field(name); f {
	case FieldID, FieldTitle, FieldAuthor, FieldGenre, FieldPublishedYear, FieldAvailability:
		return f, nil
	}
	return "", errors.Wrapf(errs.ErrUnknownField, "%q", name)
}

// Value returns the attribute named by f. Values keep their Go types:
// int for id and publishedYear, string for title and author, Genre and Status.
func (b Book) Value(f Field) (any, bool) {
	switch f {
	case FieldID:
		return b.ID, true
	case FieldTitle:
		return b.Title, true
	case FieldAuthor:
		return b.Author, true
	case FieldGenre:
		return b.Genre, true
	case FieldPublishedYear:
		return b.PublishedYear, true
	case FieldAvailability:
		return b.Status, true
	}
	return nil, false
}

// Matches reports strict equality: both the dynamic type and the value must agree.
// Genre and availability also accept their plain forms: an int or a genre name
// for Genre, a string for Status.
func (b Book) Matches(f Field, value any) bool {
	v, ok := b.Value(f)
	value = plainToTyped(f, value)
	return ok && reflect.TypeOf(v) == reflect.TypeOf(value) && v == value
}

func plainToTyped(f Field, value any) any {
	switch f {
	case FieldGenre:
		switch v := value.(type) {
		case int:
			return Genre(v)
		case string:
			var g Genre
			if err := g.UnmarshalText([]byte(v)); err == nil {
				return g
			}
		}
	case FieldAvailability:
		if v, ok := value.(string); ok {
			return Status(v)
		}
	}
	return value
}
