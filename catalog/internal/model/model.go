package model

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type ListBooks struct {
	Total int    `json:"total"`
	Items []Book `json:"items"`
}

type Book struct {
	ID            int    `json:"id"`
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Genre         Genre  `json:"genre" validate:"genre"`
	PublishedYear int    `json:"publishedYear"`
	Availability
}

type Genre int

const (
	GenreFiction Genre = iota
	GenreNonFiction
	GenreFantasy
	GenreLearning
)

var genreNames = [...]string{
	GenreFiction:    "Fiction",
	GenreNonFiction: "NonFiction",
	GenreFantasy:    "Fantasy",
	GenreLearning:   "Learning",
}

func (g Genre) Valid() bool {
	return g >= GenreFiction && g <= GenreLearning
}

func (g Genre) String() string {
	if !g.Valid() {
		return "Genre(" + strconv.Itoa(int(g)) + ")"
	}
	return genreNames[g]
}

func (g Genre) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, errors.Errorf("genre %d is out of domain", int(g))
	}
	return []byte(genreNames[g]), nil
}

func (g *Genre) UnmarshalText(text []byte) error {
	for i, name := range genreNames {
		if strings.EqualFold(name, string(text)) {
			*g = Genre(i)
			return nil
		}
	}
	return errors.Errorf("unknown genre %q", text)
}

type CheckoutRequest struct {
	ID      int
	DueDate string `validate:"required"`
}

// BookUpdate is a partial set of book fields. Nil fields are left untouched.
// Status and DueDate are applied independently of each other.
type BookUpdate struct {
	Title         *string
	Author        *string
	Genre         *Genre
	PublishedYear *int
	Status        *Status
	DueDate       *string
}

func (u BookUpdate) TouchesAvailability() bool {
	return u.Status != nil || u.DueDate != nil
}

func (u BookUpdate) Apply(b *Book) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Author != nil {
		b.Author = *u.Author
	}
	if u.Genre != nil {
		b.Genre = *u.Genre
	}
	if u.PublishedYear != nil {
		b.PublishedYear = *u.PublishedYear
	}
	if u.Status != nil {
		b.Status = *u.Status
	}
	if u.DueDate != nil {
		b.DueDate = *u.DueDate
	}
}
