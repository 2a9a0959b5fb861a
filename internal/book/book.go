package book

import (
	"errors"

	"booksdemo/internal/author"
)

const (
	MaxTitleLength       = 128
	MaxDescriptionLength = 512
)

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")
	// ErrAuthorNotFound is returned when a book refers to an author that does not exist.
	ErrAuthorNotFound = errors.New("author of book not found")
)

// Book is the persisted book record. Author is loaded together with the book.
type Book struct {
	ID          int64
	Title       string
	Description string
	Author      *author.Author
}

// SameIdentity reports whether b and other denote the same stored book.
func (b Book) SameIdentity(other Book) bool {
	return b.ID != 0 && b.ID == other.ID
}

// AuthorID returns the id of the referenced author, or 0 if there is none.
func (b Book) AuthorID() int64 {
	if b.Author == nil {
		return 0
	}
	return b.Author.ID
}

// Patch holds the fields of a partial update. Nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Author      *author.Author
}

// Apply merges the non-nil fields of p into b.
func (b *Book) Apply(p Patch) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Author != nil {
		a := *p.Author
		b.Author = &a
	}
}
