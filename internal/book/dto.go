package book

import (
	"booksdemo/internal/author"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DTO is the wire shape of a book. The nested author is only referenced by
// id on input and fully populated on output.
type DTO struct {
	ID          *int64      `json:"id"`
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Author      *author.DTO `json:"author"`
}

var errAuthorID = validation.NewError("validation_author_id_required", "must reference an author id")

// hasAuthorID checks a nested author reference. Its other fields are ignored.
func hasAuthorID(value interface{}) error {
	a, _ := value.(*author.DTO)
	if a == nil {
		return nil
	}
	if a.ID == nil || *a.ID <= 0 {
		return errAuthorID
	}
	return nil
}

// Validate checks a DTO used to create or fully replace a book.
func (d DTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required, validation.RuneLength(1, MaxTitleLength)),
		validation.Field(&d.Description, validation.Required, validation.RuneLength(1, MaxDescriptionLength)),
		validation.Field(&d.Author, validation.Required, validation.By(hasAuthorID), validation.Skip),
	)
}

// ValidatePatch checks a DTO used for a partial update.
func (d DTO) ValidatePatch() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.NilOrNotEmpty, validation.RuneLength(1, MaxTitleLength)),
		validation.Field(&d.Description, validation.NilOrNotEmpty, validation.RuneLength(1, MaxDescriptionLength)),
		validation.Field(&d.Author, validation.By(hasAuthorID), validation.Skip),
	)
}

// ToDTO maps a book and its author. A book without an author maps to a nil
// author field.
func ToDTO(b Book) DTO {
	id := b.ID
	title := b.Title
	description := b.Description
	d := DTO{
		ID:          &id,
		Title:       &title,
		Description: &description,
	}
	if b.Author != nil {
		a := author.ToDTO(*b.Author)
		d.Author = &a
	}
	return d
}

// FromDTO copies d into a Book. Absent fields become zero values.
func FromDTO(d DTO) Book {
	var b Book
	if d.ID != nil {
		b.ID = *d.ID
	}
	if d.Title != nil {
		b.Title = *d.Title
	}
	if d.Description != nil {
		b.Description = *d.Description
	}
	if d.Author != nil {
		a := author.FromDTO(*d.Author)
		b.Author = &a
	}
	return b
}

// PatchFromDTO keeps only the fields present in d.
func PatchFromDTO(d DTO) Patch {
	p := Patch{
		Title:       d.Title,
		Description: d.Description,
	}
	if d.Author != nil {
		a := author.FromDTO(*d.Author)
		p.Author = &a
	}
	return p
}
