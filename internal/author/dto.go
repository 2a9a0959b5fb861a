package author

import (
	"time"

	"cloud.google.com/go/civil"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DTO is the wire shape of an author. Every field is optional so that a
// partial update can tell an absent field from an empty one.
type DTO struct {
	ID        *int64      `json:"id"`
	Name      *string     `json:"name"`
	Birthdate *civil.Date `json:"birthdate"`
}

// Validate checks a DTO used to create or fully replace an author.
func (d DTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&d.Birthdate, validation.Required),
	)
}

// ValidatePatch checks a DTO used for a partial update.
func (d DTO) ValidatePatch() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.NilOrNotEmpty, validation.RuneLength(1, MaxNameLength)),
	)
}

func ToDTO(a Author) DTO {
	id := a.ID
	name := a.Name
	birthdate := civil.DateOf(a.Birthdate)
	return DTO{
		ID:        &id,
		Name:      &name,
		Birthdate: &birthdate,
	}
}

// FromDTO copies d into an Author. Absent fields become zero values.
func FromDTO(d DTO) Author {
	var a Author
	if d.ID != nil {
		a.ID = *d.ID
	}
	if d.Name != nil {
		a.Name = *d.Name
	}
	if d.Birthdate != nil {
		a.Birthdate = d.Birthdate.In(time.UTC)
	}
	return a
}

// PatchFromDTO keeps only the fields present in d.
func PatchFromDTO(d DTO) Patch {
	var p Patch
	p.Name = d.Name
	if d.Birthdate != nil {
		t := d.Birthdate.In(time.UTC)
		p.Birthdate = &t
	}
	return p
}
