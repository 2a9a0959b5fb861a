package author

import (
	"errors"
	"time"
)

const MaxNameLength = 64

// ErrNotFound is returned when an author is not found.
var ErrNotFound = errors.New("author not found")

// Author is the persisted author record.
type Author struct {
	ID        int64
	Name      string
	Birthdate time.Time
}

// SameIdentity reports whether a and other denote the same stored author.
// Records that have not been stored yet are never the same as anything.
func (a Author) SameIdentity(other Author) bool {
	return a.ID != 0 && a.ID == other.ID
}

// Patch holds the fields of a partial update. Nil fields are left untouched.
type Patch struct {
	Name      *string
	Birthdate *time.Time
}

// Apply merges the non-nil fields of p into a.
func (a *Author) Apply(p Patch) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Birthdate != nil {
		a.Birthdate = *p.Birthdate
	}
}
