package book

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"booksdemo/internal/author"
	"booksdemo/internal/testutil"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestToDTO(t *testing.T) {
	t.Run("with author", func(t *testing.T) {
		b := Book{
			ID:          2,
			Title:       "Book A",
			Description: "About A",
			Author:      &author.Author{ID: 1, Name: "Author A", Birthdate: testutil.Date(1910, time.January, 18)},
		}

		out, err := json.Marshal(ToDTO(b))

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"id": 2,
			"title": "Book A",
			"description": "About A",
			"author": {"id": 1, "name": "Author A", "birthdate": "1910-01-18"}
		}`, string(out))
	})

	t.Run("without author", func(t *testing.T) {
		d := ToDTO(Book{ID: 2, Title: "Orphan"})
		assert.Nil(t, d.Author)
	})
}

func TestFromDTO(t *testing.T) {
	t.Run("author reference", func(t *testing.T) {
		var d DTO
		require.NoError(t, json.Unmarshal([]byte(`{"id":9,"title":"T","description":"D","author":{"id":1}}`), &d))

		b := FromDTO(d)

		assert.Equal(t, int64(9), b.ID)
		assert.Equal(t, "T", b.Title)
		assert.Equal(t, "D", b.Description)
		require.NotNil(t, b.Author)
		assert.Equal(t, int64(1), b.AuthorID())
	})

	t.Run("absent fields are zero", func(t *testing.T) {
		assert.Equal(t, Book{}, FromDTO(DTO{}))
	})

	t.Run("round trip", func(t *testing.T) {
		b := Book{
			ID:          3,
			Title:       "T",
			Description: "D",
			Author:      &author.Author{ID: 1, Name: "A", Birthdate: testutil.Date(1950, time.May, 5)},
		}
		assert.Equal(t, b, FromDTO(ToDTO(b)))
	})
}

func TestPatchFromDTO(t *testing.T) {
	p := PatchFromDTO(DTO{Description: ptr("new")})

	assert.Nil(t, p.Title)
	assert.Nil(t, p.Author)
	require.NotNil(t, p.Description)
	assert.Equal(t, "new", *p.Description)

	p = PatchFromDTO(DTO{Author: &author.DTO{ID: ptr(int64(4))}})
	require.NotNil(t, p.Author)
	assert.Equal(t, int64(4), p.Author.ID)
}

func TestDTO_Validate(t *testing.T) {
	ref := &author.DTO{ID: ptr(int64(1))}

	tests := []struct {
		name    string
		dto     DTO
		invalid []string
	}{
		{name: "valid", dto: DTO{Title: ptr("T"), Description: ptr("D"), Author: ref}},
		{name: "author fields other than id are ignored", dto: DTO{Title: ptr("T"), Description: ptr("D"), Author: &author.DTO{ID: ptr(int64(1)), Name: ptr("")}}},
		{name: "missing author", dto: DTO{Title: ptr("T"), Description: ptr("D")}, invalid: []string{"author"}},
		{name: "author without id", dto: DTO{Title: ptr("T"), Description: ptr("D"), Author: &author.DTO{Name: ptr("A")}}, invalid: []string{"author"}},
		{name: "title too long", dto: DTO{Title: ptr(strings.Repeat("t", MaxTitleLength+1)), Description: ptr("D"), Author: ref}, invalid: []string{"title"}},
		{name: "description too long", dto: DTO{Title: ptr("T"), Description: ptr(strings.Repeat("d", MaxDescriptionLength+1)), Author: ref}, invalid: []string{"description"}},
		{name: "limits", dto: DTO{Title: ptr(strings.Repeat("t", MaxTitleLength)), Description: ptr(strings.Repeat("d", MaxDescriptionLength)), Author: ref}},
		{name: "empty", dto: DTO{}, invalid: []string{"author", "description", "title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dto.Validate()
			if len(tt.invalid) == 0 {
				assert.NoError(t, err)
				return
			}
			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			assert.Len(t, errs, len(tt.invalid))
			for _, field := range tt.invalid {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestDTO_ValidatePatch(t *testing.T) {
	assert.NoError(t, DTO{}.ValidatePatch())
	assert.NoError(t, DTO{Title: ptr("T")}.ValidatePatch())
	assert.NoError(t, DTO{Author: &author.DTO{ID: ptr(int64(2))}}.ValidatePatch())

	var errs validation.Errors
	require.ErrorAs(t, DTO{Title: ptr(""), Author: &author.DTO{}}.ValidatePatch(), &errs)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "author")
}

func TestBook_SameIdentity(t *testing.T) {
	assert.True(t, Book{ID: 1, Title: "A"}.SameIdentity(Book{ID: 1, Title: "B"}))
	assert.False(t, Book{ID: 1}.SameIdentity(Book{ID: 2}))
	assert.False(t, Book{}.SameIdentity(Book{}))
}

func TestBook_Apply(t *testing.T) {
	b := Book{ID: 1, Title: "T", Description: "D", Author: &author.Author{ID: 1}}

	b.Apply(Patch{Author: &author.Author{ID: 2}})

	assert.Equal(t, "T", b.Title)
	assert.Equal(t, "D", b.Description)
	assert.Equal(t, int64(2), b.AuthorID())
}
