// Package paging carries page requests from query strings down to SQL and
// page envelopes back up to JSON.
package paging

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

const (
	DefaultSize = 20
	MaxSize     = 100
	// MaxPage keeps Offset within int32 for any allowed size.
	MaxPage = math.MaxInt32 / MaxSize
)

// ErrInvalidSort is returned when a sort parameter names an unknown property.
var ErrInvalidSort = errors.New("invalid sort property")

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

type Order struct {
	Property  string
	Direction Direction
}

// Pageable is a zero-based page request.
type Pageable struct {
	Page int
	Size int
	Sort []Order
}

// Of returns an unsorted page request, clamping out-of-range values to defaults.
func Of(page, size int) Pageable {
	if page < 0 {
		page = 0
	}
	if page > MaxPage {
		page = MaxPage
	}
	if size <= 0 || size > MaxSize {
		size = DefaultSize
	}
	return Pageable{Page: page, Size: size}
}

func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// FromQuery reads page, size and sort from the query string. Sort values take
// the form "prop", "prop,desc" or "prop1,prop2,asc" and may be repeated.
// Properties must be listed in sortable.
func FromQuery(query url.Values, sortable ...string) (Pageable, error) {
	page, _ := strconv.Atoi(query.Get("page"))
	size, _ := strconv.Atoi(query.Get("size"))
	p := Of(page, size)

	for _, raw := range query["sort"] {
		parts := strings.Split(raw, ",")
		dir := Asc
		switch strings.ToUpper(strings.TrimSpace(parts[len(parts)-1])) {
		case string(Asc):
			parts = parts[:len(parts)-1]
		case string(Desc):
			dir = Desc
			parts = parts[:len(parts)-1]
		}
		for _, prop := range parts {
			prop = strings.TrimSpace(prop)
			if prop == "" {
				continue
			}
			if !slices.Contains(sortable, prop) {
				return Pageable{}, fmt.Errorf("%w: %s", ErrInvalidSort, prop)
			}
			p.Sort = append(p.Sort, Order{Property: prop, Direction: dir})
		}
	}
	return p, nil
}

// OrderBy renders an ORDER BY clause. columns maps sort properties to SQL
// expressions and must contain "id", which is appended as a tie-breaker so
// pages stay stable.
func (p Pageable) OrderBy(columns map[string]string) string {
	terms := make([]string, 0, len(p.Sort)+1)
	sortedByID := false
	for _, o := range p.Sort {
		col, ok := columns[o.Property]
		if !ok {
			continue
		}
		if o.Property == "id" {
			sortedByID = true
		}
		terms = append(terms, col+" "+string(o.Direction))
	}
	if !sortedByID {
		terms = append(terms, columns["id"]+" "+string(Asc))
	}
	return "ORDER BY " + strings.Join(terms, ", ")
}
