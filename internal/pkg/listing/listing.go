// Package listing applies search, field filters, range filters, a stable sort and
// 1-indexed pagination to an in-memory record set in a single pass.
package listing

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AllSentinel disables a field filter, the same as leaving it empty.
const AllSentinel = "all"

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// Schema names the fields of T that listing can see. Search fields are matched by
// substring, Attrs by equality, Numbers and Times by range. Any named field is
// also a valid sort key.
type Schema[T any] struct {
	Search  map[string]func(T) string
	Attrs   map[string]func(T) string
	Numbers map[string]func(T) decimal.Decimal
	Times   map[string]func(T) *time.Time
}

type NumberRange struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

type TimeRange struct {
	From *time.Time
	To   *time.Time
}

type Params struct {
	Search       string
	Filters      map[string]string
	NumberRanges map[string]NumberRange
	TimeRanges   map[string]TimeRange
	SortKey      string
	SortDir      SortDirection
	Page         int
	PageSize     int
}

type Result[T any] struct {
	Items      []T
	TotalCount int
}

func Apply[T any](records []T, schema Schema[T], params Params) Result[T] {
	matched := make([]T, 0, len(records))
	needle := strings.ToLower(strings.TrimSpace(params.Search))
	for _, r := range records {
		if needle != "" && !schema.matchesSearch(r, needle) {
			continue
		}
		if !schema.matchesFilters(r, params.Filters) {
			continue
		}
		if !schema.matchesNumberRanges(r, params.NumberRanges) {
			continue
		}
		if !schema.matchesTimeRanges(r, params.TimeRanges) {
			continue
		}
		matched = append(matched, r)
	}

	if compare := schema.comparator(params.SortKey); compare != nil {
		desc := params.SortDir == SortDesc
		slices.SortStableFunc(matched, func(a, b T) int {
			if desc {
				return compare(b, a)
			}
			return compare(a, b)
		})
	}

	return Result[T]{
		Items:      paginate(matched, params.Page, params.PageSize),
		TotalCount: len(matched),
	}
}

func (s Schema[T]) matchesSearch(r T, needle string) bool {
	for _, get := range s.Search {
		if strings.Contains(strings.ToLower(get(r)), needle) {
			return true
		}
	}
	return false
}

func (s Schema[T]) matchesFilters(r T, filters map[string]string) bool {
	for key, want := range filters {
		if want == "" || strings.EqualFold(want, AllSentinel) {
			continue
		}
		get, ok := s.Attrs[key]
		if !ok {
			continue
		}
		if get(r) != want {
			return false
		}
	}
	return true
}

func (s Schema[T]) matchesNumberRanges(r T, ranges map[string]NumberRange) bool {
	for key, rng := range ranges {
		get, ok := s.Numbers[key]
		if !ok {
			continue
		}
		v := get(r)
		if rng.Min != nil && v.LessThan(*rng.Min) {
			return false
		}
		if rng.Max != nil && v.GreaterThan(*rng.Max) {
			return false
		}
	}
	return true
}

func (s Schema[T]) matchesTimeRanges(r T, ranges map[string]TimeRange) bool {
	for key, rng := range ranges {
		get, ok := s.Times[key]
		if !ok {
			continue
		}
		if rng.From == nil && rng.To == nil {
			continue
		}
		v := get(r)
		if v == nil {
			return false
		}
		if rng.From != nil && v.Before(*rng.From) {
			return false
		}
		if rng.To != nil && v.After(*rng.To) {
			return false
		}
	}
	return true
}

// Unknown keys yield nil so the input order is kept.
func (s Schema[T]) comparator(key string) func(a, b T) int {
	if key == "" {
		return nil
	}
	if get, ok := s.Numbers[key]; ok {
		return func(a, b T) int { return get(a).Cmp(get(b)) }
	}
	if get, ok := s.Times[key]; ok {
		return func(a, b T) int { return compareTimes(get(a), get(b)) }
	}
	if get, ok := s.Attrs[key]; ok {
		return compareStrings(get)
	}
	if get, ok := s.Search[key]; ok {
		return compareStrings(get)
	}
	return nil
}

func compareStrings[T any](get func(T) string) func(a, b T) int {
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}
}

// nil times sort after every set time.
func compareTimes(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}

func paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	// compare page counts first; (page-1)*pageSize can overflow int
	if page-1 >= TotalPages(len(items), pageSize) {
		return []T{}
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))
	return items[start:end]
}

// TotalPages reports how many pages of pageSize the total spans.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		if total == 0 {
			return 0
		}
		return 1
	}
	return (total + pageSize - 1) / pageSize
}
