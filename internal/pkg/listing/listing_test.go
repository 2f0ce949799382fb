//go:build unit

package listing_test

import (
	"math"
	"testing"
	"time"

	"grocery-admin/internal/pkg/listing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type partner struct {
	Name     string
	City     string
	Kind     string
	Balance  decimal.Decimal
	JoinedAt *time.Time
}

var base = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func at(days int) *time.Time {
	t := base.AddDate(0, 0, days)
	return &t
}

func ptr[T any](v T) *T { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var schema = listing.Schema[partner]{
	Search: map[string]func(partner) string{
		"name": func(p partner) string { return p.Name },
		"city": func(p partner) string { return p.City },
	},
	Attrs: map[string]func(partner) string{
		"kind": func(p partner) string { return p.Kind },
	},
	Numbers: map[string]func(partner) decimal.Decimal{
		"balance": func(p partner) decimal.Decimal { return p.Balance },
	},
	Times: map[string]func(partner) *time.Time{
		"joined_at": func(p partner) *time.Time { return p.JoinedAt },
	},
}

func fixtures() []partner {
	return []partner{
		{Name: "Ramesh Kumar", City: "Pune", Kind: "delivery_boy", Balance: dec("1200"), JoinedAt: at(0)},
		{Name: "Fresh Mart", City: "Mumbai", Kind: "vendor", Balance: dec("5400.5"), JoinedAt: at(3)},
		{Name: "Suresh Patil", City: "Pune", Kind: "delivery_boy", Balance: dec("300"), JoinedAt: at(1)},
		{Name: "Green Basket", City: "Nashik", Kind: "vendor", Balance: dec("1200"), JoinedAt: nil},
		{Name: "Anita Rao", City: "Mumbai", Kind: "delivery_boy", Balance: dec("0"), JoinedAt: at(-2)},
	}
}

func names(items []partner) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Name)
	}
	return out
}

func TestApply(t *testing.T) {
	t.Run("search matches a single record case-insensitively", func(t *testing.T) {
		res := listing.Apply(fixtures(), schema, listing.Params{Search: "ramesh"})

		assert.Equal(t, 1, res.TotalCount)
		assert.Equal(t, []string{"Ramesh Kumar"}, names(res.Items))
	})

	t.Run("search ORs across fields", func(t *testing.T) {
		res := listing.Apply(fixtures(), schema, listing.Params{Search: "PUNE"})

		assert.Equal(t, 2, res.TotalCount)
		assert.Equal(t, []string{"Ramesh Kumar", "Suresh Patil"}, names(res.Items))
	})

	t.Run("field filter and all sentinel", func(t *testing.T) {
		vendors := listing.Apply(fixtures(), schema, listing.Params{Filters: map[string]string{"kind": "vendor"}})
		assert.Equal(t, []string{"Fresh Mart", "Green Basket"}, names(vendors.Items))

		all := listing.Apply(fixtures(), schema, listing.Params{Filters: map[string]string{"kind": listing.AllSentinel}})
		assert.Equal(t, 5, all.TotalCount)

		empty := listing.Apply(fixtures(), schema, listing.Params{Filters: map[string]string{"kind": ""}})
		assert.Equal(t, 5, empty.TotalCount)
	})

	t.Run("filters compose with search", func(t *testing.T) {
		res := listing.Apply(fixtures(), schema, listing.Params{
			Search:  "mumbai",
			Filters: map[string]string{"kind": "delivery_boy"},
		})

		assert.Equal(t, []string{"Anita Rao"}, names(res.Items))
	})

	t.Run("number range is inclusive", func(t *testing.T) {
		res := listing.Apply(fixtures(), schema, listing.Params{
			NumberRanges: map[string]listing.NumberRange{"balance": {Min: ptr(dec("300")), Max: ptr(dec("1200"))}},
		})

		assert.Equal(t, []string{"Ramesh Kumar", "Suresh Patil", "Green Basket"}, names(res.Items))
	})

	t.Run("time range is inclusive and excludes unset times", func(t *testing.T) {
		res := listing.Apply(fixtures(), schema, listing.Params{
			TimeRanges: map[string]listing.TimeRange{"joined_at": {From: at(0), To: at(1)}},
		})

		assert.Equal(t, []string{"Ramesh Kumar", "Suresh Patil"}, names(res.Items))
	})

	t.Run("numeric sort is stable", func(t *testing.T) {
		res := listing.Apply(fixtures(), schema, listing.Params{SortKey: "balance", SortDir: listing.SortAsc})

		want := []string{"Anita Rao", "Suresh Patil", "Ramesh Kumar", "Green Basket", "Fresh Mart"}
		if diff := cmp.Diff(want, names(res.Items)); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("descending sort keeps ties in input order", func(t *testing.T) {
		res := listing.Apply(fixtures(), schema, listing.Params{SortKey: "balance", SortDir: listing.SortDesc})

		want := []string{"Fresh Mart", "Ramesh Kumar", "Green Basket", "Suresh Patil", "Anita Rao"}
		if diff := cmp.Diff(want, names(res.Items)); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("time sort puts unset last", func(t *testing.T) {
		res := listing.Apply(fixtures(), schema, listing.Params{SortKey: "joined_at"})

		want := []string{"Anita Rao", "Ramesh Kumar", "Suresh Patil", "Fresh Mart", "Green Basket"}
		assert.Equal(t, want, names(res.Items))
	})

	t.Run("string sort ignores case", func(t *testing.T) {
		records := []partner{{Name: "banana"}, {Name: "Apple"}, {Name: "cherry"}}
		res := listing.Apply(records, schema, listing.Params{SortKey: "name"})

		assert.Equal(t, []string{"Apple", "banana", "cherry"}, names(res.Items))
	})

	t.Run("unknown sort key keeps input order", func(t *testing.T) {
		res := listing.Apply(fixtures(), schema, listing.Params{SortKey: "nope", SortDir: listing.SortDesc})

		assert.Equal(t, names(fixtures()), names(res.Items))
	})

	t.Run("pagination", func(t *testing.T) {
		page2 := listing.Apply(fixtures(), schema, listing.Params{Page: 2, PageSize: 2})
		assert.Equal(t, 5, page2.TotalCount)
		assert.Equal(t, []string{"Suresh Patil", "Green Basket"}, names(page2.Items))

		last := listing.Apply(fixtures(), schema, listing.Params{Page: 3, PageSize: 2})
		assert.Equal(t, []string{"Anita Rao"}, names(last.Items))
	})

	t.Run("page beyond the last is empty with unchanged total", func(t *testing.T) {
		res := listing.Apply(fixtures(), schema, listing.Params{Page: 9, PageSize: 2})

		require.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
		assert.Equal(t, 5, res.TotalCount)
	})

	t.Run("huge page number is empty instead of overflowing", func(t *testing.T) {
		for _, page := range []int{461168601842738792, math.MaxInt} {
			res := listing.Apply(fixtures(), schema, listing.Params{Page: page, PageSize: 20})

			require.NotNil(t, res.Items)
			assert.Empty(t, res.Items)
			assert.Equal(t, 5, res.TotalCount)
		}
	})

	t.Run("number range compares decimals exactly", func(t *testing.T) {
		records := []partner{
			{Name: "exact", Balance: dec("9007199254740993.01")},
			{Name: "below", Balance: dec("9007199254740993.00")},
		}
		res := listing.Apply(records, schema, listing.Params{
			NumberRanges: map[string]listing.NumberRange{"balance": {Min: ptr(dec("9007199254740993.01"))}},
			SortKey:      "balance",
		})

		assert.Equal(t, []string{"exact"}, names(res.Items))
	})

	t.Run("non-positive page size returns everything", func(t *testing.T) {
		res := listing.Apply(fixtures(), schema, listing.Params{Page: 4})

		assert.Len(t, res.Items, 5)
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		records := fixtures()
		listing.Apply(records, schema, listing.Params{SortKey: "name"})

		assert.Equal(t, names(fixtures()), names(records))
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, listing.TotalPages(5, 2))
	assert.Equal(t, 1, listing.TotalPages(2, 2))
	assert.Equal(t, 0, listing.TotalPages(0, 10))
	assert.Equal(t, 1, listing.TotalPages(7, 0))
}

func TestParseSortDirection(t *testing.T) {
	assert.Equal(t, listing.SortDesc, listing.ParseSortDirection("DESC"))
	assert.Equal(t, listing.SortAsc, listing.ParseSortDirection("asc"))
	assert.Equal(t, listing.SortAsc, listing.ParseSortDirection(""))
}
