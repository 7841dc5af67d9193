package gallery

import (
	"reflect"
	"testing"

	"luckshop/internal/models"
)

func queryFixture() []models.Item {
	return []models.Item{
		{ID: "1", Name: "bracelet", Category: "arms", UploadedAt: "2024/01/03", Heat: 5, Status: models.ProductStatusOn},
		{ID: "2", Name: "anklet", Category: "legs", UploadedAt: "2024/01/01", Heat: 9, Status: models.ProductStatusOn},
		{ID: "3", Name: "cuff", Category: "arms", UploadedAt: "2024/01/02", Heat: 1, Status: models.ProductStatusOff},
		{ID: "4", Name: "band", Category: "arms", UploadedAt: "2024/01/03", Heat: 5, Status: models.ProductStatusSoldOut},
	}
}

func ids(items []models.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestQueryFilters(t *testing.T) {
	tests := []struct {
		name string
		opts QueryOptions
		want []string
	}{
		{
			name: "no filters time desc",
			opts: QueryOptions{Sort: SortTimeDesc},
			want: []string{"4", "1", "3", "2"}, // 01/03 tie broken by name: band < bracelet
		},
		{
			name: "category filter",
			opts: QueryOptions{Category: "arms", Sort: SortNameAsc},
			want: []string{"4", "1", "3"},
		},
		{
			name: "all-categories sentinel",
			opts: QueryOptions{Category: "", Sort: SortNameAsc},
			want: []string{"2", "4", "1", "3"},
		},
		{
			name: "search is case-insensitive substring on name",
			opts: QueryOptions{Search: "AN", Sort: SortNameAsc},
			want: []string{"2", "4"}, // anklet, band
		},
		{
			name: "search with surrounding whitespace",
			opts: QueryOptions{Search: "  cuff ", Sort: SortNameAsc},
			want: []string{"3"},
		},
		{
			name: "public listing excludes off",
			opts: QueryOptions{ExcludeStatus: []models.ProductStatus{models.ProductStatusOff}, Sort: SortNameAsc},
			want: []string{"2", "4", "1"},
		},
		{
			name: "admin listing excludes nothing",
			opts: QueryOptions{Sort: SortNameAsc},
			want: []string{"2", "4", "1", "3"},
		},
		{
			name: "heat desc with name tie-break",
			opts: QueryOptions{Sort: SortHeat},
			want: []string{"2", "4", "1", "3"}, // 9, then 5/5 band<bracelet, then 1
		},
		{
			name: "time asc",
			opts: QueryOptions{Sort: SortTimeAsc},
			want: []string{"2", "3", "4", "1"},
		},
		{
			name: "name desc",
			opts: QueryOptions{Sort: SortNameDesc},
			want: []string{"3", "1", "4", "2"},
		},
		{
			name: "unknown mode falls back to default",
			opts: QueryOptions{Sort: SortMode("bogus")},
			want: []string{"4", "1", "3", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Query(queryFixture(), tt.opts))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("query = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQueryTimeTieBreaksByName(t *testing.T) {
	items := []models.Item{
		{ID: "b", Name: "b", UploadedAt: "2024/01/01"},
		{ID: "a", Name: "a", UploadedAt: "2024/01/01"},
	}
	got := ids(Query(items, QueryOptions{Sort: SortTimeDesc}))
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("equal dates should tie-break by name ascending, got %v", got)
	}
}

func TestQueryUnparseableDatesSortAsMinimum(t *testing.T) {
	items := []models.Item{
		{ID: "dated", Name: "dated", UploadedAt: "2020/01/01"},
		{ID: "undated", Name: "undated", UploadedAt: "sometime"},
	}
	got := ids(Query(items, QueryOptions{Sort: SortTimeDesc}))
	if got[len(got)-1] != "undated" {
		t.Errorf("unparseable date should sort last under time-desc, got %v", got)
	}
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	items := queryFixture()
	original := make([]models.Item, len(items))
	copy(original, items)

	Query(items, QueryOptions{Sort: SortNameDesc, Category: "arms"})

	if !reflect.DeepEqual(items, original) {
		t.Error("Query mutated its input slice")
	}
}

func TestParseSortMode(t *testing.T) {
	for _, valid := range []string{"time-desc", "time-asc", "name-asc", "name-desc", "heat"} {
		if _, ok := ParseSortMode(valid); !ok {
			t.Errorf("ParseSortMode(%q) should be valid", valid)
		}
	}

	mode, ok := ParseSortMode("newest")
	if ok {
		t.Error("ParseSortMode should reject unknown modes")
	}
	if mode != DefaultSortMode {
		t.Errorf("rejected mode should report the default, got %q", mode)
	}
}
