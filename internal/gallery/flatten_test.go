package gallery

import (
	"reflect"
	"testing"

	"luckshop/internal/models"
)

func TestFlattenPreservesDocumentOrder(t *testing.T) {
	items := Flatten(testDoc(), nil)

	var got []string
	for _, item := range items {
		got = append(got, item.ID)
	}
	want := []string{"r-1", "r-2", "n-1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("flatten order = %v, want %v", got, want)
	}
}

func TestFlattenKeepsAllStatuses(t *testing.T) {
	items := Flatten(testDoc(), nil)
	if len(items) != 3 {
		t.Fatalf("no product may be dropped by the projection, got %d of 3", len(items))
	}
}

func TestFlattenHeatOverride(t *testing.T) {
	doc := models.Document{
		Groups: []models.Group{{
			Category: "c",
			Images:   []models.Product{{ID: "p", Name: "p", Heat: 2}},
		}},
	}

	// With a ledger entry the external value wins.
	items := Flatten(doc, map[string]int{"p": 7})
	if items[0].Heat != 7 {
		t.Errorf("ledger heat should override stored heat, got %d", items[0].Heat)
	}

	// Without a source the stored heat is used.
	items = Flatten(doc, nil)
	if items[0].Heat != 2 {
		t.Errorf("stored heat expected without a ledger, got %d", items[0].Heat)
	}

	// A ledger that lacks the product also falls back to stored heat.
	items = Flatten(doc, map[string]int{"other": 99})
	if items[0].Heat != 2 {
		t.Errorf("missing ledger entry should fall back to stored heat, got %d", items[0].Heat)
	}
}

func TestFlattenMergesShots(t *testing.T) {
	tests := []struct {
		name      string
		product   models.Product
		wantShots []string
		wantCover string
	}{
		{
			name:      "cover first then shots deduplicated",
			product:   models.Product{ID: "a", Name: "a", CoverURL: "/c.jpg", Shots: []string{"/c.jpg", "/s1.jpg", "/s2.jpg"}},
			wantShots: []string{"/c.jpg", "/s1.jpg", "/s2.jpg"},
			wantCover: "/c.jpg",
		},
		{
			name:      "legacy url used when no cover",
			product:   models.Product{ID: "a", Name: "a", URL: "/legacy.jpg", Shots: []string{"/s1.jpg"}},
			wantShots: []string{"/legacy.jpg", "/s1.jpg"},
			wantCover: "/legacy.jpg",
		},
		{
			name:      "blank and duplicate shots dropped",
			product:   models.Product{ID: "a", Name: "a", CoverURL: "/c.jpg", Shots: []string{"", "  ", "/s1.jpg", "/s1.jpg"}},
			wantShots: []string{"/c.jpg", "/s1.jpg"},
			wantCover: "/c.jpg",
		},
		{
			name:      "cover falls back to first shot",
			product:   models.Product{ID: "a", Name: "a", Shots: []string{"/s1.jpg", "/s2.jpg"}},
			wantShots: []string{"/s1.jpg", "/s2.jpg"},
			wantCover: "/s1.jpg",
		},
		{
			name:      "no images at all",
			product:   models.Product{ID: "a", Name: "a"},
			wantShots: []string{},
			wantCover: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := models.Document{Groups: []models.Group{{Category: "c", Images: []models.Product{tt.product}}}}
			item := Flatten(doc, nil)[0]

			if !reflect.DeepEqual(item.Shots, tt.wantShots) {
				t.Errorf("shots = %v, want %v", item.Shots, tt.wantShots)
			}
			if item.CoverURL != tt.wantCover {
				t.Errorf("cover = %q, want %q", item.CoverURL, tt.wantCover)
			}
		})
	}
}

func TestFlattenCopiesGroupMetadata(t *testing.T) {
	item := Flatten(testDoc(), nil)[2]

	if item.Category != "necklaces" {
		t.Errorf("category = %q, want necklaces", item.Category)
	}
	if item.GroupDescription != "handmade" {
		t.Errorf("group description = %q, want handmade", item.GroupDescription)
	}
	if item.GroupUpdatedAt != "2024/01/09" {
		t.Errorf("group date = %q, want 2024/01/09", item.GroupUpdatedAt)
	}
}

func TestFindItem(t *testing.T) {
	if _, ok := FindItem(testDoc(), "r-2"); !ok {
		t.Error("expected to find r-2")
	}
	if _, ok := FindItem(testDoc(), "ghost"); ok {
		t.Error("found a product that does not exist")
	}
}

func TestCategories(t *testing.T) {
	got := Categories(testDoc())
	want := []string{"rings", "necklaces"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("categories = %v, want %v", got, want)
	}
}
