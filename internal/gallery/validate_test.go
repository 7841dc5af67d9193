package gallery

import (
	"errors"
	"testing"

	"luckshop/internal/models"
)

func TestValidate(t *testing.T) {
	if err := Validate(testDoc()); err != nil {
		t.Errorf("well-formed document should pass, got %v", err)
	}
	if err := Validate(models.Document{}); err != nil {
		t.Errorf("empty document should pass, got %v", err)
	}

	dupCategory := models.Document{Groups: []models.Group{
		{Category: "rings"},
		{Category: "rings"},
	}}
	if err := Validate(dupCategory); !errors.Is(err, ErrDuplicateCategory) {
		t.Errorf("duplicate category: got %v, want ErrDuplicateCategory", err)
	}

	dupID := models.Document{Groups: []models.Group{
		{Category: "a", Images: []models.Product{{ID: "p-1", Name: "one"}}},
		{Category: "b", Images: []models.Product{{ID: "p-1", Name: "other"}}},
	}}
	if err := Validate(dupID); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate id across groups: got %v, want ErrDuplicateID", err)
	}
}
