package request

import (
	"encoding/json"
	"errors"
	"testing"

	"interiorquote/internal/domain/entities"
)

func TestUpdateItemsRequest_DecodeItems(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		var r UpdateItemsRequest
		if err := json.Unmarshal([]byte(`{"items":[{"name":"Sofa Set","category":"Furniture","quantity":1,"unit_price":30000}],"expected_version":2}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items, err := r.DecodeItems()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 || items[0].Name != "Sofa Set" || items[0].UnitPrice != 30000 {
			t.Fatalf("unexpected items: %+v", items)
		}
		if r.ExpectedVersion != 2 {
			t.Fatalf("expected version 2, got %d", r.ExpectedVersion)
		}
	})

	for name, body := range map[string]string{
		"string":  `{"items":"not-an-array"}`,
		"object":  `{"items":{"name":"x"}}`,
		"missing": `{}`,
		"null":    `{"items":null}`,
		"bad row": `{"items":[{"quantity":"two"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			var r UpdateItemsRequest
			if err := json.Unmarshal([]byte(body), &r); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := r.DecodeItems(); !errors.Is(err, ErrItemsNotArray) {
				t.Fatalf("expected ErrItemsNotArray, got %v", err)
			}
		})
	}
}

func TestProjectRequest_ToEntity(t *testing.T) {
	r := ProjectRequest{
		OwnerID: " user-1 ",
		Title:   " Living room ",
		Client:  ClientContactRequest{Name: "Asha", Email: " asha@example.com "},
		Style:   StyleRequest{Name: "Modern", Colors: []string{"white"}},
		Status:  "draft",
	}
	p := r.ToEntity()
	if p.OwnerID != "user-1" || p.Title != "Living room" || p.Client.Email != "asha@example.com" {
		t.Fatalf("unexpected project: %+v", p)
	}
	if p.Status != entities.ProjectStatusDraft || p.Style.Name != "Modern" {
		t.Fatalf("unexpected project: %+v", p)
	}
}

func TestCostConfigRequest_ToEntity(t *testing.T) {
	c := CostConfigRequest{Category: "Lighting", ItemType: " Chandelier ", BasePrice: 8000}.ToEntity()
	if !c.IsActive || c.ItemType != "Chandelier" {
		t.Fatalf("unexpected cost config: %+v", c)
	}

	off := false
	c = CostConfigRequest{Category: "Lighting", ItemType: "Lamp", IsActive: &off}.ToEntity()
	if c.IsActive {
		t.Fatalf("expected inactive entry")
	}
}
