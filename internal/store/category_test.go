package store

import (
	"testing"

	"github.com/google/uuid"

	"github.com/BlackZ36/Meibeichi/internal/models"
)

func TestCategoryCRUD(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)
	t.Cleanup(func() { cleanCategories(t, db, "t-vong-bi") })

	created, err := s.Create(&models.Category{Name: "Vòng Bi Test", Value: "t-vong-bi"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("Create should assign an id")
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil || found.Name != "Vòng Bi Test" || found.Value != "t-vong-bi" {
		t.Errorf("round-trip: got %+v", found)
	}

	found.Name = "Vòng Bi Mới"
	if err := s.Update(found); err != nil {
		t.Fatalf("Update: %v", err)
	}
	updated, _ := s.FindByID(created.ID)
	if updated.Name != "Vòng Bi Mới" {
		t.Errorf("updated name: got %q", updated.Name)
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if gone != nil {
		t.Error("category should be gone after delete")
	}
}

// TestCategoryDuplicateValuesAllowed documents that the store does not
// enforce value uniqueness; the picker tolerates duplicates.
func TestCategoryDuplicateValuesAllowed(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)
	t.Cleanup(func() { cleanCategories(t, db, "t-dup") })

	first, err := s.Create(&models.Category{Name: "Dup A", Value: "t-dup"})
	if err != nil {
		t.Fatalf("Create first: %v", err)
	}
	second, err := s.Create(&models.Category{Name: "Dup B", Value: "t-dup"})
	if err != nil {
		t.Fatalf("Create duplicate value should succeed: %v", err)
	}

	s.Delete(first.ID)
	s.Delete(second.ID)
}

// TestCategoryDeleteDoesNotCascade verifies that deleting a category
// leaves products with that type string untouched.
func TestCategoryDeleteDoesNotCascade(t *testing.T) {
	db := testDB(t)
	cats := NewCategoryStore(db)
	products := NewProductStore(db)
	t.Cleanup(func() {
		cleanCategories(t, db, "t-vong-bi-casc")
		cleanProducts(t, db, "t-casc-001")
	})

	cat, err := cats.Create(&models.Category{Name: "Vòng Bi", Value: "t-vong-bi-casc"})
	if err != nil {
		t.Fatalf("Create category: %v", err)
	}
	p, err := products.Create(&models.Product{
		Code: "t-casc-001", Name: "Vòng Bi Sản Phẩm", Type: "t-vong-bi-casc", Price: "1",
	})
	if err != nil {
		t.Fatalf("Create product: %v", err)
	}

	if err := cats.Delete(cat.ID); err != nil {
		t.Fatalf("Delete category: %v", err)
	}

	after, err := products.FindByID(p.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if after == nil {
		t.Fatal("product must survive category deletion")
	}
	if after.Type != "t-vong-bi-casc" {
		t.Errorf("product type must stay dangling, got %q", after.Type)
	}

	products.Delete(p.ID)
}
