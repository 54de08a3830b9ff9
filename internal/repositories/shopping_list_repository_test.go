package repositories

import (
	"testing"
)

func TestAggregateSumsAcrossRecipes(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")
	salt := createTestIngredient(t, db, "Salt", "g")
	r1 := createTestRecipe(t, db, user.ID, "Soup")
	r2 := createTestRecipe(t, db, user.ID, "Stew")
	addIngredientRow(t, db, r1.ID, salt.ID, 5)
	addIngredientRow(t, db, r2.ID, salt.ID, 3)

	cart := NewShoppingCartRepository(db)
	if err := cart.Add(user.ID, r1.ID); err != nil {
		t.Fatalf("cart add failed: %v", err)
	}
	if err := cart.Add(user.ID, r2.ID); err != nil {
		t.Fatalf("cart add failed: %v", err)
	}

	items, err := NewPostgresShoppingListRepository(db).Aggregate(user.ID)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one aggregated line, got %d: %+v", len(items), items)
	}
	if items[0].Name != "Salt" || items[0].MeasurementUnit != "g" || items[0].Amount != 8 {
		t.Fatalf("unexpected aggregation: %+v", items[0])
	}
}

func TestAggregateEmptyCart(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")

	items, err := NewPostgresShoppingListRepository(db).Aggregate(user.ID)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list for empty cart, got %+v", items)
	}
}

// Two catalog rows sharing name and unit but with different ids must merge
// into a single line; the grouping key is the displayed text, not the id.
func TestAggregateMergesDuplicateCatalogRows(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")
	sugar1 := createTestIngredient(t, db, "Sugar", "g")
	sugar2 := createTestIngredient(t, db, "Sugar", "g")
	r1 := createTestRecipe(t, db, user.ID, "Cake")
	r2 := createTestRecipe(t, db, user.ID, "Pie")
	addIngredientRow(t, db, r1.ID, sugar1.ID, 2)
	addIngredientRow(t, db, r2.ID, sugar2.ID, 4)

	cart := NewShoppingCartRepository(db)
	if err := cart.Add(user.ID, r1.ID); err != nil {
		t.Fatalf("cart add failed: %v", err)
	}
	if err := cart.Add(user.ID, r2.ID); err != nil {
		t.Fatalf("cart add failed: %v", err)
	}

	items, err := NewPostgresShoppingListRepository(db).Aggregate(user.ID)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected the duplicate catalog rows to merge, got %+v", items)
	}
	if items[0].Amount != 6 {
		t.Fatalf("expected summed amount 6, got %d", items[0].Amount)
	}
}

// The same name with a different unit stays a separate line, and the exact
// text match is case-sensitive.
func TestAggregateKeepsDistinctUnits(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")
	milkMl := createTestIngredient(t, db, "Milk", "ml")
	milkG := createTestIngredient(t, db, "Milk", "g")
	recipe := createTestRecipe(t, db, user.ID, "Pudding")
	addIngredientRow(t, db, recipe.ID, milkMl.ID, 200)
	addIngredientRow(t, db, recipe.ID, milkG.ID, 50)

	cart := NewShoppingCartRepository(db)
	if err := cart.Add(user.ID, recipe.ID); err != nil {
		t.Fatalf("cart add failed: %v", err)
	}

	items, err := NewPostgresShoppingListRepository(db).Aggregate(user.ID)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected two lines for two units, got %+v", items)
	}
	// Ordered by name then unit ascending
	if items[0].MeasurementUnit != "g" || items[1].MeasurementUnit != "ml" {
		t.Fatalf("unexpected order: %+v", items)
	}
}

// Only the requesting user's cart contributes to their list
func TestAggregateScopedToUser(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	salt := createTestIngredient(t, db, "Salt", "g")
	recipe := createTestRecipe(t, db, alice.ID, "Soup")
	addIngredientRow(t, db, recipe.ID, salt.ID, 5)

	cart := NewShoppingCartRepository(db)
	if err := cart.Add(bob.ID, recipe.ID); err != nil {
		t.Fatalf("cart add failed: %v", err)
	}

	items, err := NewPostgresShoppingListRepository(db).Aggregate(alice.ID)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("alice has an empty cart, got %+v", items)
	}
}
