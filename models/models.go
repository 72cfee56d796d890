package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&User{},
		&Contact{},
		&Product{},
		&ShowcaseImage{},
		&Notification{},
		&Setting{},
		&Visitor{},

		// 2. Tables with dependencies
		&Message{},   // depends on: Contact
		&Order{},     // independent row, parent of OrderItem
		&CartItem{},  // depends on: Product
		&PageView{},  // depends on: Visitor

		// 3. Detail tables
		&OrderItem{},         // depends on: Order, Product
		&InventoryMovement{}, // depends on: Product
	}
}
