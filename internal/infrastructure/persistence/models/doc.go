// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
//   - base.go: BaseModel shared by every table with id/created_at/updated_at
//   - godown.go: godowns, local bodies, area and ward assignments, seller products
//   - inventory.go: godown stock, stock transfers, products
package models
