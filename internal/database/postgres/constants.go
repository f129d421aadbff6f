package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeCheckViolation is raised when a CHECK constraint (e.g. balance >= 0) fails
	PgErrorCodeCheckViolation = "23514"
)

// Column lists shared by scans
const (
	inventoryColumns = `id, user_id, booba_type, booba_name, booba_image, booba_rarity, acquired_at`
	listingColumns   = `id, seller_id, inventory_id, price, booba_type, booba_name, booba_image, booba_rarity, listed_at`
)
