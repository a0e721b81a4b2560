package contextkeys

// Custom type avoids collisions with other packages' context keys.
type contextKey string

// DBContextKey stores the request-scoped *gorm.DB (pool or transaction).
const DBContextKey = contextKey("db")
