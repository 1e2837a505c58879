package contextkeys

type ContextKey string

const (
	// DBContextKey carries the *gorm.DB handle (pool or test transaction)
	// that handlers pass down to services.
	DBContextKey ContextKey = "db"
)
