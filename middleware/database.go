package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DBKey is the context key under which the database handle is stored.
const DBKey = "db"

// DatabaseMiddleware injects the store handle into the request context.
// The handle is opened once at startup and owned by main; handlers retrieve
// it with GetDB instead of reaching for package-global state.
func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(DBKey, db)
		c.Next()
	}
}

// GetDB returns the database handle from the request context, or nil when
// the middleware did not run.
func GetDB(c *gin.Context) *gorm.DB {
	value, exists := c.Get(DBKey)
	if !exists {
		return nil
	}
	db, ok := value.(*gorm.DB)
	if !ok {
		return nil
	}
	return db
}
