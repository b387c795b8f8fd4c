package stubapi

import (
	"net/http/httptest"

	"github.com/franciscosanchezn/pizza-manager/internal/database"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StartInMemory serves the stub on a local httptest server backed by a private
// in-memory SQLite database. Callers must Close the returned server.
func StartInMemory(seed bool) (*httptest.Server, *gorm.DB, error) {
	gin.SetMode(gin.TestMode)

	db, err := database.InitDatabase(database.InMemorySQLite("stub-" + uuid.NewString()))
	if err != nil {
		return nil, nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, nil, err
	}
	if seed {
		if _, err := Seed(db); err != nil {
			return nil, nil, err
		}
	}
	return httptest.NewServer(NewRouter(db)), db, nil
}
