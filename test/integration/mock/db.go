package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Db wraps a shared in-memory sqlite database used by the integration suite.
type Db struct {
	DbConn *gorm.DB
	models []interface{}
}

var (
	dbInstance *Db
	dbOnce     sync.Once
)

// NewDb returns the shared test database, creating and migrating it on first use.
// The same connection is reused across scenarios; call ClearDB between them.
func NewDb(models ...interface{}) *Db {
	dbOnce.Do(func() {
		sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
		if err != nil {
			panic(fmt.Sprintf("failed to open test database: %v", err))
		}
		// A single connection keeps the shared in-memory database alive.
		sqlDB.SetMaxOpenConns(1)

		gormDB, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		if err != nil {
			panic(fmt.Sprintf("failed to initialize test database: %v", err))
		}

		if err := gormDB.AutoMigrate(models...); err != nil {
			panic(fmt.Sprintf("failed to migrate test database: %v", err))
		}

		dbInstance = &Db{DbConn: gormDB, models: models}
	})
	return dbInstance
}

// ClearDB removes all rows from every migrated table.
func (d *Db) ClearDB() error {
	for _, m := range d.models {
		if err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return fmt.Errorf("failed to clear table for %T: %w", m, err)
		}
	}
	return nil
}
