package postgre

import (
	"database/sql"
	"fmt"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/repository"
	"github.com/Aashutosh2004011/TaskManagement-Backend/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the task domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
