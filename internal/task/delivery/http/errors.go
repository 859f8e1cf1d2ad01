package http

import (
	"errors"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/task"
	pkgErrors "github.com/Aashutosh2004011/TaskManagement-Backend/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	case errors.Is(err, task.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(400, "invalid status")
	case errors.Is(err, task.ErrInvalidCategory):
		return pkgErrors.NewHTTPError(400, "invalid category")
	case errors.Is(err, task.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(400, "invalid priority")
	case errors.Is(err, task.ErrInvalidDueDate):
		return pkgErrors.NewHTTPError(400, "invalid due date")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
