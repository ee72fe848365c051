package http

import (
	"errors"
	"net/http"

	"employees-srv/internal/employee"
	pkgErrors "employees-srv/pkg/errors"
)

var (
	errInvalidID        = pkgErrors.NewHTTPError(10001, "Invalid employee id")
	errInvalidPage      = pkgErrors.NewHTTPStatusError(10002, "Invalid page", http.StatusNotFound)
	errEmployeeNotFound = pkgErrors.NewHTTPStatusError(10003, "Employee not found", http.StatusNotFound)
	errInvalidSeedCount = pkgErrors.NewHTTPError(10004, "Invalid seed count")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, employee.ErrInvalidPage):
		return errInvalidPage
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return errEmployeeNotFound
	case errors.Is(err, employee.ErrInvalidSeedCount):
		return errInvalidSeedCount
	default:
		return err
	}
}
