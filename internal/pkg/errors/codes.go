package errors

import "net/http"

var (
	ErrNotEnoughPoints = New(
		"NOT_ENOUGH_POINTS",
		"At least 2 points are required to build a route",
		http.StatusBadRequest,
	)

	ErrEmptyPointName = New(
		"EMPTY_POINT_NAME",
		"Every point must have a non-empty name",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrEmptyWorkbook = New(
		"EMPTY_WORKBOOK",
		"No valid locations found in workbook",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// Directions оборачивает отказ провайдера направлений: сборка маршрута
// падает целиком, частичный результат не возвращается
func Directions(cause error) *AppError {
	return &AppError{
		Code:       "DIRECTIONS_FAILED",
		Message:    cause.Error(),
		StatusCode: http.StatusBadGateway,
		cause:      cause,
	}
}

// Workbook оборачивает ошибку разбора книги Excel
func Workbook(cause error) *AppError {
	return &AppError{
		Code:       "WORKBOOK_INVALID",
		Message:    cause.Error(),
		StatusCode: http.StatusBadRequest,
		cause:      cause,
	}
}
