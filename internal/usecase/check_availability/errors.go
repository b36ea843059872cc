package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при ошибках хранилища и прочих внутренних сбоях
	ErrInternal = errors.New("check_availability: internal error")
)
