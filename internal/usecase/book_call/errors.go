package book_call

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не зарегистрирован
	ErrClientNotFound = errors.New("book_call: client not found")

	// ErrOutOfHours возвращается, когда время звонка вне рабочих часов
	ErrOutOfHours = errors.New("book_call: time is outside business hours")

	// ErrSlotConflict возвращается, когда интервал звонка пересекается с существующим бронированием
	ErrSlotConflict = errors.New("book_call: slot overlaps with another booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_call: invalid input data")

	// ErrInternal возвращается при ошибках хранилища и прочих внутренних сбоях
	ErrInternal = errors.New("book_call: internal error")
)
