package book_call

import (
	"context"

	bookCall "github.com/m04kA/Coach-ScheduleService/internal/usecase/book_call"
)

type BookCallUseCase interface {
	Execute(ctx context.Context, req *bookCall.Request) (*bookCall.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
