package book_call

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/Coach-ScheduleService/internal/domain"
	clientRepo "github.com/m04kA/Coach-ScheduleService/internal/infra/storage/client"
	"github.com/m04kA/Coach-ScheduleService/pkg/types"
)

// UseCase use case бронирования звонка: проверяет клиента, рабочие часы
// и пересечения, затем сохраняет бронирование
type UseCase struct {
	bookingRepo BookingRepository
	clientRepo  ClientRepository
	policy      domain.SchedulePolicy
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	policy domain.SchedulePolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		clientRepo:  clientRepo,
		policy:      policy,
		logger:      logger,
	}
}

// Execute выполняет use case бронирования звонка
//
// Проверка пересечений и запись выполняются без транзакции: два одновременных
// запроса на пересекающиеся интервалы могут оба пройти проверку. Это принятое
// ограничение модели (один практикующий, редкие конкурентные записи)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookCall: client=%s, type=%s, date=%s, time=%s",
		req.ClientID, req.CallType, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookCall: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование клиента
	if _, err := uc.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("BookCall: client id=%s not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("BookCall: failed to get client id=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Проверяем рабочие часы
	if err := validateBusinessHours(req, uc.policy); err != nil {
		uc.logger.Warn("BookCall: business hours check failed: %v", err)
		return nil, err
	}

	// 4. Привязываем время начала к дате
	startAt, err := req.StartTime.OnDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	// 5. Получаем все бронирования для проверки пересечений
	bookings, err := uc.bookingRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("BookCall: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 6. Проверяем пересечение с литеральными интервалами
	if conflict := findConflict(startAt, req.CallType.DurationMinutes(), bookings); conflict != nil {
		uc.logger.Warn("BookCall: slot conflict with booking id=%s (%s - %s)",
			conflict.ID, conflict.StartAt.Format(domain.TimeFormat), conflict.EndAt().Format(domain.TimeFormat))
		return nil, ErrSlotConflict
	}

	// 7. Создаем бронирование
	booking := &domain.Booking{
		ID:          uuid.NewString(),
		ClientID:    req.ClientID,
		CallType:    req.CallType,
		StartAt:     startAt,
		Recurring:   req.CallType.IsRecurring(),
		DayOfWeek:   int(startAt.Weekday()),
		FirstCallAt: startAt,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("BookCall: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("BookCall: successfully created booking id=%s", created.ID)

	return &Response{
		ID:              created.ID,
		ClientID:        created.ClientID,
		CallType:        created.CallType,
		Date:            created.StartAt,
		StartTime:       types.NewTimeString(created.StartAt),
		DurationMinutes: created.DurationMinutes(),
		Recurring:       created.Recurring,
		DayOfWeek:       created.DayOfWeek,
		CreatedAt:       created.CreatedAt,
	}, nil
}
