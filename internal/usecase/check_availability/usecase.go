package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/Coach-ScheduleService/internal/domain"
)

// UseCase use case расписания дня: проецирует бронирования на дату
// и вычисляет свободные слоты
type UseCase struct {
	bookingRepo  BookingRepository
	clientRepo   ClientRepository
	policy       domain.SchedulePolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	policy domain.SchedulePolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		clientRepo:   clientRepo,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения расписания на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("CheckAvailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем все бронирования
	bookings, err := uc.bookingRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 3. Получаем справочник клиентов для разрешения имен
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list clients: %v", err)
		return nil, fmt.Errorf("%w: failed to list clients: %v", ErrInternal, err)
	}

	clientNames := make(map[string]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}

	// 4. Проецируем бронирования на дату
	booked := projectOntoDate(bookings, clientNames, req.Date)

	// 5. Сканируем рабочее окно в поисках свободных слотов
	slots, err := freeSlots(booked, req.Date, uc.policy)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to compute free slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute free slots: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckAvailability: date=%s, booked=%d, free=%d",
		req.Date.Format(domain.DateFormat), len(booked), len(slots))

	return &Response{
		Date:        req.Date,
		ServerTime:  uc.timeProvider.Now(),
		BookedCalls: booked,
		FreeSlots:   slots,
	}, nil
}
