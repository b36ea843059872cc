package book_call

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Coach-ScheduleService/internal/domain"
	clientRepo "github.com/m04kA/Coach-ScheduleService/internal/infra/storage/client"
	"github.com/m04kA/Coach-ScheduleService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubBookingRepo struct {
	bookings  []*domain.Booking
	listErr   error
	createErr error
	created   []*domain.Booking
}

func (s *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	b.CreatedAt = time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)
	s.created = append(s.created, b)
	return b, nil
}

func (s *stubBookingRepo) ListAll(context.Context) ([]*domain.Booking, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.bookings, nil
}

type stubClientRepo struct {
	clients map[string]*domain.Client
}

func (s *stubClientRepo) GetByID(_ context.Context, id string) (*domain.Client, error) {
	if c, ok := s.clients[id]; ok {
		return c, nil
	}
	return nil, clientRepo.ErrClientNotFound
}

func newTestUseCase(bookings *stubBookingRepo, clients *stubClientRepo) *UseCase {
	return NewUseCase(bookings, clients, domain.DefaultSchedulePolicy(), nopLogger{})
}

func knownClients() *stubClientRepo {
	return &stubClientRepo{clients: map[string]*domain.Client{
		"c1": {ID: "c1", Name: "John", Phone: "555-0101"},
	}}
}

// 2025-08-01 - пятница
var testDate = time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

func existingBooking(callType domain.CallType, h, m int) *domain.Booking {
	start := time.Date(2025, 8, 1, h, m, 0, 0, time.UTC)
	return &domain.Booking{
		ID:          "existing",
		ClientID:    "c1",
		CallType:    callType,
		StartAt:     start,
		Recurring:   callType.IsRecurring(),
		DayOfWeek:   int(start.Weekday()),
		FirstCallAt: start,
	}
}

func TestExecute_BooksOnboardingCall(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo, knownClients())

	resp, err := uc.Execute(context.Background(), &Request{
		ClientID:  "c1",
		CallType:  domain.CallOnboarding,
		Date:      testDate,
		StartTime: "11:00",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.CallOnboarding, resp.CallType)
	assert.Equal(t, 40, resp.DurationMinutes)
	assert.True(t, resp.Recurring)
	assert.Equal(t, int(time.Friday), resp.DayOfWeek)
	assert.Equal(t, types.TimeString("11:00"), resp.StartTime)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, created.StartAt, created.FirstCallAt)
	assert.Equal(t, time.Date(2025, 8, 1, 11, 0, 0, 0, time.UTC), created.StartAt)
}

func TestExecute_FollowupIsNotRecurring(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo, knownClients())

	resp, err := uc.Execute(context.Background(), &Request{
		ClientID:  "c1",
		CallType:  domain.CallFollowup,
		Date:      testDate,
		StartTime: "14:00",
	})

	require.NoError(t, err)
	assert.False(t, resp.Recurring)
	assert.Equal(t, 20, resp.DurationMinutes)
}

func TestExecute_ClientNotFound(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo, &stubClientRepo{clients: map[string]*domain.Client{}})

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:  "ghost",
		CallType:  domain.CallFollowup,
		Date:      testDate,
		StartTime: "11:00",
	})

	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Empty(t, repo.created, "no write must occur for an unknown client")
}

func TestExecute_BusinessHours(t *testing.T) {
	tests := []struct {
		name     string
		callType domain.CallType
		time     types.TimeString
		wantErr  bool
	}{
		{name: "before open", callType: domain.CallFollowup, time: "10:29", wantErr: true},
		{name: "at open", callType: domain.CallFollowup, time: "10:30"},
		{name: "last allowed start", callType: domain.CallFollowup, time: "19:10"},
		{name: "one past last start", callType: domain.CallFollowup, time: "19:11", wantErr: true},
		{name: "at close", callType: domain.CallFollowup, time: "19:30", wantErr: true},
		// Проверка запаса всегда использует 20 минут независимо от типа:
		// onboarding на 19:05 принимается, хотя фактически закончится в 19:45
		{name: "onboarding overrunning close", callType: domain.CallOnboarding, time: "19:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&stubBookingRepo{}, knownClients())

			_, err := uc.Execute(context.Background(), &Request{
				ClientID:  "c1",
				CallType:  tt.callType,
				Date:      testDate,
				StartTime: tt.time,
			})

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOutOfHours)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		existingBooking(domain.CallOnboarding, 11, 0), // 11:00-11:40
	}}
	uc := newTestUseCase(repo, knownClients())

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:  "c1",
		CallType:  domain.CallFollowup,
		Date:      testDate,
		StartTime: "11:30", // 11:30-11:50, пересекается
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, repo.created)
}

func TestExecute_BackToBackBookingsSucceed(t *testing.T) {
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		existingBooking(domain.CallOnboarding, 11, 0), // 11:00-11:40
	}}
	uc := newTestUseCase(repo, knownClients())

	// Начало ровно в момент конца существующего
	_, err := uc.Execute(context.Background(), &Request{
		ClientID:  "c1",
		CallType:  domain.CallFollowup,
		Date:      testDate,
		StartTime: "11:40",
	})
	require.NoError(t, err)

	// Конец ровно в момент начала существующего
	_, err = uc.Execute(context.Background(), &Request{
		ClientID:  "c1",
		CallType:  domain.CallFollowup,
		Date:      testDate,
		StartTime: "10:40", // 10:40-11:00
	})
	require.NoError(t, err)
}

func TestExecute_ProjectionDoesNotBlockBooking(t *testing.T) {
	// Рекуррентный onboarding в пятницу 1 августа 11:00 проецируется на
	// пятницу 8 августа, но проверка пересечений сравнивает только
	// литеральные интервалы: бронь на 8 августа 11:00 проходит
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		existingBooking(domain.CallOnboarding, 11, 0),
	}}
	uc := newTestUseCase(repo, knownClients())

	resp, err := uc.Execute(context.Background(), &Request{
		ClientID:  "c1",
		CallType:  domain.CallFollowup,
		Date:      time.Date(2025, 8, 8, 0, 0, 0, 0, time.UTC),
		StartTime: "11:00",
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 8, 11, 0, 0, 0, time.UTC), repo.created[0].StartAt)
	assert.False(t, resp.Recurring)
}

func TestExecute_ConflictUsesStoredDuration(t *testing.T) {
	// Существующий followup занимает только 20 минут: слот сразу после него свободен
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		existingBooking(domain.CallFollowup, 11, 0), // 11:00-11:20
	}}
	uc := newTestUseCase(repo, knownClients())

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:  "c1",
		CallType:  domain.CallOnboarding,
		Date:      testDate,
		StartTime: "11:20",
	})
	assert.NoError(t, err)
}

func TestExecute_StorageErrors(t *testing.T) {
	t.Run("list failure", func(t *testing.T) {
		repo := &stubBookingRepo{listErr: errors.New("connection refused")}
		uc := newTestUseCase(repo, knownClients())

		_, err := uc.Execute(context.Background(), &Request{
			ClientID:  "c1",
			CallType:  domain.CallFollowup,
			Date:      testDate,
			StartTime: "11:00",
		})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("create failure", func(t *testing.T) {
		repo := &stubBookingRepo{createErr: errors.New("connection refused")}
		uc := newTestUseCase(repo, knownClients())

		_, err := uc.Execute(context.Background(), &Request{
			ClientID:  "c1",
			CallType:  domain.CallFollowup,
			Date:      testDate,
			StartTime: "11:00",
		})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, knownClients())

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "missing client", req: &Request{CallType: domain.CallFollowup, Date: testDate, StartTime: "11:00"}},
		{name: "unknown call type", req: &Request{ClientID: "c1", CallType: "consultation", Date: testDate, StartTime: "11:00"}},
		{name: "zero date", req: &Request{ClientID: "c1", CallType: domain.CallFollowup, StartTime: "11:00"}},
		{name: "missing time", req: &Request{ClientID: "c1", CallType: domain.CallFollowup, Date: testDate}},
		{name: "malformed time", req: &Request{ClientID: "c1", CallType: domain.CallFollowup, Date: testDate, StartTime: "25:99"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
