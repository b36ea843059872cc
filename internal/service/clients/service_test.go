package clients

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Coach-ScheduleService/internal/domain"
	"github.com/m04kA/Coach-ScheduleService/internal/service/clients/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubClientRepo struct {
	clients   []*domain.Client
	createErr error
	listErr   error
}

func (s *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.clients = append(s.clients, c)
	return c, nil
}

func (s *stubClientRepo) List(context.Context) ([]*domain.Client, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.clients, nil
}

func TestCreate(t *testing.T) {
	repo := &stubClientRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateClientRequest{
		Name:  "  John  ",
		Phone: "555-0101",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "John", resp.Name, "name must be trimmed")
	assert.Equal(t, "555-0101", resp.Phone)
	require.Len(t, repo.clients, 1)
}

func TestCreate_GeneratesUniqueIDs(t *testing.T) {
	repo := &stubClientRepo{}
	svc := NewService(repo, nopLogger{})

	first, err := svc.Create(context.Background(), &models.CreateClientRequest{Name: "John", Phone: "555-0101"})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), &models.CreateClientRequest{Name: "Jane", Phone: "555-0102"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.CreateClientRequest
	}{
		{name: "empty name", req: &models.CreateClientRequest{Phone: "555-0101"}},
		{name: "blank name", req: &models.CreateClientRequest{Name: "   ", Phone: "555-0101"}},
		{name: "empty phone", req: &models.CreateClientRequest{Name: "John"}},
		{name: "blank phone", req: &models.CreateClientRequest{Name: "John", Phone: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubClientRepo{}
			svc := NewService(repo, nopLogger{})

			_, err := svc.Create(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.clients)
		})
	}
}

func TestCreate_RepositoryError(t *testing.T) {
	svc := NewService(&stubClientRepo{createErr: errors.New("connection refused")}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateClientRequest{Name: "John", Phone: "555-0101"})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestList(t *testing.T) {
	repo := &stubClientRepo{clients: []*domain.Client{
		{ID: "c1", Name: "John", Phone: "555-0101"},
		{ID: "c2", Name: "Jane", Phone: "555-0102"},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Clients, 2)
	assert.Equal(t, "c1", resp.Clients[0].ID)
	assert.Equal(t, "Jane", resp.Clients[1].Name)
}

func TestList_Empty(t *testing.T) {
	svc := NewService(&stubClientRepo{}, nopLogger{})

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, resp.Clients)
}

func TestList_RepositoryError(t *testing.T) {
	svc := NewService(&stubClientRepo{listErr: errors.New("connection refused")}, nopLogger{})

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}
