package status

import (
	"context"
	"errors"
	"go-order-relay/src/infrastructure/log"
	"go-order-relay/src/services/order/domain/persistence"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	checks []persistence.StatusCheckDocument
	err    error
}

func (m *memoryRepository) Insert(_ context.Context, check persistence.StatusCheckDocument) error {
	if m.err != nil {
		return m.err
	}
	m.checks = append(m.checks, check)
	return nil
}

func (m *memoryRepository) List(context.Context) ([]persistence.StatusCheckDocument, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.checks, nil
}

func newTestService(repo Repository) *statusService {
	s := NewStatusService(log.NewLoggerWithOutput(io.Discard), repo)
	s.now = func() time.Time { return time.Date(2026, 10, 15, 8, 30, 5, 0, time.UTC) }
	return s
}

func TestCreateAndList(t *testing.T) {
	repo := &memoryRepository{}
	service := newTestService(repo)

	created, err := service.Create(context.Background(), "storefront")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "storefront", created.ClientName)

	checks, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, *created, checks[0])
}

func TestCreate_RequiresClientName(t *testing.T) {
	repo := &memoryRepository{}

	_, err := newTestService(repo).Create(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrClientNameRequired)
	assert.Empty(t, repo.checks)
}

func TestRepositoryFailure(t *testing.T) {
	service := newTestService(&memoryRepository{err: errors.New("mongo down")})

	_, err := service.Create(context.Background(), "storefront")
	assert.ErrorContains(t, err, "mongo down")

	_, err = service.List(context.Background())
	assert.ErrorContains(t, err, "mongo down")
}

func TestList_EmptyIsNotNil(t *testing.T) {
	checks, err := newTestService(&memoryRepository{}).List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, checks)
	assert.Empty(t, checks)
}
