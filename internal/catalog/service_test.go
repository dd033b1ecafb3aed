package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	products := []Product{priced("Running", 159), priced("Casual", 229)}

	t.Run("Success - filtered", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, nil)

		mockRepo.On("GetAll", ctx).Return(products, nil).Once()

		got, err := svc.List(ctx, FilterSelection{Category: []string{"Running"}})

		assert.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Running", got[0].Category)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - empty selection returns all", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, nil)

		mockRepo.On("GetAll", ctx).Return(products, nil).Once()

		got, err := svc.List(ctx, FilterSelection{})

		assert.NoError(t, err)
		assert.Equal(t, products, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - repository fails", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, nil)
		repoErr := errors.New("seed corrupted")

		mockRepo.On("GetAll", ctx).Return(nil, repoErr).Once()

		_, err := svc.List(ctx, FilterSelection{})

		assert.Error(t, err)
		assert.Equal(t, repoErr, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, nil)
		p := priced("Running", 199)

		mockRepo.On("GetByID", ctx, p.ID).Return(&p, nil).Once()

		got, err := svc.GetByID(ctx, p.ID)

		assert.NoError(t, err)
		assert.Equal(t, &p, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, nil)

		mockRepo.On("GetByID", ctx, "missing").Return(nil, ErrProductNotFound).Once()

		_, err := svc.GetByID(ctx, "missing")

		assert.ErrorIs(t, err, ErrProductNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_Facets(t *testing.T) {
	ctx := context.Background()

	ranges, err := ParsePriceRanges("0-100,100-200")
	require.NoError(t, err)

	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, ranges)

	mockRepo.On("GetAll", ctx).Return([]Product{priced("Running", 159)}, nil).Once()

	opts, err := svc.Facets(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Running"}, opts.Categories)
	assert.Equal(t, []string{"0-100", "100-200"}, opts.PriceRanges)
	assert.Equal(t, []string{"5", "4", "3"}, opts.Ratings)
	mockRepo.AssertExpectations(t)
}
