package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fanbase/internal/entity"
	"fanbase/internal/usecase"
	"fanbase/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSubscriptionUseCase is a mock implementation of usecase.SubscriptionUseCase
type MockSubscriptionUseCase struct {
	mock.Mock
}

func (m *MockSubscriptionUseCase) Subscribe(userID, creatorID string, tier entity.SubscriptionTier) (*entity.Subscription, error) {
	args := m.Called(userID, creatorID, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionUseCase) Cancel(userID, creatorID string) error {
	args := m.Called(userID, creatorID)
	return args.Error(0)
}

func (m *MockSubscriptionUseCase) List(userID string, status string, page, limit int) ([]*entity.Subscription, int64, error) {
	args := m.Called(userID, status, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Subscription), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubscriptionUseCase) Status(userID, creatorID string) (*entity.Subscription, error) {
	args := m.Called(userID, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

var _ usecase.SubscriptionUseCase = (*MockSubscriptionUseCase)(nil)

func TestSubscribe_Created(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/subscription", authAs("user-1", handler.Subscribe))

	now := time.Now()
	sub := &entity.Subscription{
		ID:         "sub-1",
		UserID:     "user-1",
		CreatorID:  "creator-1",
		Tier:       entity.TierMonthly,
		Status:     entity.SubscriptionActive,
		StartDate:  now,
		ExpiryDate: now.AddDate(0, 1, 0),
	}
	mockUseCase.On("Subscribe", "user-1", "creator-1", entity.TierMonthly).Return(sub, nil)

	body := `{"creator_id":"creator-1","tier":"MONTHLY"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subscription", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response entity.Subscription
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, entity.SubscriptionActive, response.Status)
	mockUseCase.AssertExpectations(t)
}

func TestSubscribe_InvalidTier(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/subscription", authAs("user-1", handler.Subscribe))

	body := `{"creator_id":"creator-1","tier":"WEEKLY"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subscription", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Subscribe")
}

func TestSubscribe_AlreadyActive(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/subscription", authAs("user-1", handler.Subscribe))

	mockUseCase.On("Subscribe", "user-1", "creator-1", entity.TierMonthly).
		Return(nil, usecase.ErrAlreadySubscribed)

	body := `{"creator_id":"creator-1","tier":"MONTHLY"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subscription", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCancelSubscription_NotSubscribed(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/subscription/:creator_id", authAs("user-1", handler.Cancel))

	mockUseCase.On("Cancel", "user-1", "creator-1").Return(usecase.ErrNotSubscribed)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/subscription/creator-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestSubscriptionStatus_NotFound(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/subscription/:creator_id", authAs("user-1", handler.Status))

	mockUseCase.On("Status", "user-1", "creator-1").Return(nil, usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/subscription/creator-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListSubscriptions_PassesStatusFilter(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/subscription", authAs("user-1", handler.List))

	mockUseCase.On("List", "user-1", "ACTIVE", 1, 10).
		Return([]*entity.Subscription{{ID: "sub-1"}}, int64(1), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/subscription?status=ACTIVE", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(1), response["total"])
	mockUseCase.AssertExpectations(t)
}
