package persistent

import (
	"testing"
	"time"

	"fanbase/internal/entity"
	"fanbase/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestNewSubscriptionRow_MonthlyExpiry(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	m := newSubscriptionRow("user-1", "creator-1", entity.TierMonthly, now)

	assert.Empty(t, m.ID)
	assert.Equal(t, "user-1", m.UserID)
	assert.Equal(t, "creator-1", m.CreatorID)
	assert.Equal(t, string(entity.SubscriptionActive), m.Status)
	assert.Equal(t, now, m.StartDate)
	assert.Equal(t, now.AddDate(0, 1, 0), m.ExpiryDate)
}

func TestNewSubscriptionRow_YearlyExpiry(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	m := newSubscriptionRow("user-1", "creator-1", entity.TierYearly, now)

	assert.Equal(t, now.AddDate(1, 0, 0), m.ExpiryDate)
}

func TestReviseSubscription_ActiveEdgeRejected(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	m := &model.SubscriptionModel{
		ID:         "sub-1",
		UserID:     "user-1",
		CreatorID:  "creator-1",
		Tier:       string(entity.TierMonthly),
		Status:     string(entity.SubscriptionActive),
		ExpiryDate: now.AddDate(0, 0, 10),
	}

	updates, err := reviseSubscription(m, entity.TierMonthly, now)

	assert.ErrorIs(t, err, ErrActiveSubscription)
	assert.Nil(t, updates)
}

func TestReviseSubscription_ExpiredEdgeReactivatesInPlace(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	m := &model.SubscriptionModel{
		ID:         "sub-1",
		UserID:     "user-1",
		CreatorID:  "creator-1",
		Tier:       string(entity.TierMonthly),
		Status:     string(entity.SubscriptionExpired),
		ExpiryDate: now.AddDate(0, -2, 0),
	}

	updates, err := reviseSubscription(m, entity.TierYearly, now)

	assert.NoError(t, err)
	// Column updates only; the row keeps its id.
	assert.NotContains(t, updates, "id")
	assert.Equal(t, string(entity.TierYearly), updates["tier"])
	assert.Equal(t, string(entity.SubscriptionActive), updates["status"])
	assert.Equal(t, now, updates["start_date"])
	assert.Equal(t, now.AddDate(1, 0, 0), updates["expiry_date"])
	assert.Equal(t, "sub-1", m.ID)
}

func TestReviseSubscription_LapsedActiveStatusReactivates(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	// Status never flipped to EXPIRED, but the expiry date has passed.
	m := &model.SubscriptionModel{
		ID:         "sub-1",
		Status:     string(entity.SubscriptionActive),
		ExpiryDate: now.Add(-time.Hour),
	}

	updates, err := reviseSubscription(m, entity.TierMonthly, now)

	assert.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 1, 0), updates["expiry_date"])
}
