package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserModel_BeforeCreate(t *testing.T) {
	user := &UserModel{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "password",
	}

	// BeforeCreate should set ID if empty
	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}

func TestUserModel_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-id-123"
	user := &UserModel{
		ID:       existingID,
		Email:    "test@example.com",
		Username: "testuser",
		Password: "password",
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	// ID should remain unchanged if already set
	assert.Equal(t, existingID, user.ID)
}

func TestPostModel_BeforeCreate(t *testing.T) {
	post := &PostModel{
		UserID: "creator-123",
		Title:  "Test Post",
		Type:   "TEXT",
		Status: "ACTIVE",
	}

	err := post.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, post.ID)
}

func TestPostModel_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-post-id"
	post := &PostModel{
		ID:     existingID,
		UserID: "creator-123",
		Title:  "Test Post",
		Type:   "TEXT",
	}

	err := post.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, existingID, post.ID)
}

func TestPostLikeModel_BeforeCreate(t *testing.T) {
	like := &PostLikeModel{
		UserID: "user-123",
		PostID: "post-123",
	}

	err := like.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, like.ID)
}

func TestSubscriptionModel_BeforeCreate(t *testing.T) {
	subscription := &SubscriptionModel{
		UserID:    "user-123",
		CreatorID: "creator-123",
	}

	err := subscription.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, subscription.ID)
}

func TestWalletModel_BeforeCreate(t *testing.T) {
	wallet := &WalletModel{
		UserID:  "user-123",
		Balance: 0,
	}

	err := wallet.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, wallet.ID)
}

func TestConversationModel_BeforeCreate(t *testing.T) {
	conversation := &ConversationModel{
		UserAID: "user-a",
		UserBID: "user-b",
	}

	err := conversation.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, conversation.ID)
}

func TestOrderModel_BeforeCreate(t *testing.T) {
	order := &OrderModel{
		ProductID: "prod-123",
		BuyerID:   "buyer-123",
		SellerID:  "seller-123",
		Quantity:  1,
		Total:     25,
	}

	err := order.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
}
