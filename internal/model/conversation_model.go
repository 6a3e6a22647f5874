package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationModel struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	UserAID       string         `gorm:"type:uuid;not null;uniqueIndex:idx_conversation_pair" json:"user_a_id"`
	UserBID       string         `gorm:"type:uuid;not null;uniqueIndex:idx_conversation_pair" json:"user_b_id"`
	LastMessageAt time.Time      `gorm:"index" json:"last_message_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ConversationModel) TableName() string {
	return "conversations"
}

func (c *ConversationModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type MessageModel struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	ConversationID string    `gorm:"type:uuid;not null;index" json:"conversation_id"`
	SenderID       string    `gorm:"type:uuid;not null" json:"sender_id"`
	RecipientID    string    `gorm:"type:uuid;not null;index" json:"recipient_id"`
	Text           string    `gorm:"type:text" json:"text"`
	Attachment     string    `gorm:"type:varchar(500)" json:"attachment"`
	Seen           bool      `gorm:"default:false" json:"seen"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

func (MessageModel) TableName() string {
	return "messages"
}

func (m *MessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
