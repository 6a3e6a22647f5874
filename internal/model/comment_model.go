package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	ParentID  string    `gorm:"type:varchar(36);index" json:"parent_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Likes     int       `gorm:"default:0" json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type CommentLikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	CommentID string    `gorm:"type:uuid;not null;uniqueIndex:idx_comment_like" json:"comment_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_comment_like" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (CommentLikeModel) TableName() string {
	return "comment_likes"
}

func (l *CommentLikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
