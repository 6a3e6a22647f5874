package persistent

import (
	"errors"
	"time"

	"fanbase/internal/entity"
	"fanbase/internal/model"

	"gorm.io/gorm"
)

type ConversationRepository interface {
	// GetOrCreate finds the conversation between two users regardless
	// of direction, creating it on first contact. Pair ordering is
	// normalized so (a,b) and (b,a) share one row.
	GetOrCreate(userA, userB string) (*entity.Conversation, error)
	GetByID(id string) (*entity.Conversation, error)
	ListByUser(userID string, excludedIDs []string, limit, offset int) ([]*entity.Conversation, error)
	SoftDelete(id string) error

	CreateMessage(message *entity.Message) error
	ListMessages(conversationID string, limit, offset int) ([]*entity.Message, int64, error)
	LastMessage(conversationID string) (*entity.Message, error)
	CountUnseen(conversationID, recipientID string) (int64, error)
	MarkSeen(conversationID, recipientID string) error
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func orderPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

func (r *conversationRepository) GetOrCreate(userA, userB string) (*entity.Conversation, error) {
	first, second := orderPair(userA, userB)

	var m model.ConversationModel
	err := r.db.Where("user_a_id = ? AND user_b_id = ?", first, second).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m = model.ConversationModel{UserAID: first, UserBID: second, LastMessageAt: time.Now()}
		if err := r.db.Create(&m).Error; err != nil {
			return nil, err
		}
		return ToConversationEntity(&m), nil
	}
	if err != nil {
		return nil, err
	}
	return ToConversationEntity(&m), nil
}

func (r *conversationRepository) GetByID(id string) (*entity.Conversation, error) {
	var m model.ConversationModel
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return ToConversationEntity(&m), nil
}

func (r *conversationRepository) ListByUser(userID string, excludedIDs []string, limit, offset int) ([]*entity.Conversation, error) {
	q := r.db.Model(&model.ConversationModel{}).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID)
	if len(excludedIDs) > 0 {
		q = q.Where("user_a_id NOT IN ? AND user_b_id NOT IN ?", excludedIDs, excludedIDs)
	}

	var ms []model.ConversationModel
	if err := q.Order("last_message_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, err
	}

	conversations := make([]*entity.Conversation, len(ms))
	for i := range ms {
		conversations[i] = ToConversationEntity(&ms[i])
	}
	return conversations, nil
}

func (r *conversationRepository) SoftDelete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.ConversationModel{}).Error
}

func (r *conversationRepository) CreateMessage(message *entity.Message) error {
	m := &model.MessageModel{
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		RecipientID:    message.RecipientID,
		Text:           message.Text,
		Attachment:     message.Attachment,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Model(&model.ConversationModel{}).Where("id = ?", message.ConversationID).
			UpdateColumn("last_message_at", m.CreatedAt).Error
	})
	if err != nil {
		return err
	}
	message.ID = m.ID
	message.CreatedAt = m.CreatedAt
	return nil
}

func (r *conversationRepository) ListMessages(conversationID string, limit, offset int) ([]*entity.Message, int64, error) {
	q := r.db.Model(&model.MessageModel{}).Where("conversation_id = ?", conversationID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []model.MessageModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	messages := make([]*entity.Message, len(ms))
	for i := range ms {
		messages[i] = ToMessageEntity(&ms[i])
	}
	return messages, total, nil
}

func (r *conversationRepository) LastMessage(conversationID string) (*entity.Message, error) {
	var m model.MessageModel
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at DESC").First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ToMessageEntity(&m), nil
}

func (r *conversationRepository) CountUnseen(conversationID, recipientID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.MessageModel{}).
		Where("conversation_id = ? AND recipient_id = ? AND seen = ?", conversationID, recipientID, false).
		Count(&count).Error
	return count, err
}

func (r *conversationRepository) MarkSeen(conversationID, recipientID string) error {
	return r.db.Model(&model.MessageModel{}).
		Where("conversation_id = ? AND recipient_id = ? AND seen = ?", conversationID, recipientID, false).
		UpdateColumn("seen", true).Error
}
