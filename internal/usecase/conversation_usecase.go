package usecase

import (
	"errors"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/pkg/logger"

	"gorm.io/gorm"
)

// Notifier pushes events to connected clients. Delivery is best
// effort; persistence never depends on it. Satisfied by *ws.Hub.
type Notifier interface {
	Notify(userID string, event string, payload interface{})
}

type ConversationUseCase interface {
	List(userID string, page, limit int) ([]*entity.Conversation, error)
	SendMessage(senderID, recipientID, text, attachment string) (*entity.Message, error)
	Messages(userID, conversationID string, page, limit int) ([]*entity.Message, int64, error)
	MarkSeen(userID, conversationID string) error
	Delete(userID, conversationID string) error
	SearchUsers(userID, query string, page, limit int) ([]*entity.User, error)
}

type conversationUseCase struct {
	convRepo  persistent.ConversationRepository
	userRepo  persistent.UserRepository
	blockRepo persistent.BlockRepository
	notifier  Notifier
	log       *logger.Logger
}

func NewConversationUseCase(
	convRepo persistent.ConversationRepository,
	userRepo persistent.UserRepository,
	blockRepo persistent.BlockRepository,
	notifier Notifier,
	log *logger.Logger,
) ConversationUseCase {
	return &conversationUseCase{
		convRepo:  convRepo,
		userRepo:  userRepo,
		blockRepo: blockRepo,
		notifier:  notifier,
		log:       log,
	}
}

func (uc *conversationUseCase) peerID(conv *entity.Conversation, userID string) string {
	if conv.UserAID == userID {
		return conv.UserBID
	}
	return conv.UserAID
}

func (uc *conversationUseCase) List(userID string, page, limit int) ([]*entity.Conversation, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	excluded, err := uc.blockRepo.BlockedUserIDs(userID)
	if err != nil {
		return nil, err
	}

	conversations, err := uc.convRepo.ListByUser(userID, excluded, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	for _, conv := range conversations {
		peer, err := uc.userRepo.GetByID(uc.peerID(conv, userID))
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		conv.Peer = peer

		last, err := uc.convRepo.LastMessage(conv.ID)
		if err != nil {
			return nil, err
		}
		conv.LastMessage = last

		unseen, err := uc.convRepo.CountUnseen(conv.ID, userID)
		if err != nil {
			return nil, err
		}
		conv.UnseenCount = int(unseen)
	}
	return conversations, nil
}

func (uc *conversationUseCase) SendMessage(senderID, recipientID, text, attachment string) (*entity.Message, error) {
	if senderID == recipientID || (text == "" && attachment == "") {
		return nil, ErrInvalidInput
	}

	if _, err := uc.userRepo.GetByID(recipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	blocked, err := uc.blockRepo.Exists(senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, ErrForbidden
	}

	conv, err := uc.convRepo.GetOrCreate(senderID, recipientID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		RecipientID:    recipientID,
		Text:           text,
		Attachment:     attachment,
	}
	if err := uc.convRepo.CreateMessage(message); err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		uc.notifier.Notify(recipientID, "message", message)
	}
	return message, nil
}

func (uc *conversationUseCase) Messages(userID, conversationID string, page, limit int) ([]*entity.Message, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 30
	}

	conv, err := uc.convRepo.GetByID(conversationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, ErrNotFound
	}
	if err != nil {
		return nil, 0, err
	}
	if conv.UserAID != userID && conv.UserBID != userID {
		return nil, 0, ErrForbidden
	}

	return uc.convRepo.ListMessages(conversationID, limit, (page-1)*limit)
}

func (uc *conversationUseCase) MarkSeen(userID, conversationID string) error {
	conv, err := uc.convRepo.GetByID(conversationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if conv.UserAID != userID && conv.UserBID != userID {
		return ErrForbidden
	}

	if err := uc.convRepo.MarkSeen(conversationID, userID); err != nil {
		return err
	}

	if uc.notifier != nil {
		uc.notifier.Notify(uc.peerID(conv, userID), "seen", map[string]string{
			"conversation_id": conversationID,
			"seen_by":         userID,
		})
	}
	return nil
}

func (uc *conversationUseCase) Delete(userID, conversationID string) error {
	conv, err := uc.convRepo.GetByID(conversationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if conv.UserAID != userID && conv.UserBID != userID {
		return ErrForbidden
	}
	return uc.convRepo.SoftDelete(conversationID)
}

func (uc *conversationUseCase) SearchUsers(userID, query string, page, limit int) ([]*entity.User, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	blocked, err := uc.blockRepo.BlockedUserIDs(userID)
	if err != nil {
		return nil, err
	}
	excluded := append(blocked, userID)
	return uc.userRepo.Search(query, excluded, limit, (page-1)*limit)
}
