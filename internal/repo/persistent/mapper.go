package persistent

import (
	"fanbase/internal/entity"
	"fanbase/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:               m.ID,
		Name:             m.Name,
		Username:         m.Username,
		Email:            m.Email,
		Password:         m.Password,
		Avatar:           m.Avatar,
		CoverImage:       m.CoverImage,
		Bio:              m.Bio,
		IsCreator:        m.IsCreator,
		IsFan:            m.IsFan,
		LastActiveRole:   entity.Role(m.LastActiveRole),
		TotalSubscribers: m.TotalSubscribers,
		MonthlyPrice:     m.MonthlyPrice,
		YearlyPrice:      m.YearlyPrice,
		StripeAccountID:  m.StripeAccountID,
		IsBlocked:        m.IsBlocked,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:               e.ID,
		Name:             e.Name,
		Username:         e.Username,
		Email:            e.Email,
		Password:         e.Password,
		Avatar:           e.Avatar,
		CoverImage:       e.CoverImage,
		Bio:              e.Bio,
		IsCreator:        e.IsCreator,
		IsFan:            e.IsFan,
		LastActiveRole:   string(e.LastActiveRole),
		TotalSubscribers: e.TotalSubscribers,
		MonthlyPrice:     e.MonthlyPrice,
		YearlyPrice:      e.YearlyPrice,
		StripeAccountID:  e.StripeAccountID,
		IsBlocked:        e.IsBlocked,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:               m.ID,
		UserID:           m.UserID,
		Title:            m.Title,
		Description:      m.Description,
		Type:             entity.PostType(m.Type),
		Status:           entity.PostStatus(m.Status),
		AccessIdentifier: entity.AccessIdentifier(m.AccessIdentifier),
		Price:            m.Price,
		Images:           []string(m.Images),
		Likes:            m.Likes,
		Comments:         m.Comments,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:               e.ID,
		UserID:           e.UserID,
		Title:            e.Title,
		Description:      e.Description,
		Type:             string(e.Type),
		Status:           string(e.Status),
		AccessIdentifier: string(e.AccessIdentifier),
		Price:            e.Price,
		Images:           e.Images,
		Likes:            e.Likes,
		Comments:         e.Comments,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToProductEntity(m *model.ProductModel) *entity.Product {
	if m == nil {
		return nil
	}

	return &entity.Product{
		ID:          m.ID,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		Kind:        entity.ProductKind(m.Kind),
		Images:      []string(m.Images),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToProductModel(e *entity.Product) *model.ProductModel {
	if e == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          e.ID,
		UserID:      e.UserID,
		CategoryID:  e.CategoryID,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		Stock:       e.Stock,
		Kind:        string(e.Kind),
		Images:      e.Images,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToSubscriptionEntity(m *model.SubscriptionModel) *entity.Subscription {
	if m == nil {
		return nil
	}

	return &entity.Subscription{
		ID:         m.ID,
		UserID:     m.UserID,
		CreatorID:  m.CreatorID,
		Tier:       entity.SubscriptionTier(m.Tier),
		Status:     entity.SubscriptionStatus(m.Status),
		StartDate:  m.StartDate,
		ExpiryDate: m.ExpiryDate,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToSubscriptionModel(e *entity.Subscription) *model.SubscriptionModel {
	if e == nil {
		return nil
	}

	return &model.SubscriptionModel{
		ID:         e.ID,
		UserID:     e.UserID,
		CreatorID:  e.CreatorID,
		Tier:       string(e.Tier),
		Status:     string(e.Status),
		StartDate:  e.StartDate,
		ExpiryDate: e.ExpiryDate,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToBlockEdgeEntity(m *model.BlockEdgeModel) *entity.BlockEdge {
	if m == nil {
		return nil
	}

	return &entity.BlockEdge{
		ID:        m.ID,
		BlockerID: m.BlockerID,
		BlockedID: m.BlockedID,
		CreatedAt: m.CreatedAt,
	}
}

func ToWalletEntity(m *model.WalletModel) *entity.Wallet {
	if m == nil {
		return nil
	}

	return &entity.Wallet{
		ID:        m.ID,
		UserID:    m.UserID,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToTransactionEntity(m *model.TransactionModel) *entity.Transaction {
	if m == nil {
		return nil
	}

	return &entity.Transaction{
		ID:            m.ID,
		UserID:        m.UserID,
		Type:          entity.TransactionType(m.Type),
		Status:        entity.TransactionStatus(m.Status),
		Amount:        m.Amount,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		Reference:     m.Reference,
		CreatedAt:     m.CreatedAt,
	}
}

func ToPaymentEntity(m *model.PaymentModel) *entity.Payment {
	if m == nil {
		return nil
	}

	return &entity.Payment{
		ID:             m.ID,
		UserID:         m.UserID,
		RecipientID:    m.RecipientID,
		PostID:         m.PostID,
		SubscriptionID: m.SubscriptionID,
		Purpose:        entity.PaymentPurpose(m.Purpose),
		Status:         entity.PaymentStatus(m.Status),
		Amount:         m.Amount,
		CreatedAt:      m.CreatedAt,
	}
}

func ToPaymentModel(e *entity.Payment) *model.PaymentModel {
	if e == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:             e.ID,
		UserID:         e.UserID,
		RecipientID:    e.RecipientID,
		PostID:         e.PostID,
		SubscriptionID: e.SubscriptionID,
		Purpose:        string(e.Purpose),
		Status:         string(e.Status),
		Amount:         e.Amount,
		CreatedAt:      e.CreatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		ParentID:  m.ParentID,
		Text:      m.Text,
		Likes:     m.Likes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToConversationEntity(m *model.ConversationModel) *entity.Conversation {
	if m == nil {
		return nil
	}

	return &entity.Conversation{
		ID:            m.ID,
		UserAID:       m.UserAID,
		UserBID:       m.UserBID,
		LastMessageAt: m.LastMessageAt,
		CreatedAt:     m.CreatedAt,
	}
}

func ToMessageEntity(m *model.MessageModel) *entity.Message {
	if m == nil {
		return nil
	}

	return &entity.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		RecipientID:    m.RecipientID,
		Text:           m.Text,
		Attachment:     m.Attachment,
		Seen:           m.Seen,
		CreatedAt:      m.CreatedAt,
	}
}

func ToOrderEntity(m *model.OrderModel) *entity.Order {
	if m == nil {
		return nil
	}

	return &entity.Order{
		ID:        m.ID,
		ProductID: m.ProductID,
		BuyerID:   m.BuyerID,
		SellerID:  m.SellerID,
		Quantity:  m.Quantity,
		Total:     m.Total,
		Status:    entity.OrderStatus(m.Status),
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

func ToReportEntity(m *model.ReportModel) *entity.Report {
	if m == nil {
		return nil
	}

	return &entity.Report{
		ID:         m.ID,
		ReporterID: m.ReporterID,
		ReportedID: m.ReportedID,
		Reason:     m.Reason,
		CreatedAt:  m.CreatedAt,
	}
}
