package persistent

import (
	"fanbase/internal/entity"
	"fanbase/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlockRepository interface {
	CreateEdge(blockerID, blockedID string) (bool, error)
	DeleteEdge(blockerID, blockedID string) (bool, error)
	Exists(blockerID, blockedID string) (bool, error)
	// BlockedUserIDs returns every user blocked by or blocking the given
	// user. Feeds and search treat the edge as mutual.
	BlockedUserIDs(userID string) ([]string, error)
	ListBlockedUsers(blockerID string) ([]*entity.User, error)
}

type blockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

func (r *blockRepository) CreateEdge(blockerID, blockedID string) (bool, error) {
	edge := &model.BlockEdgeModel{BlockerID: blockerID, BlockedID: blockedID}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(edge)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *blockRepository) DeleteEdge(blockerID, blockedID string) (bool, error) {
	res := r.db.Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&model.BlockEdgeModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *blockRepository) Exists(blockerID, blockedID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.BlockEdgeModel{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&count).Error
	return count > 0, err
}

func (r *blockRepository) BlockedUserIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Raw(`
		SELECT blocked_id FROM block_list WHERE blocker_id = ?
		UNION
		SELECT blocker_id FROM block_list WHERE blocked_id = ?`,
		userID, userID).Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *blockRepository) ListBlockedUsers(blockerID string) ([]*entity.User, error) {
	var ms []model.UserModel
	err := r.db.Model(&model.UserModel{}).
		Joins("JOIN block_list ON block_list.blocked_id = users.id").
		Where("block_list.blocker_id = ?", blockerID).
		Order("block_list.created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(ms))
	for i := range ms {
		users[i] = ToUserEntity(&ms[i])
	}
	return users, nil
}
