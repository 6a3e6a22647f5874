package persistent

import (
	"time"

	"fanbase/internal/entity"
	"fanbase/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateFields(id string, fields map[string]interface{}) error
	Search(query string, excludedIDs []string, limit, offset int) ([]*entity.User, error)
	List(limit, offset int) ([]*entity.User, int64, error)
	Count() (int64, error)
	SetOTP(id, code string, expiresAt time.Time) error
	GetOTP(id string) (string, time.Time, error)
	ClearOTP(id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	m := ToUserModel(user)
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var m model.UserModel
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&m), nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var m model.UserModel
	if err := r.db.Where("email = ?", email).First(&m).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&m), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var m model.UserModel
	if err := r.db.Where("username = ?", username).First(&m).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&m), nil
}

func (r *userRepository) Update(user *entity.User) error {
	return r.db.Save(ToUserModel(user)).Error
}

func (r *userRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).Updates(fields).Error
}

func (r *userRepository) Search(query string, excludedIDs []string, limit, offset int) ([]*entity.User, error) {
	q := r.db.Model(&model.UserModel{}).
		Where("(username ILIKE ? OR name ILIKE ?)", "%"+query+"%", "%"+query+"%").
		Where("is_blocked = ?", false)
	if len(excludedIDs) > 0 {
		q = q.Where("id NOT IN ?", excludedIDs)
	}

	var ms []model.UserModel
	if err := q.Order("username ASC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(ms))
	for i := range ms {
		users[i] = ToUserEntity(&ms[i])
	}
	return users, nil
}

func (r *userRepository) List(limit, offset int) ([]*entity.User, int64, error) {
	var total int64
	if err := r.db.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []model.UserModel
	if err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entity.User, len(ms))
	for i := range ms {
		users[i] = ToUserEntity(&ms[i])
	}
	return users, total, nil
}

func (r *userRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.UserModel{}).Count(&total).Error
	return total, err
}

func (r *userRepository) SetOTP(id, code string, expiresAt time.Time) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).
		Updates(map[string]interface{}{"otp_code": code, "otp_expires_at": expiresAt}).Error
}

func (r *userRepository) GetOTP(id string) (string, time.Time, error) {
	var m model.UserModel
	if err := r.db.Select("otp_code", "otp_expires_at").Where("id = ?", id).First(&m).Error; err != nil {
		return "", time.Time{}, err
	}
	return m.OTPCode, m.OTPExpiresAt, nil
}

func (r *userRepository) ClearOTP(id string) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).
		Updates(map[string]interface{}{"otp_code": "", "otp_expires_at": time.Time{}}).Error
}
