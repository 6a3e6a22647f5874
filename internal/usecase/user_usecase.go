package usecase

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"time"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/pkg/jwt"
	"fanbase/pkg/logger"
	"fanbase/pkg/s3"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const otpTTL = 10 * time.Minute

// MailSender is satisfied by *mailer.Mailer.
type MailSender interface {
	SendOTP(to, code string) error
}

type UserUseCase interface {
	Register(name, username, email, password string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetProfile(viewerID, userID string) (*entity.User, error)
	UpdateProfile(userID string, updates map[string]interface{}) (*entity.User, error)
	SwitchRole(userID string, role entity.Role) (*entity.User, error)
	UpdatePassword(userID, oldPassword, newPassword string) error

	Block(blockerID, blockedID string) error
	Unblock(blockerID, blockedID string) error
	BlockedUsers(blockerID string) ([]*entity.User, error)
	Report(reporterID, reportedID, reason string) error

	SendOTP(email string) error
	VerifyOTP(email, code string) (string, error)
	ResetPassword(email, code, newPassword string) error

	Search(viewerID, query string, page, limit int) ([]*entity.User, error)
	UploadImage(userID, field, filename string, file io.Reader, contentType string) (string, error)
}

type userUseCase struct {
	userRepo   persistent.UserRepository
	blockRepo  persistent.BlockRepository
	reportRepo persistent.ReportRepository
	postRepo   persistent.PostRepository
	subRepo    persistent.SubscriptionRepository
	jwtService *jwt.Service
	s3Client   *s3.Client
	mail       MailSender
	log        *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	blockRepo persistent.BlockRepository,
	reportRepo persistent.ReportRepository,
	postRepo persistent.PostRepository,
	subRepo persistent.SubscriptionRepository,
	jwtService *jwt.Service,
	s3Client *s3.Client,
	mail MailSender,
	log *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:   userRepo,
		blockRepo:  blockRepo,
		reportRepo: reportRepo,
		postRepo:   postRepo,
		subRepo:    subRepo,
		jwtService: jwtService,
		s3Client:   s3Client,
		mail:       mail,
		log:        log,
	}
}

func (uc *userUseCase) Register(name, username, email, password string) (*entity.User, string, error) {
	if email == "" || username == "" || len(password) < 8 {
		return nil, "", ErrInvalidInput
	}

	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	}
	if _, err := uc.userRepo.GetByUsername(username); err == nil {
		return nil, "", ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:           name,
		Username:       username,
		Email:          email,
		Password:       string(hashed),
		IsFan:          true,
		LastActiveRole: entity.RoleFan,
		MonthlyPrice:   9,
		YearlyPrice:    99,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.LastActiveRole))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *userUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if user.IsBlocked {
		return nil, "", ErrForbidden
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.LastActiveRole))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *userUseCase) GetProfile(viewerID, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if user.IsCreator {
		count, err := uc.postRepo.CountByUser(userID)
		if err != nil {
			return nil, err
		}
		user.PostCount = int(count)

		if viewerID != "" && viewerID != userID {
			subscribed, err := uc.subRepo.IsActivelySubscribed(viewerID, userID, time.Now())
			if err != nil {
				return nil, err
			}
			user.IsSubscribed = subscribed
		}
	}
	return user, nil
}

// UpdateProfile applies whitelisted fields only; credentials and role
// flags never pass through here.
func (uc *userUseCase) UpdateProfile(userID string, updates map[string]interface{}) (*entity.User, error) {
	allowed := map[string]bool{
		"name": true, "bio": true, "avatar": true, "cover_image": true,
		"monthly_price": true, "yearly_price": true,
	}
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, ErrInvalidInput
	}

	if err := uc.userRepo.UpdateFields(userID, filtered); err != nil {
		return nil, err
	}
	return uc.userRepo.GetByID(userID)
}

func (uc *userUseCase) SwitchRole(userID string, role entity.Role) (*entity.User, error) {
	if role != entity.RoleFan && role != entity.RoleCreator {
		return nil, ErrInvalidInput
	}

	updates := map[string]interface{}{"last_active_role": string(role)}
	if role == entity.RoleCreator {
		updates["is_creator"] = true
	}
	if err := uc.userRepo.UpdateFields(userID, updates); err != nil {
		return nil, err
	}
	return uc.userRepo.GetByID(userID)
}

func (uc *userUseCase) UpdatePassword(userID, oldPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrInvalidInput
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return uc.userRepo.UpdateFields(userID, map[string]interface{}{"password": string(hashed)})
}

// Block creates the directed edge. Blocking yourself is a no-op.
func (uc *userUseCase) Block(blockerID, blockedID string) error {
	if blockerID == blockedID {
		return nil
	}
	if _, err := uc.userRepo.GetByID(blockedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	created, err := uc.blockRepo.CreateEdge(blockerID, blockedID)
	if err != nil {
		return err
	}
	if !created {
		return ErrAlreadyBlocked
	}
	return nil
}

func (uc *userUseCase) Unblock(blockerID, blockedID string) error {
	deleted, err := uc.blockRepo.DeleteEdge(blockerID, blockedID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (uc *userUseCase) BlockedUsers(blockerID string) ([]*entity.User, error) {
	return uc.blockRepo.ListBlockedUsers(blockerID)
}

// Report files the report and blocks the reported user in the same
// breath.
func (uc *userUseCase) Report(reporterID, reportedID, reason string) error {
	if reporterID == reportedID || reason == "" {
		return ErrInvalidInput
	}
	if _, err := uc.userRepo.GetByID(reportedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	report := &entity.Report{ReporterID: reporterID, ReportedID: reportedID, Reason: reason}
	if err := uc.reportRepo.Create(report); err != nil {
		return err
	}

	if _, err := uc.blockRepo.CreateEdge(reporterID, reportedID); err != nil {
		uc.log.Warn("Failed to block reported user %s: %v", reportedID, err)
	}
	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (uc *userUseCase) SendOTP(email string) error {
	user, err := uc.userRepo.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	if err := uc.userRepo.SetOTP(user.ID, code, time.Now().Add(otpTTL)); err != nil {
		return err
	}
	return uc.mail.SendOTP(email, code)
}

func (uc *userUseCase) verifyOTP(email, code string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidOTP
	}
	if err != nil {
		return nil, err
	}

	stored, expiresAt, err := uc.userRepo.GetOTP(user.ID)
	if err != nil {
		return nil, err
	}
	if stored == "" || stored != code || time.Now().After(expiresAt) {
		return nil, ErrInvalidOTP
	}
	return user, nil
}

func (uc *userUseCase) VerifyOTP(email, code string) (string, error) {
	user, err := uc.verifyOTP(email, code)
	if err != nil {
		return "", err
	}
	return uc.jwtService.GenerateToken(user.ID, string(user.LastActiveRole))
}

func (uc *userUseCase) ResetPassword(email, code, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrInvalidInput
	}

	user, err := uc.verifyOTP(email, code)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := uc.userRepo.UpdateFields(user.ID, map[string]interface{}{"password": string(hashed)}); err != nil {
		return err
	}
	return uc.userRepo.ClearOTP(user.ID)
}

func (uc *userUseCase) Search(viewerID, query string, page, limit int) ([]*entity.User, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	excluded := []string{}
	if viewerID != "" {
		blocked, err := uc.blockRepo.BlockedUserIDs(viewerID)
		if err != nil {
			return nil, err
		}
		excluded = append(blocked, viewerID)
	}
	return uc.userRepo.Search(query, excluded, limit, (page-1)*limit)
}

func (uc *userUseCase) UploadImage(userID, field, filename string, file io.Reader, contentType string) (string, error) {
	if field != "avatar" && field != "cover_image" {
		return "", ErrInvalidInput
	}

	key := fmt.Sprintf("users/%s/%s_%s", userID, uuid.New().String(), filename)
	url, err := uc.s3Client.UploadFile(key, file, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	if err := uc.userRepo.UpdateFields(userID, map[string]interface{}{field: url}); err != nil {
		return "", err
	}
	return url, nil
}
