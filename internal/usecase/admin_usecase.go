package usecase

import (
	"errors"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/pkg/logger"

	"gorm.io/gorm"
)

// DashboardStats is the admin landing-page summary.
type DashboardStats struct {
	Users    int64 `json:"users"`
	Posts    int64 `json:"posts"`
	Products int64 `json:"products"`
	Reports  int64 `json:"reports"`
}

type AdminUseCase interface {
	Dashboard() (*DashboardStats, error)
	Users(page, limit int) ([]*entity.User, int64, error)
	SetUserBlocked(userID string, blocked bool) error
	// Reports lists filed reports with how many times each reported
	// user has been reported overall.
	Reports(page, limit int) ([]*entity.Report, int64, error)
}

type adminUseCase struct {
	userRepo   persistent.UserRepository
	reportRepo persistent.ReportRepository
	feedRepo   persistent.FeedRepository
	log        *logger.Logger
}

func NewAdminUseCase(
	userRepo persistent.UserRepository,
	reportRepo persistent.ReportRepository,
	feedRepo persistent.FeedRepository,
	log *logger.Logger,
) AdminUseCase {
	return &adminUseCase{userRepo: userRepo, reportRepo: reportRepo, feedRepo: feedRepo, log: log}
}

func (uc *adminUseCase) Dashboard() (*DashboardStats, error) {
	users, err := uc.userRepo.Count()
	if err != nil {
		return nil, err
	}
	posts, err := uc.feedRepo.CountActivePosts(nil, nil)
	if err != nil {
		return nil, err
	}
	products, err := uc.feedRepo.CountProducts(nil)
	if err != nil {
		return nil, err
	}
	_, reports, err := uc.reportRepo.List(1, 0)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{Users: users, Posts: posts, Products: products, Reports: reports}, nil
}

func (uc *adminUseCase) Users(page, limit int) ([]*entity.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.userRepo.List(limit, (page-1)*limit)
}

func (uc *adminUseCase) SetUserBlocked(userID string, blocked bool) error {
	if _, err := uc.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return uc.userRepo.UpdateFields(userID, map[string]interface{}{"is_blocked": blocked})
}

func (uc *adminUseCase) Reports(page, limit int) ([]*entity.Report, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	reports, total, err := uc.reportRepo.List(limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	counted := make(map[string]int64)
	for _, report := range reports {
		count, ok := counted[report.ReportedID]
		if !ok {
			count, err = uc.reportRepo.CountByReported(report.ReportedID)
			if err != nil {
				return nil, 0, err
			}
			counted[report.ReportedID] = count
		}
		report.ReportedCount = int(count)
	}
	return reports, total, nil
}
