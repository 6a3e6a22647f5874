package persistent

import (
	"fanbase/internal/entity"
	"fanbase/internal/model"

	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(report *entity.Report) error
	List(limit, offset int) ([]*entity.Report, int64, error)
	CountByReported(reportedID string) (int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *entity.Report) error {
	m := &model.ReportModel{
		ReporterID: report.ReporterID,
		ReportedID: report.ReportedID,
		Reason:     report.Reason,
	}
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	report.ID = m.ID
	report.CreatedAt = m.CreatedAt
	return nil
}

func (r *reportRepository) List(limit, offset int) ([]*entity.Report, int64, error) {
	var total int64
	if err := r.db.Model(&model.ReportModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []model.ReportModel
	if err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	reports := make([]*entity.Report, len(ms))
	for i := range ms {
		reports[i] = ToReportEntity(&ms[i])
	}
	return reports, total, nil
}

func (r *reportRepository) CountByReported(reportedID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.ReportModel{}).Where("reported_id = ?", reportedID).Count(&count).Error
	return count, err
}
