package repository

import (
	"edu_agent_backend/internal/model"

	"gorm.io/gorm"
)

// RecordRepository is the read path for the profiling engine: records are
// append-only and handed to the engine as a plain slice.
type RecordRepository struct {
	DB *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{DB: db}
}

func (r *RecordRepository) CreateBatch(records []model.AcademicRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.DB.Create(&records).Error
}

func (r *RecordRepository) ListByStudent(studentRef uint) ([]model.AcademicRecord, error) {
	var records []model.AcademicRecord
	err := r.DB.Where("student_ref = ?", studentRef).
		Order("assessment_date asc, id asc").
		Find(&records).Error
	return records, err
}

func (r *RecordRepository) CountByStudent(studentRef uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AcademicRecord{}).Where("student_ref = ?", studentRef).Count(&count).Error
	return count, err
}
