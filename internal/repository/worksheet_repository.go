package repository

import (
	"edu_agent_backend/internal/model"

	"gorm.io/gorm"
)

type WorksheetRepository struct {
	DB *gorm.DB
}

func NewWorksheetRepository(db *gorm.DB) *WorksheetRepository {
	return &WorksheetRepository{DB: db}
}

func (r *WorksheetRepository) Create(worksheet *model.Worksheet) error {
	return r.DB.Create(worksheet).Error
}

func (r *WorksheetRepository) FindByID(id string) (*model.Worksheet, error) {
	var w model.Worksheet
	err := r.DB.Where("id = ?", id).First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WorksheetRepository) ListByStudent(studentRef uint, page, limit int) ([]model.Worksheet, int64, error) {
	var worksheets []model.Worksheet
	var total int64

	query := r.DB.Model(&model.Worksheet{}).Where("student_ref = ?", studentRef)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&worksheets).Error
	return worksheets, total, err
}
