package repository

import (
	"edu_agent_backend/internal/model"

	"gorm.io/gorm"
)

type DoubtRepository struct {
	DB *gorm.DB
}

func NewDoubtRepository(db *gorm.DB) *DoubtRepository {
	return &DoubtRepository{DB: db}
}

func (r *DoubtRepository) Create(query *model.DoubtQuery) error {
	return r.DB.Create(query).Error
}

func (r *DoubtRepository) ListByStudent(studentRef uint, limit int) ([]model.DoubtQuery, error) {
	var queries []model.DoubtQuery
	q := r.DB.Where("student_ref = ?", studentRef).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&queries).Error
	return queries, err
}
