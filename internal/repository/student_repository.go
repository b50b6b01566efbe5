package repository

import (
	"edu_agent_backend/internal/model"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(student *model.Student) error {
	return r.DB.Create(student).Error
}

func (r *StudentRepository) FindByID(id uint) (*model.Student, error) {
	var s model.Student
	err := r.DB.First(&s, id).Error
	return &s, err
}

func (r *StudentRepository) FindByStudentID(studentID string) (*model.Student, error) {
	var s model.Student
	err := r.DB.Where("student_id = ?", studentID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) ExistsByStudentID(studentID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Student{}).Where("student_id = ?", studentID).Count(&count).Error
	return count > 0, err
}

func (r *StudentRepository) Update(student *model.Student) error {
	return r.DB.Save(student).Error
}
