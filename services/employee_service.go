package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"resort-backend/models"
)

type EmployeeService struct {
	DB *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{DB: db}
}

func (s *EmployeeService) GetAll() ([]models.Employee, error) {
	var list []models.Employee
	if err := s.DB.Order("name ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve employees: %w", err)
	}
	return list, nil
}

func (s *EmployeeService) Create(emp *models.Employee) error {
	emp.Name = strings.TrimSpace(emp.Name)
	if emp.Name == "" {
		return errors.New("validation: employee name is required")
	}
	if err := s.DB.Create(emp).Error; err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) Delete(id uint) error {
	if err := s.DB.Delete(&models.Employee{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
