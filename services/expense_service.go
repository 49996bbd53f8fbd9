package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"resort-backend/availability"
	"resort-backend/models"
)

// ExpenseService records operating expenses against employees.
type ExpenseService struct {
	DB *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{DB: db}
}

func (s *ExpenseService) Create(category string, amount float64, date, description string, employeeID uint, receiptPath string) (models.Expense, error) {
	var expense models.Expense

	category = strings.TrimSpace(category)
	if category == "" {
		return expense, errors.New("validation: category is required")
	}
	if amount <= 0 {
		return expense, errors.New("validation: amount must be positive")
	}

	var emp models.Employee
	if err := s.DB.First(&emp, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return expense, errors.New("employee_not_found")
		}
		return expense, fmt.Errorf("db error checking employee %d: %w", employeeID, err)
	}

	var when *time.Time
	if strings.TrimSpace(date) != "" {
		d, err := availability.ParseDate(date)
		if err != nil {
			return expense, fmt.Errorf("validation: invalid date: %w", err)
		}
		t := d.Time
		when = &t
	}

	expense = models.Expense{
		Category:    category,
		Amount:      amount,
		Date:        when,
		Description: strings.TrimSpace(description),
		EmployeeID:  employeeID,
		ReceiptPath: receiptPath,
	}
	if err := s.DB.Create(&expense).Error; err != nil {
		return expense, fmt.Errorf("failed to create expense: %w", err)
	}

	if err := s.DB.Preload("Employee").First(&expense, expense.ID).Error; err != nil {
		return expense, err
	}
	return expense, nil
}

func (s *ExpenseService) GetAll(skip, limit int) ([]models.Expense, error) {
	if limit <= 0 {
		limit = 100
	}
	var list []models.Expense
	if err := s.DB.
		Preload("Employee").
		Order("created_at DESC").
		Offset(skip).Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve expenses: %w", err)
	}
	return list, nil
}

func (s *ExpenseService) Get(id uint) (models.Expense, error) {
	var expense models.Expense
	if err := s.DB.Preload("Employee").First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return expense, errors.New("expense_not_found")
		}
		return expense, fmt.Errorf("db error loading expense %d: %w", id, err)
	}
	return expense, nil
}
