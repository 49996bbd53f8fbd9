package models

import (
	"time"

	"gorm.io/gorm"
)

type Expense struct {
	gorm.Model
	Category    string     `json:"category" gorm:"size:64"`
	Amount      float64    `json:"amount"`
	Date        *time.Time `json:"date,omitempty" gorm:"column:date"`
	Description string     `json:"description" gorm:"type:text"`

	EmployeeID uint     `gorm:"index;column:employee_id" json:"employee_id"`
	Employee   Employee `gorm:"foreignKey:EmployeeID;references:ID" json:"employee,omitempty"`

	// Relative path under uploads/; empty when no receipt was attached.
	ReceiptPath string `gorm:"column:receipt_path;size:512" json:"receipt_path,omitempty"`
}
