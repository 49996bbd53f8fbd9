package models

import "gorm.io/gorm"

type Employee struct {
	gorm.Model
	Name   string `json:"name" gorm:"size:191"`
	Role   string `json:"role" gorm:"size:64"`
	Mobile string `json:"mobile" gorm:"size:32"`
	Email  string `json:"email" gorm:"size:191"`
}
