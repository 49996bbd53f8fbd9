package models

import (
	"time"

	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	Name        string  `json:"name" gorm:"size:191"`
	Description string  `json:"description" gorm:"type:text"`
	Charges     float64 `json:"charges"`

	Images []ServiceImage `gorm:"foreignKey:ServiceID" json:"images"`
}

type ServiceImage struct {
	gorm.Model
	ServiceID uint   `gorm:"index;column:service_id" json:"service_id"`
	ImageURL  string `gorm:"column:image_url;size:512" json:"image_url"`
}

// AssignedService ties a service to an employee and a checked-in room.
type AssignedService struct {
	gorm.Model
	ServiceID  uint      `gorm:"index;column:service_id" json:"service_id"`
	EmployeeID uint      `gorm:"index;column:employee_id" json:"employee_id"`
	RoomID     uint      `gorm:"index;column:room_id" json:"room_id"`
	Status     string    `gorm:"column:status;size:32;default:pending" json:"status"`
	AssignedAt time.Time `gorm:"column:assigned_at" json:"assigned_at"`

	Service  Service  `gorm:"foreignKey:ServiceID;references:ID" json:"service,omitempty"`
	Employee Employee `gorm:"foreignKey:EmployeeID;references:ID" json:"employee,omitempty"`
	Room     Room     `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
