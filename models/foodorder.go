package models

import "gorm.io/gorm"

type FoodItem struct {
	gorm.Model
	Name        string  `json:"name" gorm:"size:191"`
	Description string  `json:"description" gorm:"type:text"`
	Category    string  `json:"category" gorm:"size:64"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available" gorm:"default:true"`
}

type FoodOrder struct {
	gorm.Model
	RoomID uint `gorm:"index;column:room_id" json:"room_id"`
	Room   Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`

	// Captured from the room's active booking at order time.
	GuestName string `gorm:"column:guest_name;size:191" json:"guest_name,omitempty"`

	AssignedEmployeeID uint     `gorm:"index;column:assigned_employee_id" json:"assigned_employee_id"`
	Employee           Employee `gorm:"foreignKey:AssignedEmployeeID;references:ID" json:"employee,omitempty"`

	Status string  `gorm:"column:status;size:32;default:pending" json:"status"`
	Total  float64 `gorm:"column:total" json:"total"`

	Items []FoodOrderItem `gorm:"foreignKey:FoodOrderID" json:"items"`
}

type FoodOrderItem struct {
	gorm.Model
	FoodOrderID uint `gorm:"index;column:food_order_id" json:"food_order_id"`
	FoodItemID  uint `gorm:"index;column:food_item_id" json:"food_item_id"`

	Quantity int     `gorm:"column:quantity;default:1" json:"quantity"`
	Price    float64 `gorm:"column:price" json:"price"`

	FoodItem FoodItem `gorm:"foreignKey:FoodItemID;references:ID" json:"food_item,omitempty"`
}
