package models

import (
	"gorm.io/gorm"

	"resort-backend/availability"
)

type Room struct {
	gorm.Model

	// Frontends send/expect "number"; labels like "003" keep their padding.
	Number string `json:"number" gorm:"column:number;uniqueIndex;type:varchar(50)"`

	Type        string  `json:"type" gorm:"type:varchar(50)"`
	Status      string  `json:"status" gorm:"size:64"`
	Floor       string  `json:"floor" gorm:"type:varchar(10)"`
	Price       float64 `json:"price"`
	Adults      int     `json:"adults" gorm:"default:2"`
	Children    int     `json:"children" gorm:"default:0"`
	Description string  `json:"description" gorm:"type:text"`
}

// Snapshot converts the row into the resolver's catalog record.
func (r Room) Snapshot() availability.Room {
	return availability.Room{
		ID:       int64(r.ID),
		Number:   r.Number,
		Type:     r.Type,
		Status:   r.Status,
		Adults:   r.Adults,
		Children: r.Children,
		Price:    r.Price,
	}
}
