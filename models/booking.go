package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GuestName   string `gorm:"column:guest_name;size:191" json:"guest_name"`
	GuestMobile string `gorm:"column:guest_mobile;size:32" json:"guest_mobile,omitempty"`
	GuestEmail  string `gorm:"column:guest_email;size:191" json:"guest_email,omitempty"`

	Status   string     `gorm:"column:status;size:64" json:"status"`
	CheckIn  *time.Time `gorm:"column:check_in" json:"check_in,omitempty"`
	CheckOut *time.Time `gorm:"column:check_out" json:"check_out,omitempty"`

	Adults   int `gorm:"column:adults;default:1" json:"adults"`
	Children int `gorm:"column:children;default:0" json:"children"`

	// Draft guest list captured at booking time, finalized at check-in.
	AccompanyingGuests datatypes.JSON `gorm:"column:accompanying_guests" json:"accompanying_guests,omitempty"`

	Rooms []BookingRoom `gorm:"foreignKey:BookingID" json:"rooms"`
}

type BookingRoom struct {
	gorm.Model
	BookingID uint `gorm:"index;column:booking_id" json:"booking_id"`
	RoomID    uint `gorm:"index;column:room_id" json:"room_id"`

	Nights int    `gorm:"column:nights;default:0" json:"nights,omitempty"`
	Status string `gorm:"column:status;size:64" json:"status,omitempty"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
