package models

import (
	"time"

	"gorm.io/gorm"
)

type Package struct {
	gorm.Model
	Name        string  `json:"name" gorm:"size:191"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price"`
	Nights      int     `json:"nights" gorm:"default:1"`
	MaxGuests   int     `json:"max_guests" gorm:"column:max_guests;default:2"`
}

// PackageBooking mirrors Booking but references its rooms through
// wrapper rows; the serialized shape ({"room_id": N, "room": {...}})
// intentionally differs from regular bookings, matching what the
// booking frontends have always consumed.
type PackageBooking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PackageID uint    `gorm:"index;column:package_id" json:"package_id"`
	Package   Package `gorm:"foreignKey:PackageID;references:ID" json:"package,omitempty"`

	GuestName   string `gorm:"column:guest_name;size:191" json:"guest_name"`
	GuestMobile string `gorm:"column:guest_mobile;size:32" json:"guest_mobile,omitempty"`
	GuestEmail  string `gorm:"column:guest_email;size:191" json:"guest_email,omitempty"`

	Status   string     `gorm:"column:status;size:64" json:"status"`
	CheckIn  *time.Time `gorm:"column:check_in" json:"check_in,omitempty"`
	CheckOut *time.Time `gorm:"column:check_out" json:"check_out,omitempty"`

	Adults   int `gorm:"column:adults;default:1" json:"adults"`
	Children int `gorm:"column:children;default:0" json:"children"`

	Rooms []PackageBookingRoom `gorm:"foreignKey:PackageBookingID" json:"rooms"`
}

type PackageBookingRoom struct {
	gorm.Model
	PackageBookingID uint `gorm:"index;column:package_booking_id" json:"package_booking_id"`
	RoomID           uint `gorm:"index;column:room_id" json:"room_id"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
