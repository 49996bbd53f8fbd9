package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"resort-backend/availability"
	"resort-backend/models"
)

// RoomService wraps *gorm.DB for room catalog operations and the two
// resolver-backed queries the dashboards use.
type RoomService struct {
	DB       *gorm.DB
	resolver availability.Resolver
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db, resolver: newResolver()}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) Create(room *models.Room) error {
	room.Number = strings.TrimSpace(room.Number)
	if room.Number == "" {
		return errors.New("validation: room number is required")
	}
	if room.Status == "" {
		room.Status = "Available"
	}
	if err := s.DB.Create(room).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return fmt.Errorf("duplicate_room_number: %s", room.Number)
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) Update(id uint, updates map[string]interface{}) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, errors.New("room_not_found")
		}
		return room, fmt.Errorf("db error loading room %d: %w", id, err)
	}
	if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
		return room, fmt.Errorf("failed to update room %d: %w", id, err)
	}
	return room, nil
}

func (s *RoomService) Delete(id uint) error {
	if err := s.DB.Delete(&models.Room{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, err)
	}
	return nil
}

// Availability answers "which rooms are free for [checkIn, checkOut)".
// Interval ordering is validated here, at the edge: the resolver's
// contract assumes a well-formed interval.
func (s *RoomService) Availability(checkIn, checkOut string) (map[int64]bool, error) {
	ci, err := availability.ParseDate(checkIn)
	if err != nil {
		return nil, fmt.Errorf("validation: invalid check_in: %w", err)
	}
	co, err := availability.ParseDate(checkOut)
	if err != nil {
		return nil, fmt.Errorf("validation: invalid check_out: %w", err)
	}
	if !ci.Before(co.Time) {
		return nil, errors.New("validation: check_out must be after check_in")
	}

	rooms, bookings, err := LoadSnapshot(s.DB)
	if err != nil {
		return nil, err
	}
	return s.resolver.Availability(rooms, bookings, ci, co), nil
}

// Occupied returns the rooms currently in targetStatus (default
// checked-in), reconciled across the catalog and both booking feeds.
func (s *RoomService) Occupied(targetStatus string) ([]availability.Room, error) {
	rooms, bookings, err := LoadSnapshot(s.DB)
	if err != nil {
		return nil, err
	}
	return s.resolver.OccupiedRooms(rooms, bookings, targetStatus), nil
}
