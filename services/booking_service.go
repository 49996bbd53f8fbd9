package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"resort-backend/availability"
	"resort-backend/models"
)

// BookingService wraps *gorm.DB for regular-booking logic.
type BookingService struct {
	DB       *gorm.DB
	resolver availability.Resolver
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db, resolver: newResolver()}
}

// helper: keep only safe fields from the draft guest list
func normalizeGuestList(guestList []map[string]interface{}) []map[string]interface{} {
	if len(guestList) == 0 {
		return []map[string]interface{}{}
	}
	out := make([]map[string]interface{}, 0, len(guestList))
	for _, g := range guestList {
		name := getStringFromMap(g, "name", "fullName", "full_name")
		typ := getStringFromMap(g, "type", "guestType", "guest_type")
		if name == "" {
			continue
		}
		if typ == "" {
			typ = "Adult"
		}
		out = append(out, map[string]interface{}{
			"fullName": name,
			"type":     typ,
		})
	}
	return out
}

func getStringFromMap(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			if s, ok2 := v.(string); ok2 {
				return strings.TrimSpace(s)
			}
			return strings.TrimSpace(fmt.Sprintf("%v", v))
		}
	}
	return ""
}

// parseStayDates validates the requested interval at the edge so the
// resolver never sees a malformed pair.
func parseStayDates(checkIn, checkOut string) (availability.Date, availability.Date, error) {
	ci, err := availability.ParseDate(checkIn)
	if err != nil {
		return availability.Date{}, availability.Date{}, fmt.Errorf("validation: invalid check_in format: %w", err)
	}
	co, err := availability.ParseDate(checkOut)
	if err != nil {
		return availability.Date{}, availability.Date{}, fmt.Errorf("validation: invalid check_out format: %w", err)
	}
	if !ci.Before(co.Time) {
		return availability.Date{}, availability.Date{}, errors.New("validation: check_out must be after check_in")
	}
	return ci, co, nil
}

// CreateBooking creates a multi-room booking after confirming every
// requested room is free for the interval.
func (s *BookingService) CreateBooking(
	guestName, guestMobile, guestEmail string,
	checkIn, checkOut string,
	roomIDs []uint,
	adults, children int,
	guestList []map[string]interface{},
) (models.Booking, error) {

	var result models.Booking

	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return result, errors.New("validation: guest name is required")
	}
	if len(roomIDs) == 0 {
		return result, errors.New("validation: no room ids provided")
	}
	if adults <= 0 {
		adults = 1
	}
	if children < 0 {
		children = 0
	}

	ci, co, err := parseStayDates(checkIn, checkOut)
	if err != nil {
		return result, err
	}

	// validate rooms exist
	for _, rid := range roomIDs {
		if rid == 0 {
			return result, errors.New("validation: invalid room id 0 in roomIDs")
		}
		var rm models.Room
		if err := s.DB.First(&rm, rid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return result, fmt.Errorf("validation: room %d not found", rid)
			}
			return result, fmt.Errorf("db error checking room %d: %w", rid, err)
		}
	}

	normalizedGuests := normalizeGuestList(guestList)
	accompanyingJSON, _ := json.Marshal(normalizedGuests) // best-effort

	nights := int(co.Sub(ci.Time).Hours() / 24)
	if nights <= 0 {
		nights = 1
	}

	var bookingID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		// availability check and insert must see the same state, so the
		// snapshot is read through tx; a check done before the
		// transaction can race a concurrent create for the same room
		if err := ensureRoomsAvailable(tx, s.resolver, roomIDs, ci, co); err != nil {
			return err
		}

		ciT, coT := ci.Time, co.Time
		booking := models.Booking{
			GuestName:          guestName,
			GuestMobile:        strings.TrimSpace(guestMobile),
			GuestEmail:         strings.TrimSpace(guestEmail),
			Status:             "Booked",
			CheckIn:            &ciT,
			CheckOut:           &coT,
			Adults:             adults,
			Children:           children,
			AccompanyingGuests: datatypes.JSON(accompanyingJSON),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		bookingID = booking.ID

		for _, rid := range roomIDs {
			br := models.BookingRoom{
				BookingID: booking.ID,
				RoomID:    rid,
				Nights:    nights,
				Status:    "Booked",
			}
			if err := tx.Create(&br).Error; err != nil {
				return fmt.Errorf("failed to create booking_room for room %d: %w", rid, err)
			}
			if err := tx.Model(&models.Room{}).
				Where("id = ?", rid).
				Updates(map[string]interface{}{"status": "Booked"}).Error; err != nil {
				return fmt.Errorf("failed to update room %d status: %w", rid, err)
			}
		}
		return nil
	})
	if txErr != nil {
		return result, txErr
	}

	if err := s.DB.Preload("Rooms").Preload("Rooms.Room").First(&result, bookingID).Error; err != nil {
		return result, err
	}
	if result.Rooms == nil {
		result.Rooms = []models.BookingRoom{}
	}
	return result, nil
}

func (s *BookingService) GetAllWithRelations() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Rooms").
		Preload("Rooms.Room").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	for i := range list {
		if list[i].Rooms == nil {
			list[i].Rooms = []models.BookingRoom{}
		}
	}
	return list, nil
}

func (s *BookingService) GetDetails(bookingID uint) (*models.Booking, error) {
	var bk models.Booking
	if err := s.DB.Preload("Rooms.Room").First(&bk, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to retrieve booking details: %w", err)
	}
	return &bk, nil
}

// CheckInBooking marks a booked stay as checked in and flips its rooms.
func (s *BookingService) CheckInBooking(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Preload("Rooms").First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}
		if availability.NormalizeStatus(booking.Status) != availability.StatusBooked {
			return errors.New("not_booked")
		}

		now := time.Now().UTC()
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":   "Checked-In",
			"check_in": now,
		}).Error; err != nil {
			return err
		}
		for _, br := range booking.Rooms {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", br.RoomID).
				Updates(map[string]interface{}{"status": "Checked-In"}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BookingService) CheckoutBooking(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Preload("Rooms").First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}
		if availability.NormalizeStatus(booking.Status) != availability.StatusCheckedIn {
			return errors.New("not_checked_in")
		}

		now := time.Now().UTC()
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":    "Checked-Out",
			"check_out": now,
		}).Error; err != nil {
			return err
		}
		for _, br := range booking.Rooms {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", br.RoomID).
				Updates(map[string]interface{}{"status": "Available"}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BookingService) CancelBooking(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Preload("Rooms").First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}
		switch availability.NormalizeStatus(booking.Status) {
		case availability.StatusCheckedOut, availability.StatusCancelled:
			return errors.New("booking_closed")
		}

		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status": "Cancelled",
		}).Error; err != nil {
			return err
		}
		for _, br := range booking.Rooms {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", br.RoomID).
				Updates(map[string]interface{}{"status": "Available"}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BookingService) DeleteBooking(bookingID uint) error {
	if err := s.DB.Delete(&models.Booking{}, bookingID).Error; err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

// ConflictReport scans every active booking (regular and package) for
// double-held rooms.
func (s *BookingService) ConflictReport() ([]availability.Conflict, error) {
	_, bookings, err := LoadSnapshot(s.DB)
	if err != nil {
		return nil, err
	}
	conflicts := availability.FindConflicts(bookings)
	if conflicts == nil {
		conflicts = []availability.Conflict{}
	}
	return conflicts, nil
}
