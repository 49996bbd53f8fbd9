package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"resort-backend/availability"
	"resort-backend/models"
)

// PackageService wraps *gorm.DB for holiday packages and their
// bookings.
type PackageService struct {
	DB       *gorm.DB
	resolver availability.Resolver
}

func NewPackageService(db *gorm.DB) *PackageService {
	return &PackageService{DB: db, resolver: newResolver()}
}

func (s *PackageService) GetAll() ([]models.Package, error) {
	var list []models.Package
	if err := s.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve packages: %w", err)
	}
	return list, nil
}

func (s *PackageService) Create(pkg *models.Package) error {
	pkg.Name = strings.TrimSpace(pkg.Name)
	if pkg.Name == "" {
		return errors.New("validation: package name is required")
	}
	if pkg.Nights <= 0 {
		pkg.Nights = 1
	}
	if err := s.DB.Create(pkg).Error; err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

func (s *PackageService) Delete(id uint) error {
	if err := s.DB.Delete(&models.Package{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}
	return nil
}

// GetAllBookings backs /packages/bookingsall; rooms come back in the
// wrapped {room_id, room} shape package consumers expect.
func (s *PackageService) GetAllBookings() ([]models.PackageBooking, error) {
	var list []models.PackageBooking
	if err := s.DB.
		Preload("Package").
		Preload("Rooms").
		Preload("Rooms.Room").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve package bookings: %w", err)
	}
	for i := range list {
		if list[i].Rooms == nil {
			list[i].Rooms = []models.PackageBookingRoom{}
		}
	}
	return list, nil
}

// CreateBooking books a package stay; rooms must be free for the
// interval, same rule as regular bookings.
func (s *PackageService) CreateBooking(
	packageID uint,
	guestName, guestMobile, guestEmail string,
	checkIn, checkOut string,
	roomIDs []uint,
	adults, children int,
) (models.PackageBooking, error) {

	var result models.PackageBooking

	var pkg models.Package
	if err := s.DB.First(&pkg, packageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result, errors.New("package_not_found")
		}
		return result, fmt.Errorf("db error checking package %d: %w", packageID, err)
	}

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

	var bookingID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		// same rule as regular bookings: re-check through tx so the
		// check and the insert cannot straddle a concurrent create
		if err := ensureRoomsAvailable(tx, s.resolver, roomIDs, ci, co); err != nil {
			return err
		}

		ciT, coT := ci.Time, co.Time
		booking := models.PackageBooking{
			PackageID:   packageID,
			GuestName:   guestName,
			GuestMobile: strings.TrimSpace(guestMobile),
			GuestEmail:  strings.TrimSpace(guestEmail),
			Status:      "Booked",
			CheckIn:     &ciT,
			CheckOut:    &coT,
			Adults:      adults,
			Children:    children,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create package booking: %w", err)
		}
		bookingID = booking.ID

		for _, rid := range roomIDs {
			pbr := models.PackageBookingRoom{
				PackageBookingID: booking.ID,
				RoomID:           rid,
			}
			if err := tx.Create(&pbr).Error; err != nil {
				return fmt.Errorf("failed to create package_booking_room for room %d: %w", rid, err)
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

	if err := s.DB.
		Preload("Package").
		Preload("Rooms").
		Preload("Rooms.Room").
		First(&result, bookingID).Error; err != nil {
		return result, err
	}
	if result.Rooms == nil {
		result.Rooms = []models.PackageBookingRoom{}
	}
	return result, nil
}

func (s *PackageService) transitionBooking(bookingID uint, wantStatus, newStatus, roomStatus string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.PackageBooking
		if err := tx.Preload("Rooms").First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}
		if wantStatus != "" && availability.NormalizeStatus(booking.Status) != wantStatus {
			return fmt.Errorf("invalid_status: booking is %s", booking.Status)
		}

		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status": newStatus,
		}).Error; err != nil {
			return err
		}
		for _, pbr := range booking.Rooms {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", pbr.RoomID).
				Updates(map[string]interface{}{"status": roomStatus}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *PackageService) CheckInBooking(bookingID uint) error {
	return s.transitionBooking(bookingID, availability.StatusBooked, "Checked-In", "Checked-In")
}

func (s *PackageService) CheckoutBooking(bookingID uint) error {
	return s.transitionBooking(bookingID, availability.StatusCheckedIn, "Checked-Out", "Available")
}

func (s *PackageService) CancelBooking(bookingID uint) error {
	return s.transitionBooking(bookingID, "", "Cancelled", "Available")
}
