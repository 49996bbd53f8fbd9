package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"resort-backend/availability"
	"resort-backend/models"
)

// newResolver wires the resolver's trace hook to the process log when
// AVAILABILITY_TRACE=true, so reconciliation decisions can be observed
// without code changes.
func newResolver() availability.Resolver {
	var r availability.Resolver
	if strings.EqualFold(os.Getenv("AVAILABILITY_TRACE"), "true") {
		r.Trace = func(format string, args ...any) {
			log.Printf("availability: "+format, args...)
		}
	}
	return r
}

func roomSnapshots(rooms []models.Room) []availability.Room {
	out := make([]availability.Room, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, room.Snapshot())
	}
	return out
}

func bookingSnapshot(b models.Booking) availability.Booking {
	out := availability.Booking{
		ID:     int64(b.ID),
		Status: b.Status,
	}
	if b.CheckIn != nil {
		out.CheckIn = availability.DateOf(*b.CheckIn)
	}
	if b.CheckOut != nil {
		out.CheckOut = availability.DateOf(*b.CheckOut)
	}
	for _, br := range b.Rooms {
		ref := availability.RoomRef{ID: int64(br.RoomID), Number: strings.TrimSpace(br.Room.Number)}
		if ref.ID == 0 {
			ref.ID = int64(br.Room.ID)
		}
		if ref.ID == 0 {
			continue
		}
		out.Rooms = append(out.Rooms, ref)
	}
	return out
}

func packageBookingSnapshot(pb models.PackageBooking) availability.Booking {
	out := availability.Booking{
		ID:      int64(pb.ID),
		Status:  pb.Status,
		Package: true,
	}
	if pb.CheckIn != nil {
		out.CheckIn = availability.DateOf(*pb.CheckIn)
	}
	if pb.CheckOut != nil {
		out.CheckOut = availability.DateOf(*pb.CheckOut)
	}
	for _, pbr := range pb.Rooms {
		ref := availability.RoomRef{ID: int64(pbr.RoomID), Number: strings.TrimSpace(pbr.Room.Number)}
		if ref.ID == 0 {
			ref.ID = int64(pbr.Room.ID)
		}
		if ref.ID == 0 {
			continue
		}
		out.Rooms = append(out.Rooms, ref)
	}
	return out
}

// firstUnavailableRoom returns the first requested room the
// availability map reports as taken. A room missing from the map
// counts as taken.
func firstUnavailableRoom(free map[int64]bool, roomIDs []uint) (uint, bool) {
	for _, rid := range roomIDs {
		if !free[int64(rid)] {
			return rid, true
		}
	}
	return 0, false
}

// ensureRoomsAvailable checks the requested rooms against a snapshot
// read through tx. It runs inside the create transaction so the check
// and the insert see the same state.
func ensureRoomsAvailable(tx *gorm.DB, r availability.Resolver, roomIDs []uint, checkIn, checkOut availability.Date) error {
	rooms, bookings, err := LoadSnapshot(tx)
	if err != nil {
		return err
	}
	free := r.Availability(rooms, bookings, checkIn, checkOut)
	if rid, taken := firstUnavailableRoom(free, roomIDs); taken {
		return fmt.Errorf("room_unavailable: room %d is not free for the selected dates", rid)
	}
	return nil
}

// LoadSnapshot reads the room catalog plus all regular and package
// bookings and converts them into the resolver's input types. The
// resolver itself stays pure; this is the single place the database
// touches it.
func LoadSnapshot(db *gorm.DB) ([]availability.Room, []availability.Booking, error) {
	var rooms []models.Room
	if err := db.Find(&rooms).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	var regular []models.Booking
	if err := db.Preload("Rooms.Room").Find(&regular).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	var packaged []models.PackageBooking
	if err := db.Preload("Rooms.Room").Find(&packaged).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load package bookings: %w", err)
	}

	bookings := make([]availability.Booking, 0, len(regular)+len(packaged))
	for _, b := range regular {
		bookings = append(bookings, bookingSnapshot(b))
	}
	for _, pb := range packaged {
		bookings = append(bookings, packageBookingSnapshot(pb))
	}
	return roomSnapshots(rooms), bookings, nil
}
