package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"resort-backend/availability"
	"resort-backend/models"
)

// FoodOrderService manages the food menu and room-service orders.
type FoodOrderService struct {
	DB *gorm.DB
}

func NewFoodOrderService(db *gorm.DB) *FoodOrderService {
	return &FoodOrderService{DB: db}
}

// FoodOrderLine is one requested menu item.
type FoodOrderLine struct {
	FoodItemID uint `json:"food_item_id"`
	Quantity   int  `json:"quantity"`
}

func (s *FoodOrderService) GetItems() ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := s.DB.Order("category ASC, name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve food items: %w", err)
	}
	return items, nil
}

func (s *FoodOrderService) CreateItem(item *models.FoodItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return errors.New("validation: item name is required")
	}
	if item.Price < 0 {
		return errors.New("validation: price cannot be negative")
	}
	if err := s.DB.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create food item: %w", err)
	}
	return nil
}

// guestForRoom finds the guest name for a room from its most recent
// active booking, regular bookings first, then package bookings.
// Status spellings vary in older rows, so filtering happens in Go via
// the normalizer rather than in SQL.
func (s *FoodOrderService) guestForRoom(roomID uint) string {
	isActive := func(status string) bool {
		switch availability.NormalizeStatus(status) {
		case availability.StatusCheckedIn, availability.StatusBooked:
			return true
		}
		return false
	}

	var regular []models.Booking
	if err := s.DB.
		Joins("JOIN booking_rooms ON booking_rooms.booking_id = bookings.id").
		Where("booking_rooms.room_id = ?", roomID).
		Order("bookings.id DESC").
		Find(&regular).Error; err == nil {
		for _, b := range regular {
			if isActive(b.Status) {
				return b.GuestName
			}
		}
	}

	var packaged []models.PackageBooking
	if err := s.DB.
		Joins("JOIN package_booking_rooms ON package_booking_rooms.package_booking_id = package_bookings.id").
		Where("package_booking_rooms.room_id = ?", roomID).
		Order("package_bookings.id DESC").
		Find(&packaged).Error; err == nil {
		for _, pb := range packaged {
			if isActive(pb.Status) {
				return pb.GuestName
			}
		}
	}
	return ""
}

func (s *FoodOrderService) CreateOrder(roomID, employeeID uint, lines []FoodOrderLine) (models.FoodOrder, error) {
	var order models.FoodOrder

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, errors.New("room_not_found")
		}
		return order, fmt.Errorf("db error checking room %d: %w", roomID, err)
	}
	var emp models.Employee
	if err := s.DB.First(&emp, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, errors.New("employee_not_found")
		}
		return order, fmt.Errorf("db error checking employee %d: %w", employeeID, err)
	}
	if len(lines) == 0 {
		return order, errors.New("validation: no items in order")
	}

	// validate items and compute the total from current menu prices
	total := 0.0
	items := make([]models.FoodOrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			line.Quantity = 1
		}
		var item models.FoodItem
		if err := s.DB.First(&item, line.FoodItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return order, fmt.Errorf("validation: food item %d not found", line.FoodItemID)
			}
			return order, fmt.Errorf("db error checking food item %d: %w", line.FoodItemID, err)
		}
		total += item.Price * float64(line.Quantity)
		items = append(items, models.FoodOrderItem{
			FoodItemID: item.ID,
			Quantity:   line.Quantity,
			Price:      item.Price,
		})
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		order = models.FoodOrder{
			RoomID:             roomID,
			GuestName:          s.guestForRoom(roomID),
			AssignedEmployeeID: employeeID,
			Status:             "pending",
			Total:              total,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create food order: %w", err)
		}
		for i := range items {
			items[i].FoodOrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		return order, txErr
	}

	if err := s.DB.
		Preload("Room").
		Preload("Employee").
		Preload("Items").
		Preload("Items.FoodItem").
		First(&order, order.ID).Error; err != nil {
		return order, err
	}
	return order, nil
}

func (s *FoodOrderService) GetOrders(skip, limit int) ([]models.FoodOrder, error) {
	if limit <= 0 {
		limit = 100
	}
	var list []models.FoodOrder
	if err := s.DB.
		Preload("Room").
		Preload("Employee").
		Preload("Items").
		Preload("Items.FoodItem").
		Order("created_at DESC").
		Offset(skip).Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve food orders: %w", err)
	}
	return list, nil
}

func (s *FoodOrderService) UpdateOrderStatus(id uint, status string) (models.FoodOrder, error) {
	var order models.FoodOrder
	switch status {
	case "pending", "preparing", "delivered", "cancelled":
	default:
		return order, fmt.Errorf("validation: unknown status %q", status)
	}
	if err := s.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, errors.New("order_not_found")
		}
		return order, fmt.Errorf("db error loading order %d: %w", id, err)
	}
	if err := s.DB.Model(&order).Updates(map[string]interface{}{"status": status}).Error; err != nil {
		return order, fmt.Errorf("failed to update order %d: %w", id, err)
	}
	return order, nil
}
