package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"resort-backend/availability"
	"resort-backend/models"
)

// ServiceService manages the guest-service catalog and assignments.
// Assignment targets are restricted to rooms the resolver reports as
// currently checked in; a room we cannot place a guest in must never
// receive staff.
type ServiceService struct {
	DB       *gorm.DB
	resolver availability.Resolver
}

func NewServiceService(db *gorm.DB) *ServiceService {
	return &ServiceService{DB: db, resolver: newResolver()}
}

func (s *ServiceService) GetAll(skip, limit int) ([]models.Service, error) {
	if limit <= 0 {
		limit = 100
	}
	var list []models.Service
	if err := s.DB.
		Preload("Images").
		Offset(skip).Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	return list, nil
}

func (s *ServiceService) Create(name, description string, charges float64, imageURLs []string) (models.Service, error) {
	var svc models.Service
	name = strings.TrimSpace(name)
	if name == "" {
		return svc, errors.New("validation: service name is required")
	}
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		svc = models.Service{Name: name, Description: strings.TrimSpace(description), Charges: charges}
		if err := tx.Create(&svc).Error; err != nil {
			return fmt.Errorf("failed to create service: %w", err)
		}
		for _, url := range imageURLs {
			url = strings.TrimSpace(url)
			if url == "" {
				continue
			}
			img := models.ServiceImage{ServiceID: svc.ID, ImageURL: url}
			if err := tx.Create(&img).Error; err != nil {
				return fmt.Errorf("failed to save service image: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		return svc, txErr
	}
	if err := s.DB.Preload("Images").First(&svc, svc.ID).Error; err != nil {
		return svc, err
	}
	return svc, nil
}

func (s *ServiceService) Delete(id uint) error {
	if err := s.DB.Delete(&models.Service{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

// Assign creates an assignment after verifying the target room is in
// the current checked-in set.
func (s *ServiceService) Assign(serviceID, employeeID, roomID uint, status string) (models.AssignedService, error) {
	var assigned models.AssignedService

	var svc models.Service
	if err := s.DB.First(&svc, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return assigned, errors.New("service_not_found")
		}
		return assigned, fmt.Errorf("db error checking service %d: %w", serviceID, err)
	}
	var emp models.Employee
	if err := s.DB.First(&emp, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return assigned, errors.New("employee_not_found")
		}
		return assigned, fmt.Errorf("db error checking employee %d: %w", employeeID, err)
	}
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return assigned, errors.New("room_not_found")
		}
		return assigned, fmt.Errorf("db error checking room %d: %w", roomID, err)
	}

	rooms, bookings, err := LoadSnapshot(s.DB)
	if err != nil {
		return assigned, err
	}
	occupied := s.resolver.OccupiedRooms(rooms, bookings, availability.StatusCheckedIn)
	checkedIn := false
	for _, occ := range occupied {
		if occ.ID == int64(roomID) {
			checkedIn = true
			break
		}
	}
	if !checkedIn {
		return assigned, fmt.Errorf("room_not_checked_in: room %s has no checked-in guest", room.Number)
	}

	status = strings.TrimSpace(status)
	if status == "" {
		status = "pending"
	}
	switch status {
	case "pending", "in_progress", "completed":
	default:
		return assigned, fmt.Errorf("validation: unknown status %q", status)
	}

	assigned = models.AssignedService{
		ServiceID:  serviceID,
		EmployeeID: employeeID,
		RoomID:     roomID,
		Status:     status,
		AssignedAt: time.Now().UTC(),
	}
	if err := s.DB.Create(&assigned).Error; err != nil {
		return assigned, fmt.Errorf("failed to assign service: %w", err)
	}

	if err := s.DB.
		Preload("Service").
		Preload("Employee").
		Preload("Room").
		First(&assigned, assigned.ID).Error; err != nil {
		return assigned, err
	}
	return assigned, nil
}

func (s *ServiceService) GetAssigned(skip, limit int) ([]models.AssignedService, error) {
	if limit <= 0 {
		limit = 100
	}
	var list []models.AssignedService
	if err := s.DB.
		Preload("Service").
		Preload("Employee").
		Preload("Room").
		Order("assigned_at DESC").
		Offset(skip).Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve assigned services: %w", err)
	}
	return list, nil
}

func (s *ServiceService) UpdateAssignedStatus(id uint, status string) (models.AssignedService, error) {
	var assigned models.AssignedService
	switch status {
	case "pending", "in_progress", "completed":
	default:
		return assigned, fmt.Errorf("validation: unknown status %q", status)
	}
	if err := s.DB.First(&assigned, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return assigned, errors.New("assignment_not_found")
		}
		return assigned, fmt.Errorf("db error loading assignment %d: %w", id, err)
	}
	if err := s.DB.Model(&assigned).Updates(map[string]interface{}{"status": status}).Error; err != nil {
		return assigned, fmt.Errorf("failed to update assignment %d: %w", id, err)
	}
	return assigned, nil
}
