package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-backend/services"
	"resort-backend/utils"
)

type BookingController struct {
	service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{service: service}
}

type createBookingPayload struct {
	GuestName   string                   `json:"guest_name"`
	GuestMobile string                   `json:"guest_mobile"`
	GuestEmail  string                   `json:"guest_email"`
	CheckIn     string                   `json:"check_in"`
	CheckOut    string                   `json:"check_out"`
	RoomIDs     []uint                   `json:"room_ids"`
	Adults      int                      `json:"adults"`
	Children    int                      `json:"children"`
	Guests      []map[string]interface{} `json:"guests"`
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	list, err := bc.service.GetAllWithRelations()
	if err != nil {
		log.Printf("❌ failed to list bookings: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve bookings")
		return
	}
	// frontends read data.bookings
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := bc.service.GetDetails(id)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	booking, err := bc.service.CreateBooking(
		payload.GuestName, payload.GuestMobile, payload.GuestEmail,
		payload.CheckIn, payload.CheckOut,
		payload.RoomIDs, payload.Adults, payload.Children,
		payload.Guests,
	)
	if err != nil {
		log.Printf("❌ failed to create booking: %v", err)
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (bc *BookingController) CheckInBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := bc.service.CheckInBooking(id); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "Checked-In"})
}

func (bc *BookingController) CheckoutBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := bc.service.CheckoutBooking(id); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "Checked-Out"})
}

func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := bc.service.CancelBooking(id); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "Cancelled"})
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := bc.service.DeleteBooking(id); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// GetConflicts handles GET /api/bookings/conflicts — the double-booking
// report across regular and package bookings.
func (bc *BookingController) GetConflicts(c *gin.Context) {
	conflicts, err := bc.service.ConflictReport()
	if err != nil {
		log.Printf("❌ conflict report failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to build conflict report")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(conflicts), "conflicts": conflicts})
}
