package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"
)

type PackageController struct {
	service *services.PackageService
}

func NewPackageController(service *services.PackageService) *PackageController {
	return &PackageController{service: service}
}

type createPackageBookingPayload struct {
	PackageID   uint   `json:"package_id"`
	GuestName   string `json:"guest_name"`
	GuestMobile string `json:"guest_mobile"`
	GuestEmail  string `json:"guest_email"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	RoomIDs     []uint `json:"room_ids"`
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
}

func (pc *PackageController) GetPackages(c *gin.Context) {
	list, err := pc.service.GetAll()
	if err != nil {
		log.Printf("❌ failed to list packages: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve packages")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (pc *PackageController) CreatePackage(c *gin.Context) {
	var pkg models.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := pc.service.Create(&pkg); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func (pc *PackageController) DeletePackage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := pc.service.Delete(id); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// GetAllBookings handles GET /api/packages/bookingsall. The response is
// a bare array; consumers merge it with data.bookings from the regular
// endpoint.
func (pc *PackageController) GetAllBookings(c *gin.Context) {
	list, err := pc.service.GetAllBookings()
	if err != nil {
		log.Printf("❌ failed to list package bookings: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve package bookings")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (pc *PackageController) CreateBooking(c *gin.Context) {
	var payload createPackageBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	booking, err := pc.service.CreateBooking(
		payload.PackageID,
		payload.GuestName, payload.GuestMobile, payload.GuestEmail,
		payload.CheckIn, payload.CheckOut,
		payload.RoomIDs, payload.Adults, payload.Children,
	)
	if err != nil {
		log.Printf("❌ failed to create package booking: %v", err)
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (pc *PackageController) CheckInBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := pc.service.CheckInBooking(id); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "Checked-In"})
}

func (pc *PackageController) CheckoutBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := pc.service.CheckoutBooking(id); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "Checked-Out"})
}

func (pc *PackageController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := pc.service.CancelBooking(id); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "Cancelled"})
}
