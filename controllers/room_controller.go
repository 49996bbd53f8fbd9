package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"
)

type RoomController struct {
	service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{service: service}
}

func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.service.GetAll()
	if err != nil {
		log.Printf("❌ failed to list rooms: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := rc.service.Create(&room); err != nil {
		log.Printf("❌ failed to create room: %v", err)
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	// whitelist updatable columns
	allowed := map[string]bool{
		"number": true, "type": true, "status": true, "floor": true,
		"price": true, "adults": true, "children": true, "description": true,
	}
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "no updatable fields in payload")
		return
	}
	room, err := rc.service.Update(id, filtered)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := rc.service.Delete(id); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// GetAvailability handles GET /api/rooms/availability?check_in=&check_out=
func (rc *RoomController) GetAvailability(c *gin.Context) {
	checkIn := c.Query("check_in")
	checkOut := c.Query("check_out")
	if checkIn == "" || checkOut == "" {
		utils.JSONError(c, http.StatusBadRequest, "check_in and check_out are required")
		return
	}
	avail, err := rc.service.Availability(checkIn, checkOut)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"check_in":     checkIn,
		"check_out":    checkOut,
		"availability": avail,
	})
}

// GetOccupied handles GET /api/rooms/occupied?status= (default checked-in).
func (rc *RoomController) GetOccupied(c *gin.Context) {
	rooms, err := rc.service.Occupied(c.Query("status"))
	if err != nil {
		log.Printf("❌ failed to resolve occupied rooms: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve occupied rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}
