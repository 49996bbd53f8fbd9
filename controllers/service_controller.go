package controllers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resort-backend/services"
	"resort-backend/utils"
)

type ServiceController struct {
	service *services.ServiceService
}

func NewServiceController(service *services.ServiceService) *ServiceController {
	return &ServiceController{service: service}
}

type assignServicePayload struct {
	ServiceID  uint   `json:"service_id"`
	EmployeeID uint   `json:"employee_id"`
	RoomID     uint   `json:"room_id"`
	Status     string `json:"status"`
}

func (sc *ServiceController) GetServices(c *gin.Context) {
	skip, limit := parsePaging(c)
	list, err := sc.service.GetAll(skip, limit)
	if err != nil {
		log.Printf("❌ failed to list services: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve services")
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateService accepts multipart form data: name, description,
// charges, plus optional "images" files stored under uploads/services.
func (sc *ServiceController) CreateService(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	description := c.PostForm("description")
	charges, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("charges")), 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid charges value")
		return
	}

	var imageURLs []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, file := range form.File["images"] {
			safe := strings.ReplaceAll(filepath.Base(file.Filename), " ", "_")
			filename := fmt.Sprintf("%s_%s", uuid.NewString(), safe)
			dest := filepath.Join("uploads", "services", filename)
			if err := c.SaveUploadedFile(file, dest); err != nil {
				log.Printf("⚠️  failed to save service image %s: %v", file.Filename, err)
				continue
			}
			imageURLs = append(imageURLs, "/uploads/services/"+filename)
		}
	}

	svc, err := sc.service.Create(name, description, charges, imageURLs)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := sc.service.Delete(id); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

func (sc *ServiceController) AssignService(c *gin.Context) {
	var payload assignServicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.ServiceID == 0 || payload.EmployeeID == 0 || payload.RoomID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "service_id, employee_id and room_id are required")
		return
	}
	assigned, err := sc.service.Assign(payload.ServiceID, payload.EmployeeID, payload.RoomID, payload.Status)
	if err != nil {
		log.Printf("❌ failed to assign service: %v", err)
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, assigned)
}

func (sc *ServiceController) GetAssigned(c *gin.Context) {
	skip, limit := parsePaging(c)
	list, err := sc.service.GetAssigned(skip, limit)
	if err != nil {
		log.Printf("❌ failed to list assigned services: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve assigned services")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (sc *ServiceController) UpdateAssignedStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	assigned, err := sc.service.UpdateAssignedStatus(id, payload.Status)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, assigned)
}
