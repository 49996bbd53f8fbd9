package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"
)

type EmployeeController struct {
	service *services.EmployeeService
}

func NewEmployeeController(service *services.EmployeeService) *EmployeeController {
	return &EmployeeController{service: service}
}

func (ec *EmployeeController) GetEmployees(c *gin.Context) {
	list, err := ec.service.GetAll()
	if err != nil {
		log.Printf("❌ failed to list employees: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve employees")
		return
	}
	c.JSON(http.StatusOK, list)
}

type createEmployeePayload struct {
	Name   string `json:"name" binding:"required"`
	Role   string `json:"role"`
	Mobile string `json:"mobile"`
	Email  string `json:"email"`
}

func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var payload createEmployeePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	employee := models.Employee{
		Name:   payload.Name,
		Role:   payload.Role,
		Mobile: payload.Mobile,
		Email:  payload.Email,
	}
	if err := ec.service.Create(&employee); err != nil {
		log.Printf("❌ failed to create employee: %v", err)
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ec.service.Delete(id); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
