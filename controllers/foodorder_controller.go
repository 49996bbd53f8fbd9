package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"
)

type FoodOrderController struct {
	service *services.FoodOrderService
}

func NewFoodOrderController(service *services.FoodOrderService) *FoodOrderController {
	return &FoodOrderController{service: service}
}

type createFoodOrderPayload struct {
	RoomID             uint                     `json:"room_id"`
	AssignedEmployeeID uint                     `json:"assigned_employee_id"`
	Items              []services.FoodOrderLine `json:"items"`
}

func (fc *FoodOrderController) GetFoodItems(c *gin.Context) {
	items, err := fc.service.GetItems()
	if err != nil {
		log.Printf("❌ failed to list food items: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve food items")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (fc *FoodOrderController) CreateFoodItem(c *gin.Context) {
	var item models.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := fc.service.CreateItem(&item); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (fc *FoodOrderController) GetFoodOrders(c *gin.Context) {
	skip, limit := parsePaging(c)
	orders, err := fc.service.GetOrders(skip, limit)
	if err != nil {
		log.Printf("❌ failed to list food orders: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve food orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (fc *FoodOrderController) CreateFoodOrder(c *gin.Context) {
	var payload createFoodOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	order, err := fc.service.CreateOrder(payload.RoomID, payload.AssignedEmployeeID, payload.Items)
	if err != nil {
		log.Printf("❌ failed to create food order: %v", err)
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (fc *FoodOrderController) UpdateFoodOrderStatus(c *gin.Context) {
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
	order, err := fc.service.UpdateOrderStatus(id, payload.Status)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, order)
}
