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

type ExpenseController struct {
	service *services.ExpenseService
}

func NewExpenseController(service *services.ExpenseService) *ExpenseController {
	return &ExpenseController{service: service}
}

// CreateExpense accepts multipart form data: category, amount, date,
// description, employee_id and an optional "image" receipt file.
func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	category := c.PostForm("category")
	description := c.PostForm("description")
	date := c.PostForm("date")

	amount, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("amount")), 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid amount value")
		return
	}
	employeeID, err := strconv.ParseUint(strings.TrimSpace(c.PostForm("employee_id")), 10, 32)
	if err != nil || employeeID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid employee_id value")
		return
	}

	receiptPath := ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		safe := strings.ReplaceAll(filepath.Base(file.Filename), " ", "_")
		filename := fmt.Sprintf("%d_%s_%s", employeeID, uuid.NewString(), safe)
		dest := filepath.Join("uploads", "expenses", filename)
		if saveErr := c.SaveUploadedFile(file, dest); saveErr != nil {
			log.Printf("⚠️  failed to save expense receipt %s: %v", file.Filename, saveErr)
		} else {
			receiptPath = dest
		}
	}

	expense, err := ec.service.Create(category, amount, date, description, uint(employeeID), receiptPath)
	if err != nil {
		log.Printf("❌ failed to create expense: %v", err)
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (ec *ExpenseController) GetExpenses(c *gin.Context) {
	skip, limit := parsePaging(c)
	list, err := ec.service.GetAll(skip, limit)
	if err != nil {
		log.Printf("❌ failed to list expenses: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve expenses")
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetReceipt streams the stored receipt file for an expense.
func (ec *ExpenseController) GetReceipt(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	expense, err := ec.service.Get(id)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	if expense.ReceiptPath == "" {
		utils.JSONError(c, http.StatusNotFound, "no receipt attached")
		return
	}
	c.File(expense.ReceiptPath)
}
