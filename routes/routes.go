package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"resort-backend/controllers"
	"resort-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter รับ Controller Instances เข้ามาเพื่อกำหนด Route
func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	pc *controllers.PackageController,
	sc *controllers.ServiceController,
	fc *controllers.FoodOrderController,
	emc *controllers.EmployeeController,
	exc *controllers.ExpenseController,
	ac *controllers.AuthController,
) *gin.Engine {
	// gin.New, not gin.Default: RequestLogger is the only per-request
	// logger, so each request logs exactly once
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)

			// ต้องอยู่ก่อน /:id
			rooms.GET("/availability", rc.GetAvailability)
			rooms.GET("/occupied", rc.GetOccupied)

			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)

			// ต้องอยู่ก่อน /:id
			bookings.GET("/conflicts", bc.GetConflicts)

			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.DELETE("/:id", bc.DeleteBooking)
			bookings.POST("/:id/checkin", bc.CheckInBooking)
			bookings.POST("/:id/checkout", bc.CheckoutBooking)
			bookings.POST("/:id/cancel", bc.CancelBooking)
		}

		packages := api.Group("/packages")
		{
			packages.GET("", pc.GetPackages)
			packages.POST("", pc.CreatePackage)

			packages.GET("/bookingsall", pc.GetAllBookings)
			packages.POST("/bookings", pc.CreateBooking)
			packages.POST("/bookings/:id/checkin", pc.CheckInBooking)
			packages.POST("/bookings/:id/checkout", pc.CheckoutBooking)
			packages.POST("/bookings/:id/cancel", pc.CancelBooking)

			packages.DELETE("/:id", pc.DeletePackage)
		}

		servicesRoutes := api.Group("/services")
		{
			servicesRoutes.GET("", sc.GetServices)
			servicesRoutes.POST("", sc.CreateService)

			servicesRoutes.GET("/assigned", sc.GetAssigned)
			servicesRoutes.POST("/assign", sc.AssignService)
			servicesRoutes.PATCH("/assigned/:id/status", sc.UpdateAssignedStatus)

			servicesRoutes.DELETE("/:id", sc.DeleteService)
		}

		foodItems := api.Group("/food-items")
		{
			foodItems.GET("", fc.GetFoodItems)
			foodItems.POST("", fc.CreateFoodItem)
		}

		foodOrders := api.Group("/food-orders")
		{
			foodOrders.GET("", fc.GetFoodOrders)
			foodOrders.POST("", fc.CreateFoodOrder)
			foodOrders.PATCH("/:id/status", fc.UpdateFoodOrderStatus)
		}

		employees := api.Group("/employees")
		{
			employees.GET("", emc.GetEmployees)
			employees.POST("", emc.CreateEmployee)
			employees.DELETE("/:id", emc.DeleteEmployee)
		}

		expenses := api.Group("/expenses")
		{
			expenses.GET("", exc.GetExpenses)
			expenses.POST("", exc.CreateExpense)
			expenses.GET("/:id/receipt", exc.GetReceipt)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
		}
	}

	return r
}
