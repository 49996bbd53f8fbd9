package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	sqlmysql "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resort-backend/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	cfg := sqlmysql.NewConfig()
	cfg.User = envOrDefault("DB_USER", "root")
	cfg.Passwd = envOrDefault("DB_PASS", "")
	cfg.Net = "tcp"
	cfg.Addr = envOrDefault("DB_HOST", "127.0.0.1") + ":" + envOrDefault("DB_PORT", "3306")
	cfg.DBName = envOrDefault("DB_NAME", "resort_db")
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	return cfg.FormatDSN(), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Info,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Package{},
		&models.Room{},
		&models.Booking{},
		&models.BookingRoom{},
		&models.PackageBooking{},
		&models.PackageBookingRoom{},
		&models.Service{},
		&models.ServiceImage{},
		&models.AssignedService{},
		&models.FoodItem{},
		&models.FoodOrder{},
		&models.FoodOrderItem{},
		&models.Expense{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

func SeedDatabase() {
	// ---------------- Users ----------------
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		password := envOrDefault("ADMIN_PASSWORD", "admin123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			user := models.User{
				FullName: "Admin User",
				Username: envOrDefault("ADMIN_USERNAME", "admin@resort.local"),
				Password: string(hash),
			}
			if err := DB.Create(&user).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Rooms ----------------
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{Number: "101", Type: "Standard", Status: "Available", Floor: "1", Price: 1200, Adults: 2, Children: 1},
			{Number: "102", Type: "Standard", Status: "Available", Floor: "1", Price: 1200, Adults: 2, Children: 1},
			{Number: "201", Type: "Deluxe", Status: "Available", Floor: "2", Price: 2400, Adults: 3, Children: 2},
			{Number: "202", Type: "Deluxe", Status: "Available", Floor: "2", Price: 2400, Adults: 3, Children: 2},
			{Number: "301", Type: "Suite", Status: "Available", Floor: "3", Price: 4800, Adults: 4, Children: 2},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	// ---------------- Food items ----------------
	var itemCount int64
	DB.Model(&models.FoodItem{}).Count(&itemCount)
	if itemCount == 0 {
		items := []models.FoodItem{
			{Name: "Club Sandwich", Category: "Snacks", Price: 220},
			{Name: "Pad Thai", Category: "Mains", Price: 280},
			{Name: "Green Curry", Category: "Mains", Price: 320},
			{Name: "Mango Sticky Rice", Category: "Desserts", Price: 180},
			{Name: "Fresh Orange Juice", Category: "Drinks", Price: 120},
		}
		if err := DB.Create(&items).Error; err != nil {
			log.Printf("warning: failed to seed food items: %v", err)
		} else {
			log.Println("Food items seeded")
		}
	}
}
