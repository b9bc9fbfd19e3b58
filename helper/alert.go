package helper

import (
	"fmt"
	"log"
	"os"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"strconv"
	"strings"

	"github.com/go-co-op/gocron/v2"
	"gopkg.in/gomail.v2"
)

var stockScheduler gocron.Scheduler

// ScanLowStock returns every ingredient at or below its minimum threshold.
func ScanLowStock(ingredients []model.Ingredient) []model.Ingredient {
	low := []model.Ingredient{}
	for _, ingredient := range ingredients {
		if ingredient.CurrentStock <= ingredient.MinStock {
			low = append(low, ingredient)
		}
	}
	return low
}

func CheckLowStock() {
	log.Println("[CRON] low stock scan triggered")

	db := database.DB
	var ingredients []model.Ingredient
	if err := db.Find(&ingredients).Error; err != nil {
		log.Printf("low stock scan query failed: %v", err)
		return
	}

	low := ScanLowStock(ingredients)
	if len(low) == 0 {
		return
	}

	log.Printf("low stock: %d ingredient(s) at or below threshold", len(low))
	SendLowStockAlert(low)
}

func SendLowStockAlert(ingredients []model.Ingredient) {
	to := os.Getenv("ALERT_EMAIL")
	if to == "" {
		return
	}

	var lines []string
	for _, ingredient := range ingredients {
		lines = append(lines, fmt.Sprintf("%s: %.2f %s (minimum %.2f)",
			ingredient.Name, ingredient.CurrentStock, ingredient.Unit, ingredient.MinStock))
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Low stock alert - %d ingredient(s)", len(ingredients)))
	m.SetBody("text/plain", "The following ingredients need restocking:\n\n"+strings.Join(lines, "\n"))

	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	d := gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("failed to send low stock alert to %s: %v", to, err)
	}
}

func StartLowStockScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	stockScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(6, 0, 0),
			),
		),
		gocron.NewTask(CheckLowStock),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("low stock scheduler started")
}

func StopLowStockScheduler() {
	if stockScheduler != nil {
		if err := stockScheduler.Shutdown(); err != nil {
			log.Printf("scheduler shutdown error: %v", err)
		}
	}
}
