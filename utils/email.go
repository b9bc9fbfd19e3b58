package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// ReceiptData feeds the settlement receipt email.
type ReceiptData struct {
	BillCode      string
	OrderNumber   string
	CustomerName  string
	Subtotal      float64
	Discount      float64
	ServiceCharge float64
	Vat           float64
	Total         float64
	PaymentMethod string
	SettledAt     string
}

// SendReceiptEmail mails the settled bill to the customer (async).
func SendReceiptEmail(to string, data ReceiptData) {
	go func() {
		body := "Thank you for dining with us!\n\n" +
			"Bill:            " + data.BillCode + "\n" +
			"Order:           " + data.OrderNumber + "\n" +
			"Subtotal:        " + strconv.FormatFloat(data.Subtotal, 'f', 2, 64) + "\n" +
			"Discount:        " + strconv.FormatFloat(data.Discount, 'f', 2, 64) + "\n" +
			"Service charge:  " + strconv.FormatFloat(data.ServiceCharge, 'f', 2, 64) + "\n" +
			"VAT:             " + strconv.FormatFloat(data.Vat, 'f', 2, 64) + "\n" +
			"Total:           " + strconv.FormatFloat(data.Total, 'f', 2, 64) + "\n" +
			"Paid by:         " + data.PaymentMethod + "\n" +
			"Settled at:      " + data.SettledAt + "\n"

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		if host == "" || to == "" {
			return
		}

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Receipt "+data.BillCode)
		m.SetBody("text/plain", body)

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send receipt email: %v", err)
		}
	}()
}
