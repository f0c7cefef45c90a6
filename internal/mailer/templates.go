package mailer

import (
	"bytes"
	"html/template"

	"github.com/shopspring/decimal"
)

// Payment is the structured input for the payment email pair.
type Payment struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	OrderID       string
	PaymentID     string
	AmountPaise   int64
	Cart          []CartLine
}

// CartLine is one purchased item as rendered in email.
type CartLine struct {
	Name     string
	Price    float64
	Quantity int
}

// ContactMessage is the structured input for the contact email pair.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// FormatINR renders an amount in paise as rupees with exactly two decimals.
func FormatINR(paise int64) string {
	return decimal.NewFromInt(paise).Div(decimal.NewFromInt(100)).StringFixed(2)
}

var tmplFuncs = template.FuncMap{
	"inr": FormatINR,
	"price": func(p float64) string {
		return decimal.NewFromFloat(p).StringFixed(2)
	},
}

// The itemized table renders iff the cart is non-empty.
const cartTableTmpl = `{{define "cartTable"}}{{if .Cart}}
<table border="1" cellpadding="6" cellspacing="0" style="border-collapse:collapse;margin-top:12px">
  <tr style="background:#f4f4f4"><th align="left">Item</th><th align="right">Qty</th><th align="right">Price</th></tr>
  {{range .Cart}}<tr><td>{{.Name}}</td><td align="right">{{.Quantity}}</td><td align="right">&#8377;{{price .Price}}</td></tr>
  {{end}}
</table>
{{end}}{{end}}`

var bookingTmpl = template.Must(template.New("booking").Funcs(tmplFuncs).Parse(cartTableTmpl + `
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;color:#333">
  <h2 style="color:#2e7d32">Booking Confirmed</h2>
  <p>Dear {{if .CustomerName}}{{.CustomerName}}{{else}}Customer{{end}},</p>
  <p>Thank you for your payment. Your coaching booking is confirmed.</p>
  <p><strong>Amount Paid:</strong> &#8377;{{inr .AmountPaise}}</p>
  <p><strong>Transaction ID:</strong> {{.PaymentID}}</p>
  {{template "cartTable" .}}
  <p style="margin-top:16px">We look forward to working with you. If you have any questions, just reply to this email.</p>
</div>`))

var adminAlertTmpl = template.Must(template.New("adminAlert").Funcs(tmplFuncs).Parse(cartTableTmpl + `
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;color:#333">
  <h2>New Payment Received</h2>
  <p><strong>Customer:</strong> {{.CustomerName}}</p>
  <p><strong>Email:</strong> {{.CustomerEmail}}</p>
  <p><strong>Phone:</strong> {{.CustomerPhone}}</p>
  <p><strong>Amount:</strong> &#8377;{{inr .AmountPaise}}</p>
  <p><strong>Order ID:</strong> {{.OrderID}}</p>
  <p><strong>Payment ID:</strong> {{.PaymentID}}</p>
  {{template "cartTable" .}}
</div>`))

var contactNotifTmpl = template.Must(template.New("contactNotif").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;color:#333">
  <h2>New Contact Form Submission</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Subject:</strong> {{.Subject}}</p>
  <p><strong>Message:</strong></p>
  <p style="background:#f9f9f9;padding:12px;border-left:3px solid #2e7d32">{{.Message}}</p>
</div>`))

var contactAckTmpl = template.Must(template.New("contactAck").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;color:#333">
  <h2 style="color:#2e7d32">We received your message</h2>
  <p>Dear {{.Name}},</p>
  <p>Thanks for reaching out. We have received your message and will get back to you shortly.</p>
  <p><strong>Your subject:</strong> {{.Subject}}</p>
  <p style="margin-top:16px">Warm regards,<br>The Coaching Team</p>
</div>`))

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// BookingConfirmation builds the customer-facing payment confirmation.
func BookingConfirmation(p Payment) (string, error) {
	return render(bookingTmpl, p)
}

// AdminPaymentAlert builds the admin notification for a completed payment.
func AdminPaymentAlert(p Payment) (string, error) {
	return render(adminAlertTmpl, p)
}

// ContactNotification builds the admin copy of a contact submission.
func ContactNotification(m ContactMessage) (string, error) {
	return render(contactNotifTmpl, m)
}

// ContactAcknowledgement builds the confirmation sent back to the sender.
func ContactAcknowledgement(m ContactMessage) (string, error) {
	return render(contactAckTmpl, m)
}
