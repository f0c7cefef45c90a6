package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Azadarx/lifeCoaching-backend/internal/gateway"
	"github.com/Azadarx/lifeCoaching-backend/internal/mailer"
	"github.com/Azadarx/lifeCoaching-backend/internal/signature"
	"github.com/Azadarx/lifeCoaching-backend/internal/validation"
)

// OrderCreator is the gateway capability the handlers need.
type OrderCreator interface {
	CreateOrder(req gateway.OrderRequest) (map[string]interface{}, error)
	KeyID() string
}

// HandlerConfig groups dependencies for the API routes.
type HandlerConfig struct {
	Gateway    OrderCreator
	Mailer     mailer.Mailer
	Secret     string // gateway key secret, used for signature verification
	AdminEmail string
	StaticDir  string
}

// RegisterRoutes registers the checkout relay API and the SPA fallback.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()

	r.GET("/api/razorpay-key", func(c *gin.Context) {
		// the key id is public material consumed by the checkout widget
		c.JSON(http.StatusOK, gin.H{"key_id": cfg.Gateway.KeyID()})
	})

	r.POST("/api/create-order", func(c *gin.Context) {
		var req validation.CreateOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		order, err := cfg.Gateway.CreateOrder(gateway.OrderRequest{
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
			Notes: map[string]interface{}{
				"name":  req.CustomerDetails.FullName,
				"email": req.CustomerDetails.Email,
				"phone": req.CustomerDetails.Phone,
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to create order",
				"details": err.Error(),
			})
			return
		}

		// relay the gateway's order object verbatim
		c.JSON(http.StatusOK, order)
	})

	r.POST("/api/payment-success", func(c *gin.Context) {
		var req validation.PaymentSuccessRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		if !signature.Verify(cfg.Secret, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
			// no email leaves the building on a failed check
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid signature"})
			return
		}

		p := paymentFromRequest(req)

		// Email is best-effort: each send is isolated and a failure never
		// blocks the other send or the confirmation response.
		sendPaymentEmails(cfg, p)

		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	r.POST("/api/contact", func(c *gin.Context) {
		var req validation.ContactRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		msg := mailer.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		}

		sent, lastErr := sendContactEmails(cfg, msg)
		if sent == 0 {
			// the endpoint's only effect is email; surface total failure
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to send message",
				"details": lastErr.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent successfully"})
	})

	registerStatic(r, cfg.StaticDir)
}

func paymentFromRequest(req validation.PaymentSuccessRequest) mailer.Payment {
	cart := make([]mailer.CartLine, 0, len(req.CartItems))
	for _, it := range req.CartItems {
		cart = append(cart, mailer.CartLine{
			Name:     it.DisplayName(),
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return mailer.Payment{
		CustomerName:  req.CustomerDetails.FullName,
		CustomerEmail: req.CustomerDetails.Email,
		CustomerPhone: req.CustomerDetails.Phone,
		OrderID:       req.RazorpayOrderID,
		PaymentID:     req.RazorpayPaymentID,
		AmountPaise:   req.Amount,
		Cart:          cart,
	}
}

// sendPaymentEmails dispatches the customer confirmation and the admin
// alert independently. Failures are logged only.
func sendPaymentEmails(cfg HandlerConfig, p mailer.Payment) {
	if p.CustomerEmail == "" {
		log.Printf("[mail] no customer email on payment %s, skipping confirmation", p.PaymentID)
	} else if html, err := mailer.BookingConfirmation(p); err != nil {
		log.Printf("[mail] render booking confirmation: %v", err)
	} else if err := cfg.Mailer.Send(mailer.Message{
		To:      p.CustomerEmail,
		Subject: "Your Booking Confirmation",
		HTML:    html,
	}); err != nil {
		log.Printf("[mail] booking confirmation to %s: %v", p.CustomerEmail, err)
	}

	if cfg.AdminEmail == "" {
		log.Printf("[mail] no admin email configured, skipping payment alert")
	} else if html, err := mailer.AdminPaymentAlert(p); err != nil {
		log.Printf("[mail] render admin alert: %v", err)
	} else if err := cfg.Mailer.Send(mailer.Message{
		To:      cfg.AdminEmail,
		Subject: "New Payment Received",
		HTML:    html,
	}); err != nil {
		log.Printf("[mail] admin alert for %s: %v", p.PaymentID, err)
	}
}

// sendContactEmails dispatches the admin notification and the sender
// acknowledgement independently, returning how many went out and the last
// failure seen.
func sendContactEmails(cfg HandlerConfig, msg mailer.ContactMessage) (sent int, lastErr error) {
	type outbound struct {
		to      string
		subject string
		build   func() (string, error)
	}
	batch := []outbound{
		{cfg.AdminEmail, "New Contact Form Submission", func() (string, error) { return mailer.ContactNotification(msg) }},
		{msg.Email, "We received your message", func() (string, error) { return mailer.ContactAcknowledgement(msg) }},
	}

	for _, o := range batch {
		if o.to == "" {
			log.Printf("[mail] contact: no recipient for %q, skipping", o.subject)
			lastErr = mailer.ErrDisabled
			continue
		}
		html, err := o.build()
		if err != nil {
			log.Printf("[mail] contact render %q: %v", o.subject, err)
			lastErr = err
			continue
		}
		if err := cfg.Mailer.Send(mailer.Message{To: o.to, Subject: o.subject, HTML: html}); err != nil {
			log.Printf("[mail] contact send to %s: %v", o.to, err)
			lastErr = err
			continue
		}
		sent++
	}
	return sent, lastErr
}
