package validation

// CustomerDetails identifies the buyer. It is forwarded to the gateway's
// notes block and reused in confirmation emails; the gateway tolerates
// blanks, so presence is not enforced here.
type CustomerDetails struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// CartItem is one purchased line item. The storefront sends either title
// or name depending on the page, so both are accepted.
type CartItem struct {
	Title    string  `json:"title"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// DisplayName returns the item label, preferring title over name.
func (i CartItem) DisplayName() string {
	if i.Title != "" {
		return i.Title
	}
	return i.Name
}

// CreateOrderRequest is the payload for POST /api/create-order.
// Amount is in the smallest currency unit (paise for INR); the gateway is
// the authority on everything beyond presence and positivity.
type CreateOrderRequest struct {
	Amount          int64           `json:"amount" validate:"required,min=1"`
	Currency        string          `json:"currency" validate:"required"`
	Receipt         string          `json:"receipt"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
	CartItems       []CartItem      `json:"cartItems"`
}

// PaymentSuccessRequest is the payload for POST /api/payment-success.
// Amount and cart items are display-only; the signature is the sole
// integrity control and covers only the order/payment id pair.
type PaymentSuccessRequest struct {
	RazorpayPaymentID string          `json:"razorpayPaymentId" validate:"required"`
	RazorpayOrderID   string          `json:"razorpayOrderId" validate:"required"`
	RazorpaySignature string          `json:"razorpaySignature" validate:"required"`
	CustomerDetails   CustomerDetails `json:"customerDetails"`
	CartItems         []CartItem      `json:"cartItems"`
	Amount            int64           `json:"amount"`
}

// ContactRequest is the payload for POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}
