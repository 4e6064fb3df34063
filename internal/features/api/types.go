package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"foodbot-miniapp/internal/features/roles"
)

// Time decodes the backend's date strings. Endpoints are inconsistent about
// zone suffixes, so both RFC 3339 and bare ISO-8601 are accepted here, once,
// at the client boundary.
type Time struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode date: %w", err)
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("decode date: unsupported format %q", raw)
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// envelope is the admin API success wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
	Success bool            `json:"success"`
}

// decodeEnveloped unwraps {data, message, success} into out. Some endpoints
// return the payload bare; those use the client's plain decode path instead.
func decodeEnveloped(raw envelope, out any) error {
	if len(raw.Data) == 0 {
		return fmt.Errorf("decode envelope: empty data field")
	}
	if err := json.Unmarshal(raw.Data, out); err != nil {
		return fmt.Errorf("decode envelope data: %w", err)
	}
	return nil
}

// Profile is the authenticated customer identity returned by the backend.
type Profile struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Username  string     `json:"username"`
	Phone     string     `json:"phone"`
	Role      roles.Role `json:"role,omitempty"`
}

// DisplayName mirrors the frontend fallback chain for showing a user.
func (p Profile) DisplayName() string {
	if p.FirstName != "" {
		return strings.TrimSpace(p.FirstName + " " + p.LastName)
	}
	if p.Username != "" {
		return p.Username
	}
	return "Guest"
}

// AuthResponse is the result of exchanging init-data for a session.
type AuthResponse struct {
	SessionToken string  `json:"session_token"`
	User         Profile `json:"user"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderOnTheWay  OrderStatus = "on_the_way"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type OrderItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	AddOns        []NamedPrice    `json:"addOns,omitempty"`
	Extras        []NamedPrice    `json:"extras,omitempty"`
	Modifications []NamedOnly     `json:"modifications,omitempty"`
	Instruction   string          `json:"specialInstruction,omitempty"`
}

type NamedPrice struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type NamedOnly struct {
	Name string `json:"name"`
}

type Order struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	Items           []OrderItem     `json:"items"`
	Status          OrderStatus     `json:"status"`
	Total           decimal.Decimal `json:"total"`
	PaymentStatus   string          `json:"paymentStatus"`
	Type            string          `json:"type"`
	Instructions    string          `json:"specialInstructions,omitempty"`
	DeliveryAddress string          `json:"deliveryAddress,omitempty"`
	DeliveryStaffID int64           `json:"deliveryStaffId,omitempty"`
	CreatedAt       Time            `json:"createdAt"`
	UpdatedAt       Time            `json:"updatedAt"`
}

type MenuExtra struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type MenuItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	PrepTime      int             `json:"prepTime"`
	Image         string          `json:"image,omitempty"`
	Available     bool            `json:"available"`
	Allergens     []string        `json:"allergens,omitempty"`
	Extras        []MenuExtra     `json:"extras,omitempty"`
	Modifications []string        `json:"modifications,omitempty"`
}

type Staff struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Role          roles.Role `json:"role"`
	Phone         string     `json:"phone"`
	TelegramID    string     `json:"telegramId,omitempty"`
	Status        string     `json:"status"`
	OrdersHandled int        `json:"ordersHandled"`
	Rating        float64    `json:"rating"`
	LastActive    Time       `json:"lastActive"`
}

type DashboardStats struct {
	ActiveOrders   int    `json:"activeOrders"`
	AvgPrepTime    string `json:"avgPrepTime"`
	CompletedToday int    `json:"completedToday"`
	RevenueToday   string `json:"revenueToday"`
}

type AnalyticsData struct {
	Period        string          `json:"period"`
	TotalOrders   int             `json:"totalOrders"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
	TopItems      []MenuItem      `json:"topItems,omitempty"`
}

type RestaurantSettings struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Currency string `json:"currency"`
	Open     bool   `json:"open"`
}

// PaymentRequest initiates a payment for a placed order. The backend relays
// it to the provider; no redirect handling happens client-side.
type PaymentRequest struct {
	OrderID       string          `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	Phone         string          `json:"phone"`
	PaymentMethod string          `json:"payment_method"`
	Currency      string          `json:"currency"`
}

type PaymentResponse struct {
	Status    string `json:"status"`
	Reference string `json:"reference,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// OrderRequest is the customer order placement payload.
type OrderRequest struct {
	Phone      string          `json:"phone"`
	Address    string          `json:"address,omitempty"`
	OrderType  string          `json:"order_type"`
	Items      []OrderItem     `json:"items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Notes      string          `json:"notes,omitempty"`
}
