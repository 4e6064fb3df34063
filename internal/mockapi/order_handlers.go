package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"foodbot-miniapp/internal/features/api"
)

func (s *Server) handlePlaceOrder(c *gin.Context) {
	var req api.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid order payload")
		return
	}
	if len(req.Items) == 0 {
		respondDetail(c, http.StatusBadRequest, "Cart is empty")
		return
	}

	sess := c.MustGet(sessionKey).(session)
	now := api.Time{Time: time.Now().UTC()}

	order := api.Order{
		ID:              uuid.NewString(),
		CustomerName:    sess.Name,
		CustomerPhone:   req.Phone,
		Items:           req.Items,
		Status:          api.OrderPending,
		Total:           req.TotalPrice,
		PaymentStatus:   "unpaid",
		Type:            req.OrderType,
		Instructions:    req.Notes,
		DeliveryAddress: req.Address,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, order)
}

func (s *Server) handleMyOrders(c *gin.Context) {
	sess := c.MustGet(sessionKey).(session)

	s.mu.Lock()
	defer s.mu.Unlock()

	mine := make([]api.Order, 0)
	for _, order := range s.orders {
		if order.CustomerName == sess.Name {
			mine = append(mine, order)
		}
	}
	c.JSON(http.StatusOK, mine)
}

func (s *Server) handleCreatePayment(c *gin.Context) {
	var req api.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid payment payload")
		return
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		respondDetail(c, http.StatusBadRequest, "Amount must be positive")
		return
	}

	s.mu.Lock()
	found := false
	for i := range s.orders {
		if s.orders[i].ID == req.OrderID {
			s.orders[i].PaymentStatus = "pending"
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		respondDetail(c, http.StatusNotFound, "Order not found")
		return
	}

	c.JSON(http.StatusOK, api.PaymentResponse{Status: "initiated", Reference: uuid.NewString()})
}

func (s *Server) handleListOrders(c *gin.Context) {
	status := c.Query("status")
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]api.Order, 0, len(s.orders))
	for _, order := range s.orders {
		if status != "" && string(order.Status) != status {
			continue
		}
		orders = append(orders, order)
		if limit > 0 && len(orders) == limit {
			break
		}
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) handleUpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status api.OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid status payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == c.Param("id") {
			s.orders[i].Status = req.Status
			s.orders[i].UpdatedAt = api.Time{Time: time.Now().UTC()}
			respondData(c, http.StatusOK, s.orders[i])
			return
		}
	}
	respondDetail(c, http.StatusNotFound, "Order not found")
}

func (s *Server) handleAssignDelivery(c *gin.Context) {
	var req struct {
		OrderID         string `json:"orderId"`
		DeliveryStaffID string `json:"deliveryStaffId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid assignment payload")
		return
	}

	staffID, err := strconv.ParseInt(req.DeliveryStaffID, 10, 64)
	if err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid staff id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == req.OrderID {
			s.orders[i].DeliveryStaffID = staffID
			s.orders[i].Status = api.OrderOnTheWay
			s.orders[i].UpdatedAt = api.Time{Time: time.Now().UTC()}
			respondData(c, http.StatusOK, s.orders[i])
			return
		}
	}
	respondDetail(c, http.StatusNotFound, "Order not found")
}

func (s *Server) handleKitchenOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := make([]api.Order, 0)
	for _, order := range s.orders {
		if order.Status == api.OrderPending || order.Status == api.OrderPreparing {
			queue = append(queue, order)
		}
	}
	respondData(c, http.StatusOK, queue)
}

func (s *Server) handleDeliveryOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]api.Order, 0)
	for _, order := range s.orders {
		if order.Status == api.OrderReady || order.Status == api.OrderOnTheWay {
			out = append(out, order)
		}
	}
	respondData(c, http.StatusOK, out)
}

func (s *Server) handleConfirmDelivery(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		respondDetail(c, http.StatusBadRequest, "Missing confirmation code")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == c.Param("id") {
			// The stub accepts the order id itself as the QR payload.
			if req.Code != s.orders[i].ID {
				respondDetail(c, http.StatusBadRequest, "Confirmation code does not match")
				return
			}
			s.orders[i].Status = api.OrderDelivered
			s.orders[i].UpdatedAt = api.Time{Time: time.Now().UTC()}
			respondData(c, http.StatusOK, s.orders[i])
			return
		}
	}
	respondDetail(c, http.StatusNotFound, "Order not found")
}
