package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"foodbot-miniapp/internal/features/api"
)

func (s *Server) handleGetSettings(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.settings)
}

func (s *Server) handleUpdateSettings(c *gin.Context) {
	var settings api.RestaurantSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid settings payload")
		return
	}

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	c.JSON(http.StatusOK, settings)
}

func (s *Server) handleChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.NewPassword == "" {
		respondDetail(c, http.StatusBadRequest, "Invalid password payload")
		return
	}

	sess := c.MustGet(sessionKey).(session)

	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[sess.Username]
	if !ok || account.Password != req.CurrentPassword {
		respondDetail(c, http.StatusBadRequest, "Current password is incorrect")
		return
	}
	account.Password = req.NewPassword
	s.accounts[sess.Username] = account

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func (s *Server) handleAnalytics(c *gin.Context) {
	period := c.DefaultQuery("period", "today")

	s.mu.Lock()
	defer s.mu.Unlock()

	var revenue decimal.Decimal
	delivered := 0
	for _, order := range s.orders {
		if order.Status == api.OrderDelivered {
			revenue = revenue.Add(order.Total)
			delivered++
		}
	}

	data := api.AnalyticsData{
		Period:       period,
		TotalOrders:  len(s.orders),
		TotalRevenue: revenue,
	}
	if delivered > 0 {
		data.AvgOrderValue = revenue.Div(decimal.NewFromInt(int64(delivered))).Round(2)
	}
	c.JSON(http.StatusOK, data)
}

func (s *Server) handleDashboardStats(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, completed := 0, 0
	var revenue decimal.Decimal
	today := time.Now().UTC().Truncate(24 * time.Hour)

	for _, order := range s.orders {
		switch order.Status {
		case api.OrderDelivered, api.OrderCancelled:
			if order.UpdatedAt.After(today) && order.Status == api.OrderDelivered {
				completed++
				revenue = revenue.Add(order.Total)
			}
		default:
			active++
		}
	}

	c.JSON(http.StatusOK, api.DashboardStats{
		ActiveOrders:   active,
		AvgPrepTime:    "18m",
		CompletedToday: completed,
		RevenueToday:   revenue.StringFixed(2),
	})
}
