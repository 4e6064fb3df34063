package mockapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	"foodbot-miniapp/internal/features/api"
	"foodbot-miniapp/internal/features/auth"
	"foodbot-miniapp/internal/features/roles"
)

const sessionKey = "session"

// handleTelegramAuth exchanges a signed init-data payload for a session
// token. This side of the trust boundary holds the bot token, so validation
// here is authoritative.
func (s *Server) handleTelegramAuth(c *gin.Context) {
	raw := c.GetHeader("x-telegram-init-data")
	if raw == "" {
		respondDetail(c, http.StatusUnauthorized, "Missing Telegram init data")
		return
	}

	expIn := 20 * time.Minute
	if s.cfg.Debug {
		expIn = 0 // disables the TTL check
	}
	if err := initdata.Validate(raw, s.cfg.BotToken, expIn); err != nil {
		respondDetail(c, http.StatusUnauthorized, "Invalid Telegram auth")
		return
	}

	parsed, err := initdata.Parse(raw)
	if err != nil {
		respondDetail(c, http.StatusBadRequest, "Malformed Telegram init data")
		return
	}

	s.mu.Lock()
	user, ok := s.profiles[parsed.User.ID]
	if !ok {
		user = &profile{
			ID:        parsed.User.ID,
			FirstName: parsed.User.FirstName,
			LastName:  parsed.User.LastName,
			Username:  parsed.User.Username,
		}
		s.profiles[parsed.User.ID] = user
	}

	token := uuid.NewString()
	s.sessions[token] = session{
		UserID:   user.ID,
		Name:     parsed.User.FirstName,
		Username: parsed.User.Username,
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"session_token": token,
		"user": api.Profile{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Username:  user.Username,
			Phone:     user.Phone,
		},
	})
}

// handleAdminLogin authenticates staff by credentials and requested role.
func (s *Server) handleAdminLogin(c *gin.Context) {
	var req struct {
		Username string     `json:"username"`
		Password string     `json:"password"`
		Role     roles.Role `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid login payload")
		return
	}

	s.mu.Lock()
	account, ok := s.accounts[req.Username]
	s.mu.Unlock()

	if !ok || account.Password != req.Password || roles.Canonical(account.Role) != roles.Canonical(req.Role) {
		respondDetail(c, http.StatusUnauthorized, "Incorrect username, password or role")
		return
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = session{Name: req.Username, Role: roles.Canonical(account.Role), Username: req.Username}
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// requireAuth accepts either a bearer session token or a valid init-data
// header, same as the production backend. The resolved session lands in the
// gin context.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := s.sessionFromBearer(c); ok {
			c.Set(sessionKey, sess)
			c.Next()
			return
		}

		if raw := c.GetHeader("x-telegram-init-data"); raw != "" {
			expIn := 20 * time.Minute
			if s.cfg.Debug {
				expIn = 0
			}
			if err := initdata.Validate(raw, s.cfg.BotToken, expIn); err == nil {
				if parsed, err := initdata.Parse(raw); err == nil {
					c.Set(sessionKey, session{
						UserID:   parsed.User.ID,
						Name:     parsed.User.FirstName,
						Username: parsed.User.Username,
					})
					c.Next()
					return
				}
			}
		}

		respondDetail(c, http.StatusUnauthorized, "Invalid or expired session token")
	}
}

// requireRole gates staff endpoints on an authenticated role.
func (s *Server) requireRole(allowed ...roles.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := s.sessionFromBearer(c)
		if !ok {
			respondDetail(c, http.StatusUnauthorized, "Invalid or expired session token")
			return
		}
		for _, role := range allowed {
			if sess.Role == roles.Canonical(role) {
				c.Set(sessionKey, sess)
				c.Next()
				return
			}
		}
		respondDetail(c, http.StatusForbidden, "Insufficient role")
	}
}

func (s *Server) sessionFromBearer(c *gin.Context) (session, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return session{}, false
	}
	token := strings.TrimPrefix(header, "Bearer ")

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	return sess, ok
}

func (s *Server) handleMe(c *gin.Context) {
	sess := c.MustGet(sessionKey).(session)

	s.mu.Lock()
	user, ok := s.profiles[sess.UserID]
	s.mu.Unlock()

	if !ok {
		// Staff sessions have no customer profile; synthesize one.
		c.JSON(http.StatusOK, api.Profile{FirstName: sess.Name, Role: sess.Role})
		return
	}

	c.JSON(http.StatusOK, api.Profile{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		Phone:     user.Phone,
	})
}

func (s *Server) handleUpdatePhone(c *gin.Context) {
	var req struct {
		Phone  string `json:"phone"`
		Source string `json:"source"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid phone payload")
		return
	}

	normalized, err := auth.NormalizePhone(req.Phone)
	if err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	sess := c.MustGet(sessionKey).(session)
	s.mu.Lock()
	if user, ok := s.profiles[sess.UserID]; ok {
		user.Phone = normalized
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"phone": normalized, "source": req.Source})
}
