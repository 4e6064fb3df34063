package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"foodbot-miniapp/internal/features/api"
)

func (s *Server) handleListMenu(c *gin.Context) {
	category := c.Query("category")

	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]api.MenuItem, 0, len(s.menu))
	for _, item := range s.menu {
		if category != "" && item.Category != category {
			continue
		}
		items = append(items, item)
	}
	respondData(c, http.StatusOK, items)
}

func (s *Server) handleCreateMenuItem(c *gin.Context) {
	var item api.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid menu item payload")
		return
	}
	if item.Name == "" {
		respondDetail(c, http.StatusBadRequest, "Menu item name is required")
		return
	}

	item.ID = uuid.NewString()

	s.mu.Lock()
	s.menu = append(s.menu, item)
	s.mu.Unlock()

	respondData(c, http.StatusCreated, item)
}

func (s *Server) handleUpdateMenuItem(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid menu item payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.menu {
		if s.menu[i].ID != c.Param("id") {
			continue
		}
		// Partial updates: only a handful of fields are editable in the
		// panel, the rest round-trips through Create.
		if name, ok := patch["name"].(string); ok {
			s.menu[i].Name = name
		}
		if description, ok := patch["description"].(string); ok {
			s.menu[i].Description = description
		}
		if available, ok := patch["available"].(bool); ok {
			s.menu[i].Available = available
		}
		if category, ok := patch["category"].(string); ok {
			s.menu[i].Category = category
		}
		respondData(c, http.StatusOK, s.menu[i])
		return
	}
	respondDetail(c, http.StatusNotFound, "Menu item not found")
}

func (s *Server) handleDeleteMenuItem(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.menu {
		if s.menu[i].ID == c.Param("id") {
			s.menu = append(s.menu[:i], s.menu[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	respondDetail(c, http.StatusNotFound, "Menu item not found")
}

func (s *Server) handleUploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondDetail(c, http.StatusBadRequest, "Missing file field")
		return
	}

	// Nothing is stored; the stub just fabricates a hosted URL.
	c.JSON(http.StatusOK, gin.H{"url": "https://cdn.example.test/menu/" + uuid.NewString() + "/" + file.Filename})
}
