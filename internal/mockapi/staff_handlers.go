package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"foodbot-miniapp/internal/features/api"
	"foodbot-miniapp/internal/features/roles"
)

func (s *Server) handleListStaff(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.staff)
}

func (s *Server) handleCreateStaff(c *gin.Context) {
	var member api.Staff
	if err := c.ShouldBindJSON(&member); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid staff payload")
		return
	}
	if member.Name == "" || !roles.Known(member.Role) {
		respondDetail(c, http.StatusBadRequest, "Staff name and a known role are required")
		return
	}

	member.ID = uuid.NewString()
	member.Status = "active"

	s.mu.Lock()
	s.staff = append(s.staff, member)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, member)
}

func (s *Server) handleUpdateStaff(c *gin.Context) {
	var patch api.Staff
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid staff payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.staff {
		if s.staff[i].ID != c.Param("id") {
			continue
		}
		if patch.Name != "" {
			s.staff[i].Name = patch.Name
		}
		if patch.Phone != "" {
			s.staff[i].Phone = patch.Phone
		}
		if patch.Role != "" {
			if !roles.Known(patch.Role) {
				respondDetail(c, http.StatusBadRequest, "Unknown role")
				return
			}
			s.staff[i].Role = patch.Role
		}
		if patch.Status != "" {
			s.staff[i].Status = patch.Status
		}
		c.JSON(http.StatusOK, s.staff[i])
		return
	}
	respondDetail(c, http.StatusNotFound, "Staff member not found")
}

func (s *Server) handleDeleteStaff(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.staff {
		if s.staff[i].ID == c.Param("id") {
			s.staff = append(s.staff[:i], s.staff[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	respondDetail(c, http.StatusNotFound, "Staff member not found")
}
