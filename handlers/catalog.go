package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/catalog"
)

func (h *Handler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.WizardOptions())
}

func (h *Handler) ListDestinations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"destinations": h.planner.Catalog().All()})
}

func (h *Handler) GetDestination(c *gin.Context) {
	d, err := h.planner.Catalog().Find(c.Param("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) Health(c *gin.Context) {
	dbStatus := "not configured"
	if h.store != nil {
		dbStatus = "ok"
		if err := h.store.Ping(); err != nil {
			dbStatus = "error: " + err.Error()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "Trip Planner API",
		"database": dbStatus,
		"catalog": gin.H{
			"source":       h.catalogSource,
			"destinations": h.planner.Catalog().Len(),
		},
	})
}
