package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fixfleet-server/matching"
	"fixfleet-server/models"
	"fixfleet-server/store"
)

// DirectoryHandler serves the worker and booking endpoints
type DirectoryHandler struct {
	directory *store.DirectoryStore
}

// NewDirectoryHandler creates a directory handler
func NewDirectoryHandler(directory *store.DirectoryStore) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// RegisterWorkerRoutes registers the worker endpoints
func RegisterWorkerRoutes(router *gin.RouterGroup, h *DirectoryHandler) {
	router.GET("/workers", h.listWorkers)
	router.POST("/workers", h.registerWorker)
}

// listWorkers runs the matching engine over the directory snapshot
func (h *DirectoryHandler) listWorkers(c *gin.Context) {
	var query matching.Query
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query",
			"message": err.Error(),
		})
		return
	}

	results := matching.Match(h.directory.ListWorkers(), query)
	c.JSON(http.StatusOK, results)
}

// registerWorker handles worker self-registration
func (h *DirectoryHandler) registerWorker(c *gin.Context) {
	var req models.WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required fields",
			"message": err.Error(),
		})
		return
	}

	if !models.IsValidSkill(req.Skill) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid skill",
			"message": "Skill must be one of the supported service categories",
		})
		return
	}

	worker, err := h.directory.AddWorker(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required fields",
			"message": err.Error(),
		})
		return
	}

	log.Printf("✅ Worker registered: %s (%s)", worker.Name, worker.Skill)
	c.JSON(http.StatusCreated, worker)
}
