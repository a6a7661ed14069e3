package routes

import (
	"log"
	"net/http"
	"net/url"

	"condotrack/internal/service/presence"
	"condotrack/internal/util"

	"github.com/gin-gonic/gin"
)

// SetupTrackerHandlers registers the tracking page generator and the tracker
// presence endpoint
func SetupTrackerHandlers(router *gin.RouterGroup, api *gin.RouterGroup) {
	router.POST("/generate", GenerateTrackerPage)
	api.GET("/tracker/:trackerId/presence", TrackerPresence)
}

type generateRequest struct {
	TrackerID   string `form:"trackerId" json:"trackerId"`
	Origin      string `form:"origin" json:"origin"`
	Destination string `form:"destination" json:"destination"`
}

// GenerateTrackerPage handles POST /generate. It only builds the tracking page
// URL; the route record itself is declared through the API.
func GenerateTrackerPage(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "origin and destination are required")
		return
	}

	if req.Origin == "" || req.Destination == "" {
		c.String(http.StatusBadRequest, "origin and destination are required")
		return
	}

	trackerID := req.TrackerID
	if trackerID == "" {
		// A fresh id keeps concurrently generated pages out of each other's room
		trackerID = util.ShortUUID()
	}

	query := url.Values{}
	query.Set("trackerId", trackerID)
	query.Set("orig", req.Origin)
	query.Set("dest", req.Destination)

	c.Redirect(http.StatusFound, "/tracker.html?"+query.Encode())
}

// TrackerPresence handles GET /api/tracker/:trackerId/presence
func TrackerPresence(c *gin.Context) {
	trackerID := c.Param("trackerId")

	online, err := presence.GetPresenceService().IsOnline(trackerID)
	if err != nil {
		log.Printf("Presence lookup failed for tracker %s: %v", trackerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trackerId": trackerID, "online": online})
}
