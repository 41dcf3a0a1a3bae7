package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tuliptour/internal/services"
	"tuliptour/pkg/utils"
)

type AnalyticsController struct {
	analyticsService services.AnalyticsServiceInterface
}

func NewAnalyticsController(analyticsService services.AnalyticsServiceInterface) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// GetDashboard godoc
// @Summary Get the admin dashboard report
// @Description Totals, replied/pending message split, most-booked packages and trailing monthly cohorts with per-month top-3 rankings
// @Tags Analytics
// @Produce json
// @Param months query int false "Trailing calendar months (default 6, max 24)"
// @Param top query int false "Ranking size (default 5, max 20)"
// @Param tz query string false "IANA timezone for calendar math (default: ANALYTICS_TZ env, then UTC)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /resources/analytics/dashboard [get]
func (a *AnalyticsController) GetDashboard(c *gin.Context) {
	months, ok := boundedIntQuery(c, "months", 6, 1, 24)
	if !ok {
		return
	}
	top, ok := boundedIntQuery(c, "top", 5, 1, 20)
	if !ok {
		return
	}

	loc := utils.ResolveLocation(c.Query("tz"))

	report, err := a.analyticsService.BuildDashboard(c.Request.Context(), months, top, loc)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "Dashboard data fetched successfully")
}

// ---- helpers ----

func boundedIntQuery(c *gin.Context, name string, def, min, max int) (int, bool) {
	s := c.Query(name)
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < min || n > max {
		utils.RespondError(c, http.StatusBadRequest,
			name+" must be an integer between "+strconv.Itoa(min)+" and "+strconv.Itoa(max))
		return 0, false
	}
	return n, true
}
