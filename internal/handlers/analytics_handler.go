package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanziljws/tanipintar-website/internal/analytics"
	"github.com/tanziljws/tanipintar-website/internal/services"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

type AnalyticsHandler struct {
	analyticsService services.IAnalyticsService
}

func NewAnalyticsHandler(analyticsService services.IAnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) RegisterRoutes(router *gin.Engine) {
	analyticsGr := router.Group("/api/analytics")
	analyticsGr.GET("", h.GetAnalytics)
	analyticsGr.POST("/refresh", h.Refresh)
	analyticsGr.GET("/export", h.Export)
	analyticsGr.GET("/monthly-chart.png", h.MonthlyChart)
}

// FilterFromQuery reads the map filter from the query string. category may be
// repeated or comma separated.
func FilterFromQuery(c *gin.Context) analytics.FilterState {
	return analytics.FilterState{
		SearchQuery:           c.Query("search"),
		SelectedProvince:      c.Query("province"),
		SelectedDistrict:      c.Query("district"),
		SelectedCommodityType: c.Query("commodity_type"),
		SelectedCategories:    utils.SplitList(c.QueryArray("category")),
		OrganicFilter:         analytics.OrganicFilter(c.Query("organic")),
		SortOption:            analytics.SortOption(c.Query("sort")),
	}.Normalize()
}

func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	view := h.analyticsService.Derived(c.Request.Context(), FilterFromQuery(c))

	resp := utils.CreateSuccessResponse(view)
	resp.Meta.Warning = view.Warning
	c.JSON(http.StatusOK, resp)
}

func (h *AnalyticsHandler) Refresh(c *gin.Context) {
	warning := h.analyticsService.Refresh(c.Request.Context())

	resp := utils.CreateSuccessResponse(gin.H{"refreshed": warning == ""})
	resp.Meta.Warning = warning
	c.JSON(http.StatusOK, resp)
}

func (h *AnalyticsHandler) Export(c *gin.Context) {
	format, err := analytics.ParseFormat(c.DefaultQuery("format", string(analytics.FormatCSV)))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", err.Error())
		return
	}

	artifact, err := h.analyticsService.Export(c.Request.Context(), FilterFromQuery(c), format)
	if err != nil {
		respondServiceError(c, err, "")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, artifact.FileName))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Body)
}

func (h *AnalyticsHandler) MonthlyChart(c *gin.Context) {
	data, err := h.analyticsService.MonthlyChart(c.Request.Context(), FilterFromQuery(c))
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", data)
}
