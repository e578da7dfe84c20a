package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/services"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

type FarmerHandler struct {
	farmerService services.IFarmerService
	middleware    *Middleware
}

func NewFarmerHandler(farmerService services.IFarmerService, middleware *Middleware) *FarmerHandler {
	return &FarmerHandler{
		farmerService: farmerService,
		middleware:    middleware,
	}
}

func (h *FarmerHandler) RegisterRoutes(router *gin.Engine) {
	publicGr := router.Group("/api")
	publicGr.GET("/tables", h.ListTables)
	publicGr.GET("/farmers", h.ListFarmerRecords)
	publicGr.GET("/farmers/geojson", h.FarmersGeoJSON)
	publicGr.GET("/farmers/distribution", h.DistrictDistribution)
	publicGr.GET("/commodities/types", h.CommodityTypeCounts)
	publicGr.GET("/districts", h.ListDistricts)
	publicGr.GET("/commodity-types", h.ListCommodityTypes)

	adminGr := router.Group("/api/admin", h.middleware.RequireAdmin())
	adminGr.GET("/farmers", h.ListFarmers)
	adminGr.POST("/farmers", h.CreateFarmer)
	adminGr.PUT("/farmers/:id", h.UpdateFarmer)
	adminGr.DELETE("/farmers/:id", h.DeleteFarmer)
}

func (h *FarmerHandler) ListTables(c *gin.Context) {
	tables, err := h.farmerService.ListTables(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, utils.CreateListResponse(tables))
}

func (h *FarmerHandler) ListFarmerRecords(c *gin.Context) {
	records, err := h.farmerService.FetchFarmerRecords(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, utils.CreateListResponse(records))
}

func (h *FarmerHandler) FarmersGeoJSON(c *gin.Context) {
	records, err := h.farmerService.FetchFarmerRecords(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, services.FarmerFeatureCollection(records))
}

func (h *FarmerHandler) DistrictDistribution(c *gin.Context) {
	counts, err := h.farmerService.FetchDistrictCounts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, utils.CreateListResponse(counts))
}

func (h *FarmerHandler) CommodityTypeCounts(c *gin.Context) {
	counts, err := h.farmerService.GetCommodityTypeCounts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, utils.CreateListResponse(counts))
}

func (h *FarmerHandler) ListDistricts(c *gin.Context) {
	districts, err := h.farmerService.ListDistricts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, utils.CreateListResponse(districts))
}

func (h *FarmerHandler) ListCommodityTypes(c *gin.Context) {
	types, err := h.farmerService.ListCommodityTypes(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, utils.CreateListResponse(types))
}

func (h *FarmerHandler) ListFarmers(c *gin.Context) {
	limit, err := utils.GetQueryParamAsInt(c, "limit", 0)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}
	offset, err := utils.GetQueryParamAsInt(c, "offset", 0)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	farmers, err := h.farmerService.ListFarmers(c.Request.Context(), models.FarmerFilter{
		Districts:      utils.SplitList(c.QueryArray("district")),
		CommodityTypes: utils.SplitList(c.QueryArray("commodity_type")),
		Search:         c.Query("search"),
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, utils.CreateListResponse(farmers))
}

func (h *FarmerHandler) CreateFarmer(c *gin.Context) {
	var req models.FarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	farmer, err := h.farmerService.CreateFarmer(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "FARMER_NOT_FOUND")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, farmer)
}

func (h *FarmerHandler) UpdateFarmer(c *gin.Context) {
	id, err := utils.GetParamAsInt64(c, "id")
	if err != nil {
		respondInvalidID(c)
		return
	}

	var req models.FarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	farmer, err := h.farmerService.UpdateFarmer(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "FARMER_NOT_FOUND")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, farmer)
}

func (h *FarmerHandler) DeleteFarmer(c *gin.Context) {
	id, err := utils.GetParamAsInt64(c, "id")
	if err != nil {
		respondInvalidID(c)
		return
	}

	if err := h.farmerService.DeleteFarmer(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "FARMER_NOT_FOUND")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}
