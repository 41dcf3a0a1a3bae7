package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tuliptour/internal/models/request_models"
	"tuliptour/internal/services"
	"tuliptour/pkg/utils"
)

type FamilyController struct {
	familyService services.FamilyServiceInterface
}

func NewFamilyController(familyService services.FamilyServiceInterface) *FamilyController {
	return &FamilyController{familyService: familyService}
}

// SaveFamily godoc
// @Summary Save family composition
// @Description Insert or overwrite the family record for a user (one row per user)
// @Tags Family
// @Accept json
// @Produce json
// @Param request body request_models.SaveFamilyRequest true "Family payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /resources/family [post]
func (f *FamilyController) SaveFamily(c *gin.Context) {
	var req request_models.SaveFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	info, err := f.familyService.SaveFamily(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, info, "Family info saved successfully")
}

// ListFamilies godoc
// @Summary List family records
// @Tags Family
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /resources/family [get]
func (f *FamilyController) ListFamilies(c *gin.Context) {
	families, err := f.familyService.ListFamilies(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, families, "Family info fetched successfully")
}

// GetFamily godoc
// @Summary Get one user's family record
// @Tags Family
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /resources/family/{userId} [get]
func (f *FamilyController) GetFamily(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID parameter is required")
		return
	}

	info, err := f.familyService.GetFamily(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, info, "Family info fetched successfully")
}
