package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tuliptour/internal/models/request_models"
	"tuliptour/internal/services"
	"tuliptour/pkg/utils"
)

type PackageController struct {
	packageService services.PackageServiceInterface
}

func NewPackageController(packageService services.PackageServiceInterface) *PackageController {
	return &PackageController{packageService: packageService}
}

// ListPackages godoc
// @Summary List tour packages
// @Description Get all tour packages with their derived expired flag
// @Tags Packages
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /resources/packages [get]
func (p *PackageController) ListPackages(c *gin.Context) {
	packages, err := p.packageService.ListPackages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, packages, "Packages fetched successfully")
}

// CreatePackage godoc
// @Summary Create a tour package
// @Description Create a new tour package with a server-generated identifier
// @Tags Packages
// @Accept json
// @Produce json
// @Param request body request_models.CreatePackageRequest true "Package payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /resources/packages [post]
func (p *PackageController) CreatePackage(c *gin.Context) {
	var req request_models.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	pkg, err := p.packageService.CreatePackage(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, pkg, "Package created successfully")
}
