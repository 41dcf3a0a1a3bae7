package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tuliptour/internal/models/request_models"
	"tuliptour/internal/services"
	"tuliptour/pkg/utils"
)

type BlogController struct {
	blogService services.BlogServiceInterface
}

func NewBlogController(blogService services.BlogServiceInterface) *BlogController {
	return &BlogController{blogService: blogService}
}

// ListBlogs godoc
// @Summary List blog posts
// @Description Get blog posts newest first; the home page passes limit=4
// @Tags Blogs
// @Produce json
// @Param limit query int false "Maximum number of posts"
// @Success 200 {object} utils.APIResponse
// @Router /resources/blogs [get]
func (b *BlogController) ListBlogs(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			utils.RespondError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	blogs, err := b.blogService.ListBlogs(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, blogs, "Blogs fetched successfully")
}

// GetBlog godoc
// @Summary Get a blog post
// @Tags Blogs
// @Produce json
// @Param id path string true "Blog post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /resources/blogs/{id} [get]
func (b *BlogController) GetBlog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid blog ID")
		return
	}

	blog, svcErr := b.blogService.GetBlog(c.Request.Context(), id)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}
	utils.RespondSuccess(c, blog, "Blog fetched successfully")
}

// CreateBlog godoc
// @Summary Create a blog post
// @Tags Blogs
// @Accept json
// @Produce json
// @Param request body request_models.CreateBlogRequest true "Blog payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /resources/blogs [post]
func (b *BlogController) CreateBlog(c *gin.Context) {
	var req request_models.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	blog, err := b.blogService.CreateBlog(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, blog, "Blog post added successfully")
}

// UpdateBlog godoc
// @Summary Update a blog post
// @Tags Blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog post ID"
// @Param request body request_models.UpdateBlogRequest true "Blog payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /resources/blogs/{id} [put]
func (b *BlogController) UpdateBlog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid blog ID")
		return
	}

	var req request_models.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := b.blogService.UpdateBlog(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Blog updated successfully")
}

// DeleteBlog godoc
// @Summary Delete a blog post
// @Tags Blogs
// @Param id path string true "Blog post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /resources/blogs/{id} [delete]
func (b *BlogController) DeleteBlog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid blog ID")
		return
	}

	if err := b.blogService.DeleteBlog(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Blog deleted successfully")
}
