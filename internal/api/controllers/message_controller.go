package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tuliptour/internal/models/request_models"
	"tuliptour/internal/services"
	"tuliptour/pkg/utils"
)

type MessageController struct {
	messageService services.MessageServiceInterface
}

func NewMessageController(messageService services.MessageServiceInterface) *MessageController {
	return &MessageController{messageService: messageService}
}

// ListMessages godoc
// @Summary List all messages
// @Description Admin inbox: every contact message, newest first
// @Tags Messages
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /resources/messages [get]
func (m *MessageController) ListMessages(c *gin.Context) {
	messages, err := m.messageService.ListMessages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, messages, "Messages fetched successfully")
}

// ListMessagesByEmail godoc
// @Summary List messages for one sender
// @Tags Messages
// @Produce json
// @Param email path string true "Sender email"
// @Success 200 {object} utils.APIResponse
// @Router /resources/messages/{email} [get]
func (m *MessageController) ListMessagesByEmail(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, "Email parameter is required")
		return
	}

	messages, err := m.messageService.ListMessagesByEmail(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, messages, "Messages fetched successfully")
}

// CreateMessage godoc
// @Summary Submit a contact message
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body request_models.CreateMessageRequest true "Message payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /resources/messages [post]
func (m *MessageController) CreateMessage(c *gin.Context) {
	var req request_models.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	message, err := m.messageService.CreateMessage(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, message, "Message saved successfully")
}

// ReplyMessage godoc
// @Summary Respond to a message
// @Description Store the admin response; the message becomes replied and unread
// @Tags Messages
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param request body request_models.ReplyMessageRequest true "Response payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /resources/messages/update/{id} [post]
func (m *MessageController) ReplyMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	var req request_models.ReplyMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := m.messageService.ReplyMessage(c.Request.Context(), id, req.Response); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Message updated successfully")
}

// MarkMessageRead godoc
// @Summary Mark a replied message as read
// @Tags Messages
// @Param id path string true "Message ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /resources/messages/read/{id} [post]
func (m *MessageController) MarkMessageRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	if err := m.messageService.MarkRead(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Message marked as read")
}
