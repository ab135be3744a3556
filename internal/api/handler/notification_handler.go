package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Varundhyani69/UniMeet/internal/service"
	"github.com/Varundhyani69/UniMeet/pkg/response"
)

// NotificationHandler 通知模块 Handler
type NotificationHandler struct {
	svc service.NotificationService
}

// NewNotificationHandler 创建 NotificationHandler 实例
func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// SendReminder 给好友发送见面提醒
// POST /api/v1/friends/:id/remind
func (h *NotificationHandler) SendReminder(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	friendID := c.Param("id")

	resp, err := h.svc.SendReminder(c.Request.Context(), userID, friendID)
	if err != nil {
		handleNotificationError(c, err)
		return
	}
	response.Created(c, resp)
}

// ListNotifications 获取最近通知列表
// GET /api/v1/notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	resp, err := h.svc.ListNotifications(c.Request.Context(), userID)
	if err != nil {
		handleNotificationError(c, err)
		return
	}
	response.OK(c, resp)
}

// MarkRead 标记通知为已读
// PATCH /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	notificationID := c.Param("id")

	if err := h.svc.MarkRead(c.Request.Context(), userID, notificationID); err != nil {
		handleNotificationError(c, err)
		return
	}
	response.OK(c, nil)
}

// handleNotificationError 统一通知模块错误映射
func handleNotificationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotificationNotFriends):
		response.Forbidden(c, 17001, err.Error())
	case errors.Is(err, service.ErrNotificationNotFound):
		response.NotFound(c, 17002, err.Error())
	case errors.Is(err, service.ErrNotificationNotOwner):
		response.Forbidden(c, 17003, err.Error())
	default:
		response.InternalError(c)
	}
}
