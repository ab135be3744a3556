package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Varundhyani69/UniMeet/internal/service"
	"github.com/Varundhyani69/UniMeet/pkg/response"
)

// AvailabilityHandler 好友空闲模块 Handler
type AvailabilityHandler struct {
	svc service.AvailabilityService
}

// NewAvailabilityHandler 创建 AvailabilityHandler 实例
func NewAvailabilityHandler(svc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

// ListAvailableFriends 获取当前时刻可约的好友列表
// GET /api/v1/friends/availability
func (h *AvailabilityHandler) ListAvailableFriends(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	resp, err := h.svc.ListAvailableFriends(c.Request.Context(), userID, time.Now())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}
