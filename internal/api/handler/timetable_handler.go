package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Varundhyani69/UniMeet/internal/dto"
	"github.com/Varundhyani69/UniMeet/internal/service"
	"github.com/Varundhyani69/UniMeet/pkg/response"
)

// TimetableHandler 课表模块 Handler
type TimetableHandler struct {
	svc         service.TimetableService
	maxFileSize int64
}

// NewTimetableHandler 创建 TimetableHandler 实例
func NewTimetableHandler(svc service.TimetableService, maxFileSize int64) *TimetableHandler {
	return &TimetableHandler{svc: svc, maxFileSize: maxFileSize}
}

// detectFileKind 依据文件元数据判定课表文件类型
// 判定属于上传边界的职责，解析层只接收判定结果
func detectFileKind(header *multipart.FileHeader) string {
	contentType := header.Header.Get("Content-Type")
	name := strings.ToLower(header.Filename)

	switch {
	case strings.Contains(contentType, "pdf") || strings.HasSuffix(name, ".pdf"):
		return service.KindPDF
	case strings.Contains(contentType, "sheet") ||
		strings.HasSuffix(name, ".xlsx") || strings.HasSuffix(name, ".xls"):
		return service.KindExcel
	case strings.Contains(contentType, "calendar") || strings.HasSuffix(name, ".ics"):
		return service.KindICS
	default:
		return ""
	}
}

// Upload 上传课表文件
// POST /api/v1/timetables/upload
// multipart/form-data, field="file"
func (h *TimetableHandler) Upload(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 16000, "请上传课表文件")
		return
	}
	if fileHeader.Size > h.maxFileSize {
		response.BadRequest(c, 16001, "文件大小超过限制")
		return
	}

	kind := detectFileKind(fileHeader)

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 16000, "无法读取上传文件")
		return
	}
	defer file.Close()

	resp, err := h.svc.Upload(c.Request.Context(), file, kind, userID)
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, resp)
}

// UpdateTimetable 手动编辑课表
// PUT /api/v1/timetables/me
func (h *TimetableHandler) UpdateTimetable(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 16002, err.Error())
		return
	}

	resp, err := h.svc.UpdateTimetable(c.Request.Context(), userID, req.Timetable)
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, resp)
}

// GetMyTimetable 获取我的课表
// GET /api/v1/timetables/me
func (h *TimetableHandler) GetMyTimetable(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	resp, err := h.svc.GetMyTimetable(c.Request.Context(), userID)
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, resp)
}

// GetFriendTimetable 获取好友课表
// GET /api/v1/timetables/friends/:id
func (h *TimetableHandler) GetFriendTimetable(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	friendID := c.Param("id")

	resp, err := h.svc.GetFriendTimetable(c.Request.Context(), userID, friendID)
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, resp)
}

// handleTimetableError 统一课表模块错误映射
func handleTimetableError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTimetableUnsupportedKind):
		response.ErrorWithDetails(c, http.StatusBadRequest, 16003, "不支持的文件类型", err.Error())
	case errors.Is(err, service.ErrTimetableParseFailed):
		response.ErrorWithDetails(c, http.StatusBadRequest, 16004, "未能从文件中读取课表", err.Error())
	case errors.Is(err, service.ErrTimetableInvalidGrid):
		response.BadRequest(c, 16005, err.Error())
	case errors.Is(err, service.ErrTimetableUserNotFound):
		response.NotFound(c, 16006, err.Error())
	case errors.Is(err, service.ErrTimetableNotFriends):
		response.Forbidden(c, 16007, err.Error())
	default:
		response.InternalError(c)
	}
}
