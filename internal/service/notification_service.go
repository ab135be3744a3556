package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Varundhyani69/UniMeet/internal/dto"
	"github.com/Varundhyani69/UniMeet/internal/model"
	"github.com/Varundhyani69/UniMeet/internal/repository"
	"github.com/Varundhyani69/UniMeet/pkg/redis"
)

// ── 通知模块业务错误 ──

var (
	ErrNotificationNotFriends = errors.New("对方不是你的好友")
	ErrNotificationNotFound   = errors.New("通知不存在")
	ErrNotificationNotOwner   = errors.New("无权操作此通知")
)

// ── NotificationService 接口 ───────────────────────────────
//
// 设计说明：
//   - 催促提醒先落库，再尽力通过 Redis 按用户频道发布实时推送；
//     Redis 不可用时仅落库，不影响主流程。
//   - 每个用户只保留最近 10 条通知，淘汰在写入时完成。
// ─────────────────────────────────────────────────────────────

// NotificationService 通知模块业务接口
type NotificationService interface {
	// SendReminder 向好友发送"来聚聚"催促提醒
	SendReminder(ctx context.Context, fromID, toID string) (*dto.SendReminderResponse, error)
	// ListNotifications 获取当前用户的通知列表
	ListNotifications(ctx context.Context, userID string) ([]dto.NotificationResponse, error)
	// MarkRead 将通知标记为已读
	MarkRead(ctx context.Context, userID, notificationID string) error
}

type notificationService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewNotificationService 创建 NotificationService 实例
// rdb 可为 nil：实时推送降级关闭，仅保留落库通知
func NewNotificationService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, rdb: rdb, logger: logger}
}

func (s *notificationService) SendReminder(ctx context.Context, fromID, toID string) (*dto.SendReminderResponse, error) {
	ok, err := s.repo.User.IsFriend(ctx, fromID, toID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotificationNotFriends
	}

	from, err := s.repo.User.GetByID(ctx, fromID)
	if err != nil {
		return nil, err
	}

	n := model.Notification{
		UserID:     toID,
		FromUserID: &fromID,
		Type:       "reminder",
		Content:    fmt.Sprintf("%s sent you a reminder to meet!", from.Username),
	}
	if err := s.repo.Notification.Create(ctx, &n); err != nil {
		s.logger.Error("写入通知失败", zap.String("toID", toID), zap.Error(err))
		return nil, err
	}

	// 尽力实时推送；失败不影响主流程
	delivered := false
	if s.rdb != nil {
		err := s.rdb.PublishNotification(ctx, toID, redis.NotifyMessage{
			Type:       n.Type,
			Content:    n.Content,
			FromUserID: fromID,
		})
		if err != nil {
			s.logger.Warn("实时通知发布失败", zap.String("toID", toID), zap.Error(err))
		} else {
			delivered = true
		}
	}

	return &dto.SendReminderResponse{
		NotificationID: n.NotificationID,
		Delivered:      delivered,
	}, nil
}

func (s *notificationService) ListNotifications(ctx context.Context, userID string) ([]dto.NotificationResponse, error) {
	list, err := s.repo.Notification.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询通知失败", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		item := dto.NotificationResponse{
			ID:        n.NotificationID,
			Type:      n.Type,
			Content:   n.Content,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
		if n.FromUserID != nil {
			item.FromUserID = *n.FromUserID
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	n, err := s.repo.Notification.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	if n.UserID != userID {
		return ErrNotificationNotOwner
	}
	return s.repo.Notification.MarkRead(ctx, notificationID)
}
