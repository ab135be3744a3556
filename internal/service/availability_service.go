package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Varundhyani69/UniMeet/internal/dto"
	"github.com/Varundhyani69/UniMeet/internal/repository"
)

// ── AvailabilityService 接口 ───────────────────────────────
//
// 设计说明：
//   - 排行是两份网格 + 当前时刻的纯函数，每次请求重新计算，
//     不做增量维护，也不缓存。
//   - 今日余下全忙的好友不进入排行。
//   - 天名取自系统时钟的英文星期名，与网格词表一致。
// ─────────────────────────────────────────────────────────────

// AvailabilityService 好友空闲排行业务接口
type AvailabilityService interface {
	// ListAvailableFriends 计算当前时刻的好友空闲排行
	ListAvailableFriends(ctx context.Context, userID string, now time.Time) (*dto.FriendAvailabilityResponse, error)
}

type availabilityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAvailabilityService 创建 AvailabilityService 实例
func NewAvailabilityService(repo *repository.Repository, logger *zap.Logger) AvailabilityService {
	return &availabilityService{repo: repo, logger: logger}
}

func (s *availabilityService) ListAvailableFriends(ctx context.Context, userID string, now time.Time) (*dto.FriendAvailabilityResponse, error) {
	friends, err := s.repo.User.ListFriends(ctx, userID)
	if err != nil {
		s.logger.Error("查询好友列表失败", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	day := now.Weekday().String()
	hour := now.Hour()

	ranked := make([]rankedFriend, 0, len(friends))
	for _, f := range friends {
		status, ok := ClassifyAvailability(f.Timetable, day, hour)
		if !ok {
			continue // 今日余下全忙，不展示
		}
		ranked = append(ranked, rankedFriend{user: f, status: status})
	}

	rankFriends(ranked)

	items := make([]dto.FriendAvailabilityItem, 0, len(ranked))
	for _, r := range ranked {
		items = append(items, dto.FriendAvailabilityItem{
			FriendID: r.user.UserID,
			Username: r.user.Username,
			Pfp:      r.user.Pfp,
			Status:   r.status.Phrase,
			Dot:      r.status.Dot,
			Priority: r.status.Priority,
		})
	}

	return &dto.FriendAvailabilityResponse{
		Day:     day,
		Hour:    hour,
		Friends: items,
	}, nil
}
