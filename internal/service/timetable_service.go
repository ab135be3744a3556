package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Varundhyani69/UniMeet/internal/dto"
	"github.com/Varundhyani69/UniMeet/internal/model"
	"github.com/Varundhyani69/UniMeet/internal/repository"
)

// ── 课表模块业务错误 ──

var (
	ErrTimetableUnsupportedKind = errors.New("不支持的课表文件类型")
	ErrTimetableParseFailed     = errors.New("课表文件解析失败")
	ErrTimetableUserNotFound    = errors.New("用户不存在")
	ErrTimetableNotFriends      = errors.New("对方不是你的好友")
	ErrTimetableInvalidGrid     = errors.New("课表数据不合法")
)

// 上传文件类型；由调用方依据文件元数据判定后传入
const (
	KindExcel = "excel"
	KindPDF   = "pdf"
	KindICS   = "ics"
)

// ── TimetableService 接口 ──────────────────────────────────
//
// 设计说明：
//   - 上传（Upload）采用全量替换策略：解析成功后新网格整体
//     覆盖用户原课表，不做跨次上传的局部合并。
//   - 文件类型判定是调用方（上传边界）的职责；未知类型是
//     本模块唯一的硬失败，区别于解析过程中的单格跳过。
//   - 手动编辑（UpdateTimetable）同样整表替换，入库前经过
//     词表边界校验。
// ─────────────────────────────────────────────────────────────

// TimetableService 课表模块业务接口
type TimetableService interface {
	// Upload 解析上传的课表文件并整表替换用户课表
	Upload(ctx context.Context, reader io.Reader, kind string, userID string) (*dto.UploadTimetableResponse, error)
	// UpdateTimetable 手动编辑课表（整表替换）
	UpdateTimetable(ctx context.Context, userID string, grid model.WeeklyGrid) (*dto.TimetableResponse, error)
	// GetMyTimetable 获取当前用户的课表
	GetMyTimetable(ctx context.Context, userID string) (*dto.TimetableResponse, error)
	// GetFriendTimetable 获取好友的课表（需好友关系）
	GetFriendTimetable(ctx context.Context, userID, friendID string) (*dto.FriendTimetableResponse, error)
}

type timetableService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimetableService 创建 TimetableService 实例
func NewTimetableService(repo *repository.Repository, logger *zap.Logger) TimetableService {
	return &timetableService{repo: repo, logger: logger}
}

// ════════════════════════════════════════════════════════════
// Upload — 上传并解析课表
// ════════════════════════════════════════════════════════════
//
// 流程：
//   1. 按类型分派解析器（excel / pdf / ics）
//   2. 解析失败 → ErrTimetableParseFailed（整体失败，提示重传或手工录入）
//   3. 解析成功 → 网格整体覆盖用户课表

func (s *timetableService) Upload(ctx context.Context, reader io.Reader, kind string, userID string) (*dto.UploadTimetableResponse, error) {
	// 未知类型在读取任何内容之前拒绝
	switch kind {
	case KindExcel, KindPDF, KindICS:
	default:
		return nil, ErrTimetableUnsupportedKind
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("读取上传内容失败: %w", err)
	}

	var grid model.WeeklyGrid
	switch kind {
	case KindExcel:
		grid, err = ParseExcelTimetable(bytes.NewReader(data))
	case KindPDF:
		grid, err = ParsePDFTimetable(bytes.NewReader(data), int64(len(data)))
	case KindICS:
		grid, err = ParseICSTimetable(bytes.NewReader(data))
	}
	if err != nil {
		s.logger.Warn("课表解析失败",
			zap.String("kind", kind),
			zap.String("userID", userID),
			zap.Error(err),
		)
		return nil, ErrTimetableParseFailed
	}

	if err := s.storeTimetable(ctx, userID, grid); err != nil {
		return nil, err
	}

	return &dto.UploadTimetableResponse{Source: kind, Timetable: grid}, nil
}

// ════════════════════════════════════════════════════════════
// UpdateTimetable — 手动编辑课表
// ════════════════════════════════════════════════════════════

func (s *timetableService) UpdateTimetable(ctx context.Context, userID string, grid model.WeeklyGrid) (*dto.TimetableResponse, error) {
	if grid == nil {
		return nil, ErrTimetableInvalidGrid
	}

	clean := model.SanitizeGrid(grid)
	if err := s.storeTimetable(ctx, userID, clean); err != nil {
		return nil, err
	}

	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.TimetableResponse{Timetable: clean, UpdatedAt: user.UpdatedAt}, nil
}

// ════════════════════════════════════════════════════════════
// 查询
// ════════════════════════════════════════════════════════════

func (s *timetableService) GetMyTimetable(ctx context.Context, userID string) (*dto.TimetableResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimetableUserNotFound
		}
		return nil, err
	}

	grid := user.Timetable
	if len(grid) == 0 {
		// 未上传课表时返回全空网格
		grid = model.EmptyGrid()
	}

	return &dto.TimetableResponse{Timetable: grid, UpdatedAt: user.UpdatedAt}, nil
}

func (s *timetableService) GetFriendTimetable(ctx context.Context, userID, friendID string) (*dto.FriendTimetableResponse, error) {
	ok, err := s.repo.User.IsFriend(ctx, userID, friendID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTimetableNotFriends
	}

	friend, err := s.repo.User.GetByID(ctx, friendID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimetableUserNotFound
		}
		return nil, err
	}

	grid := friend.Timetable
	if len(grid) == 0 {
		grid = model.EmptyGrid()
	}

	return &dto.FriendTimetableResponse{
		FriendID:  friend.UserID,
		Username:  friend.Username,
		Pfp:       friend.Pfp,
		Timetable: grid,
	}, nil
}

// ── 私有辅助方法 ──

// storeTimetable 整表替换用户课表
func (s *timetableService) storeTimetable(ctx context.Context, userID string, grid model.WeeklyGrid) error {
	if _, err := s.repo.User.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTimetableUserNotFound
		}
		return err
	}
	if err := s.repo.User.UpdateTimetable(ctx, userID, grid); err != nil {
		s.logger.Error("写入课表失败", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("写入课表失败: %w", err)
	}
	return nil
}
