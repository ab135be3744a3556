package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Varundhyani69/UniMeet/internal/model"
	"github.com/Varundhyani69/UniMeet/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users   map[string]*model.User
	friends map[string][]string // userID → 好友 ID 列表（已按展示顺序排好）

	updateErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:   make(map[string]*model.User),
		friends: make(map[string][]string),
	}
}

func (m *mockUserRepo) addUser(u *model.User) {
	if u.UserID == "" {
		u.UserID = "u-" + u.Username
	}
	m.users[u.UserID] = u
}

func (m *mockUserRepo) addFriendship(a, b string) {
	m.friends[a] = append(m.friends[a], b)
	m.friends[b] = append(m.friends[b], a)
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) UpdateTimetable(_ context.Context, id string, grid model.WeeklyGrid) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Timetable = grid
	return nil
}

func (m *mockUserRepo) ListFriends(_ context.Context, userID string) ([]model.User, error) {
	var result []model.User
	for _, fid := range m.friends[userID] {
		if u, ok := m.users[fid]; ok {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) IsFriend(_ context.Context, userID, friendID string) (bool, error) {
	for _, fid := range m.friends[userID] {
		if fid == friendID {
			return true, nil
		}
	}
	return false, nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	notifications map[string]*model.Notification
	order         []string // 写入顺序, 新者在后

	createErr error
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{notifications: make(map[string]*model.Notification)}
}

func (m *mockNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	if n.NotificationID == "" {
		n.NotificationID = fmt.Sprintf("n-%d", len(m.order)+1)
	}
	m.notifications[n.NotificationID] = n
	m.order = append(m.order, n.NotificationID)
	return nil
}

func (m *mockNotificationRepo) GetByID(_ context.Context, id string) (*model.Notification, error) {
	if n, ok := m.notifications[id]; ok {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNotificationRepo) ListByUser(_ context.Context, userID string) ([]model.Notification, error) {
	var result []model.Notification
	// 新者在前
	for i := len(m.order) - 1; i >= 0; i-- {
		n := m.notifications[m.order[i]]
		if n.UserID == userID {
			result = append(result, *n)
		}
	}
	return result, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id string) error {
	n, ok := m.notifications[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	n.IsRead = true
	return nil
}

// newMockRepository 组装 mock 仓储聚合
func newMockRepository(users *mockUserRepo, notifications *mockNotificationRepo) *repository.Repository {
	return &repository.Repository{
		User:         users,
		Notification: notifications,
	}
}
