package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Varundhyani69/UniMeet/internal/model"
)

// ════════════════════════════════════════════════════════════
// NotificationService 测试
// ════════════════════════════════════════════════════════════

func newTestNotificationService(users *mockUserRepo, notifications *mockNotificationRepo) NotificationService {
	// rdb 为 nil: 实时推送降级关闭
	return NewNotificationService(newMockRepository(users, notifications), nil, zap.NewNop())
}

func TestSendReminder_Basic(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(&model.User{Username: "varun"})
	users.addUser(&model.User{Username: "asha"})
	users.addFriendship("u-varun", "u-asha")
	notifications := newMockNotificationRepo()
	svc := newTestNotificationService(users, notifications)

	resp, err := svc.SendReminder(context.Background(), "u-varun", "u-asha")
	if err != nil {
		t.Fatalf("发送提醒失败: %v", err)
	}
	if resp.NotificationID == "" {
		t.Error("应返回通知 ID")
	}
	// rdb 为 nil 时仅落库
	if resp.Delivered {
		t.Error("无实时通道时 Delivered 应为 false")
	}

	n := notifications.notifications[resp.NotificationID]
	if n == nil {
		t.Fatal("通知未落库")
	}
	if n.UserID != "u-asha" {
		t.Errorf("通知归属不符: %s", n.UserID)
	}
	if n.Content != "varun sent you a reminder to meet!" {
		t.Errorf("通知文案不符: %q", n.Content)
	}
	if n.Type != "reminder" {
		t.Errorf("通知类型不符: %q", n.Type)
	}
}

func TestSendReminder_NotFriends(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(&model.User{Username: "varun"})
	users.addUser(&model.User{Username: "stranger"})
	svc := newTestNotificationService(users, newMockNotificationRepo())

	_, err := svc.SendReminder(context.Background(), "u-varun", "u-stranger")
	if !errors.Is(err, ErrNotificationNotFriends) {
		t.Errorf("期望 ErrNotificationNotFriends, 实际 %v", err)
	}
}

func TestListNotifications_NewestFirst(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(&model.User{Username: "varun"})
	users.addUser(&model.User{Username: "asha"})
	users.addFriendship("u-varun", "u-asha")
	notifications := newMockNotificationRepo()
	svc := newTestNotificationService(users, notifications)

	for i := 0; i < 3; i++ {
		if _, err := svc.SendReminder(context.Background(), "u-varun", "u-asha"); err != nil {
			t.Fatalf("发送提醒失败: %v", err)
		}
	}

	list, err := svc.ListNotifications(context.Background(), "u-asha")
	if err != nil {
		t.Fatalf("查询通知失败: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("期望 3 条通知, 实际 %d", len(list))
	}
	if list[0].ID != "n-3" || list[2].ID != "n-1" {
		t.Errorf("通知应新者在前: %s ... %s", list[0].ID, list[2].ID)
	}
	if list[0].FromUserID != "u-varun" {
		t.Errorf("发起人不符: %s", list[0].FromUserID)
	}
}

func TestMarkRead_OwnershipAndMissing(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(&model.User{Username: "varun"})
	users.addUser(&model.User{Username: "asha"})
	users.addFriendship("u-varun", "u-asha")
	notifications := newMockNotificationRepo()
	svc := newTestNotificationService(users, notifications)

	resp, err := svc.SendReminder(context.Background(), "u-varun", "u-asha")
	if err != nil {
		t.Fatalf("发送提醒失败: %v", err)
	}

	// 非归属人不可标记
	if err := svc.MarkRead(context.Background(), "u-varun", resp.NotificationID); !errors.Is(err, ErrNotificationNotOwner) {
		t.Errorf("期望 ErrNotificationNotOwner, 实际 %v", err)
	}

	// 归属人标记成功
	if err := svc.MarkRead(context.Background(), "u-asha", resp.NotificationID); err != nil {
		t.Fatalf("标记已读失败: %v", err)
	}
	if !notifications.notifications[resp.NotificationID].IsRead {
		t.Error("通知未被标记为已读")
	}

	// 不存在的通知
	if err := svc.MarkRead(context.Background(), "u-asha", "missing"); !errors.Is(err, ErrNotificationNotFound) {
		t.Errorf("期望 ErrNotificationNotFound, 实际 %v", err)
	}
}
