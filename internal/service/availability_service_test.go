package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Varundhyani69/UniMeet/internal/model"
)

// ════════════════════════════════════════════════════════════
// AvailabilityService 测试
// ════════════════════════════════════════════════════════════

func TestListAvailableFriends_RankingAndExclusion(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(&model.User{Username: "varun"})

	// free-now: 09 与 12 有课, 当前落在 [10,11] 空闲区块内
	freeNow := gridWithClasses("Wednesday", "09-10 AM", "12-01 PM")
	users.addUser(&model.User{Username: "freenow", Timetable: freeNow})

	// all-day: 整天无课
	users.addUser(&model.User{Username: "allday", Timetable: model.EmptyGrid()})

	// later: 10/11 有课, 12 起空闲
	later := gridWithClasses("Wednesday", "10-11 AM", "11-12 AM", "05-06 PM")
	users.addUser(&model.User{Username: "later", Timetable: later})

	// busy: 当前起全天有课
	busy := gridWithClasses("Wednesday",
		"10-11 AM", "11-12 AM", "12-01 PM", "01-02 PM",
		"02-03 PM", "03-04 PM", "04-05 PM", "05-06 PM")
	users.addUser(&model.User{Username: "busy", Timetable: busy})

	users.addFriendship("u-varun", "u-freenow")
	users.addFriendship("u-varun", "u-allday")
	users.addFriendship("u-varun", "u-later")
	users.addFriendship("u-varun", "u-busy")

	svc := NewAvailabilityService(newMockRepository(users, newMockNotificationRepo()), zap.NewNop())

	// 2025-02-26 是周三, 10:30
	now := time.Date(2025, 2, 26, 10, 30, 0, 0, time.UTC)
	resp, err := svc.ListAvailableFriends(context.Background(), "u-varun", now)
	if err != nil {
		t.Fatalf("排行计算失败: %v", err)
	}

	if resp.Day != "Wednesday" || resp.Hour != 10 {
		t.Errorf("时刻信息不符: %s %d", resp.Day, resp.Hour)
	}

	// busy 不进入排行
	if len(resp.Friends) != 3 {
		t.Fatalf("期望 3 位好友, 实际 %d", len(resp.Friends))
	}

	want := []string{"freenow", "allday", "later"}
	for i, w := range want {
		if resp.Friends[i].Username != w {
			t.Errorf("位置 %d: 期望 %s, 实际 %s", i, w, resp.Friends[i].Username)
		}
	}

	if resp.Friends[0].Dot != "green" || resp.Friends[2].Dot != "yellow" {
		t.Errorf("提示点不符: %s / %s", resp.Friends[0].Dot, resp.Friends[2].Dot)
	}
}

func TestListAvailableFriends_NoFriends(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(&model.User{Username: "varun"})

	svc := NewAvailabilityService(newMockRepository(users, newMockNotificationRepo()), zap.NewNop())

	resp, err := svc.ListAvailableFriends(context.Background(), "u-varun", time.Date(2025, 2, 26, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("排行计算失败: %v", err)
	}
	if len(resp.Friends) != 0 {
		t.Errorf("无好友时应返回空列表, 实际 %d", len(resp.Friends))
	}
}
