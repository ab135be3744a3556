package service

import (
	"testing"

	"github.com/Varundhyani69/UniMeet/internal/model"
)

// ════════════════════════════════════════════════════════════
// 空闲判定引擎测试
// ════════════════════════════════════════════════════════════

// gridWithClasses 构造指定天有课的网格, 其余全空
func gridWithClasses(day string, slots ...string) model.WeeklyGrid {
	g := model.EmptyGrid()
	for _, s := range slots {
		g[day][s] = "CSE205"
	}
	return g
}

func TestClassifyAvailability_FreeAllDay(t *testing.T) {
	g := model.EmptyGrid()

	status, ok := ClassifyAvailability(g, "Monday", 11)
	if !ok {
		t.Fatal("整天无课应进入排行")
	}
	if status.State != StateFreeAllDay || status.Priority != 3 {
		t.Errorf("期望 free_all_day/3, 实际 %s/%d", status.State, status.Priority)
	}
	if status.Phrase != "Free all day" {
		t.Errorf("文案不符: %q", status.Phrase)
	}
	if status.Dot != "green" {
		t.Errorf("提示点应为 green, 实际 %q", status.Dot)
	}
}

func TestClassifyAvailability_BeforeFirstClass(t *testing.T) {
	g := gridWithClasses("Monday", "02-03 PM")

	status, ok := ClassifyAvailability(g, "Monday", 10)
	if !ok {
		t.Fatal("首节课之前应进入排行")
	}
	if status.State != StateBeforeFirst || status.Priority != 2 {
		t.Errorf("期望 free_until_first/2, 实际 %s/%d", status.State, status.Priority)
	}
	if status.Phrase != "Chilling before 2 PM" {
		t.Errorf("文案不符: %q", status.Phrase)
	}
}

func TestClassifyAvailability_AfterLastClass(t *testing.T) {
	g := gridWithClasses("Monday", "09-10 AM", "10-11 AM")

	status, ok := ClassifyAvailability(g, "Monday", 15)
	if !ok {
		t.Fatal("末节课之后应进入排行")
	}
	if status.State != StateAfterLast || status.Priority != 1 {
		t.Errorf("期望 free_after_last/1, 实际 %s/%d", status.State, status.Priority)
	}
	if status.Phrase != "Free now (classes over)" {
		t.Errorf("文案不符: %q", status.Phrase)
	}
}

func TestClassifyAvailability_FreeNowContiguousBlock(t *testing.T) {
	// 09-10 有课, 10/11/12 空闲, 13-14 (01-02 PM) 有课
	g := gridWithClasses("Monday", "09-10 AM", "01-02 PM")

	status, ok := ClassifyAvailability(g, "Monday", 10)
	if !ok {
		t.Fatal("当前空闲应进入排行")
	}
	if status.State != StateFreeNow || status.Priority != 0 {
		t.Errorf("期望 free_now_contiguous/0, 实际 %s/%d", status.State, status.Priority)
	}
	// 整个连续区块 10:00–13:00 的起止
	if status.Phrase != "Free 10 AM to 1 PM" {
		t.Errorf("文案不符: %q", status.Phrase)
	}
}

func TestClassifyAvailability_FreeLater(t *testing.T) {
	// 当前 09 有课, 10 也有课, 11 起空闲
	g := gridWithClasses("Monday", "09-10 AM", "10-11 AM", "05-06 PM")

	status, ok := ClassifyAvailability(g, "Monday", 9)
	if !ok {
		t.Fatal("稍后空闲应进入排行")
	}
	if status.State != StateFreeLater || status.Priority != 4 {
		t.Errorf("期望 free_later/4, 实际 %s/%d", status.State, status.Priority)
	}
	if status.Dot != "yellow" {
		t.Errorf("稍后空闲提示点应为 yellow, 实际 %q", status.Dot)
	}
	if status.Phrase != "Free at 11 AM" {
		t.Errorf("文案不符: %q", status.Phrase)
	}
	if status.UpcomingStart != 11 {
		t.Errorf("UpcomingStart 期望 11, 实际 %d", status.UpcomingStart)
	}
}

func TestClassifyAvailability_BusyRestOfDay(t *testing.T) {
	// 当前及其后全部有课
	g := gridWithClasses("Monday",
		"02-03 PM", "03-04 PM", "04-05 PM", "05-06 PM")

	_, ok := ClassifyAvailability(g, "Monday", 14)
	if ok {
		t.Error("今日余下全忙不应进入排行")
	}
}

func TestFreeBlocks_Merging(t *testing.T) {
	// 有课: 09, 12, 17 → 空闲区块 [10,11], [13..16]
	g := gridWithClasses("Monday", "09-10 AM", "12-01 PM", "05-06 PM")

	blocks := FreeBlocks(g, "Monday")
	if len(blocks) != 2 {
		t.Fatalf("期望 2 个区块, 实际 %d", len(blocks))
	}
	if len(blocks[0]) != 2 || blocks[0][0] != "10-11 AM" || blocks[0][1] != "11-12 AM" {
		t.Errorf("首区块不符: %v", blocks[0])
	}
	if len(blocks[1]) != 4 || blocks[1][0] != "01-02 PM" || blocks[1][3] != "04-05 PM" {
		t.Errorf("次区块不符: %v", blocks[1])
	}

	if blocks := FreeBlocks(g, "NoSuchDay"); blocks != nil {
		t.Errorf("未知天应返回 nil, 实际 %v", blocks)
	}
}

func TestClassifyAvailability_HourSweep(t *testing.T) {
	// 固定网格下扫一整天, 校验每个小时的判定路径
	g := gridWithClasses("Friday", "10-11 AM", "02-03 PM")

	cases := []struct {
		hour  int
		state string
		enter bool
	}{
		{9, StateBeforeFirst, true},   // 首节课之前
		{10, StateFreeLater, true},    // 上课中, 11 起空闲
		{11, StateFreeNow, true},      // 区块 [11,12,13]
		{13, StateFreeNow, true},      // 同区块
		{14, StateFreeLater, true},    // 上课中, 15 起空闲
		{15, StateAfterLast, true},    // 末节课已过
		{20, StateAfterLast, true},    // 晚间
	}
	for _, c := range cases {
		status, ok := ClassifyAvailability(g, "Friday", c.hour)
		if ok != c.enter {
			t.Errorf("hour=%d: 期望 enter=%v, 实际 %v", c.hour, c.enter, ok)
			continue
		}
		if ok && status.State != c.state {
			t.Errorf("hour=%d: 期望 %s, 实际 %s", c.hour, c.state, status.State)
		}
	}
}

func TestRankFriends_Ordering(t *testing.T) {
	mk := func(name string, priority, upcoming int, state string) rankedFriend {
		return rankedFriend{
			user:   model.User{UserID: name, Username: name},
			status: AvailabilityStatus{State: state, Priority: priority, UpcomingStart: upcoming},
		}
	}

	list := []rankedFriend{
		mk("later-3pm", 4, 15, StateFreeLater),
		mk("all-day", 3, 0, StateFreeAllDay),
		mk("free-now", 0, 0, StateFreeNow),
		mk("later-11am", 4, 11, StateFreeLater),
		mk("after-last", 1, 0, StateAfterLast),
	}

	rankFriends(list)

	want := []string{"free-now", "after-last", "all-day", "later-11am", "later-3pm"}
	for i, w := range want {
		if list[i].user.UserID != w {
			t.Errorf("位置 %d: 期望 %s, 实际 %s", i, w, list[i].user.UserID)
		}
	}
}
