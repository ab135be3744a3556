package service

import (
	"fmt"
	"sort"

	"github.com/Varundhyani69/UniMeet/internal/model"
)

// ── 好友空闲判定引擎 ────────────────────────────────────────
//
// 职责：给定好友的周课表与"当前"时刻，判定其此刻的空闲状态
// 并给出排序优先级。每次渲染重新计算，结果不落库。
//
// 判定顺序（先命中先生效）：
//   1. 今天整天无课            → Free all day          (priority 3)
//   2. 当前在首节课之前        → Chilling before X     (priority 2)
//   3. 当前在末节课之后        → Free now (classes over) (priority 1)
//   4. 当前落在连续空闲区块内  → Free X to Y           (priority 0, 最高展示优先)
//   5. 今天稍后存在空闲区块    → Free at X             (priority 4)
//   6. 其余（今日余下全忙）    → 不进入排行
//
// Dot 为展示提示：当前空闲一律 green，稍后空闲 yellow。
// ─────────────────────────────────────────────────────────────

// 判定状态枚举
const (
	StateFreeAllDay    = "free_all_day"
	StateBeforeFirst   = "free_until_first"
	StateAfterLast     = "free_after_last"
	StateFreeNow       = "free_now_contiguous"
	StateFreeLater     = "free_later"
	StateBusyRestOfDay = "busy_rest_of_day"
)

// AvailabilityStatus 单次判定结果（派生视图，从不持久化）
type AvailabilityStatus struct {
	State    string
	Phrase   string
	Dot      string // green | yellow
	Priority int
	// UpcomingStart 稍后空闲区块的起始小时（仅 StateFreeLater 有效）
	UpcomingStart int
}

// FreeBlocks 计算某天内的连续空闲区块
// 空闲时段按起始小时升序排序后，起始小时连续的归入同一区块
func FreeBlocks(grid model.WeeklyGrid, day string) [][]string {
	daySlots := grid[day]
	if daySlots == nil {
		return nil
	}

	var free []string
	for slot, occupant := range daySlots {
		if occupant == model.NoClass {
			free = append(free, slot)
		}
	}
	if len(free) == 0 {
		return nil
	}

	sort.Slice(free, func(i, j int) bool {
		hi, _ := slotStartHour(free[i])
		hj, _ := slotStartHour(free[j])
		return hi < hj
	})

	var blocks [][]string
	block := []string{free[0]}
	for i := 1; i < len(free); i++ {
		prev, _ := slotStartHour(free[i-1])
		curr, _ := slotStartHour(free[i])
		if curr == prev+1 {
			block = append(block, free[i])
			continue
		}
		blocks = append(blocks, block)
		block = []string{free[i]}
	}
	blocks = append(blocks, block)

	return blocks
}

// classSlots 某天内有课的时段，按词表顺序返回
func classSlots(grid model.WeeklyGrid, day string) []string {
	daySlots := grid[day]
	if daySlots == nil {
		return nil
	}
	var occupied []string
	for _, slot := range model.Slots() {
		if occ, ok := daySlots[slot]; ok && occ != "" && occ != model.NoClass {
			occupied = append(occupied, slot)
		}
	}
	return occupied
}

// ClassifyAvailability 判定好友在 day 天 hour 时（0–23）的空闲状态
// 返回 ok=false 表示好友今日余下时间全忙，应从排行中剔除
func ClassifyAvailability(grid model.WeeklyGrid, day string, hour int) (AvailabilityStatus, bool) {
	occupied := classSlots(grid, day)

	// 1. 今天整天无课
	if len(occupied) == 0 {
		return AvailabilityStatus{
			State:    StateFreeAllDay,
			Phrase:   "Free all day",
			Dot:      "green",
			Priority: 3,
		}, true
	}

	first := occupied[0]
	last := occupied[len(occupied)-1]

	// 2. 首节课之前
	if firstStart, ok := slotStartHour(first); ok && hour < firstStart {
		return AvailabilityStatus{
			State:    StateBeforeFirst,
			Phrase:   fmt.Sprintf("Chilling before %s", formatSlotStart(first)),
			Dot:      "green",
			Priority: 2,
		}, true
	}

	// 3. 末节课之后
	if lastStart, ok := slotStartHour(last); ok && hour >= lastStart+1 {
		return AvailabilityStatus{
			State:    StateAfterLast,
			Phrase:   "Free now (classes over)",
			Dot:      "green",
			Priority: 1,
		}, true
	}

	blocks := FreeBlocks(grid, day)

	// 4. 当前落在连续空闲区块内 → 展示整个区块的起止
	for _, block := range blocks {
		for _, slot := range block {
			start, ok := slotStartHour(slot)
			if !ok || start != hour {
				continue
			}
			return AvailabilityStatus{
				State:    StateFreeNow,
				Phrase:   fmt.Sprintf("Free %s to %s", formatSlotStart(block[0]), formatSlotEnd(block[len(block)-1])),
				Dot:      "green",
				Priority: 0,
			}, true
		}
	}

	// 5. 稍后存在空闲区块
	for _, block := range blocks {
		start, ok := slotStartHour(block[0])
		if !ok || start <= hour {
			continue
		}
		return AvailabilityStatus{
			State:         StateFreeLater,
			Phrase:        fmt.Sprintf("Free at %s", formatSlotStart(block[0])),
			Dot:           "yellow",
			Priority:      4,
			UpcomingStart: start,
		}, true
	}

	// 6. 今日余下全忙
	return AvailabilityStatus{State: StateBusyRestOfDay}, false
}

// rankedFriend 判定结果与好友信息的组合，供排序
type rankedFriend struct {
	user   model.User
	status AvailabilityStatus
}

// rankFriends 按优先级升序排序；同为稍后空闲时按起始小时升序
// 其余并列保持稳定顺序
func rankFriends(list []rankedFriend) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i].status, list[j].status
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.State == StateFreeLater && b.State == StateFreeLater {
			return a.UpcomingStart < b.UpcomingStart
		}
		return false
	})
}
