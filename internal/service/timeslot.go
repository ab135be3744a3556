package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ── 时段标签归一化 ──────────────────────────────────────────
//
// 职责：将课表源文件中的 24 小时制时间串（"09:00 - 10:00" 等）
// 归一化为 12 小时制时段标签（"09-10 AM"）。
//
// 设计决策：
//   - AM/PM 仅由起始小时决定（start < 12 ⇒ AM），跨正午的时段
//     沿用起始半天的后缀，刻意从简。
//   - 不匹配两段时间模式的输入直接失败，由调用方跳过该格子，
//     不中断整次解析。
//   - 分钟非零时输出 "HH:MM" 形式；此类标签不属于固定词表，
//     会在网格边界（model.SanitizeGrid）被丢弃。
// ─────────────────────────────────────────────────────────────

// rawTimeRangeRe 匹配 "HH:MM - HH:MM" 形式的原始时间串
var rawTimeRangeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})`)

// NormalizeTimeSlot 将原始时间串归一化为时段标签
// 返回 ok=false 表示输入不含可识别的时间区间
func NormalizeTimeSlot(raw string) (string, bool) {
	// 去掉内嵌换行、尾部冒号与多余空白
	raw = strings.ReplaceAll(raw, "\n", "")
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), ":"))

	m := rawTimeRangeRe.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}

	startHour, _ := strconv.Atoi(m[1])
	startMinute, _ := strconv.Atoi(m[2])
	endHour, _ := strconv.Atoi(m[3])
	endMinute, _ := strconv.Atoi(m[4])

	// 后缀取自起始小时
	suffix := "PM"
	if startHour < 12 {
		suffix = "AM"
	}

	// 24 小时 → 12 小时
	if startHour > 12 {
		startHour -= 12
	}
	if endHour > 12 {
		endHour -= 12
	}
	if startHour == 0 {
		startHour = 12
	}
	if endHour == 0 {
		endHour = 12
	}

	startStr := fmt.Sprintf("%02d", startHour)
	if startMinute != 0 {
		startStr = fmt.Sprintf("%02d:%02d", startHour, startMinute)
	}
	endStr := fmt.Sprintf("%02d", endHour)
	if endMinute != 0 {
		endStr = fmt.Sprintf("%02d:%02d", endHour, endMinute)
	}

	return fmt.Sprintf("%s-%s %s", startStr, endStr, suffix), true
}

// ── 时段标签解析与展示 ──

// slotStartHour 解析规范标签的起始小时（0–23）
func slotStartHour(label string) (int, bool) {
	return slotHour(label, 0)
}

// slotEndHour 解析规范标签的结束小时（0–23）
func slotEndHour(label string) (int, bool) {
	return slotHour(label, 1)
}

// slotHour 解析标签中第 part 段（0=起始, 1=结束）小时并换算为 24 小时制
func slotHour(label string, part int) (int, bool) {
	fields := strings.SplitN(label, " ", 2)
	if len(fields) != 2 {
		return 0, false
	}
	bounds := strings.SplitN(fields[0], "-", 2)
	if len(bounds) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(bounds[part])
	if err != nil {
		return 0, false
	}

	meridian := fields[1]
	if meridian == "PM" && hour != 12 {
		hour += 12
	}
	if meridian == "AM" && hour == 12 {
		hour = 0
	}
	return hour, true
}

// slotForHour 返回覆盖给定小时（0–23）的规范时段标签
func slotForHour(hour int, slots []string) (string, bool) {
	for _, s := range slots {
		start, ok := slotStartHour(s)
		if !ok {
			continue
		}
		if hour >= start && hour < start+1 {
			return s, true
		}
	}
	return "", false
}

// formatHour12 将 24 小时制小时转为 "9 AM" / "1 PM" 展示形式
func formatHour12(hour int) string {
	display := (hour+11)%12 + 1
	meridian := "AM"
	if hour >= 12 {
		meridian = "PM"
	}
	return fmt.Sprintf("%d %s", display, meridian)
}

// formatSlotStart 时段起始小时的展示形式
func formatSlotStart(label string) string {
	h, ok := slotStartHour(label)
	if !ok {
		return label
	}
	return formatHour12(h)
}

// formatSlotEnd 时段结束小时的展示形式
func formatSlotEnd(label string) string {
	h, ok := slotEndHour(label)
	if !ok {
		return label
	}
	return formatHour12(h)
}
