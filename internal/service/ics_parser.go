package service

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/Varundhyani69/UniMeet/internal/model"
)

// ── ICS 课表解析器 ──────────────────────────────────────────
//
// 职责：将标准 iCalendar (RFC 5545) 内容折叠为 WeeklyGrid。
//
// 设计决策：
//   - DTSTART/DTEND 确定星期几与覆盖的整点时段
//   - 周重复视为每周同一格子，重复规则细节（周次、EXDATE）
//     对周网格无意义，直接忽略
//   - 覆盖 09:00–18:00 之外的事件部分被截断；完全在词表外的
//     事件跳过（静默跳过策略，与其他解析器一致）
//   - SUMMARY 中出现课程代码时只保留代码，否则保留原文
// ─────────────────────────────────────────────────────────────

// ParseICSTimetable 解析 ICS 内容并折叠为周课表
// 日历本身不可解析时返回错误；无有效事件时返回空网格
func ParseICSTimetable(reader io.Reader) (model.WeeklyGrid, error) {
	cal, err := ics.ParseCalendar(reader)
	if err != nil {
		return nil, fmt.Errorf("ICS 格式解析失败: %w", err)
	}

	grid := model.EmptyGrid()
	slots := model.Slots()

	for _, evt := range cal.Events() {
		summary := evt.GetProperty(ics.ComponentPropertySummary)
		if summary == nil || strings.TrimSpace(summary.Value) == "" {
			continue
		}
		subject := strings.TrimSpace(summary.Value)
		if code := courseCodeRe.FindString(subject); code != "" {
			subject = code
		}

		dtStart, err := parseICSDateTime(evt, ics.ComponentPropertyDtStart)
		if err != nil {
			continue
		}
		dtEnd, err := parseICSDateTime(evt, ics.ComponentPropertyDtEnd)
		if err != nil {
			// 无 DTEND 时按一小时事件处理
			dtEnd = dtStart.Add(time.Hour)
		}
		if !dtEnd.After(dtStart) {
			continue
		}

		day := dtStart.Weekday().String()

		// 起止之间的每个整点落入对应时段
		endHour := dtEnd.Hour()
		if dtEnd.Minute() > 0 {
			endHour++
		}
		for h := dtStart.Hour(); h < endHour; h++ {
			slot, ok := slotForHour(h, slots)
			if !ok {
				continue
			}
			grid[day][slot] = subject
		}
	}

	return model.SanitizeGrid(grid), nil
}

// parseICSDateTime 从 VEVENT 中解析日期时间属性
// 支持 UTC（Z 后缀）、本地形式与 TZID 参数
func parseICSDateTime(evt *ics.VEvent, propName ics.ComponentProperty) (time.Time, error) {
	prop := evt.GetProperty(propName)
	if prop == nil {
		return time.Time{}, fmt.Errorf("missing property %s", propName)
	}
	val := prop.Value

	// 检查 TZID 参数
	tzid := ""
	for k, v := range prop.ICalParameters {
		if strings.ToUpper(k) == "TZID" && len(v) > 0 {
			tzid = v[0]
		}
	}

	formats := []string{
		"20060102T150405Z",
		"20060102T150405",
		"20060102",
	}
	for _, layout := range formats {
		t, err := time.Parse(layout, val)
		if err != nil {
			continue
		}
		if strings.HasSuffix(layout, "Z") {
			return t.Local(), nil
		}
		if tzid != "" {
			if loc, err := time.LoadLocation(tzid); err == nil {
				return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
			}
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("无法解析日期: %s", val)
}
