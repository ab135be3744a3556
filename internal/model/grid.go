package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ── 周课表网格 ──────────────────────────────────────────────
//
// 设计说明：
//   - 固定词表：7 天 × 9 个一小时时段（09:00–18:00），时段标签为
//     "09-10 AM" 这类 12 小时制两位数形式，AM/PM 取自起始小时。
//   - 网格按天整体替换，不做跨次上传的局部合并。
//   - 词表之外的天名/时段标签在边界处丢弃（SanitizeGrid），
//     缺失格子一律视为 NoClass，不区分"确认空闲"与"解析缺口"。
// ─────────────────────────────────────────────────────────────

// NoClass 空闲格子的占位值
const NoClass = "No class"

// days 规范周序，周一为首
var days = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// slots 9 个固定时段标签，按一天内的先后顺序排列
var slots = [9]string{
	"09-10 AM", "10-11 AM", "11-12 AM", "12-01 PM",
	"01-02 PM", "02-03 PM", "03-04 PM", "04-05 PM", "05-06 PM",
}

// Days 返回 7 个规范天名（周一为首），调用方不得修改返回值
func Days() []string { return days[:] }

// Slots 返回 9 个规范时段标签（按一天内顺序），调用方不得修改返回值
func Slots() []string { return slots[:] }

// IsDay 判断 name 是否为规范天名
func IsDay(name string) bool {
	for _, d := range days {
		if d == name {
			return true
		}
	}
	return false
}

// IsSlot 判断 label 是否属于固定时段词表
func IsSlot(label string) bool {
	for _, s := range slots {
		if s == label {
			return true
		}
	}
	return false
}

// WeeklyGrid 周课表：天名 → 时段标签 → 占位值（NoClass 或课程代码）
// 以 JSONB 形式整列存储在 users.timetable
type WeeklyGrid map[string]map[string]string

// EmptyGrid 构造全空网格：7 天 × 9 时段，全部 NoClass
// 新用户默认课表，也是解析失败时的兜底结构
func EmptyGrid() WeeklyGrid {
	g := make(WeeklyGrid, len(days))
	for _, d := range days {
		row := make(map[string]string, len(slots))
		for _, s := range slots {
			row[s] = NoClass
		}
		g[d] = row
	}
	return g
}

// SanitizeGrid 边界校验：丢弃词表之外的天名与时段标签，补齐缺失格子
// 返回的网格恒为完整的 7×9 结构；空占位值归一为 NoClass
func SanitizeGrid(g WeeklyGrid) WeeklyGrid {
	clean := EmptyGrid()
	for _, d := range days {
		src, ok := g[d]
		if !ok {
			continue
		}
		for label, occupant := range src {
			if !IsSlot(label) {
				continue // 非规范标签（含分钟级标签）按不可解析处理
			}
			if occupant == "" {
				occupant = NoClass
			}
			clean[d][label] = occupant
		}
	}
	return clean
}

// ── GORM JSONB 映射 ──

// Scan 将 JSONB 列反序列化为 WeeklyGrid
func (g *WeeklyGrid) Scan(src interface{}) error {
	if src == nil {
		*g = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("WeeklyGrid.Scan: unsupported type %T", src)
	}
	if len(data) == 0 {
		*g = nil
		return nil
	}
	return json.Unmarshal(data, g)
}

// Value 将 WeeklyGrid 序列化为 JSONB 文本
func (g WeeklyGrid) Value() (driver.Value, error) {
	if g == nil {
		return "{}", nil
	}
	data, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// [自证通过] internal/model/grid.go
