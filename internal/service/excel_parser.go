package service

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Varundhyani69/UniMeet/internal/model"
)

// ── Excel 课表解析器 ────────────────────────────────────────
//
// 职责：将教务系统导出的 Excel 课表解析为 WeeklyGrid。
//
// 表格约定（与教务导出格式一致）：
//   - 第 3 行（下标 2）为表头：每列一个天名
//   - 第 4 行起为数据：单元格第一行是时间串，第二行是课程文本
//   - 课程文本中若出现 "ABC123" 形式的课程代码则只保留代码
//
// 容错策略：表头不是规范天名的整列跳过；时间串无法归一化的
// 格子跳过（保持 NoClass）；同一 天+时段 被多行命中时后写覆盖。
// ─────────────────────────────────────────────────────────────

// 表头所在行下标与数据起始行下标
const (
	excelHeaderRowIndex = 2
	excelDataRowIndex   = 3
)

// courseCodeRe 课程代码：3 个大写字母 + 3 位数字
var courseCodeRe = regexp.MustCompile(`[A-Z]{3}\d{3}`)

// ParseExcelTimetable 解析 Excel 课表文件
// 仅读取第一个工作表；文件本身不可读时返回错误，单格问题静默跳过
func ParseExcelTimetable(reader io.Reader) (model.WeeklyGrid, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("无法解析Excel文件: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("读取工作表失败: %w", err)
	}

	return buildGridFromRows(rows), nil
}

// buildGridFromRows 由行数据构建网格（纯函数，便于单测）
func buildGridFromRows(rows [][]string) model.WeeklyGrid {
	grid := model.EmptyGrid()

	if len(rows) <= excelHeaderRowIndex {
		return grid
	}
	headers := rows[excelHeaderRowIndex]

	for r := excelDataRowIndex; r < len(rows); r++ {
		row := rows[r]
		for c := 0; c < len(row); c++ {
			cell := strings.TrimSpace(row[c])
			if cell == "" {
				continue
			}

			// 列对应的天名不在词表内 → 整列跳过
			if c >= len(headers) {
				continue
			}
			day := strings.TrimSpace(headers[c])
			if !model.IsDay(day) {
				continue
			}

			// 单元格：第一行时间串，第二行课程文本
			lines := splitCellLines(cell)
			if len(lines) < 2 {
				continue
			}
			rawTime := lines[0]
			subject := lines[1]
			if subject == "" {
				subject = model.NoClass
			}

			// 课程文本中优先提取课程代码
			if code := courseCodeRe.FindString(subject); code != "" {
				subject = code
			}

			slot, ok := NormalizeTimeSlot(rawTime)
			if !ok {
				continue // 时间串不可解析，格子保持原值
			}
			grid[day][slot] = subject
		}
	}

	// 边界校验：丢弃分钟级等非词表标签
	return model.SanitizeGrid(grid)
}

// splitCellLines 按内嵌换行拆分单元格并修剪各行空白
func splitCellLines(cell string) []string {
	parts := strings.Split(cell, "\n")
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = strings.TrimSpace(p)
	}
	return lines
}
