package service

import (
	"testing"

	"github.com/ledongthuc/pdf"

	"github.com/Varundhyani69/UniMeet/internal/model"
)

// ════════════════════════════════════════════════════════════
// PDF 课表解析测试（片段层，不经过真实 PDF 文件）
// ════════════════════════════════════════════════════════════

func TestExtractFragments_MergeAdjacent(t *testing.T) {
	// PDF 文本算子常逐字输出，同一行水平相邻应合并为一个片段
	texts := []pdf.Text{
		{S: "Mon", X: 100, Y: 700, W: 20},
		{S: "day", X: 120.5, Y: 700, W: 15},
		{S: "09-10 AM", X: 20, Y: 650, W: 40},
	}

	fragments := extractFragments(texts)
	if len(fragments) != 2 {
		t.Fatalf("期望 2 个片段, 实际 %d", len(fragments))
	}
	if fragments[0].Text != "Monday" {
		t.Errorf("相邻文本未合并: %q", fragments[0].Text)
	}
	if fragments[0].X != 100 || fragments[0].Y != 700 {
		t.Errorf("合并片段应取首段坐标, 实际 (%v,%v)", fragments[0].X, fragments[0].Y)
	}
	if fragments[1].Text != "09-10 AM" {
		t.Errorf("独立片段被误合并: %q", fragments[1].Text)
	}
}

func TestExtractFragments_SeparateRows(t *testing.T) {
	// 纵坐标差超过阈值的文本属于不同行，不合并
	texts := []pdf.Text{
		{S: "AAA", X: 100, Y: 700, W: 20},
		{S: "BBB", X: 121, Y: 690, W: 20},
	}
	fragments := extractFragments(texts)
	if len(fragments) != 2 {
		t.Fatalf("不同行文本不应合并, 片段数 %d", len(fragments))
	}

	if got := extractFragments(nil); got != nil {
		t.Errorf("空输入应返回 nil, 实际 %v", got)
	}
}

func testPDFFragments() []TextFragment {
	return []TextFragment{
		// 天名列锚点
		{Text: "Monday", X: 100, Y: 700},
		{Text: "Tuesday", X: 200, Y: 700},
		// 时段行锚点
		{Text: "09-10 AM", X: 20, Y: 650},
		{Text: "10-11 AM", X: 20, Y: 600},
		// 课程片段
		{Text: "C:PSY291", X: 102, Y: 649},
		{Text: "C:CSE205", X: 198, Y: 601},
		// 噪声
		{Text: "My Timetable", X: 50, Y: 760},
		{Text: "page 1 of 1", X: 50, Y: 10},
	}
}

func TestBuildGridFromFragments_NearestNeighbor(t *testing.T) {
	grid := buildGridFromFragments(testPDFFragments())

	if got := grid["Monday"]["09-10 AM"]; got != "PSY291" {
		t.Errorf("Monday 09-10 AM: 期望 PSY291, 实际 %q", got)
	}
	if got := grid["Tuesday"]["10-11 AM"]; got != "CSE205" {
		t.Errorf("Tuesday 10-11 AM: 期望 CSE205, 实际 %q", got)
	}
	// 版面上不存在 Sunday 锚点，照常补全为全空
	for _, s := range model.Slots() {
		if grid["Sunday"][s] != model.NoClass {
			t.Errorf("Sunday %s 应为 NoClass, 实际 %q", s, grid["Sunday"][s])
		}
	}
	if len(grid) != 7 {
		t.Errorf("期望 7 天, 实际 %d", len(grid))
	}
}

func TestBuildGridFromFragments_TieFirstRegisteredWins(t *testing.T) {
	fragments := []TextFragment{
		{Text: "Monday", X: 100, Y: 700},
		{Text: "Tuesday", X: 200, Y: 700},
		{Text: "09-10 AM", X: 20, Y: 650},
		// 横向恰好位于两列锚点正中
		{Text: "C:TIE101", X: 150, Y: 650},
	}

	grid := buildGridFromFragments(fragments)
	if got := grid["Monday"]["09-10 AM"]; got != "TIE101" {
		t.Errorf("平手应由先注册的锚点胜出, Monday 实际 %q", got)
	}
	if got := grid["Tuesday"]["09-10 AM"]; got != model.NoClass {
		t.Errorf("Tuesday 不应被写入, 实际 %q", got)
	}
}

func TestBuildGridFromFragments_DuplicateDayAnchor(t *testing.T) {
	// 同名天重复出现时, 后现者覆盖坐标
	fragments := []TextFragment{
		{Text: "Monday", X: 100, Y: 700},
		{Text: "Tuesday", X: 200, Y: 700},
		{Text: "Monday", X: 300, Y: 695},
		{Text: "09-10 AM", X: 20, Y: 650},
		{Text: "C:NEW100", X: 290, Y: 650},
	}

	grid := buildGridFromFragments(fragments)
	if got := grid["Monday"]["09-10 AM"]; got != "NEW100" {
		t.Errorf("覆盖后的坐标未生效, Monday 实际 %q", got)
	}
}

func TestBuildGridFromFragments_NoAnchors(t *testing.T) {
	fragments := []TextFragment{
		{Text: "C:ABC123", X: 100, Y: 650},
		{Text: "random text", X: 50, Y: 700},
	}

	grid := buildGridFromFragments(fragments)
	for _, d := range model.Days() {
		for _, s := range model.Slots() {
			if grid[d][s] != model.NoClass {
				t.Fatalf("无锚点时 %s %s 应为 NoClass", d, s)
			}
		}
	}
}
