package service

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"

	"github.com/ledongthuc/pdf"

	"github.com/Varundhyani69/UniMeet/internal/model"
)

// ── PDF 课表解析器 ──────────────────────────────────────────
//
// 职责：从版面化文本中按空间位置重建 WeeklyGrid。
//
// 算法：
//   1. 文本恰为天名的片段 → 记录其横坐标为该天的列锚点
//      （同名多次出现时后者覆盖前者的坐标）
//   2. 文本恰为时段标签的片段 → 记录其纵坐标为该时段的行锚点
//   3. "C:ABC123" 形式的片段 → 提取课程代码，按纵向/横向
//      各自独立取最近锚点（非欧氏距离），写入对应格子；
//      距离相同时先注册的锚点胜出（锚点保存在切片中，
//      严格小于比较保证确定性）
//   4. 未命中的格子保持 NoClass；Sunday 无锚点时照常补全
//
// 未发现任何锚点时输出空网格，不视为错误。
// ─────────────────────────────────────────────────────────────

// TextFragment 版面文本片段：文本 + 页面坐标
// 每次解析调用临时构建，网格生成后即丢弃
type TextFragment struct {
	Text string
	X    float64
	Y    float64
}

// slotLabelRe 恰为规范时段标签形式的文本
var slotLabelRe = regexp.MustCompile(`^\d{2}-\d{2} (AM|PM)$`)

// prefixedCourseRe 带 "C:" 前缀的课程代码：2–5 个大写字母 + 3 位数字
var prefixedCourseRe = regexp.MustCompile(`C:([A-Z]{2,5}\d{3})`)

// ParsePDFTimetable 解析 PDF 课表（仅第一页）
func ParsePDFTimetable(reader io.ReaderAt, size int64) (model.WeeklyGrid, error) {
	r, err := pdf.NewReader(reader, size)
	if err != nil {
		return nil, fmt.Errorf("无法解析PDF文件: %w", err)
	}
	if r.NumPage() < 1 {
		return nil, fmt.Errorf("PDF文件不含任何页面")
	}

	page := r.Page(1)
	if page.V.IsNull() {
		return nil, fmt.Errorf("PDF首页不可读")
	}

	fragments := extractFragments(page.Content().Text)
	return buildGridFromFragments(fragments), nil
}

// extractFragments 将逐段文本合并为片段
// PDF 文本算子常以单字或短串为单位输出，这里把同一行内
// 水平相邻的文本串接成一个片段，坐标取首段位置
func extractFragments(texts []pdf.Text) []TextFragment {
	if len(texts) == 0 {
		return nil
	}

	// 自上而下、自左向右
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var fragments []TextFragment
	cur := TextFragment{Text: sorted[0].S, X: sorted[0].X, Y: sorted[0].Y}
	curEnd := sorted[0].X + sorted[0].W

	for _, t := range sorted[1:] {
		sameRow := math.Abs(t.Y-cur.Y) < 0.5
		adjacent := t.X-curEnd < 2.0
		if sameRow && adjacent {
			cur.Text += t.S
			curEnd = t.X + t.W
			continue
		}
		fragments = append(fragments, cur)
		cur = TextFragment{Text: t.S, X: t.X, Y: t.Y}
		curEnd = t.X + t.W
	}
	fragments = append(fragments, cur)

	return fragments
}

// dayAnchor 天名列锚点；slotAnchor 时段行锚点
// 均保持首次注册顺序，供最近邻查找的平手裁决
type dayAnchor struct {
	day string
	x   float64
}

type slotAnchor struct {
	y     float64
	label string
}

// buildGridFromFragments 由片段列表构建网格（纯函数，便于单测）
func buildGridFromFragments(fragments []TextFragment) model.WeeklyGrid {
	// 1. 天名列锚点（同名后现者覆盖坐标，注册顺序保持首现位置）
	var dayAnchors []dayAnchor
	dayIndex := make(map[string]int)
	for _, f := range fragments {
		if !model.IsDay(f.Text) {
			continue
		}
		if i, ok := dayIndex[f.Text]; ok {
			dayAnchors[i].x = f.X
			continue
		}
		dayIndex[f.Text] = len(dayAnchors)
		dayAnchors = append(dayAnchors, dayAnchor{day: f.Text, x: f.X})
	}

	// 2. 时段行锚点（同一纵坐标后现者覆盖标签）
	var slotAnchors []slotAnchor
	slotIndex := make(map[float64]int)
	for _, f := range fragments {
		if !slotLabelRe.MatchString(f.Text) {
			continue
		}
		if i, ok := slotIndex[f.Y]; ok {
			slotAnchors[i].label = f.Text
			continue
		}
		slotIndex[f.Y] = len(slotAnchors)
		slotAnchors = append(slotAnchors, slotAnchor{y: f.Y, label: f.Text})
	}

	grid := make(model.WeeklyGrid, len(model.Days()))
	for _, d := range model.Days() {
		grid[d] = make(map[string]string)
	}

	// 3. 课程片段 → 纵横各自最近的锚点（严格小于，先注册者胜出平手）
	if len(dayAnchors) > 0 && len(slotAnchors) > 0 {
		for _, f := range fragments {
			m := prefixedCourseRe.FindStringSubmatch(f.Text)
			if m == nil {
				continue
			}
			course := m[1]

			closestSlot := slotAnchors[0]
			for _, a := range slotAnchors[1:] {
				if math.Abs(a.y-f.Y) < math.Abs(closestSlot.y-f.Y) {
					closestSlot = a
				}
			}

			closestDay := dayAnchors[0]
			for _, a := range dayAnchors[1:] {
				if math.Abs(a.x-f.X) < math.Abs(closestDay.x-f.X) {
					closestDay = a
				}
			}

			grid[closestDay.day][closestSlot.label] = course
		}
	}

	// 4. 未命中格子补 NoClass，并在边界处丢弃非词表标签
	return model.SanitizeGrid(grid)
}
