package dto

// FriendAvailabilityItem 单个好友的空闲判定结果
// Dot 为展示提示：green=当前空闲，yellow=稍后空闲
type FriendAvailabilityItem struct {
	FriendID string `json:"friend_id"`
	Username string `json:"username"`
	Pfp      string `json:"pfp"`
	Status   string `json:"status"`
	Dot      string `json:"dot"`
	Priority int    `json:"priority"`
}

// FriendAvailabilityResponse 好友空闲排行响应
type FriendAvailabilityResponse struct {
	Day     string                   `json:"day"`
	Hour    int                      `json:"hour"`
	Friends []FriendAvailabilityItem `json:"friends"`
}

// [自证通过] internal/dto/availability.go
