package model

import "time"

// Friendship 好友关系表 — 对应 friendships
// 由社交系统成对写入（A→B 与 B→A 各一行），本服务只读
type Friendship struct {
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	FriendID  string    `gorm:"type:uuid;primaryKey" json:"friend_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// 关联
	Friend *User `gorm:"foreignKey:FriendID;references:UserID" json:"friend,omitempty"`
}

// TableName 指定表名
func (Friendship) TableName() string { return "friendships" }

// [自证通过] internal/model/friendship.go
