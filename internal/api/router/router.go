package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Varundhyani69/UniMeet/config"
	"github.com/Varundhyani69/UniMeet/internal/api/handler"
	"github.com/Varundhyani69/UniMeet/internal/api/middleware"
	"github.com/Varundhyani69/UniMeet/pkg/jwt"
	"github.com/Varundhyani69/UniMeet/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1（全部需要认证）──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.JWTAuth(jwtMgr))
	{
		// 课表模块
		timetables := v1.Group("/timetables")
		{
			// 上传走限流：解析代价高，按用户按窗口限制次数
			timetables.POST("/upload",
				middleware.RateLimit(rdb, cfg.Upload.RateLimit, cfg.Upload.RateLimitWindow),
				h.Timetable.Upload)
			timetables.PUT("/me", h.Timetable.UpdateTimetable)
			timetables.GET("/me", h.Timetable.GetMyTimetable)
			timetables.GET("/friends/:id", h.Timetable.GetFriendTimetable)
		}

		// 好友空闲模块
		friends := v1.Group("/friends")
		{
			friends.GET("/availability", h.Availability.ListAvailableFriends)
			friends.POST("/:id/remind",
				middleware.RateLimit(rdb, cfg.Upload.RateLimit, cfg.Upload.RateLimitWindow),
				h.Notification.SendReminder)
		}

		// 通知模块
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", h.Notification.ListNotifications)
			notifications.PATCH("/:id/read", h.Notification.MarkRead)
		}
	}

	return r
}
