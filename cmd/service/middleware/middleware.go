package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-assist/campus-assist/app/core"
	"github.com/campus-assist/campus-assist/app/response"
	"github.com/campus-assist/campus-assist/pkg/safe"
)

func I18n(core *core.Core) gin.HandlerFunc {
	return response.ProvideResponseLocalizer(core.Localizer())
}

// Cors 任意来源，聊天挂件嵌在各个学院的页面里
func Cors(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
	c.Header("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

// Recovery 最外层兜底，panic 一律转 500 {error}，不向调用方泄栈
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered",
			slog.Any("recover", recovered),
			slog.String("request_uri", c.Request.URL.Path),
			slog.String("stack", safe.StackTrace(4)),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorBody{Error: "internal server error"})
	})
}
