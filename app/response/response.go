package response

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campus-assist/campus-assist/pkg/errors"
	"github.com/campus-assist/campus-assist/pkg/i18n"
	"github.com/campus-assist/campus-assist/pkg/utils"
)

func ProvideResponseLocalizer(l i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("i18n", l)
	}
}

func InjectResponseLocalizer(c *gin.Context) i18n.Localizer {
	return c.MustGet("i18n").(i18n.Localizer)
}

// ErrorBody 错误响应体，契约固定为 {"error": msg}
type ErrorBody struct {
	Error string `json:"error"`
}

func GetLangFromRequestOrDefault(c *gin.Context) string {
	header := c.Request.Header.Get("Accept-Language")
	for _, lang := range utils.ParseAcceptLanguage(header) {
		if i18n.ALLOW_LANG[lang.Tag] {
			return lang.Tag
		}
	}
	return i18n.DEFAULT_LANG
}

// APIError api响应失败
func APIError(c *gin.Context, err error) {
	c.Abort()
	l := InjectResponseLocalizer(c)

	var (
		httpStatus int
		message    string
	)
	if cerrptr, ok := err.(*errors.CustomizedError); !ok {
		httpStatus = http.StatusInternalServerError
		message = err.Error()
	} else {
		httpStatus = cerrptr.GetCode()
		message = l.Get(GetLangFromRequestOrDefault(c), cerrptr.Message())
	}

	c.JSON(httpStatus, ErrorBody{Error: message})
	printErrorLog(c, httpStatus, err)
}

func printErrorLog(c *gin.Context, status int, err error) {
	endTime := time.Now().Unix()
	// 统一打印日志
	var logFields = map[string]any{
		"request_uri": c.Request.URL.Path,
		"end_time":    endTime,
		"code":        status,
		"error":       err.Error(),
	}

	slog.Error("response error", slog.Any("fields", logFields))
}

func printSuccessLog(c *gin.Context, status int) {
	endTime := time.Now().Unix()
	// 统一打印日志
	var logFields = map[string]any{
		"request_uri": c.Request.URL.Path,
		"end_time":    endTime,
		"code":        status,
		"params":      c.Request.URL.Query().Encode(),
	}

	slog.Info("request success", slog.Any("fields", logFields))
}

// APISuccess api响应成功，payload 原样输出，不包信封
func APISuccess(c *gin.Context, payload interface{}) {
	c.Abort()
	c.JSON(http.StatusOK, payload)
	printSuccessLog(c, http.StatusOK)
}

// APINoContent 204 空响应
func APINoContent(c *gin.Context) {
	c.Abort()
	c.Status(http.StatusNoContent)
	printSuccessLog(c, http.StatusNoContent)
}

// APIDegraded NLP 链路故障时的兜底响应：状态码 502，但响应体仍是可渲染的聊天载荷
func APIDegraded(c *gin.Context, payload interface{}) {
	c.Abort()
	c.JSON(http.StatusBadGateway, payload)
	printSuccessLog(c, http.StatusBadGateway)
}
