package i18n

var ALLOW_LANG = map[string]bool{
	"en": true,
	"ar": true,
	"fr": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL        = "error.internal"
	ERROR_NOT_FOUND       = "error.notfound"
	ERROR_INVALIDARGUMENT = "error.invalidargument"

	// ERROR_CHAT_ARGS_REQUIRED 聊天接口入参校验失败，返回固定英文文案以兼容原有前端
	ERROR_CHAT_ARGS_REQUIRED = "error.chat.args.required"

	// MESSAGE_CHAT_FALLBACK NLP 服务不可用时返回给用户的兜底回答
	MESSAGE_CHAT_FALLBACK = "message.chat.fallback"
)
