package types

const (
	LANGUAGE_AR_KEY = "ar"
	LANGUAGE_EN_KEY = "en"
	LANGUAGE_FR_KEY = "fr"
)

// ResolveLanguage 将调用方提供的语言归一为回退链路使用的语言，
// 下游 NLP 服务仍然收到原始值
func ResolveLanguage(lang string) string {
	if lang == LANGUAGE_AR_KEY {
		return LANGUAGE_AR_KEY
	}
	return LANGUAGE_EN_KEY
}

// ChatRequest /api/chat 的入参，同时也是转发给 NLP 服务的请求体
type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId"`
	Language       string `json:"language"`
}

// ChatResponse NLP 服务 /api/chat 的应答契约，原样回传给调用方
type ChatResponse struct {
	Answer  string      `json:"answer"`
	Lang    string      `json:"lang"`
	Sources []Source    `json:"sources"`
	Explain ExplainData `json:"explain"`
}

const (
	RETRIEVAL_METHOD_TFIDF = "tfidf"
	RETRIEVAL_METHOD_LABSE = "labse"

	EXPLAIN_DECISION_ANSWER   = "answer"
	EXPLAIN_DECISION_FALLBACK = "fallback"
)
