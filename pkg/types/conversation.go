package types

import "time"

const DEFAULT_CONVERSATION_TITLE = "New Conversation"

// LAST_MESSAGE_PREVIEW_LIMIT 会话预览内容的最大长度（按 rune 截断）
const LAST_MESSAGE_PREVIEW_LIMIT = 140

type Conversation struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	LastMessage  string    `json:"lastMessage"`
	UpdatedAt    time.Time `json:"updatedAt"`
	IsPinned     bool      `json:"isPinned"`
	MessageCount int       `json:"messageCount"`
}

type MessageUserRole string

const (
	USER_ROLE_USER      MessageUserRole = "user"
	USER_ROLE_ASSISTANT MessageUserRole = "assistant"
)

type Message struct {
	ID             string          `json:"id"`
	ConversationID string          `json:"conversationId"`
	Role           MessageUserRole `json:"role"`
	Content        string          `json:"content"`
	Timestamp      time.Time       `json:"timestamp"`
	Sources        []Source        `json:"sources,omitempty"`
	Explain        *ExplainData    `json:"explain,omitempty"`
}

type SourceType string

const (
	SOURCE_TYPE_OFFICIAL SourceType = "official"
	SOURCE_TYPE_FAQ      SourceType = "faq"
	SOURCE_TYPE_POLICY   SourceType = "policy"
)

type Source struct {
	Title string     `json:"title"`
	URL   string     `json:"url"`
	Type  SourceType `json:"type"`
}

// ExplainData 由 NLP 服务生成的诊断信息，本服务只做透传，不感知其语义
type ExplainData struct {
	DetectedLang     string     `json:"detectedLang"`
	RuleHit          bool       `json:"ruleHit"`
	Intent           string     `json:"intent"`
	IntentConfidence float64    `json:"intentConfidence"`
	RetrievalMethod  string     `json:"retrievalMethod"`
	TopMatches       []TopMatch `json:"topMatches"`
	Decision         string     `json:"decision"`
}

type TopMatch struct {
	Text       string  `json:"text"`
	Similarity float64 `json:"similarity"`
}
