package store

import (
	"context"

	"github.com/campus-assist/campus-assist/pkg/types"
)

// ConversationStore 会话生命周期的唯一权威入口。
// 所有操作都是全函数：未知 id 通过空值/哨兵返回，不抛错误。
type ConversationStore interface {
	// Create 生成新会话，id 由 store 分配
	Create(ctx context.Context) types.Conversation
	// Ensure 返回已有会话，不存在则以调用方提供的 id 创建，绝不覆盖已有会话
	Ensure(ctx context.Context, id string) types.Conversation
	// List 按 updatedAt 倒序返回全部会话，时间相同时保持插入顺序
	List(ctx context.Context) []types.Conversation
	// TogglePin 翻转置顶状态并刷新 updatedAt，未知 id 返回 false
	TogglePin(ctx context.Context, id string) (*types.Conversation, bool)
	// Delete 同时删除会话与其消息列表，未知 id 是 no-op
	Delete(ctx context.Context, id string)
}

// MessageStore 消息只增不改，与 ConversationStore 共享同一份底层状态
type MessageStore interface {
	// GetMessages 按追加顺序返回消息，未知 id 返回空列表
	GetMessages(ctx context.Context, conversationID string) []types.Message
	// AppendMessage 追加消息并联动刷新所属会话的摘要字段，
	// 消息列表不存在时自动创建（宽容语义，见 ChatLogic 的调用顺序）
	AppendMessage(ctx context.Context, msg types.Message)
}
