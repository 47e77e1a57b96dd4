package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/campus-assist/campus-assist/pkg/types"
	"github.com/campus-assist/campus-assist/pkg/utils"
)

// ConversationStore 两张关联表：id -> 会话、id -> 消息列表。
// 两者必须同生同灭，Create/Ensure/Delete 总是成对操作。
type ConversationStore struct {
	mu            sync.RWMutex
	conversations map[string]*conversationRecord
	messages      map[string][]types.Message
	seq           uint64
}

// conversationRecord seq 记录插入次序，List 排序在时间相同时以它稳定兜底
type conversationRecord struct {
	conv types.Conversation
	seq  uint64
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		conversations: make(map[string]*conversationRecord),
		messages:      make(map[string][]types.Message),
	}
}

func (s *ConversationStore) Create(ctx context.Context) types.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insert(utils.GenConversationID())
}

func (s *ConversationStore) Ensure(ctx context.Context, id string) types.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record, ok := s.conversations[id]; ok {
		return record.conv
	}
	// keep requested id (so frontend keeps stable IDs)
	return s.insert(id)
}

func (s *ConversationStore) insert(id string) types.Conversation {
	conv := types.Conversation{
		ID:        id,
		Title:     types.DEFAULT_CONVERSATION_TITLE,
		UpdatedAt: time.Now(),
	}
	s.seq++
	s.conversations[id] = &conversationRecord{conv: conv, seq: s.seq}
	s.messages[id] = []types.Message{}
	return conv
}

func (s *ConversationStore) List(ctx context.Context) []types.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*conversationRecord, 0, len(s.conversations))
	for _, record := range s.conversations {
		records = append(records, record)
	}
	// 先按插入次序排，再做稳定排序，毫秒粒度下同一时间戳的会话保持插入顺序
	sort.Slice(records, func(i, j int) bool {
		return records[i].seq < records[j].seq
	})
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].conv.UpdatedAt.After(records[j].conv.UpdatedAt)
	})

	return lo.Map(records, func(record *conversationRecord, _ int) types.Conversation {
		return record.conv
	})
}

func (s *ConversationStore) TogglePin(ctx context.Context, id string) (*types.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.conversations[id]
	if !ok {
		return nil, false
	}
	record.conv.IsPinned = !record.conv.IsPinned
	record.conv.UpdatedAt = time.Now()

	conv := record.conv
	return &conv, true
}

func (s *ConversationStore) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conversations, id)
	delete(s.messages, id)
}

func (s *ConversationStore) GetMessages(ctx context.Context, conversationID string) []types.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.messages[conversationID]
	result := make([]types.Message, len(list))
	copy(result, list)
	return result
}

func (s *ConversationStore) AppendMessage(ctx context.Context, msg types.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := append(s.messages[msg.ConversationID], msg)
	s.messages[msg.ConversationID] = list

	// 会话不存在时消息照常落库，摘要字段不更新；
	// 正常链路 Ensure 先行，孤儿消息只在调用方跳过 Ensure 时出现
	if record, ok := s.conversations[msg.ConversationID]; ok {
		record.conv.LastMessage = utils.TruncatePreview(msg.Content, types.LAST_MESSAGE_PREVIEW_LIMIT)
		record.conv.UpdatedAt = time.Now()
		record.conv.MessageCount = len(list)
	}
}
