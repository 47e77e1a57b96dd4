package memstore

import (
	"github.com/campus-assist/campus-assist/app/store"
)

// Provider 进程内存实现，单实例部署专用。
// 对外暴露接口与 store 包对齐，方便测试按用例实例化独立的 store。
type Provider struct {
	stores *Stores
}

type Stores struct {
	store.ConversationStore
	store.MessageStore
}

func MustSetupProvider() *Provider {
	repo := NewConversationStore()
	return &Provider{
		stores: &Stores{
			ConversationStore: repo,
			MessageStore:      repo,
		},
	}
}

func (p *Provider) ConversationStore() store.ConversationStore {
	return p.stores.ConversationStore
}

func (p *Provider) MessageStore() store.MessageStore {
	return p.stores.MessageStore
}
