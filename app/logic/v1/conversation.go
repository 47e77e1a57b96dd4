package v1

import (
	"context"
	"net/http"

	"github.com/campus-assist/campus-assist/app/core"
	"github.com/campus-assist/campus-assist/pkg/errors"
	"github.com/campus-assist/campus-assist/pkg/i18n"
	"github.com/campus-assist/campus-assist/pkg/types"
)

type ConversationLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewConversationLogic(ctx context.Context, core *core.Core) *ConversationLogic {
	return &ConversationLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *ConversationLogic) CreateConversation() types.Conversation {
	return l.core.Store().Create(l.ctx)
}

func (l *ConversationLogic) ListConversations() []types.Conversation {
	return l.core.Store().List(l.ctx)
}

func (l *ConversationLogic) GetConversationMessages(conversationID string) []types.Message {
	return l.core.MessageStore().GetMessages(l.ctx, conversationID)
}

func (l *ConversationLogic) TogglePinConversation(conversationID string) (*types.Conversation, error) {
	conv, ok := l.core.Store().TogglePin(l.ctx, conversationID)
	if !ok {
		return nil, errors.New("ConversationLogic.TogglePinConversation.TogglePin.nil", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}
	return conv, nil
}

func (l *ConversationLogic) DeleteConversation(conversationID string) {
	l.core.Store().Delete(l.ctx, conversationID)
}
