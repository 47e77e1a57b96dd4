package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/campus-assist/campus-assist/app/logic/v1"
	"github.com/campus-assist/campus-assist/app/response"
)

func (s *HttpSrv) CreateConversation(c *gin.Context) {
	logic := v1.NewConversationLogic(c, s.Core)
	response.APISuccess(c, logic.CreateConversation())
}

func (s *HttpSrv) ListConversations(c *gin.Context) {
	logic := v1.NewConversationLogic(c, s.Core)
	response.APISuccess(c, logic.ListConversations())
}

func (s *HttpSrv) GetConversationMessages(c *gin.Context) {
	conversationID, _ := c.Params.Get("id")

	logic := v1.NewConversationLogic(c, s.Core)
	response.APISuccess(c, logic.GetConversationMessages(conversationID))
}

func (s *HttpSrv) PinConversation(c *gin.Context) {
	conversationID, _ := c.Params.Get("id")

	logic := v1.NewConversationLogic(c, s.Core)
	conv, err := logic.TogglePinConversation(conversationID)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, conv)
}

func (s *HttpSrv) DeleteConversation(c *gin.Context) {
	conversationID, _ := c.Params.Get("id")

	logic := v1.NewConversationLogic(c, s.Core)
	logic.DeleteConversation(conversationID)
	response.APINoContent(c)
}
