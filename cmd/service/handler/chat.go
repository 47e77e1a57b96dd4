package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/campus-assist/campus-assist/app/logic/v1"
	"github.com/campus-assist/campus-assist/app/response"
	"github.com/campus-assist/campus-assist/pkg/errors"
	"github.com/campus-assist/campus-assist/pkg/i18n"
	"github.com/campus-assist/campus-assist/pkg/types"
	"github.com/campus-assist/campus-assist/pkg/utils"
)

type HealthResponse struct {
	OK  bool   `json:"ok"`
	NLP string `json:"nlp"`
}

func (s *HttpSrv) Health(c *gin.Context) {
	response.APISuccess(c, HealthResponse{
		OK:  true,
		NLP: s.Core.NLP().BaseURL(),
	})
}

type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId"`
	Language       string `json:"language"`
}

func (s *HttpSrv) Chat(c *gin.Context) {
	timer := s.Core.Metrics().ApiResponseTimer("/api/chat")
	defer timer.ObserveDuration()

	var req ChatRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	// 校验不过不碰 store，也不请求 NLP
	if req.Message == "" || req.ConversationID == "" {
		s.Core.Metrics().ApiErrorInc(c.Request.Method, "/api/chat", http.StatusBadRequest)
		response.APIError(c, errors.New("api.Chat.args", i18n.ERROR_CHAT_ARGS_REQUIRED, nil).Code(http.StatusBadRequest))
		return
	}

	logic := v1.NewChatLogic(c, s.Core)
	chat, degraded := logic.HandleChat(types.ChatRequest{
		Message:        req.Message,
		ConversationID: req.ConversationID,
		Language:       req.Language,
	})
	if degraded {
		s.Core.Metrics().ApiErrorInc(c.Request.Method, "/api/chat", http.StatusBadGateway)
		response.APIDegraded(c, chat)
		return
	}

	response.APISuccess(c, chat)
}
