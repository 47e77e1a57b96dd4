package service

import (
	"github.com/campus-assist/campus-assist/app/core"
	"github.com/campus-assist/campus-assist/cmd/service/handler"
	"github.com/campus-assist/campus-assist/cmd/service/middleware"
	"github.com/campus-assist/campus-assist/pkg/metrics"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func setupHttpRouter(s *handler.HttpSrv) {
	s.Engine.Use(middleware.I18n(s.Core), middleware.Cors, middleware.Recovery())

	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	api := s.Engine.Group("/api")
	{
		api.GET("/health", s.Health)

		conversations := api.Group("/conversations")
		{
			conversations.POST("", s.CreateConversation)
			conversations.GET("", s.ListConversations)
			conversations.GET("/:id/messages", s.GetConversationMessages)
			conversations.POST("/:id/pin", s.PinConversation)
			conversations.DELETE("/:id", s.DeleteConversation)
		}

		api.POST("/chat", s.Chat)
	}
}
