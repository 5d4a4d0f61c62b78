package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/channel-gateway/internal/api/handlers/message"
)

func New(handler *message.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	{
		api.POST("/messages", handler.Ingest)
		api.GET("/messages/:channel/:id", handler.Get)
		api.DELETE("/messages/:channel/:id", handler.Delete)
		api.POST("/messages/:channel/:id/reprocess", handler.Reprocess)

		api.GET("/channels", handler.Channels)
		api.GET("/channels/:channel/messages", handler.Recent)

		api.GET("/stats", handler.Stats)
	}

	return e
}
