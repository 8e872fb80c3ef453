package server

import (
	"context"
	"net/http"

	"github.com/arkivo/arkivo-slack/pkg/config"
	"github.com/arkivo/arkivo-slack/pkg/plugin"
	"github.com/arkivo/arkivo-slack/pkg/types"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Plugin interface {
	Descriptor() plugin.Descriptor
	Process(context.Context, config.Options, *types.SyncResult) error
}

type Server struct {
	Plugin Plugin
}

func New(p Plugin) *Server {
	return &Server{
		Plugin: p,
	}
}

func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/v1/plugin", s.v1Plugin)
	router.POST("/v1/process", s.v1Process)

	return router
}

func (s *Server) v1Plugin(c *gin.Context) {
	c.JSON(http.StatusOK, s.Plugin.Descriptor())
}

func (s *Server) v1Process(c *gin.Context) {
	sync := &types.SyncResult{}

	if err := c.ShouldBindJSON(sync); err != nil {
		log.Error().Err(err).Msg("error binding JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	options := config.Options{}
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			options[k] = v[0]
		}
	}

	if err := s.Plugin.Process(c.Request.Context(), options, sync); err != nil {
		log.Error().Err(err).Msg("error processing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
