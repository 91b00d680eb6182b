package webserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Yuvraj-cyborg/Verdyce/src/config"
)

func New(cfg config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery(), cors.Default())
	attachRoutes(g, cfg, db, rdb)
	return g
}

func attachRoutes(g *gin.Engine, cfg config.Config, db *gorm.DB, rdb *redis.Client) {
	proposals := NewProposals(cfg, db, rdb)
	votes := NewVotes(rdb)

	v1 := g.Group("/v1")
	{
		v1.POST("/proposals", proposals.Create)
		v1.GET("/proposals", proposals.List)
		v1.GET("/proposals/:id", proposals.Get)
		v1.POST("/proposals/:id/votes", votes.Cast)
		v1.POST("/proposals/:id/evaluate", proposals.Evaluate)
		v1.POST("/proposals/:id/extend", proposals.Extend)
		v1.POST("/evaluate", proposals.EvaluateAll)
		v1.POST("/extend", proposals.ExtendAll)
	}
}
