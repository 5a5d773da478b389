// Package server exposes the read-only REST surface: egg prices, the raw
// upstream passthrough, and the billionaires roster.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/etnz/eggworth"
)

// NewRouter wires the handlers onto a gin engine.
func NewRouter(feed *eggworth.Feed, roster *eggworth.Roster) *gin.Engine {
	router := gin.Default()

	prices := NewPriceHandler(feed)
	billionaires := NewRosterHandler(roster)

	api := router.Group("/api")
	api.GET("/eggprices", prices.GetHistorical)
	api.GET("/eggprices/current", prices.GetCurrent)
	api.POST("/eggprices/raw", prices.PostRaw)
	api.GET("/billionaires", billionaires.List)
	api.HEAD("/billionaires", billionaires.Head)

	return router
}

// Run builds the router from cfg and serves until the listener fails.
func Run(cfg *Config) error {
	feed := &eggworth.Feed{BaseURL: cfg.FeedURL}
	router := NewRouter(feed, eggworth.DefaultRoster())
	return router.Run(":" + cfg.Port)
}
