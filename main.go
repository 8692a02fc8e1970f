package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"gdocs-cms/pkg/config"
	"gdocs-cms/pkg/handlers"
	"gdocs-cms/pkg/services"
)

func main() {
	// Initialize config
	config.Init()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.CheckRequired(); err != nil {
		logger.Error("configuration incomplete", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()

	sheetsReader, err := services.NewSheetsReader(ctx, config.KeyFile)
	if err != nil {
		logger.Error("sheets client init failed", "err", err)
		os.Exit(1)
	}
	docsFetcher, err := services.NewDocsFetcher(ctx, config.KeyFile)
	if err != nil {
		logger.Error("docs client init failed", "err", err)
		os.Exit(1)
	}

	cms := &services.CMS{
		Sheets: &services.SheetRepo{
			Reader:            sheetsReader,
			SpreadsheetID:     config.SheetID,
			ReadRange:         config.SheetRange,
			PublisherFallback: config.PublisherFallback,
		},
		Docs:    docsFetcher,
		Pages:   services.NewPageCache(),
		Related: config.RelatedCount,
		BaseURL: config.BaseURL(),
		Section: config.Section,
		Logger:  logger,
	}

	blog := &handlers.BlogHandler{CMS: cms}
	revalidate := &handlers.RevalidateHandler{
		Secret: config.CallbackSecret,
		Pages:  cms.Pages,
		Logger: logger,
	}
	sitemap := &handlers.SitemapHandler{CMS: cms}

	r := gin.New()
	r.Use(gin.Recovery(), handlers.RequestID(), handlers.RequestLogger(logger))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/sitemap-blogs.xml", sitemap.Feed)

	api := r.Group("/api")
	{
		api.GET("/blogs", blog.List)
		api.GET("/blogs/:slug", blog.Get)
		api.HEAD("/blogs/:slug", blog.Exists)
		api.GET("/revalidate", revalidate.Status)
		api.POST("/revalidate", revalidate.Revalidate)
	}

	if err := r.Run(config.ListenAddr); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
