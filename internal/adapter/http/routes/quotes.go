package routes

import (
	"interiorquote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes      = "/quotes"
	PathCostConfigs = "/cost-configs"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("/:id", quoteHandler.Get)
		quotes.PUT("/:id/items", quoteHandler.UpdateItems)
		quotes.POST("/:id/preview", quoteHandler.Preview)
		quotes.POST("/:id/finalize", quoteHandler.Finalize)
		quotes.PATCH("/:id/decision", quoteHandler.SetDecision)
		quotes.GET("/:id/export/excel", quoteHandler.ExportExcel)
	}
}

func addCostConfigRoutes(rg *gin.RouterGroup, costConfigHandler *handlers.CostConfigHandler) {
	costConfigs := rg.Group(PathCostConfigs)
	{
		costConfigs.GET("", costConfigHandler.List)
		costConfigs.PUT("", costConfigHandler.Upsert)
	}
}
