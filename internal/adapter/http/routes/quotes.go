package routes

import (
	"quickquote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRates  = "/rates"
	PathQuotes = "/quotes"
)

func addRateRoutes(rg *gin.RouterGroup, rateHandler *handlers.RateCardHandler) {
	rates := rg.Group(PathRates)
	{
		rates.GET("", rateHandler.GetRateCard)
		rates.PUT("", rateHandler.SaveRateCard)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		// static paths are registered before /:id
		quotes.POST("/preview", quoteHandler.PreviewQuote)
		quotes.GET("/stream", quoteHandler.StreamQuotes)
		quotes.GET("/export", quoteHandler.ExportQuotes)

		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.GET("/:id/pdf", quoteHandler.QuotePDF)
		quotes.PUT("/:id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:id/images/:index", quoteHandler.RemoveQuoteImage)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
	}
}
