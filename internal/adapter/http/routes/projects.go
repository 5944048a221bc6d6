package routes

import (
	"interiorquote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathProjects = "/projects"

func addProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler, quoteHandler *handlers.QuoteHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.Create)
		projects.GET("", projectHandler.List)
		projects.GET("/:id", projectHandler.Get)
		projects.PUT("/:id", projectHandler.Update)
		projects.PATCH("/:id/status", projectHandler.UpdateStatus)
		projects.POST("/:id/preview-image", projectHandler.GeneratePreview)

		// one current quote per project
		projects.POST("/:id/quote", quoteHandler.Generate)
		projects.GET("/:id/quote", quoteHandler.GetByProject)
	}
}
