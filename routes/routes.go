package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/nitroxskg-dev/Real-Estate/handlers"
)

func RegisterRoutes(e *echo.Echo, pc *handlers.PropertyController, ic *handlers.InquiryController, sc *handlers.SeedController) {
	e.GET("/health", handlers.HealthCheck)

	api := e.Group("/api")
	api.GET("", handlers.Root)
	api.GET("/", handlers.Root)

	api.GET("/properties", pc.ListProperties)
	api.GET("/properties/:id", pc.GetProperty)
	api.POST("/properties", pc.CreateProperty)
	api.PUT("/properties/:id", pc.UpdateProperty)
	api.DELETE("/properties/:id", pc.DeleteProperty)

	api.POST("/inquiries", ic.CreateInquiry)
	api.GET("/inquiries", ic.ListInquiries)
	api.DELETE("/inquiries/:id", ic.DeleteInquiry)

	api.POST("/seed", sc.Seed)
}
