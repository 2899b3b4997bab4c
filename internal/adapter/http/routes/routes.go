package routes

import (
	"log"
	"net/http"

	_ "card_payments/docs" // swag generated, one instance per service
	"card_payments/pkg"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	SwaggerInstanceStripe = "stripe"
	SwaggerInstanceSquare = "square"
)

// newRouter returns an engine with request logging, a JSON catch-all for panics
// and the service's swagger UI.
func newRouter(swaggerInstance string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(swaggerInstance)))
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
}

func run(router *gin.Engine, port string) {
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}
