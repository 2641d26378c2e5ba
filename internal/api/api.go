package api

import (
	"net/http"

	activityHandler "villanova-server/internal/activity/handler"
	authHandler "villanova-server/internal/auth/handler"
	settingsHandler "villanova-server/internal/settings/handler"
	strategyHandler "villanova-server/internal/strategy/handler"
	walletHandler "villanova-server/internal/wallet/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type API struct {
	router          *gin.RouterGroup
	authHandler     authHandler.Handler
	settingsHandler settingsHandler.Handler
	strategyHandler strategyHandler.Handler
	activityHandler activityHandler.Handler
	walletHandler   walletHandler.Handler
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	settingsHandler settingsHandler.Handler,
	strategyHandler strategyHandler.Handler,
	activityHandler activityHandler.Handler,
	walletHandler walletHandler.Handler,
) API {
	return API{
		router:          router,
		authHandler:     authHandler,
		settingsHandler: settingsHandler,
		strategyHandler: strategyHandler,
		activityHandler: activityHandler,
		walletHandler:   walletHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := a.router.Group("/api")
	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware)
	adroomGroup := protectedGroup.Group("/adroom")
	{
		adroomGroup.POST("/settings", a.settingsHandler.HandleConnectPlatform)
		adroomGroup.GET("/settings", a.settingsHandler.HandleGetPlatform)
		adroomGroup.DELETE("/settings", a.settingsHandler.HandleDisconnectPlatform)

		adroomGroup.POST("/strategies/propose", a.strategyHandler.HandleProposeStrategy)
		adroomGroup.POST("/strategies", a.strategyHandler.HandleApproveStrategy)
		adroomGroup.GET("/strategies", a.strategyHandler.HandleListStrategies)
		adroomGroup.GET("/strategies/:id/posts", a.strategyHandler.HandleListPosts)
		adroomGroup.GET("/strategies/:id/diagnoses", a.strategyHandler.HandleListDiagnoses)
		adroomGroup.POST("/strategies/:id/cancel", a.strategyHandler.HandleCancelStrategy)

		adroomGroup.GET("/activity", a.activityHandler.HandleListActivity)
		adroomGroup.GET("/activity/stream", a.activityHandler.HandleActivityStream)
		adroomGroup.GET("/interactions", a.activityHandler.HandleListInteractions)

		adroomGroup.GET("/wallet", a.walletHandler.HandleGetWallet)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
