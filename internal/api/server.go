package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/machikasa/machikasa-api/docs"
	v1 "github.com/machikasa/machikasa-api/internal/api/handler/v1"
	"github.com/machikasa/machikasa-api/internal/api/middleware"
	"github.com/machikasa/machikasa-api/internal/config"
	"github.com/machikasa/machikasa-api/internal/repository"
	"github.com/machikasa/machikasa-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *repository.LocalDB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	session := service.NewSessionService(db)

	stationHandler := v1.NewStationHandler(db)
	umbrellaHandler := v1.NewUmbrellaHandler(db)
	partnerHandler := v1.NewPartnerHandler(db)
	rentalHandler := s.initRentalHandler(db)
	userHandler := v1.NewUserHandler(session)
	sessionHandler := v1.NewSessionHandler(session)
	adminHandler := s.initAdminHandler(db)
	s.MountHandlers(session, stationHandler, umbrellaHandler, partnerHandler, rentalHandler, userHandler, sessionHandler, adminHandler)

	return s
}

func (s *Server) initRentalHandler(db *repository.LocalDB) *v1.RentalHandler {
	svc := service.NewRentalService(db)
	handler := v1.NewRentalHandler(svc)

	return handler
}

func (s *Server) initAdminHandler(db *repository.LocalDB) *v1.AdminHandler {
	analytics := service.NewAnalyticsService(db)
	bootstrap := service.NewBootstrapService(db)
	handler := v1.NewAdminHandler(analytics, bootstrap)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	session *service.SessionService,
	stationHandler *v1.StationHandler,
	umbrellaHandler *v1.UmbrellaHandler,
	partnerHandler *v1.PartnerHandler,
	rentalHandler *v1.RentalHandler,
	userHandler *v1.UserHandler,
	sessionHandler *v1.SessionHandler,
	adminHandler *v1.AdminHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.GET("/stations", stationHandler.HandleListStations)
		public.GET("/stations/:stationID", stationHandler.HandleGetStation)

		public.GET("/umbrellas", umbrellaHandler.HandleListUmbrellas)
		public.GET("/umbrellas/:umbrellaID", umbrellaHandler.HandleGetUmbrella)
		public.POST("/umbrellas/scan", umbrellaHandler.HandleScanUmbrella)

		public.GET("/sponsors", partnerHandler.HandleListSponsors)
		public.GET("/partner-stores", partnerHandler.HandleListPartnerStores)
		public.GET("/partner-stores/:storeID", partnerHandler.HandleGetPartnerStore)
		public.GET("/partner-stores/:storeID/deals", partnerHandler.HandleStoreDeals)

		public.POST("/rentals/borrow", rentalHandler.HandleBorrow)
		public.POST("/rentals/return", rentalHandler.HandleReturn)
		public.POST("/rentals/return-to-partner", rentalHandler.HandleReturnToPartner)

		public.GET("/users", userHandler.HandleListUsers)
		public.GET("/users/:userID", userHandler.HandleGetUser)
		public.GET("/users/:userID/transactions", userHandler.HandleUserTransactions)

		public.GET("/session/current-user", sessionHandler.HandleGetCurrentUser)
		public.PUT("/session/current-user", sessionHandler.HandleSwitchUser)
	}

	admin := s.Router.Group(basePath+"/admin", middleware.RequireAdmin(session))
	{
		admin.GET("/summary", adminHandler.HandleAdminSummary)
		admin.GET("/stats/transactions", adminHandler.HandleTransactionStats)
		admin.GET("/stats/umbrellas", adminHandler.HandleUmbrellaStats)
		admin.GET("/stats/stations", adminHandler.HandleStationUtilization)
		admin.GET("/transactions/export", adminHandler.HandleExportTransactions)
		admin.POST("/reset", adminHandler.HandleReset)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Machikasa API"
	docs.SwaggerInfo.Description = "Umbrella sharing API for the Machikasa demo."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
