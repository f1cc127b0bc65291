package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Lisbooa16/fut-analise/internal/advisory"
	"github.com/Lisbooa16/fut-analise/internal/auth"
	"github.com/Lisbooa16/fut-analise/internal/bankroll"
	"github.com/Lisbooa16/fut-analise/internal/bet"
	"github.com/Lisbooa16/fut-analise/internal/config"
	"github.com/Lisbooa16/fut-analise/internal/events"
	"github.com/Lisbooa16/fut-analise/internal/logger"
)

type Server struct {
	router    *gin.Engine
	httpSrv   *http.Server
	db        *sqlx.DB
	config    *config.Config
	publisher *events.Publisher
}

func New(db *sqlx.DB, cfg *config.Config, publisher *events.Publisher) *Server {
	if errs := ValidateStruct(cfg); len(errs) > 0 {
		for _, e := range errs {
			logger.Error("Invalid configuration", "field", e.Field, "message", e.Message)
		}
		logger.Fatal("Refusing to start with invalid configuration")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	bankrollHandler := bankroll.NewHandler(db, publisher)
	betHandler := bet.NewHandler(db, publisher)
	advisoryHandler := advisory.NewHandler(db)

	public := router.Group("/auth")
	{
		public.POST("/login", Login(cfg))
	}

	protected := router.Group("/")
	protected.Use(auth.AuthMiddleware(cfg.JWTSecret))
	{
		protected.POST("/bankrolls", bankrollHandler.CreateBankroll)
		protected.GET("/bankrolls/:bankrollID", bankrollHandler.GetBankroll)
		protected.POST("/bankrolls/:bankrollID/deposit", bankrollHandler.Deposit)
		protected.POST("/bankrolls/:bankrollID/withdraw", bankrollHandler.Withdraw)
		protected.GET("/bankrolls/:bankrollID/movements", bankrollHandler.ListMovements)

		protected.POST("/bankrolls/:bankrollID/bets", betHandler.PlaceBet)
		protected.GET("/bankrolls/:bankrollID/bets", betHandler.ListBets)
		protected.GET("/bankrolls/:bankrollID/totals", betHandler.GetTotals)
		protected.GET("/bets/:betID", betHandler.GetBet)
		protected.POST("/bets/:betID/settle", betHandler.SettleBet)

		protected.GET("/bankrolls/:bankrollID/advice", advisoryHandler.GetAdvice)
		protected.GET("/bankrolls/:bankrollID/recommendation", advisoryHandler.GetRecommendation)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router:    router,
		db:        db,
		config:    cfg,
		publisher: publisher,
	}
}

func (s *Server) Start(port string) error {
	s.httpSrv = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
