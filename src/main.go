package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path"
	"regexp"
	"syscall"
	"time"

	"guestdesk/src/boot"
	"guestdesk/src/common"
	"guestdesk/src/config"
	"guestdesk/src/middlewares"
	"guestdesk/src/types"
	"guestdesk/src/utils"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	apiPrefix string = "/api/v1"
)

var reservationStatusValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	return common.IsValidStatus(types.ReservationStatus(fl.Field().String()))
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("reservationstatus", reservationStatusValidatorFunc)
	}
}

// respondError maps service errors to HTTP status codes.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrInvalidStatus), errors.Is(err, common.ErrNoRecipient):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrTransport):
		status = http.StatusBadGateway
	case errors.Is(err, common.ErrSweepInProgress):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		log.Printf("[api] %s %s: %s\n", ctx.Request.Method, ctx.Request.URL.Path, err.Error())
	}
	ctx.Error(err)
	ctx.JSON(status, gin.H{"error": err.Error()})
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders, middlewares.RequestID)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine, enabled bool) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		if enabled {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
	})
	return g
}

func apiv1Group(g *gin.Engine) *gin.RouterGroup {
	apiv1 := g.Group(apiPrefix)
	return apiv1
}

func apiRoutes(g *gin.Engine, desk *utils.Desk) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	reservationHandlers(apiv1, desk)
	formHandlers(apiv1, desk)
	emailHandlers(apiv1, desk)
	reminderHandlers(apiv1, desk)
	adminHandlers(apiv1, desk)
	return apiv1
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	if cfg.IsLocal() {
		return cors.Default()
	}
	cc := cors.DefaultConfig()
	cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "HEAD")
	cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization", middlewares.RequestIDHeader)
	cc.ExposeHeaders = append(cc.ExposeHeaders, middlewares.RequestIDHeader)
	cc.AllowOriginFunc = func(origin string) bool {
		if cfg.AppHost != "" {
			if match, _ := regexp.MatchString(cfg.AppHost, origin); match {
				return true
			}
		}
		return origin == cfg.AppURL
	}
	cc.AllowCredentials = true
	cc.AllowAllOrigins = false
	return cors.New(cc)
}

func initLogger(logFile string) {
	gin.ForceConsoleColor()
	if logFile == "" {
		return
	}
	lj := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	}
	gin.DefaultWriter = io.MultiWriter(lj, os.Stdout)
	log.SetOutput(io.MultiWriter(lj, os.Stderr))
}

func main() {
	if os.Getenv(config.EnvAPIEnv) == "" || os.Getenv(config.EnvAPIEnv) == config.DefaultAPIEnv {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			log.Printf("No .env loaded: %s\n", err.Error())
		}
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	initLogger(cfg.LogFile)
	cfg.LogConfiguration()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	desk, err := boot.InitDesk(ctx, cfg)
	if err != nil {
		log.Fatalf("Error initializing reservations desk: %s", err.Error())
	}
	boot.InitScheduler(cfg, desk)
	defer boot.StopScheduler()
	boot.InitConsumers(ctx, cfg, desk)

	router := setupRouter()
	router.Use(corsMiddleware(cfg))
	registerValidators()
	router = maintenanceModeMiddleware(router, cfg.MaintenanceMode)
	apiRoutes(router, desk)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting server: %s", err.Error())
		}
	}()
	log.Printf("Listening on %s\n", srv.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %s\n", err.Error())
	}
}
