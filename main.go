package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "tabel-backend/docs"
	"tabel-backend/internal/attendance"
	"tabel-backend/internal/dialog"
	"tabel-backend/internal/platform/auth"
	"tabel-backend/internal/platform/db"
	"tabel-backend/internal/tardiness"
	"tabel-backend/internal/timesheet"
)

// logNotifier stands in for the external alert channel (group chat /
// admin broadcast). The sending process tails the log or replaces this
// with its own delivery.
type logNotifier struct{}

func (logNotifier) Notify(a tardiness.Alert) error {
	log.Printf("[ALERT] late arrival: %s on %s at %s (stated %s)", a.FullName, a.SelectedDate, a.ActualTime, a.StatedTime)
	return nil
}

func main() {
	cfg, err := db.LoadConfig("config/config.yaml")
	if err != nil {
		panic(err)
	}

	mode := cfg.Mode
	log.Printf("[INFO] mode:%s\n", mode)
	if mode != "dev" && mode != "release" {
		fmt.Println("Usage: go run main.go [dev|release]")
		return
	}

	conn, err := db.Connect(cfg.DB)
	if err != nil {
		panic(err)
	}
	defer conn.Close()
	log.Printf("[INFO] connected to DB: %s", cfg.DB.DBName)

	if err := db.EnsureSchema(context.Background(), conn); err != nil {
		panic(err)
	}

	loc, err := time.LoadLocation(cfg.Tardiness.Timezone)
	if err != nil {
		panic(err)
	}
	detector, err := tardiness.New(cfg.Tardiness.Timezone, cfg.Tardiness.Cutoff, cfg.Tardiness.Until)
	if err != nil {
		panic(err)
	}

	attendanceSvc := attendance.NewService(conn)
	engine := dialog.NewEngine(attendanceSvc, detector, logNotifier{})
	reportSvc := timesheet.NewService(attendanceSvc)
	spool := timesheet.SpoolDeliverer{Dir: cfg.Report.SpoolDir}
	authSvc := auth.NewService(conn, []byte(cfg.Auth.JWTSecret))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	if mode == "dev" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	api := r.Group("/api/v1")
	auth.RegisterRoutes(api, authSvc)

	secret := []byte(cfg.Auth.JWTSecret)

	// The messaging gateway posts every user interaction here.
	gw := api.Group("", auth.RequireAuth(secret), auth.RequireRole(auth.RoleGateway, auth.RoleAdmin))
	dialog.RegisterRoutes(gw, engine)

	admin := api.Group("", auth.RequireAuth(secret), auth.RequireRole(auth.RoleAdmin))
	auth.RegisterAdminRoutes(admin, authSvc)
	attendance.RegisterRoutes(admin, attendanceSvc)
	timesheet.RegisterRoutes(admin, reportSvc, spool)

	// Weekly report job (original cadence: Sunday 23:00 local).
	jobCtx, stopJob := context.WithCancel(context.Background())
	defer stopJob()
	sched, err := timesheet.NewScheduler(reportSvc, spool, time.Weekday(cfg.Report.Weekday), cfg.Report.At, loc)
	if err != nil {
		panic(err)
	}
	go sched.Run(jobCtx)

	srv := &http.Server{
		Addr:    ":8443",
		Handler: r,
	}

	var certFile, keyFile string
	if mode == "dev" {
		certFile = fmt.Sprintf("config/tls/dev/%s", cfg.Certificate.Cert)
		keyFile = fmt.Sprintf("config/tls/dev/%s", cfg.Certificate.Key)
	} else {
		certFile = fmt.Sprintf("config/tls/release/%s", cfg.Certificate.Cert)
		keyFile = fmt.Sprintf("config/tls/release/%s", cfg.Certificate.Key)
	}

	go func() {
		log.Println("[INFO] listening on https://0.0.0.0:8443")
		if err := srv.ListenAndServeTLS(certFile, keyFile); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("[INFO] shutting down...")
	stopJob()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
