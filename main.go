// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/clinicware/clinic-backend/config"
	"github.com/clinicware/clinic-backend/endpoint"
	"github.com/clinicware/clinic-backend/middleware"
	"github.com/clinicware/clinic-backend/model"
	"github.com/clinicware/clinic-backend/store"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("clinic-backend: %v", err)
	}
}

func run() error {
	// Load the configuration
	cfg := config.LoadConfig()

	// The store is acquired once here and released when run returns.
	db, err := config.ConnectDB()
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("unwrap database handle: %w", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&model.Doctor{}, &model.Patient{}, &model.Appointment{}, &model.SymptomRecord{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	// Doctors are not created through the API; seed the roster once.
	if err := store.SeedDoctors(db); err != nil {
		return fmt.Errorf("seed doctors: %w", err)
	}

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(), middleware.EndpointCallLogger(), middleware.DatabaseMiddleware(db))
	endpoint.RegisterRoutes(router)

	// Anything the API does not claim falls through to the bundled front end.
	router.NoRoute(staticFileHandler(cfg.StaticDir))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.AppPort),
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	log.Printf("%s started at http://localhost%s", cfg.AppName, srv.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// staticFileHandler serves files from the document root, defaulting the
// root path to index.html and answering 404 for anything absent. Content
// type is inferred from the file extension.
func staticFileHandler(root string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/" {
			path = "/index.html"
		}

		full := filepath.Join(root, filepath.Clean("/"+path))
		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			c.Status(http.StatusNotFound)
			return
		}
		c.File(full)
	}
}
