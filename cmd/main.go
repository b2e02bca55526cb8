package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/joho/godotenv"
	"github.com/maxaizer/jobsearch/internal/config"
	"github.com/maxaizer/jobsearch/internal/controller"
	"github.com/maxaizer/jobsearch/internal/logger"
	"github.com/maxaizer/jobsearch/internal/repositories"
	"github.com/maxaizer/jobsearch/internal/shell"
	"github.com/maxaizer/jobsearch/internal/views"
	log "github.com/sirupsen/logrus"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	location, err := cfg.UI.Location()
	if err != nil {
		log.Fatalf("can't resolve time zone: %v", err)
	}

	dbContext, err := repositories.NewDbContext(cfg.DB.Path)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	bus := EventBus.New()
	lists := views.NewLists(views.NewDateTimeFormatter(cfg.UI.Locale, location))

	formController, err := controller.NewController(dbContext, bus, lists)
	if err != nil {
		log.Fatalf("can't create controller: %v", err)
	}

	jobShell, err := shell.NewShell(os.Stdin, os.Stdout, formController, bus)
	if err != nil {
		log.Fatalf("can't create shell: %v", err)
	}

	log.Infof("Using database %s", cfg.DB.Path)
	if err = jobShell.Run(ctx); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("shell stopped: %v", err)
	}
	log.Info("Shutting down.")
}
