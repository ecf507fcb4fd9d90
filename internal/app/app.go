package app

import (
	"fmt"

	"github.com/chalkboard-dev/chalkboard/internal/config"
	"github.com/chalkboard-dev/chalkboard/internal/db"
	"github.com/chalkboard-dev/chalkboard/internal/repository"
	"github.com/chalkboard-dev/chalkboard/internal/service"
	"github.com/chalkboard-dev/chalkboard/internal/storage"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg               *config.Config
	DB                *sqlx.DB
	MessageService    service.MessageService
	AttachmentService service.AttachmentService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	messageRepository := repository.NewMessageRepository(database)

	// Storage (presigner only; object bytes never pass through this process)
	presigner, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	messageService := service.NewMessageService(messageRepository)
	attachmentService := service.NewAttachmentService(presigner)

	return &App{
		Cfg:               cfg,
		DB:                database,
		MessageService:    messageService,
		AttachmentService: attachmentService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
