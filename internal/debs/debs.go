package deps

import (
	"log"

	"github.com/gustavoSo3/adogtame-back/config"
	"github.com/gustavoSo3/adogtame-back/internal/db"
	"github.com/gustavoSo3/adogtame-back/util/storage"
	"github.com/gustavoSo3/adogtame-back/util/websockets"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependencies struct {
	DB         *db.DB
	Cloudinary *storage.Cloudinary
	Feed       *websockets.FeedManager
}

func New(cfg *config.Config) *Dependencies {
	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	cloudinary := storage.NewCloudinary(cfg)
	feed := websockets.NewFeedManager()

	deps := Dependencies{
		DB:         database,
		Cloudinary: cloudinary,
		Feed:       feed,
	}
	return &deps
}

func (d *Dependencies) Pool() *pgxpool.Pool {
	return d.DB.Pool()
}
