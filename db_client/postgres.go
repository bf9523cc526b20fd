package db_client

import (
	"context"
	"time"

	"Ytgrab/yt"

	"github.com/Strum355/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Download is one row of the download history
type Download struct {
	ID           uint   `gorm:"primaryKey"`
	URL          string `gorm:"not null"`
	VideoID      string `gorm:"index"`
	Title        string
	Itag         int
	QualityLabel string
	MimeType     string
	Path         string `gorm:"not null"`
	Bytes        int64
	CreatedAt    time.Time
}

// History records finished downloads in Postgres
type History struct {
	DB *gorm.DB
}

// Open connects to Postgres, retrying up to attempts times, and migrates the schema
func Open(dsn string, attempts int) (*History, error) {
	if attempts < 1 {
		attempts = 1
	}

	var (
		db  *gorm.DB
		err error
	)
	for i := 0; i < attempts; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					break
				}
			} else {
				err = dbErr
			}
		}
		if i < attempts-1 {
			log.Info("Waiting for Postgres to be ready...")
			time.Sleep(time.Second)
		}
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Download{}); err != nil {
		return nil, err
	}

	return &History{DB: db}, nil
}

// Record stores a finished download
func (h *History) Record(ctx context.Context, req *yt.Request, res *yt.Result) error {
	return h.DB.WithContext(ctx).Create(NewDownload(req, res)).Error
}

func (h *History) Close() error {
	sqlDB, err := h.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewDownload builds the history row for a finished download
func NewDownload(req *yt.Request, res *yt.Result) *Download {
	d := &Download{
		URL:   req.URL,
		Path:  res.Path,
		Bytes: res.Bytes,
	}
	if res.Video != nil {
		d.VideoID = res.Video.ID
		d.Title = res.Video.Title
	}
	if res.Format != nil {
		d.Itag = res.Format.ItagNo
		d.QualityLabel = res.Format.QualityLabel
		d.MimeType = res.Format.MimeType
	}
	return d
}
