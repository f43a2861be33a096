package utils

import (
	"fmt"
	"time"

	"progreso/backend/config"
	"progreso/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB abre la conexión a Postgres y migra el esquema.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	// TranslateError mapea la violación del índice único de rewards a
	// gorm.ErrDuplicatedKey, que el controlador de videos distingue.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate aplica el esquema de las cinco colecciones.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Student{},
		&models.Video{},
		&models.Question{},
		&models.Result{},
		&models.Reward{},
	)
}

// NowISO devuelve el instante actual como cadena ISO-8601 UTC con
// microsegundos: el orden lexicográfico coincide con el cronológico.
func NowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000") + "Z"
}
