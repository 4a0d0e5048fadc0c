package db

import (
	dbmodels "job-board-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Seeker{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Seeker")
	}
	if err := DB.AutoMigrate(&dbmodels.Recruiter{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Recruiter")
	}
	if err := DB.AutoMigrate(&dbmodels.Posting{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Posting")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
