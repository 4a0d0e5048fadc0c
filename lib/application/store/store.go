package applicationstore

import (
	"job-board-backend/models"
	dbmodels "job-board-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (rec *dbmodels.Application, err error)
	GetByPair(postingID, seekerID string) (rec *dbmodels.Application, err error)
	ListBySeeker(seekerID string) (list []dbmodels.Application, err error)
	ListByPosting(postingID string) (list []dbmodels.Application, err error)
	ListByPostingIDs(postingIDs []string) (list []dbmodels.Application, err error)
	UpdateStatus(id string, status models.ApplicationStatus, closesAt time.Time) error
	// Withdraw - отзыв отклика соискателем, переводит в Deleted
	// только из нетерминального статуса, ok=false если отклик уже закрыт
	Withdraw(id string, now time.Time) (ok bool, err error)
	// RejectOthersOnPosting - каскад при заполнении вакансии:
	// все нетерминальные отклики на вакансию, кроме указанного, отклоняются
	RejectOthersOnPosting(postingID, excludeID string, now time.Time) (count int64, err error)
	// RejectOthersOfSeeker - каскад при принятии:
	// все прочие нетерминальные отклики соискателя отклоняются
	RejectOthersOfSeeker(seekerID, excludeID string, now time.Time) (count int64, err error)
	// DeleteAllOnPosting - каскад при мягком удалении вакансии
	DeleteAllOnPosting(postingID string, now time.Time) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByPair(postingID, seekerID string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("posting_id = ?", postingID).
		Where("seeker_id = ?", seekerID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListBySeeker(seekerID string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("seeker_id = ?", seekerID).
		Order("applied_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByPosting(postingID string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("posting_id = ?", postingID).
		Preload("Seeker").
		Order("applied_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByPostingIDs(postingIDs []string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	if len(postingIDs) == 0 {
		return list, nil
	}
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("posting_id in (?)", postingIDs).
		Order("applied_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateStatus(id string, status models.ApplicationStatus, closesAt time.Time) error {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":    status,
			"closes_at": closesAt,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) Withdraw(id string, now time.Time) (ok bool, err error) {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Where("status in (?)", nonTerminalStatuses()).
		Updates(map[string]interface{}{
			"status":    models.ApplicationStatusDeleted,
			"closes_at": now,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) RejectOthersOnPosting(postingID, excludeID string, now time.Time) (count int64, err error) {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("posting_id = ?", postingID).
		Where("id <> ?", excludeID).
		Where("status in (?)", nonTerminalStatuses()).
		Updates(map[string]interface{}{
			"status":    models.ApplicationStatusRejected,
			"closes_at": now,
		})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) RejectOthersOfSeeker(seekerID, excludeID string, now time.Time) (count int64, err error) {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("seeker_id = ?", seekerID).
		Where("id <> ?", excludeID).
		Where("status in (?)", nonTerminalStatuses()).
		Updates(map[string]interface{}{
			"status":    models.ApplicationStatusRejected,
			"closes_at": now,
		})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) DeleteAllOnPosting(postingID string, now time.Time) (count int64, err error) {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("posting_id = ?", postingID).
		Where("status in (?)", nonTerminalStatuses()).
		Updates(map[string]interface{}{
			"status":    models.ApplicationStatusDeleted,
			"closes_at": now,
		})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// каскады повторно исполнимы: условие по нетерминальным статусам
// делает массовое обновление идемпотентным
func nonTerminalStatuses() []models.ApplicationStatus {
	return []models.ApplicationStatus{
		models.ApplicationStatusApplied,
		models.ApplicationStatusShortlisted,
	}
}
