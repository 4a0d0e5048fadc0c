package postingstore

import (
	"job-board-backend/models"
	postingapimodels "job-board-backend/models/api/posting"
	dbmodels "job-board-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Posting) (id string, err error)
	GetByID(id string) (rec *dbmodels.Posting, err error)
	Update(id string, updMap map[string]interface{}) error
	// UpdateRecruiterSnapshot - пересинхронизация снапшота рекрутера
	// на всех его вакансиях после изменения профиля
	UpdateRecruiterSnapshot(recruiterID, name, email string) error
	SetDeleted(id string) error
	ListCount(filter postingapimodels.PostingFilter) (count int64, err error)
	List(filter postingapimodels.PostingFilter) (list []dbmodels.Posting, err error)
	ListByRecruiter(recruiterID string) (list []dbmodels.Posting, err error)
	// IncApplicationsReceived - условный атомарный инкремент счетчика откликов,
	// ok=false если лимит уже выбран
	IncApplicationsReceived(id string) (ok bool, err error)
	// IncAcceptedCount - условный атомарный инкремент счетчика принятых,
	// ok=false если лимит уже выбран
	IncAcceptedCount(id string) (ok bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Posting) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Posting, error) {
	rec := dbmodels.Posting{}
	err := i.db.
		Model(&dbmodels.Posting{}).
		Where("id = ?", id).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Posting{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) UpdateRecruiterSnapshot(recruiterID, name, email string) error {
	return i.db.
		Model(&dbmodels.Posting{}).
		Where("recruiter_id = ?", recruiterID).
		Updates(map[string]interface{}{
			"recruiter_name":  name,
			"recruiter_email": email,
		}).
		Error
}

func (i impl) SetDeleted(id string) error {
	return i.Update(id, map[string]interface{}{"deleted": true})
}

func (i impl) ListCount(filter postingapimodels.PostingFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(&dbmodels.Posting{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) List(filter postingapimodels.PostingFilter) (list []dbmodels.Posting, err error) {
	list = []dbmodels.Posting{}
	tx := i.db.
		Model(&dbmodels.Posting{}).
		Order("posted_at desc")
	i.addFilter(tx, filter)
	offset, limit := filter.GetOffset()
	tx = tx.Offset(offset).Limit(limit)
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByRecruiter(recruiterID string) (list []dbmodels.Posting, err error) {
	list = []dbmodels.Posting{}
	err = i.db.
		Model(&dbmodels.Posting{}).
		Where("recruiter_id = ?", recruiterID).
		Order("posted_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) IncApplicationsReceived(id string) (ok bool, err error) {
	return i.conditionalInc(id, "applications_received", "applications_received < max_applications")
}

func (i impl) IncAcceptedCount(id string) (ok bool, err error) {
	return i.conditionalInc(id, "accepted_count", "accepted_count < max_accepted")
}

// conditionalInc выполняет check-then-act одним запросом,
// параллельные инкременты не могут превысить лимит
func (i impl) conditionalInc(id, column, condition string) (ok bool, err error) {
	tx := i.db.
		Model(&dbmodels.Posting{}).
		Where("id = ?", id).
		Where(condition).
		Update(column, gorm.Expr(column+" + 1"))
	if tx.Error != nil {
		return false, tx.Error
	}
	if tx.RowsAffected == 0 {
		rec, err := i.GetByID(id)
		if err != nil {
			return false, err
		}
		if rec == nil {
			return false, errors.Wrap(models.ErrNotFound, "вакансия не найдена")
		}
		return false, nil
	}
	return true, nil
}

func (i impl) addFilter(tx *gorm.DB, filter postingapimodels.PostingFilter) {
	if !filter.WithDeleted {
		tx = tx.Where("deleted = false")
	}
	if filter.RecruiterID != "" {
		tx = tx.Where("recruiter_id = ?", filter.RecruiterID)
	}
}
