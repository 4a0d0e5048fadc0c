package recruiterhandler

import (
	"job-board-backend/db"
	postingstore "job-board-backend/lib/posting/store"
	recruiterstore "job-board-backend/lib/recruiter/store"
	"job-board-backend/models"
	recruiterapimodels "job-board-backend/models/api/recruiter"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	GetByID(id string) (view recruiterapimodels.RecruiterView, err error)
	UpdateProfile(id string, data recruiterapimodels.ProfileUpdate) (view recruiterapimodels.RecruiterView, err error)
	List() (list []recruiterapimodels.RecruiterView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		gormDB:       db.DB,
		store:        recruiterstore.NewInstance(db.DB),
		postingStore: postingstore.NewInstance(db.DB),
	}
}

type impl struct {
	gormDB       *gorm.DB
	store        recruiterstore.Provider
	postingStore postingstore.Provider
}

func (i impl) GetByID(id string) (view recruiterapimodels.RecruiterView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(models.ErrStore, err.Error())
	}
	if rec == nil {
		return view, errors.Wrap(models.ErrNotFound, "рекрутер не найден")
	}
	return recruiterapimodels.ConvertView(*rec), nil
}

// UpdateProfile изменяет профиль рекрутера.
// Смена имени или почты пересинхронизирует снапшот на всех вакансиях рекрутера
// в той же транзакции.
func (i impl) UpdateProfile(id string, data recruiterapimodels.ProfileUpdate) (view recruiterapimodels.RecruiterView, err error) {
	if err = data.Validate(); err != nil {
		return view, err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(models.ErrStore, err.Error())
	}
	if rec == nil {
		return view, errors.Wrap(models.ErrNotFound, "рекрутер не найден")
	}
	name := rec.Name
	email := rec.Email
	updMap := map[string]interface{}{}
	if data.Name != nil {
		name = *data.Name
		updMap["name"] = name
	}
	if data.Mobile != nil {
		updMap["mobile"] = *data.Mobile
	}
	if data.Bio != nil {
		updMap["bio"] = *data.Bio
	}
	if data.Email != nil && *data.Email != rec.Email {
		exist, err := i.store.ExistByEmail(*data.Email)
		if err != nil {
			return view, errors.Wrap(models.ErrStore, err.Error())
		}
		if exist {
			return view, errors.Wrap(models.ErrDuplicate, "рекрутер с такой почтой уже зарегистрирован")
		}
		email = *data.Email
		updMap["email"] = email
	}
	syncSnapshot := name != rec.Name || email != rec.Email
	err = i.inTransaction(func(tx *gorm.DB) error {
		if err := i.storeWith(tx).Update(id, updMap); err != nil {
			return err
		}
		if syncSnapshot {
			return i.postingStoreWith(tx).UpdateRecruiterSnapshot(id, name, email)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return view, err
		}
		return view, errors.Wrap(models.ErrStore, err.Error())
	}
	log.WithField("rec_id", id).Info("изменен профиль рекрутера")
	return i.GetByID(id)
}

func (i impl) List() (list []recruiterapimodels.RecruiterView, err error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(models.ErrStore, err.Error())
	}
	list = make([]recruiterapimodels.RecruiterView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, recruiterapimodels.ConvertView(rec))
	}
	return list, nil
}

func (i impl) inTransaction(fn func(tx *gorm.DB) error) error {
	if i.gormDB == nil {
		return fn(nil)
	}
	return i.gormDB.Transaction(fn)
}

func (i impl) storeWith(tx *gorm.DB) recruiterstore.Provider {
	if tx == nil {
		return i.store
	}
	return recruiterstore.NewInstance(tx)
}

func (i impl) postingStoreWith(tx *gorm.DB) postingstore.Provider {
	if tx == nil {
		return i.postingStore
	}
	return postingstore.NewInstance(tx)
}
