package postinghandler

import (
	"job-board-backend/db"
	applicationstore "job-board-backend/lib/application/store"
	postingstore "job-board-backend/lib/posting/store"
	recruiterstore "job-board-backend/lib/recruiter/store"
	"job-board-backend/models"
	postingapimodels "job-board-backend/models/api/posting"
	dbmodels "job-board-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(recruiterID string, data postingapimodels.PostingData) (id string, err error)
	GetByID(id string) (view postingapimodels.PostingView, err error)
	Amend(recruiterID, id string, data postingapimodels.PostingAmend) (view postingapimodels.PostingView, err error)
	SoftDelete(recruiterID, id string) error
	List(filter postingapimodels.PostingFilter) (list []postingapimodels.PostingView, rowCount int64, err error)
	ListByRecruiter(recruiterID string) (list []postingapimodels.PostingView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		gormDB:           db.DB,
		store:            postingstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		recruiterStore:   recruiterstore.NewInstance(db.DB),
	}
}

type impl struct {
	gormDB           *gorm.DB
	store            postingstore.Provider
	applicationStore applicationstore.Provider
	recruiterStore   recruiterstore.Provider
}

func (i impl) Create(recruiterID string, data postingapimodels.PostingData) (id string, err error) {
	logger := i.getLogger("", recruiterID)
	if err = data.Validate(); err != nil {
		return "", err
	}
	recruiter, err := i.recruiterStore.GetByID(recruiterID)
	if err != nil {
		return "", errors.Wrap(models.ErrStore, err.Error())
	}
	if recruiter == nil {
		return "", errors.Wrap(models.ErrNotFound, "рекрутер не найден")
	}
	rec := dbmodels.Posting{
		RecruiterID:     recruiter.ID,
		RecruiterName:   recruiter.Name,
		RecruiterEmail:  recruiter.Email,
		Title:           data.Title,
		Company:         data.Company,
		Location:        data.Location,
		JobType:         data.JobType,
		Compensation:    data.Compensation,
		Skills:          data.Skills,
		MaxApplications: data.MaxApplications,
		MaxAccepted:     data.MaxAccepted,
		ApplyBy:         data.ApplyBy,
		PostedAt:        time.Now(),
		DurationMonths:  data.DurationMonths,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(models.ErrStore, err.Error())
	}
	logger.
		WithField("rec_id", id).
		Info("опубликована вакансия")
	return id, nil
}

func (i impl) GetByID(id string) (view postingapimodels.PostingView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(models.ErrStore, err.Error())
	}
	if rec == nil {
		return view, errors.Wrap(models.ErrNotFound, "вакансия не найдена")
	}
	return postingapimodels.ConvertView(*rec), nil
}

// Amend применяет все изменения или ни одного:
// updMap собирается целиком до единственного Update
func (i impl) Amend(recruiterID, id string, data postingapimodels.PostingAmend) (view postingapimodels.PostingView, err error) {
	logger := i.getLogger(id, recruiterID)
	if err = data.Validate(); err != nil {
		return view, err
	}
	rec, err := i.getOwned(recruiterID, id)
	if err != nil {
		return view, err
	}
	updMap := map[string]interface{}{}
	if data.MaxApplications != nil {
		if *data.MaxApplications < rec.ApplicationsReceived {
			return view, errors.Wrapf(models.ErrConstraint, "откликов уже больше чем %v", *data.MaxApplications)
		}
		updMap["max_applications"] = *data.MaxApplications
	}
	if data.MaxAccepted != nil {
		if *data.MaxAccepted < rec.AcceptedCount {
			return view, errors.Wrapf(models.ErrConstraint, "принятых уже больше чем %v", *data.MaxAccepted)
		}
		updMap["max_accepted"] = *data.MaxAccepted
	}
	if data.ApplyBy != nil {
		if data.ApplyBy.Before(time.Now()) {
			return view, errors.Wrap(models.ErrConstraint, "срок подачи не может быть в прошлом")
		}
		updMap["apply_by"] = *data.ApplyBy
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return view, err
		}
		return view, errors.Wrap(models.ErrStore, err.Error())
	}
	logger.Info("изменены ограничения вакансии")
	return i.GetByID(id)
}

// SoftDelete помечает вакансию удаленной и закрывает все ее нетерминальные отклики
func (i impl) SoftDelete(recruiterID, id string) error {
	logger := i.getLogger(id, recruiterID)
	_, err := i.getOwned(recruiterID, id)
	if err != nil {
		return err
	}
	now := time.Now()
	var closed int64
	err = i.inTransaction(func(tx *gorm.DB) error {
		if err := i.storeWith(tx).SetDeleted(id); err != nil {
			return err
		}
		closed, err = i.applicationStoreWith(tx).DeleteAllOnPosting(id, now)
		return err
	})
	if err != nil {
		return errors.Wrap(models.ErrStore, err.Error())
	}
	logger.
		WithField("closed_applications", closed).
		Info("вакансия удалена")
	return nil
}

func (i impl) List(filter postingapimodels.PostingFilter) (list []postingapimodels.PostingView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, errors.Wrap(models.ErrStore, err.Error())
	}
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, 0, errors.Wrap(models.ErrStore, err.Error())
	}
	list = make([]postingapimodels.PostingView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, postingapimodels.ConvertView(rec))
	}
	return list, rowCount, nil
}

func (i impl) ListByRecruiter(recruiterID string) (list []postingapimodels.PostingView, err error) {
	recs, err := i.store.ListByRecruiter(recruiterID)
	if err != nil {
		return nil, errors.Wrap(models.ErrStore, err.Error())
	}
	list = make([]postingapimodels.PostingView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, postingapimodels.ConvertView(rec))
	}
	return list, nil
}

func (i impl) getOwned(recruiterID, id string) (*dbmodels.Posting, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(models.ErrStore, err.Error())
	}
	if rec == nil || rec.Deleted {
		return nil, errors.Wrap(models.ErrNotFound, "вакансия не найдена")
	}
	if rec.RecruiterID != recruiterID {
		return nil, errors.Wrap(models.ErrAuth, "вакансия принадлежит другому рекрутеру")
	}
	return rec, nil
}

func (i impl) inTransaction(fn func(tx *gorm.DB) error) error {
	if i.gormDB == nil {
		return fn(nil)
	}
	return i.gormDB.Transaction(fn)
}

func (i impl) storeWith(tx *gorm.DB) postingstore.Provider {
	if tx == nil {
		return i.store
	}
	return postingstore.NewInstance(tx)
}

func (i impl) applicationStoreWith(tx *gorm.DB) applicationstore.Provider {
	if tx == nil {
		return i.applicationStore
	}
	return applicationstore.NewInstance(tx)
}

func (i impl) getLogger(recID, recruiterID string) *log.Entry {
	logger := log.WithField("recruiter_id", recruiterID)
	if recID != "" {
		logger = logger.WithField("rec_id", recID)
	}
	return logger
}
