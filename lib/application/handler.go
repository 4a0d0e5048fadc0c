package applicationhandler

import (
	"job-board-backend/db"
	applicationstore "job-board-backend/lib/application/store"
	postingstore "job-board-backend/lib/posting/store"
	seekerstore "job-board-backend/lib/seeker/store"
	"job-board-backend/models"
	applicationapimodels "job-board-backend/models/api/application"
	dbmodels "job-board-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Submit(seekerID string, data applicationapimodels.SubmitRequest) (view applicationapimodels.ApplicationView, err error)
	SetStatus(recruiterID, id string, newStatus models.ApplicationStatus) (view applicationapimodels.ApplicationView, err error)
	Withdraw(seekerID, id string) (view applicationapimodels.ApplicationView, err error)
	ListBySeeker(seekerID string) (list []applicationapimodels.ApplicationView, err error)
	GetBySeekerAndPosting(seekerID, postingID string) (view applicationapimodels.ApplicationView, err error)
	ListByPosting(postingID string) (list []applicationapimodels.ApplicationView, err error)
	ListByRecruiter(recruiterID string) (list []applicationapimodels.ApplicationView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		gormDB:       db.DB,
		store:        applicationstore.NewInstance(db.DB),
		postingStore: postingstore.NewInstance(db.DB),
		seekerStore:  seekerstore.NewInstance(db.DB),
	}
}

type impl struct {
	gormDB       *gorm.DB
	store        applicationstore.Provider
	postingStore postingstore.Provider
	seekerStore  seekerstore.Provider
}

// Submit проверяет право соискателя откликнуться и создает отклик.
// Создание записи и инкремент счетчика вакансии выполняются в одной транзакции.
func (i impl) Submit(seekerID string, data applicationapimodels.SubmitRequest) (view applicationapimodels.ApplicationView, err error) {
	logger := i.getLogger("", seekerID)
	if err = data.Validate(); err != nil {
		return view, err
	}
	posting, err := i.postingStore.GetByID(data.PostingID)
	if err != nil {
		return view, errors.Wrap(models.ErrStore, err.Error())
	}
	if posting == nil || posting.Deleted {
		return view, errors.Wrap(models.ErrNotFound, "вакансия не найдена")
	}
	seeker, err := i.seekerStore.GetByID(seekerID)
	if err != nil {
		return view, errors.Wrap(models.ErrStore, err.Error())
	}
	if seeker == nil {
		return view, errors.Wrap(models.ErrNotFound, "соискатель не найден")
	}
	existing, err := i.store.ListBySeeker(seekerID)
	if err != nil {
		return view, errors.Wrap(models.ErrStore, err.Error())
	}
	numActive := 0
	for _, application := range existing {
		if application.Status == models.ApplicationStatusAccepted {
			return view, errors.Wrap(models.ErrExclusivity, "нельзя откликаться после принятия на вакансию")
		}
		if application.IsActive() {
			numActive++
		}
	}
	if numActive >= models.MaxActiveApplications {
		return view, errors.Wrapf(models.ErrCapacity, "нельзя иметь более %v активных откликов", models.MaxActiveApplications)
	}
	now := time.Now()
	if posting.IsDeadlinePassed(now) {
		return view, errors.Wrap(models.ErrDeadline, "срок подачи откликов на вакансию истек")
	}
	for _, application := range existing {
		if application.PostingID == posting.ID {
			return view, errors.Wrap(models.ErrDuplicate, "отклик на вакансию уже подан")
		}
	}
	if !posting.HasApplicationSlots() {
		return view, errors.Wrap(models.ErrCapacity, "достигнут лимит откликов на вакансию")
	}

	rec := dbmodels.Application{
		PostingID:          posting.ID,
		SeekerID:           seekerID,
		Status:             models.ApplicationStatusApplied,
		AppliedAt:          now,
		ClosesAt:           now.Add(dbmodels.DefaultCloseTerm),
		StatementOfPurpose: data.StatementOfPurpose,
	}
	err = i.inTransaction(func(tx *gorm.DB) error {
		store := i.storeWith(tx)
		id, err := store.Create(rec)
		if err != nil {
			if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
				return errors.Wrap(models.ErrDuplicate, "отклик на вакансию уже подан")
			}
			return errors.Wrap(models.ErrStore, err.Error())
		}
		rec.ID = id
		// повторная проверка лимита уже атомарная: при заполненной вакансии
		// инкремент не проходит и транзакция откатывает созданный отклик
		ok, err := i.postingStoreWith(tx).IncApplicationsReceived(posting.ID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return err
			}
			return errors.Wrap(models.ErrStore, err.Error())
		}
		if !ok {
			return errors.Wrap(models.ErrCapacity, "достигнут лимит откликов на вакансию")
		}
		return nil
	})
	if err != nil {
		return view, err
	}
	logger.
		WithField("rec_id", rec.ID).
		WithField("posting_id", posting.ID).
		Info("подан отклик на вакансию")
	return applicationapimodels.ConvertView(rec), nil
}

// SetStatus - ручная смена статуса рекрутером, владеющим вакансией.
// Принятие каскадно закрывает конкурирующие отклики.
func (i impl) SetStatus(recruiterID, id string, newStatus models.ApplicationStatus) (view applicationapimodels.ApplicationView, err error) {
	logger := i.getLogger(id, recruiterID)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(models.ErrStore, err.Error())
	}
	if rec == nil {
		return view, errors.Wrap(models.ErrNotFound, "отклик не найден")
	}
	posting, err := i.postingStore.GetByID(rec.PostingID)
	if err != nil {
		return view, errors.Wrap(models.ErrStore, err.Error())
	}
	if posting == nil {
		return view, errors.Wrap(models.ErrNotFound, "вакансия не найдена")
	}
	if posting.RecruiterID != recruiterID {
		return view, errors.Wrap(models.ErrAuth, "вакансия принадлежит другому рекрутеру")
	}
	now := time.Now()
	allowed, err := rec.IsAllowStatusChange(newStatus, now)
	if err != nil {
		return view, err
	}
	if !allowed {
		return applicationapimodels.ConvertView(*rec), nil
	}

	err = i.inTransaction(func(tx *gorm.DB) error {
		store := i.storeWith(tx)
		pStore := i.postingStoreWith(tx)
		if newStatus == models.ApplicationStatusAccepted {
			ok, err := pStore.IncAcceptedCount(rec.PostingID)
			if err != nil {
				if errors.Is(err, models.ErrNotFound) {
					return err
				}
				return errors.Wrap(models.ErrStore, err.Error())
			}
			if !ok {
				return errors.Wrap(models.ErrCapacity, "достигнут лимит принятых на вакансию")
			}
			updated, err := pStore.GetByID(rec.PostingID)
			if err != nil {
				return errors.Wrap(models.ErrStore, err.Error())
			}
			if updated != nil && updated.IsFull() {
				// вакансия заполнена - отклоняем остальные отклики на нее
				if _, err = store.RejectOthersOnPosting(rec.PostingID, rec.ID, now); err != nil {
					return errors.Wrap(models.ErrStore, err.Error())
				}
			}
			// принятие эксклюзивно: прочие отклики соискателя отклоняются
			if _, err = store.RejectOthersOfSeeker(rec.SeekerID, rec.ID, now); err != nil {
				return errors.Wrap(models.ErrStore, err.Error())
			}
		}
		closesAt := rec.ClosesAt
		if newStatus.IsTerminal() {
			closesAt = now
		}
		if err := store.UpdateStatus(rec.ID, newStatus, closesAt); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return err
			}
			return errors.Wrap(models.ErrStore, err.Error())
		}
		rec.Status = newStatus
		rec.ClosesAt = closesAt
		return nil
	})
	if err != nil {
		return view, err
	}
	logger.
		WithField("status", newStatus).
		Info("изменен статус отклика")
	return applicationapimodels.ConvertView(*rec), nil
}

// Withdraw - отзыв собственного отклика соискателем.
// Отклик переводится в Deleted, закрытый или чужой отклик отозвать нельзя.
func (i impl) Withdraw(seekerID, id string) (view applicationapimodels.ApplicationView, err error) {
	logger := i.getLogger(id, seekerID)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(models.ErrStore, err.Error())
	}
	if rec == nil {
		return view, errors.Wrap(models.ErrNotFound, "отклик не найден")
	}
	if rec.SeekerID != seekerID {
		return view, errors.Wrap(models.ErrAuth, "отклик принадлежит другому соискателю")
	}
	now := time.Now()
	if rec.Status.IsTerminal() || rec.IsClosed(now) {
		return view, errors.Wrap(models.ErrClosed, "отклик уже закрыт")
	}
	ok, err := i.store.Withdraw(rec.ID, now)
	if err != nil {
		return view, errors.Wrap(models.ErrStore, err.Error())
	}
	if !ok {
		// статус успел смениться конкурентно
		return view, errors.Wrap(models.ErrClosed, "отклик уже закрыт")
	}
	rec.Status = models.ApplicationStatusDeleted
	rec.ClosesAt = now
	logger.Info("отклик отозван соискателем")
	return applicationapimodels.ConvertView(*rec), nil
}

func (i impl) ListBySeeker(seekerID string) (list []applicationapimodels.ApplicationView, err error) {
	recs, err := i.store.ListBySeeker(seekerID)
	if err != nil {
		return nil, errors.Wrap(models.ErrStore, err.Error())
	}
	return applicationapimodels.ConvertViewList(recs), nil
}

func (i impl) GetBySeekerAndPosting(seekerID, postingID string) (view applicationapimodels.ApplicationView, err error) {
	rec, err := i.store.GetByPair(postingID, seekerID)
	if err != nil {
		return view, errors.Wrap(models.ErrStore, err.Error())
	}
	if rec == nil {
		return view, errors.Wrap(models.ErrNotFound, "отклик не найден")
	}
	return applicationapimodels.ConvertView(*rec), nil
}

func (i impl) ListByPosting(postingID string) (list []applicationapimodels.ApplicationView, err error) {
	recs, err := i.store.ListByPosting(postingID)
	if err != nil {
		return nil, errors.Wrap(models.ErrStore, err.Error())
	}
	return applicationapimodels.ConvertViewList(recs), nil
}

func (i impl) ListByRecruiter(recruiterID string) (list []applicationapimodels.ApplicationView, err error) {
	postings, err := i.postingStore.ListByRecruiter(recruiterID)
	if err != nil {
		return nil, errors.Wrap(models.ErrStore, err.Error())
	}
	postingIDs := make([]string, 0, len(postings))
	for _, posting := range postings {
		postingIDs = append(postingIDs, posting.ID)
	}
	recs, err := i.store.ListByPostingIDs(postingIDs)
	if err != nil {
		return nil, errors.Wrap(models.ErrStore, err.Error())
	}
	return applicationapimodels.ConvertViewList(recs), nil
}

func (i impl) inTransaction(fn func(tx *gorm.DB) error) error {
	if i.gormDB == nil {
		return fn(nil)
	}
	return i.gormDB.Transaction(fn)
}

func (i impl) storeWith(tx *gorm.DB) applicationstore.Provider {
	if tx == nil {
		return i.store
	}
	return applicationstore.NewInstance(tx)
}

func (i impl) postingStoreWith(tx *gorm.DB) postingstore.Provider {
	if tx == nil {
		return i.postingStore
	}
	return postingstore.NewInstance(tx)
}

func (i impl) getLogger(recID, userID string) *log.Entry {
	logger := log.WithField("user_id", userID)
	if recID != "" {
		logger = logger.WithField("rec_id", recID)
	}
	return logger
}
