package seekerhandler

import (
	"job-board-backend/db"
	applicationstore "job-board-backend/lib/application/store"
	postingstore "job-board-backend/lib/posting/store"
	seekerstore "job-board-backend/lib/seeker/store"
	"job-board-backend/models"
	seekerapimodels "job-board-backend/models/api/seeker"
	dbmodels "job-board-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GetByID(id string) (view seekerapimodels.SeekerView, err error)
	UpdateProfile(id string, data seekerapimodels.ProfileUpdate) (view seekerapimodels.SeekerView, err error)
	List() (list []seekerapimodels.SeekerView, err error)
	ListByPosting(postingID string) (list []seekerapimodels.SeekerView, err error)
	ListAcceptedByRecruiter(recruiterID string) (list []seekerapimodels.AcceptedSeekerView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            seekerstore.NewInstance(db.DB),
		postingStore:     postingstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            seekerstore.Provider
	postingStore     postingstore.Provider
	applicationStore applicationstore.Provider
}

func (i impl) GetByID(id string) (view seekerapimodels.SeekerView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(models.ErrStore, err.Error())
	}
	if rec == nil {
		return view, errors.Wrap(models.ErrNotFound, "соискатель не найден")
	}
	return seekerapimodels.ConvertView(*rec), nil
}

func (i impl) UpdateProfile(id string, data seekerapimodels.ProfileUpdate) (view seekerapimodels.SeekerView, err error) {
	if err = data.Validate(); err != nil {
		return view, err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(models.ErrStore, err.Error())
	}
	if rec == nil {
		return view, errors.Wrap(models.ErrNotFound, "соискатель не найден")
	}
	updMap := map[string]interface{}{}
	if data.Name != nil {
		updMap["name"] = *data.Name
	}
	if data.Mobile != nil {
		updMap["mobile"] = *data.Mobile
	}
	if data.Email != nil && *data.Email != rec.Email {
		exist, err := i.store.ExistByEmail(*data.Email)
		if err != nil {
			return view, errors.Wrap(models.ErrStore, err.Error())
		}
		if exist {
			return view, errors.Wrap(models.ErrDuplicate, "соискатель с такой почтой уже зарегистрирован")
		}
		updMap["email"] = *data.Email
	}
	if err = i.store.Update(id, updMap); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return view, err
		}
		return view, errors.Wrap(models.ErrStore, err.Error())
	}
	log.WithField("rec_id", id).Info("изменен профиль соискателя")
	return i.GetByID(id)
}

func (i impl) List() (list []seekerapimodels.SeekerView, err error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(models.ErrStore, err.Error())
	}
	return seekerapimodels.ConvertViewList(recs), nil
}

// ListByPosting - соискатели, откликнувшиеся на вакансию
func (i impl) ListByPosting(postingID string) (list []seekerapimodels.SeekerView, err error) {
	applications, err := i.applicationStore.ListByPosting(postingID)
	if err != nil {
		return nil, errors.Wrap(models.ErrStore, err.Error())
	}
	seekerIDs := make([]string, 0, len(applications))
	for _, application := range applications {
		seekerIDs = append(seekerIDs, application.SeekerID)
	}
	recs, err := i.store.ListByIDs(seekerIDs)
	if err != nil {
		return nil, errors.Wrap(models.ErrStore, err.Error())
	}
	return seekerapimodels.ConvertViewList(recs), nil
}

// ListAcceptedByRecruiter - соискатели, принятые на вакансии рекрутера,
// с данными вакансии, на которую они приняты
func (i impl) ListAcceptedByRecruiter(recruiterID string) (list []seekerapimodels.AcceptedSeekerView, err error) {
	postings, err := i.postingStore.ListByRecruiter(recruiterID)
	if err != nil {
		return nil, errors.Wrap(models.ErrStore, err.Error())
	}
	postingByID := map[string]dbmodels.Posting{}
	postingIDs := make([]string, 0, len(postings))
	for _, posting := range postings {
		postingByID[posting.ID] = posting
		postingIDs = append(postingIDs, posting.ID)
	}
	applications, err := i.applicationStore.ListByPostingIDs(postingIDs)
	if err != nil {
		return nil, errors.Wrap(models.ErrStore, err.Error())
	}
	accepted := map[string]string{}
	seekerIDs := []string{}
	for _, application := range applications {
		if application.Status != models.ApplicationStatusAccepted {
			continue
		}
		accepted[application.SeekerID] = application.PostingID
		seekerIDs = append(seekerIDs, application.SeekerID)
	}
	seekers, err := i.store.ListByIDs(seekerIDs)
	if err != nil {
		return nil, errors.Wrap(models.ErrStore, err.Error())
	}
	list = make([]seekerapimodels.AcceptedSeekerView, 0, len(seekers))
	for _, seeker := range seekers {
		posting := postingByID[accepted[seeker.ID]]
		list = append(list, seekerapimodels.AcceptedSeekerView{
			ID:      seeker.ID,
			Name:    seeker.Name,
			Title:   posting.Title,
			Company: posting.Company,
			JobType: posting.JobType,
		})
	}
	return list, nil
}
