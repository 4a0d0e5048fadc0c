package postinghandler

import (
	applicationstore "job-board-backend/lib/application/store"
	postingstore "job-board-backend/lib/posting/store"
	recruiterstore "job-board-backend/lib/recruiter/store"
	"job-board-backend/models"
	postingapimodels "job-board-backend/models/api/posting"
	dbmodels "job-board-backend/models/db"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakePostingStore struct {
	recs   map[string]*dbmodels.Posting
	nextID int
}

func newFakePostingStore(recs ...*dbmodels.Posting) *fakePostingStore {
	f := &fakePostingStore{recs: map[string]*dbmodels.Posting{}}
	for _, rec := range recs {
		f.recs[rec.ID] = rec
	}
	return f
}

func (f *fakePostingStore) Create(rec dbmodels.Posting) (string, error) {
	f.nextID++
	if rec.ID == "" {
		rec.ID = "posting-1"
	}
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakePostingStore) GetByID(id string) (*dbmodels.Posting, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakePostingStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.recs[id]
	if !ok {
		return models.ErrNotFound
	}
	if v, ok := updMap["max_applications"]; ok {
		rec.MaxApplications = v.(int)
	}
	if v, ok := updMap["max_accepted"]; ok {
		rec.MaxAccepted = v.(int)
	}
	if v, ok := updMap["apply_by"]; ok {
		rec.ApplyBy = v.(time.Time)
	}
	if v, ok := updMap["deleted"]; ok {
		rec.Deleted = v.(bool)
	}
	return nil
}

func (f *fakePostingStore) UpdateRecruiterSnapshot(recruiterID, name, email string) error {
	for _, rec := range f.recs {
		if rec.RecruiterID == recruiterID {
			rec.RecruiterName = name
			rec.RecruiterEmail = email
		}
	}
	return nil
}

func (f *fakePostingStore) SetDeleted(id string) error {
	return f.Update(id, map[string]interface{}{"deleted": true})
}

func (f *fakePostingStore) ListCount(filter postingapimodels.PostingFilter) (int64, error) {
	list, err := f.List(filter)
	return int64(len(list)), err
}

func (f *fakePostingStore) List(filter postingapimodels.PostingFilter) ([]dbmodels.Posting, error) {
	list := []dbmodels.Posting{}
	for _, rec := range f.recs {
		if rec.Deleted && !filter.WithDeleted {
			continue
		}
		if filter.RecruiterID != "" && rec.RecruiterID != filter.RecruiterID {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

func (f *fakePostingStore) ListByRecruiter(recruiterID string) ([]dbmodels.Posting, error) {
	list := []dbmodels.Posting{}
	for _, rec := range f.recs {
		if rec.RecruiterID == recruiterID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakePostingStore) IncApplicationsReceived(id string) (bool, error) {
	rec, ok := f.recs[id]
	if !ok {
		return false, errors.Wrap(models.ErrNotFound, "вакансия не найдена")
	}
	if rec.ApplicationsReceived >= rec.MaxApplications {
		return false, nil
	}
	rec.ApplicationsReceived++
	return true, nil
}

func (f *fakePostingStore) IncAcceptedCount(id string) (bool, error) {
	rec, ok := f.recs[id]
	if !ok {
		return false, errors.Wrap(models.ErrNotFound, "вакансия не найдена")
	}
	if rec.AcceptedCount >= rec.MaxAccepted {
		return false, nil
	}
	rec.AcceptedCount++
	return true, nil
}

type fakeApplicationStore struct {
	recs map[string]*dbmodels.Application
}

func newFakeApplicationStore(recs ...*dbmodels.Application) *fakeApplicationStore {
	f := &fakeApplicationStore{recs: map[string]*dbmodels.Application{}}
	for _, rec := range recs {
		f.recs[rec.ID] = rec
	}
	return f
}

func (f *fakeApplicationStore) Create(rec dbmodels.Application) (string, error) {
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeApplicationStore) GetByID(id string) (*dbmodels.Application, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (f *fakeApplicationStore) GetByPair(postingID, seekerID string) (*dbmodels.Application, error) {
	for _, rec := range f.recs {
		if rec.PostingID == postingID && rec.SeekerID == seekerID {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeApplicationStore) ListBySeeker(seekerID string) ([]dbmodels.Application, error) {
	list := []dbmodels.Application{}
	for _, rec := range f.recs {
		if rec.SeekerID == seekerID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeApplicationStore) ListByPosting(postingID string) ([]dbmodels.Application, error) {
	list := []dbmodels.Application{}
	for _, rec := range f.recs {
		if rec.PostingID == postingID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeApplicationStore) ListByPostingIDs(postingIDs []string) ([]dbmodels.Application, error) {
	list := []dbmodels.Application{}
	for _, rec := range f.recs {
		for _, id := range postingIDs {
			if rec.PostingID == id {
				list = append(list, *rec)
				break
			}
		}
	}
	return list, nil
}

func (f *fakeApplicationStore) UpdateStatus(id string, status models.ApplicationStatus, closesAt time.Time) error {
	rec, ok := f.recs[id]
	if !ok {
		return models.ErrNotFound
	}
	rec.Status = status
	rec.ClosesAt = closesAt
	return nil
}

func (f *fakeApplicationStore) Withdraw(id string, now time.Time) (bool, error) {
	rec, ok := f.recs[id]
	if !ok || rec.Status.IsTerminal() {
		return false, nil
	}
	rec.Status = models.ApplicationStatusDeleted
	rec.ClosesAt = now
	return true, nil
}

func (f *fakeApplicationStore) RejectOthersOnPosting(postingID, excludeID string, now time.Time) (int64, error) {
	var count int64
	for _, rec := range f.recs {
		if rec.PostingID == postingID && rec.ID != excludeID && !rec.Status.IsTerminal() {
			rec.Status = models.ApplicationStatusRejected
			rec.ClosesAt = now
			count++
		}
	}
	return count, nil
}

func (f *fakeApplicationStore) RejectOthersOfSeeker(seekerID, excludeID string, now time.Time) (int64, error) {
	var count int64
	for _, rec := range f.recs {
		if rec.SeekerID == seekerID && rec.ID != excludeID && !rec.Status.IsTerminal() {
			rec.Status = models.ApplicationStatusRejected
			rec.ClosesAt = now
			count++
		}
	}
	return count, nil
}

func (f *fakeApplicationStore) DeleteAllOnPosting(postingID string, now time.Time) (int64, error) {
	var count int64
	for _, rec := range f.recs {
		if rec.PostingID == postingID && !rec.Status.IsTerminal() {
			rec.Status = models.ApplicationStatusDeleted
			rec.ClosesAt = now
			count++
		}
	}
	return count, nil
}

type fakeRecruiterStore struct {
	recs map[string]*dbmodels.Recruiter
}

func newFakeRecruiterStore(ids ...string) *fakeRecruiterStore {
	f := &fakeRecruiterStore{recs: map[string]*dbmodels.Recruiter{}}
	for _, id := range ids {
		rec := dbmodels.Recruiter{}
		rec.ID = id
		rec.Name = "recruiter " + id
		rec.Email = id + "@example.com"
		f.recs[id] = &rec
	}
	return f
}

func (f *fakeRecruiterStore) Create(rec dbmodels.Recruiter) (string, error) {
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeRecruiterStore) GetByID(id string) (*dbmodels.Recruiter, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (f *fakeRecruiterStore) GetByEmail(email string) (*dbmodels.Recruiter, error) {
	for _, rec := range f.recs {
		if rec.Email == email {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeRecruiterStore) ExistByEmail(email string) (bool, error) {
	rec, err := f.GetByEmail(email)
	return rec != nil, err
}

func (f *fakeRecruiterStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.recs[id]
	if !ok {
		return models.ErrNotFound
	}
	if v, ok := updMap["name"]; ok {
		rec.Name = v.(string)
	}
	if v, ok := updMap["email"]; ok {
		rec.Email = v.(string)
	}
	if v, ok := updMap["mobile"]; ok {
		rec.Mobile = v.(string)
	}
	if v, ok := updMap["bio"]; ok {
		rec.Bio = v.(string)
	}
	return nil
}

func (f *fakeRecruiterStore) List() ([]dbmodels.Recruiter, error) {
	list := []dbmodels.Recruiter{}
	for _, rec := range f.recs {
		list = append(list, *rec)
	}
	return list, nil
}

var (
	_ postingstore.Provider     = (*fakePostingStore)(nil)
	_ applicationstore.Provider = (*fakeApplicationStore)(nil)
	_ recruiterstore.Provider   = (*fakeRecruiterStore)(nil)
)

func testPosting(id, recruiterID string) *dbmodels.Posting {
	rec := dbmodels.Posting{
		RecruiterID:     recruiterID,
		Title:           "Go разработчик",
		Company:         "Рога и Копыта",
		MaxApplications: 10,
		MaxAccepted:     2,
		ApplyBy:         time.Now().Add(30 * 24 * time.Hour),
		PostedAt:        time.Now(),
	}
	rec.ID = id
	return &rec
}

func newTestHandler(postings *fakePostingStore, apps *fakeApplicationStore, recruiters *fakeRecruiterStore) impl {
	return impl{
		store:            postings,
		applicationStore: apps,
		recruiterStore:   recruiters,
	}
}

func validPostingData() postingapimodels.PostingData {
	return postingapimodels.PostingData{
		Title:           "Go разработчик",
		Company:         "Рога и Копыта",
		Location:        "Москва",
		JobType:         "Полная занятость",
		Compensation:    250000,
		MaxApplications: 50,
		MaxAccepted:     2,
		ApplyBy:         time.Now().Add(30 * 24 * time.Hour),
		Skills:          []string{"go", "postgres"},
		DurationMonths:  6,
	}
}

func TestCreate(t *testing.T) {
	t.Run(`posting keeps recruiter snapshot`, func(t *testing.T) {
		postings := newFakePostingStore()
		handler := newTestHandler(postings, newFakeApplicationStore(), newFakeRecruiterStore("r1"))

		id, err := handler.Create("r1", validPostingData())
		require.Nil(t, err)
		rec := postings.recs[id]
		require.Equal(t, "r1", rec.RecruiterID)
		require.Equal(t, "recruiter r1", rec.RecruiterName)
		require.Equal(t, "r1@example.com", rec.RecruiterEmail)
		require.Equal(t, 0, rec.ApplicationsReceived)
	})

	t.Run(`unknown recruiter is not found`, func(t *testing.T) {
		handler := newTestHandler(newFakePostingStore(), newFakeApplicationStore(), newFakeRecruiterStore())

		_, err := handler.Create("r1", validPostingData())
		require.Equal(t, true, errors.Is(err, models.ErrNotFound))
	})

	t.Run(`invalid data is rejected`, func(t *testing.T) {
		handler := newTestHandler(newFakePostingStore(), newFakeApplicationStore(), newFakeRecruiterStore("r1"))

		data := validPostingData()
		data.Title = ""
		_, err := handler.Create("r1", data)
		require.Equal(t, true, errors.Is(err, models.ErrValidation))
	})
}

func TestAmend(t *testing.T) {
	setup := func() (impl, *fakePostingStore) {
		postings := newFakePostingStore(testPosting("p1", "r1"))
		handler := newTestHandler(postings, newFakeApplicationStore(), newFakeRecruiterStore("r1"))
		return handler, postings
	}
	intPtr := func(v int) *int { return &v }

	t.Run(`successful amend updates limits`, func(t *testing.T) {
		handler, postings := setup()
		applyBy := time.Now().Add(60 * 24 * time.Hour)

		view, err := handler.Amend("r1", "p1", postingapimodels.PostingAmend{
			MaxApplications: intPtr(20),
			MaxAccepted:     intPtr(3),
			ApplyBy:         &applyBy,
		})
		require.Nil(t, err)
		require.Equal(t, 20, view.MaxApplications)
		require.Equal(t, 3, view.MaxAccepted)
		require.Equal(t, 20, postings.recs["p1"].MaxApplications)
	})

	t.Run(`empty amend is rejected`, func(t *testing.T) {
		handler, _ := setup()
		_, err := handler.Amend("r1", "p1", postingapimodels.PostingAmend{})
		require.Equal(t, true, errors.Is(err, models.ErrValidation))
	})

	t.Run(`foreign posting is forbidden`, func(t *testing.T) {
		handler, _ := setup()
		_, err := handler.Amend("r2", "p1", postingapimodels.PostingAmend{MaxApplications: intPtr(20)})
		require.Equal(t, true, errors.Is(err, models.ErrAuth))
	})

	t.Run(`limit below received applications is rejected`, func(t *testing.T) {
		handler, postings := setup()
		postings.recs["p1"].ApplicationsReceived = 5

		_, err := handler.Amend("r1", "p1", postingapimodels.PostingAmend{MaxApplications: intPtr(4)})
		require.Equal(t, true, errors.Is(err, models.ErrConstraint))
		require.Equal(t, 10, postings.recs["p1"].MaxApplications)
	})

	t.Run(`limit below accepted count is rejected`, func(t *testing.T) {
		handler, postings := setup()
		postings.recs["p1"].AcceptedCount = 2

		_, err := handler.Amend("r1", "p1", postingapimodels.PostingAmend{MaxAccepted: intPtr(1)})
		require.Equal(t, true, errors.Is(err, models.ErrConstraint))
	})

	t.Run(`deadline in the past is rejected`, func(t *testing.T) {
		handler, _ := setup()
		applyBy := time.Now().Add(-time.Hour)

		_, err := handler.Amend("r1", "p1", postingapimodels.PostingAmend{ApplyBy: &applyBy})
		require.Equal(t, true, errors.Is(err, models.ErrConstraint))
	})

	t.Run(`invalid field cancels the whole amend`, func(t *testing.T) {
		handler, postings := setup()
		postings.recs["p1"].AcceptedCount = 2

		_, err := handler.Amend("r1", "p1", postingapimodels.PostingAmend{
			MaxApplications: intPtr(20),
			MaxAccepted:     intPtr(1),
		})
		require.Equal(t, true, errors.Is(err, models.ErrConstraint))
		require.Equal(t, 10, postings.recs["p1"].MaxApplications)
	})
}

func TestSoftDelete(t *testing.T) {
	submitted := func(id, postingID, seekerID string, status models.ApplicationStatus) *dbmodels.Application {
		rec := dbmodels.Application{
			PostingID: postingID,
			SeekerID:  seekerID,
			Status:    status,
			AppliedAt: time.Now(),
			ClosesAt:  time.Now().Add(dbmodels.DefaultCloseTerm),
		}
		rec.ID = id
		return &rec
	}

	t.Run(`soft delete closes open applications`, func(t *testing.T) {
		postings := newFakePostingStore(testPosting("p1", "r1"))
		apps := newFakeApplicationStore(
			submitted("a1", "p1", "s1", models.ApplicationStatusApplied),
			submitted("a2", "p1", "s2", models.ApplicationStatusShortlisted),
			submitted("a3", "p1", "s3", models.ApplicationStatusRejected),
		)
		handler := newTestHandler(postings, apps, newFakeRecruiterStore("r1"))

		err := handler.SoftDelete("r1", "p1")
		require.Nil(t, err)
		require.Equal(t, true, postings.recs["p1"].Deleted)
		require.Equal(t, models.ApplicationStatusDeleted, apps.recs["a1"].Status)
		require.Equal(t, models.ApplicationStatusDeleted, apps.recs["a2"].Status)
		// терминальные отклики не трогаем
		require.Equal(t, models.ApplicationStatusRejected, apps.recs["a3"].Status)
	})

	t.Run(`foreign posting is forbidden`, func(t *testing.T) {
		postings := newFakePostingStore(testPosting("p1", "r1"))
		handler := newTestHandler(postings, newFakeApplicationStore(), newFakeRecruiterStore("r1"))

		err := handler.SoftDelete("r2", "p1")
		require.Equal(t, true, errors.Is(err, models.ErrAuth))
	})

	t.Run(`repeated delete is not found`, func(t *testing.T) {
		postings := newFakePostingStore(testPosting("p1", "r1"))
		handler := newTestHandler(postings, newFakeApplicationStore(), newFakeRecruiterStore("r1"))

		require.Nil(t, handler.SoftDelete("r1", "p1"))
		err := handler.SoftDelete("r1", "p1")
		require.Equal(t, true, errors.Is(err, models.ErrNotFound))
	})
}

func TestList(t *testing.T) {
	t.Run(`deleted postings are hidden by default`, func(t *testing.T) {
		deleted := testPosting("p2", "r1")
		deleted.Deleted = true
		postings := newFakePostingStore(testPosting("p1", "r1"), deleted)
		handler := newTestHandler(postings, newFakeApplicationStore(), newFakeRecruiterStore("r1"))

		list, rowCount, err := handler.List(postingapimodels.PostingFilter{})
		require.Nil(t, err)
		require.Equal(t, int64(1), rowCount)
		require.Equal(t, 1, len(list))
		require.Equal(t, "p1", list[0].ID)

		list, rowCount, err = handler.List(postingapimodels.PostingFilter{WithDeleted: true})
		require.Nil(t, err)
		require.Equal(t, int64(2), rowCount)
		require.Equal(t, 2, len(list))
	})
}
