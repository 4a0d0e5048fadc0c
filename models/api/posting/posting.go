package postingapimodels

import (
	apimodels "job-board-backend/models/api"
	dbmodels "job-board-backend/models/db"
	"job-board-backend/models"
	"time"

	"github.com/pkg/errors"
)

type PostingData struct {
	Title           string    `json:"title"`            // название позиции
	Company         string    `json:"company"`          // компания
	Location        string    `json:"location"`         // местоположение
	JobType         string    `json:"job_type"`         // тип занятости
	Compensation    int       `json:"compensation"`     // вознаграждение
	MaxApplications int       `json:"max_applications"` // лимит откликов
	MaxAccepted     int       `json:"max_accepted"`     // лимит принятых
	ApplyBy         time.Time `json:"apply_by"`         // срок подачи откликов
	Skills          []string  `json:"skills"`           // требуемые навыки
	DurationMonths  int       `json:"duration_months"`  // длительность, 0-6 месяцев
}

func (p PostingData) Validate() error {
	if p.Title == "" {
		return errors.Wrap(models.ErrValidation, "не указано название позиции")
	}
	if p.Company == "" {
		return errors.Wrap(models.ErrValidation, "не указана компания")
	}
	if p.Location == "" {
		return errors.Wrap(models.ErrValidation, "не указано местоположение")
	}
	if p.JobType == "" {
		return errors.Wrap(models.ErrValidation, "не указан тип занятости")
	}
	if p.Compensation <= 0 {
		return errors.Wrap(models.ErrValidation, "не указано вознаграждение")
	}
	if p.MaxApplications <= 0 {
		return errors.Wrap(models.ErrValidation, "не указан лимит откликов")
	}
	if p.MaxAccepted <= 0 {
		return errors.Wrap(models.ErrValidation, "не указан лимит принятых откликов")
	}
	if p.ApplyBy.IsZero() {
		return errors.Wrap(models.ErrValidation, "не указан срок подачи откликов")
	}
	if len(p.Skills) == 0 {
		return errors.Wrap(models.ErrValidation, "не указаны требуемые навыки")
	}
	if p.DurationMonths < 0 || p.DurationMonths > 6 {
		return errors.Wrap(models.ErrValidation, "длительность должна быть от 0 до 6 месяцев")
	}
	return nil
}

// PostingAmend - частичное изменение, nil-поля не трогаются
type PostingAmend struct {
	MaxApplications *int       `json:"max_applications"`
	MaxAccepted     *int       `json:"max_accepted"`
	ApplyBy         *time.Time `json:"apply_by"`
}

func (p PostingAmend) Validate() error {
	if p.MaxApplications == nil && p.MaxAccepted == nil && p.ApplyBy == nil {
		return errors.Wrap(models.ErrValidation, "не указано ни одно изменяемое поле")
	}
	return nil
}

type PostingFilter struct {
	apimodels.Pagination
	RecruiterID string `json:"recruiter_id"` // только вакансии рекрутера
	WithDeleted bool   `json:"with_deleted"` // включать удаленные
}

type RecruiterInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PostingView struct {
	ID                   string        `json:"id"`
	Recruiter            RecruiterInfo `json:"recruiter"`
	Title                string        `json:"title"`
	Company              string        `json:"company"`
	Location             string        `json:"location"`
	JobType              string        `json:"job_type"`
	Compensation         int           `json:"compensation"`
	MaxApplications      int           `json:"max_applications"`
	MaxAccepted          int           `json:"max_accepted"`
	ApplyBy              time.Time     `json:"apply_by"`
	Skills               []string      `json:"skills"`
	ApplicationsReceived int           `json:"applications_received"`
	AcceptedCount        int           `json:"accepted_count"`
	PostedAt             time.Time     `json:"posted_at"`
	DurationMonths       int           `json:"duration_months"`
	Deleted              bool          `json:"deleted"`
}

func ConvertView(rec dbmodels.Posting) PostingView {
	return PostingView{
		ID: rec.ID,
		Recruiter: RecruiterInfo{
			ID:    rec.RecruiterID,
			Name:  rec.RecruiterName,
			Email: rec.RecruiterEmail,
		},
		Title:                rec.Title,
		Company:              rec.Company,
		Location:             rec.Location,
		JobType:              rec.JobType,
		Compensation:         rec.Compensation,
		MaxApplications:      rec.MaxApplications,
		MaxAccepted:          rec.MaxAccepted,
		ApplyBy:              rec.ApplyBy,
		Skills:               rec.Skills,
		ApplicationsReceived: rec.ApplicationsReceived,
		AcceptedCount:        rec.AcceptedCount,
		PostedAt:             rec.PostedAt,
		DurationMonths:       rec.DurationMonths,
		Deleted:              rec.Deleted,
	}
}
