package applicationapimodels

import (
	"job-board-backend/models"
	dbmodels "job-board-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type SubmitRequest struct {
	PostingID          string `json:"posting_id"`           // ид вакансии
	StatementOfPurpose string `json:"statement_of_purpose"` // сопроводительное письмо
}

func (r SubmitRequest) Validate() error {
	if r.PostingID == "" {
		return errors.Wrap(models.ErrValidation, "не указан идентификатор вакансии")
	}
	if r.StatementOfPurpose == "" {
		return errors.Wrap(models.ErrValidation, "не указано сопроводительное письмо")
	}
	return nil
}

type StatusChangeRequest struct {
	Status models.ApplicationStatus `json:"status"` // новый статус отклика
}

func (r StatusChangeRequest) Validate() error {
	if err := r.Status.ValidateAssignable(); err != nil {
		return errors.Wrap(err, "недопустимый статус")
	}
	return nil
}

type ApplicationView struct {
	ID                 string                   `json:"id"`
	PostingID          string                   `json:"posting_id"`
	SeekerID           string                   `json:"seeker_id"`
	Status             models.ApplicationStatus `json:"status"`
	StatusName         string                   `json:"status_name"`
	AppliedAt          time.Time                `json:"applied_at"`
	ClosesAt           time.Time                `json:"closes_at"`
	StatementOfPurpose string                   `json:"statement_of_purpose"`
}

func ConvertView(rec dbmodels.Application) ApplicationView {
	return ApplicationView{
		ID:                 rec.ID,
		PostingID:          rec.PostingID,
		SeekerID:           rec.SeekerID,
		Status:             rec.Status,
		StatusName:         rec.Status.ToHuman(),
		AppliedAt:          rec.AppliedAt,
		ClosesAt:           rec.ClosesAt,
		StatementOfPurpose: rec.StatementOfPurpose,
	}
}

func ConvertViewList(list []dbmodels.Application) []ApplicationView {
	result := make([]ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, ConvertView(rec))
	}
	return result
}
