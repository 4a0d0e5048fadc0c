package seekerapimodels

import (
	"job-board-backend/models"
	dbmodels "job-board-backend/models/db"
	"net/mail"

	"github.com/pkg/errors"
)

// ProfileUpdate - частичное изменение профиля, nil-поля не трогаются
type ProfileUpdate struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Mobile *string `json:"mobile"`
}

func (p ProfileUpdate) Validate() error {
	if p.Name == nil && p.Email == nil && p.Mobile == nil {
		return errors.Wrap(models.ErrValidation, "не указано ни одно изменяемое поле")
	}
	if p.Name != nil && *p.Name == "" {
		return errors.Wrap(models.ErrValidation, "не указано имя")
	}
	if p.Email != nil {
		if _, err := mail.ParseAddress(*p.Email); err != nil {
			return errors.Wrap(models.ErrValidation, "не указана корректная почта")
		}
	}
	if p.Mobile != nil && len(*p.Mobile) < 10 {
		return errors.Wrap(models.ErrValidation, "не указан корректный номер телефона")
	}
	return nil
}

type SeekerView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

// AcceptedSeekerView - соискатель, принятый на вакансию рекрутера
type AcceptedSeekerView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Title   string `json:"title"`
	Company string `json:"company"`
	JobType string `json:"job_type"`
}

func ConvertView(rec dbmodels.Seeker) SeekerView {
	return SeekerView{
		ID:     rec.ID,
		Name:   rec.Name,
		Email:  rec.Email,
		Mobile: rec.Mobile,
	}
}

func ConvertViewList(list []dbmodels.Seeker) []SeekerView {
	result := make([]SeekerView, 0, len(list))
	for _, rec := range list {
		result = append(result, ConvertView(rec))
	}
	return result
}
