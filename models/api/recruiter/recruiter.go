package recruiterapimodels

import (
	"job-board-backend/models"
	dbmodels "job-board-backend/models/db"
	"net/mail"

	"github.com/pkg/errors"
)

// ProfileUpdate - частичное изменение профиля, nil-поля не трогаются.
// Смена имени или почты пересинхронизирует снапшот на вакансиях рекрутера.
type ProfileUpdate struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Mobile *string `json:"mobile"`
	Bio    *string `json:"bio"`
}

func (p ProfileUpdate) Validate() error {
	if p.Name == nil && p.Email == nil && p.Mobile == nil && p.Bio == nil {
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

type RecruiterView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	Bio    string `json:"bio"`
}

func ConvertView(rec dbmodels.Recruiter) RecruiterView {
	return RecruiterView{
		ID:     rec.ID,
		Name:   rec.Name,
		Email:  rec.Email,
		Mobile: rec.Mobile,
		Bio:    rec.Bio,
	}
}
