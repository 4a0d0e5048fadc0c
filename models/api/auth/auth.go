package authapimodels

import (
	"job-board-backend/models"
	"net/mail"

	"github.com/pkg/errors"
)

type RegisterRequest struct {
	Name     string `json:"name"`     // имя
	Email    string `json:"email"`    // почта, уникальна в рамках роли
	Password string `json:"password"` // пароль, не менее 6 символов
	Mobile   string `json:"mobile"`   // контактный телефон
	Bio      string `json:"bio"`      // о себе, только для рекрутера
}

func (r RegisterRequest) Validate() error {
	if r.Name == "" {
		return errors.Wrap(models.ErrValidation, "не указано имя")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.Wrap(models.ErrValidation, "не указана корректная почта")
	}
	if len(r.Password) < 6 {
		return errors.Wrap(models.ErrValidation, "пароль должен быть не менее 6 символов")
	}
	if len(r.Mobile) < 10 {
		return errors.Wrap(models.ErrValidation, "не указан корректный номер телефона")
	}
	return nil
}

type LoginRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"` // SEEKER_ROLE/RECRUITER_ROLE
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return errors.Wrap(models.ErrValidation, "не указана почта")
	}
	if r.Password == "" {
		return errors.Wrap(models.ErrValidation, "не указан пароль")
	}
	if err := r.Role.Validate(); err != nil {
		return errors.Wrap(err, "не указана роль")
	}
	return nil
}

type TokenResponse struct {
	Token string          `json:"token"`
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}
