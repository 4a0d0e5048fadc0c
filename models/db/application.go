package dbmodels

import (
	"job-board-backend/models"
	"time"

	"github.com/pkg/errors"
)

// DefaultCloseTerm - срок жизни отклика по умолчанию,
// при переходе в терминальный статус дата закрытия выставляется в текущую
const DefaultCloseTerm = 2 * 365 * 24 * time.Hour

type Application struct {
	BaseModel
	PostingID string   `gorm:"type:varchar(36);uniqueIndex:idx_posting_seeker"`
	Posting   *Posting `gorm:"foreignKey:PostingID"`
	SeekerID  string   `gorm:"type:varchar(36);uniqueIndex:idx_posting_seeker"`
	Seeker    *Seeker  `gorm:"foreignKey:SeekerID"`

	Status             models.ApplicationStatus `gorm:"type:varchar(20)"`
	AppliedAt          time.Time
	ClosesAt           time.Time
	StatementOfPurpose string
}

func (a Application) IsClosed(now time.Time) bool {
	return a.ClosesAt.Before(now)
}

// IsActive - отклик занимает слот в лимите активных откликов соискателя
func (a Application) IsActive() bool {
	return a.Status.IsActive()
}

// IsAllowStatusChange проверяет допустимость ручной смены статуса рекрутером.
// Возвращает false без ошибки, если статус уже выставлен.
func (a Application) IsAllowStatusChange(newStatus models.ApplicationStatus, now time.Time) (bool, error) {
	if err := newStatus.ValidateAssignable(); err != nil {
		return false, errors.Wrap(err, "неизвестный статус")
	}
	if a.Status == newStatus {
		return false, nil
	}
	if a.Status.IsTerminal() || a.IsClosed(now) {
		return false, errors.Wrap(models.ErrClosed, "смена статуса недоступна")
	}
	if !a.Status.CanTransitTo(newStatus) {
		return false, errors.Wrapf(models.ErrValidation, "переход %v -> %v запрещен", a.Status, newStatus)
	}
	return true, nil
}
