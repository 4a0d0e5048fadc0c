package models

// Статусы жизненного цикла отклика.
// Значения совпадают с тем, что отдается наружу в api.
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "Applied"
	ApplicationStatusShortlisted ApplicationStatus = "Shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
	ApplicationStatusAccepted    ApplicationStatus = "Accepted"
	ApplicationStatusDeleted     ApplicationStatus = "Deleted"
)

// MaxActiveApplications - лимит активных откликов на одного соискателя
const MaxActiveApplications = 10

var statusHumanName = map[ApplicationStatus]string{
	ApplicationStatusApplied:     "Подан",
	ApplicationStatusShortlisted: "В шортлисте",
	ApplicationStatusRejected:    "Отклонен",
	ApplicationStatusAccepted:    "Принят",
	ApplicationStatusDeleted:     "Удален",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := statusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// допустимые переходы, движение только вперед
var allowedTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusApplied:     {ApplicationStatusShortlisted, ApplicationStatusRejected, ApplicationStatusAccepted},
	ApplicationStatusShortlisted: {ApplicationStatusRejected, ApplicationStatusAccepted},
}

// IsTerminal - из терминального статуса переходы запрещены
func (s ApplicationStatus) IsTerminal() bool {
	switch s {
	case ApplicationStatusRejected, ApplicationStatusAccepted, ApplicationStatusDeleted:
		return true
	}
	return false
}

// IsActive - отклик учитывается в лимите активных откликов соискателя
func (s ApplicationStatus) IsActive() bool {
	return s != ApplicationStatusRejected && s != ApplicationStatusDeleted
}

// ValidateAssignable - статус, который рекрутер может выставить вручную
func (s ApplicationStatus) ValidateAssignable() error {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusShortlisted, ApplicationStatusRejected, ApplicationStatusAccepted:
		return nil
	}
	return ErrValidation
}

func (s ApplicationStatus) CanTransitTo(newStatus ApplicationStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}
