package models

type UserRole string

const (
	SeekerRole    UserRole = "SEEKER_ROLE"
	RecruiterRole UserRole = "RECRUITER_ROLE"
)

var roleHumanName = map[UserRole]string{
	SeekerRole:    "Соискатель",
	RecruiterRole: "Рекрутер",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsRecruiter() bool {
	return r == RecruiterRole
}

func (r UserRole) Validate() error {
	if r != SeekerRole && r != RecruiterRole {
		return ErrValidation
	}
	return nil
}
