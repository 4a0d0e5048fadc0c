package authhandler

import (
	"job-board-backend/db"
	recruiterstore "job-board-backend/lib/recruiter/store"
	seekerstore "job-board-backend/lib/seeker/store"
	authutils "job-board-backend/lib/utils/auth-utils"
	"job-board-backend/models"
	authapimodels "job-board-backend/models/api/auth"
	dbmodels "job-board-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	RegisterSeeker(data authapimodels.RegisterRequest) (resp authapimodels.TokenResponse, err error)
	RegisterRecruiter(data authapimodels.RegisterRequest) (resp authapimodels.TokenResponse, err error)
	Login(data authapimodels.LoginRequest) (resp authapimodels.TokenResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		seekerStore:    seekerstore.NewInstance(db.DB),
		recruiterStore: recruiterstore.NewInstance(db.DB),
	}
}

type impl struct {
	seekerStore    seekerstore.Provider
	recruiterStore recruiterstore.Provider
}

func (i impl) RegisterSeeker(data authapimodels.RegisterRequest) (resp authapimodels.TokenResponse, err error) {
	if err = data.Validate(); err != nil {
		return resp, err
	}
	exist, err := i.seekerStore.ExistByEmail(data.Email)
	if err != nil {
		return resp, errors.Wrap(models.ErrStore, err.Error())
	}
	if exist {
		return resp, errors.Wrap(models.ErrDuplicate, "соискатель с такой почтой уже зарегистрирован")
	}
	rec := dbmodels.Seeker{
		Name:     data.Name,
		Email:    data.Email,
		Password: authutils.GetMD5Hash(data.Password),
		Mobile:   data.Mobile,
	}
	id, err := i.seekerStore.Create(rec)
	if err != nil {
		return resp, errors.Wrap(models.ErrStore, err.Error())
	}
	log.WithField("rec_id", id).Info("зарегистрирован соискатель")
	return i.tokenResponse(id, data.Name, data.Email, models.SeekerRole)
}

func (i impl) RegisterRecruiter(data authapimodels.RegisterRequest) (resp authapimodels.TokenResponse, err error) {
	if err = data.Validate(); err != nil {
		return resp, err
	}
	exist, err := i.recruiterStore.ExistByEmail(data.Email)
	if err != nil {
		return resp, errors.Wrap(models.ErrStore, err.Error())
	}
	if exist {
		return resp, errors.Wrap(models.ErrDuplicate, "рекрутер с такой почтой уже зарегистрирован")
	}
	rec := dbmodels.Recruiter{
		Name:     data.Name,
		Email:    data.Email,
		Password: authutils.GetMD5Hash(data.Password),
		Mobile:   data.Mobile,
		Bio:      data.Bio,
	}
	id, err := i.recruiterStore.Create(rec)
	if err != nil {
		return resp, errors.Wrap(models.ErrStore, err.Error())
	}
	log.WithField("rec_id", id).Info("зарегистрирован рекрутер")
	return i.tokenResponse(id, data.Name, data.Email, models.RecruiterRole)
}

func (i impl) Login(data authapimodels.LoginRequest) (resp authapimodels.TokenResponse, err error) {
	if err = data.Validate(); err != nil {
		return resp, err
	}
	var id, name, passwordHash string
	if data.Role.IsRecruiter() {
		rec, err := i.recruiterStore.GetByEmail(data.Email)
		if err != nil {
			return resp, errors.Wrap(models.ErrStore, err.Error())
		}
		if rec != nil {
			id, name, passwordHash = rec.ID, rec.Name, rec.Password
		}
	} else {
		rec, err := i.seekerStore.GetByEmail(data.Email)
		if err != nil {
			return resp, errors.Wrap(models.ErrStore, err.Error())
		}
		if rec != nil {
			id, name, passwordHash = rec.ID, rec.Name, rec.Password
		}
	}
	if id == "" || authutils.GetMD5Hash(data.Password) != passwordHash {
		return resp, errors.Wrap(models.ErrAuth, "неверная почта или пароль")
	}
	return i.tokenResponse(id, name, data.Email, data.Role)
}

func (i impl) tokenResponse(id, name, email string, role models.UserRole) (resp authapimodels.TokenResponse, err error) {
	token, err := authutils.GetToken(id, name, role)
	if err != nil {
		return resp, errors.Wrap(err, "ошибка выпуска токена")
	}
	return authapimodels.TokenResponse{
		Token: token,
		ID:    id,
		Name:  name,
		Email: email,
		Role:  role,
	}, nil
}
