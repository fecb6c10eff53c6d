package authhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"hr-missions-backend/db"
	employeestore "hr-missions-backend/lib/employee/store"
	authutils "hr-missions-backend/lib/utils/auth-utils"
	authapimodels "hr-missions-backend/models/api/auth"
)

type Provider interface {
	Login(data authapimodels.LoginData) (authapimodels.TokenView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	employeeStore employeestore.Provider
}

func (i impl) Login(data authapimodels.LoginData) (authapimodels.TokenView, error) {
	logger := log.WithField("email", data.Email)
	user, err := i.employeeStore.GetByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("ошибка получения сотрудника")
		return authapimodels.TokenView{}, err
	}
	if user == nil || !user.IsActive {
		return authapimodels.TokenView{}, errors.New("неверный email или пароль")
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password))
	if err != nil {
		return authapimodels.TokenView{}, errors.New("неверный email или пароль")
	}
	accessToken, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		logger.WithError(err).Error("ошибка выпуска токена")
		return authapimodels.TokenView{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		logger.WithError(err).Error("ошибка выпуска refresh-токена")
		return authapimodels.TokenView{}, err
	}
	logger.Info("выполнен вход")
	return authapimodels.TokenView{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
