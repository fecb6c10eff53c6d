package authapimodels

import "github.com/pkg/errors"

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (v LoginData) Validate() error {
	if v.Email == "" {
		return errors.New("не указан email")
	}
	if v.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type TokenView struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
