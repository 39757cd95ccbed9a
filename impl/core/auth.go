package core

import (
	"ChiwawaRelay/entity"
	"crypto/subtle"
	"fmt"
)

const apiUsername = "api"

// AuthenticateByToken accepts the single management API key from config.
func (c *Core) AuthenticateByToken(token string) (*entity.UserAuth, error) {
	if c.authKey == "" {
		return nil, fmt.Errorf("api key is not configured")
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(c.authKey)) != 1 {
		return nil, fmt.Errorf("invalid api key")
	}
	return &entity.UserAuth{
		Username: apiUsername,
		Token:    token,
	}, nil
}

func (c *Core) ValidateToken(token string) (string, error) {
	user, err := c.AuthenticateByToken(token)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}
