package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/lynossweets/storefront-server/internal/model"
)

type TokenManager struct{ mock.Mock }

func (m *TokenManager) Issue(user model.AuthUser) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Parse(token string) (model.SessionClaims, error) {
	args := m.Called(token)
	return args.Get(0).(model.SessionClaims), args.Error(1)
}
