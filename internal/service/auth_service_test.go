package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/skelectricals/backend/internal/domain"
	ierr "github.com/skelectricals/backend/internal/errors"
	"github.com/skelectricals/backend/internal/logger"
	"github.com/skelectricals/backend/internal/testutil"
	"github.com/skelectricals/backend/internal/types"
)

type AuthServiceSuite struct {
	suite.Suite
	ctx     context.Context
	users   *testutil.InMemoryUserStore
	clients *testutil.InMemoryClientStore
	service AuthService
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.users = testutil.NewInMemoryUserStore()
	s.clients = testutil.NewInMemoryClientStore()
	s.service = NewAuthService(AuthServiceConfig{
		UserRepo:             s.users,
		ClientRepo:           s.clients,
		Logger:               logger.NewNop(),
		JWTSecret:            "test-secret",
		JWTAccessExpiration:  15 * time.Minute,
		JWTRefreshExpiration: 24 * time.Hour,
	})
}

func (s *AuthServiceSuite) TestRegisterAndLogin() {
	resp, err := s.service.Register(s.ctx, "site@apextextiles.in", "electric123", "Apex Site Office")
	s.Require().NoError(err)
	s.Equal(types.RoleUser, resp.User.Role)
	s.NotEmpty(resp.AccessToken)

	login, err := s.service.Login(s.ctx, "site@apextextiles.in", "electric123")
	s.Require().NoError(err)
	s.Equal(resp.User.ID, login.User.ID)
}

func (s *AuthServiceSuite) TestRegisterDuplicateEmail() {
	_, err := s.service.Register(s.ctx, "site@apextextiles.in", "electric123", "Apex")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "site@apextextiles.in", "electric456", "Apex Again")
	s.Require().Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *AuthServiceSuite) TestLoginWrongPassword() {
	_, err := s.service.Register(s.ctx, "site@apextextiles.in", "electric123", "Apex")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "site@apextextiles.in", "wrong")
	s.Require().Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *AuthServiceSuite) TestValidateAccessTokenCarriesRole() {
	resp, err := s.service.Register(s.ctx, "site@apextextiles.in", "electric123", "Apex")
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(resp.AccessToken)
	s.Require().NoError(err)
	s.Equal(resp.User.ID.String(), claims.UserID)
	s.Equal(types.RoleUser.String(), claims.Role)
}

func (s *AuthServiceSuite) TestValidateRejectsGarbageToken() {
	_, err := s.service.ValidateAccessToken("not-a-token")
	s.Require().Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *AuthServiceSuite) TestPromoteToClientRequiresExistingCompany() {
	resp, err := s.service.Register(s.ctx, "site@apextextiles.in", "electric123", "Apex")
	s.Require().NoError(err)

	_, err = s.service.UpdateUserRole(s.ctx, resp.User.ID, types.RoleClient, "Apex Textiles Pvt Ltd")
	s.Require().Error(err)
	s.True(ierr.IsNotFound(err))

	s.Require().NoError(s.clients.Create(s.ctx, &domain.Client{
		CompanyName:    "Apex Textiles Pvt Ltd",
		BillingAddress: "14 Industrial Estate, Pune",
		ContactName:    "R. Deshmukh",
	}))

	user, err := s.service.UpdateUserRole(s.ctx, resp.User.ID, types.RoleClient, "Apex Textiles Pvt Ltd")
	s.Require().NoError(err)
	s.Equal(types.RoleClient, user.Role)
	s.Equal("Apex Textiles Pvt Ltd", user.CompanyName)
}

func (s *AuthServiceSuite) TestPromoteToClientWithoutCompanyIsRejected() {
	resp, err := s.service.Register(s.ctx, "site@apextextiles.in", "electric123", "Apex")
	s.Require().NoError(err)

	_, err = s.service.UpdateUserRole(s.ctx, resp.User.ID, types.RoleClient, "")
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))
}
