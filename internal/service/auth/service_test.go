package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"prime-property/internal/config"
	"prime-property/internal/domain"
	"prime-property/internal/repository/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
		AdminEmail:      "admin@primeproperty.com",
		AdminPassword:   "admin123",
		AdminName:       "System Admin",
	}
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to buyer", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		svc := NewService(repo, testConfig())

		repo.On("ExistsByEmail", ctx, "alice@example.com").Return(false, nil).Once()
		repo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == domain.RoleBuyer && u.Status == domain.StatusActive && u.PasswordHash != "secret1"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 7
		}).Return(nil).Once()

		res, err := svc.Register(ctx, domain.CreateUserInput{Name: "Alice", Email: " Alice@Example.com ", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, int64(7), res.User.ID)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, int64(3600), res.ExpiresIn)

		claims, err := svc.ValidateAccessToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, domain.RoleBuyer, claims.Role)
		repo.AssertExpectations(t)
	})

	t.Run("rejects admin self-registration", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		svc := NewService(repo, testConfig())

		_, err := svc.Register(ctx, domain.CreateUserInput{Name: "Mallory", Email: "m@example.com", Password: "secret1", Role: domain.RoleAdmin})
		assert.True(t, domain.IsValidationError(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		svc := NewService(repo, testConfig())

		repo.On("ExistsByEmail", ctx, "alice@example.com").Return(true, nil).Once()
		_, err := svc.Register(ctx, domain.CreateUserInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, domain.ErrEmailExists)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := NewService(new(mocks.UserRepository), testConfig())

		_, err := svc.Register(ctx, domain.CreateUserInput{Email: "a@example.com", Password: "secret1"})
		assert.True(t, domain.IsValidationError(err))
		_, err = svc.Register(ctx, domain.CreateUserInput{Name: "A", Email: "not-an-email", Password: "secret1"})
		assert.True(t, domain.IsValidationError(err))
		_, err = svc.Register(ctx, domain.CreateUserInput{Name: "A", Email: "a@example.com", Password: "123"})
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.UserRepository)
	svc := NewService(repo, testConfig())

	active := &domain.User{ID: 1, Email: "a@example.com", PasswordHash: hashed(t, "secret1"), Role: domain.RoleSeller, Status: domain.StatusActive}
	blocked := &domain.User{ID: 2, Email: "b@example.com", PasswordHash: hashed(t, "secret1"), Role: domain.RoleBuyer, Status: domain.StatusBlocked}

	repo.On("GetByEmail", ctx, "a@example.com").Return(active, nil)
	repo.On("GetByEmail", ctx, "b@example.com").Return(blocked, nil)
	repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil)

	res, err := svc.Login(ctx, domain.LoginInput{Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, active, res.User)

	_, err = svc.Login(ctx, domain.LoginInput{Email: "a@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginInput{Email: "ghost@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginInput{Email: "b@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrAccountBlocked)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.UserRepository)
	svc := NewService(repo, testConfig())

	user := &domain.User{ID: 5, Name: "Bob", Role: domain.RoleBuyer, Status: domain.StatusActive}
	token, _, err := svc.Issue(user)
	require.NoError(t, err)

	t.Run("uses the live role", func(t *testing.T) {
		live := *user
		live.Role = domain.RoleAdmin
		repo.On("GetByID", ctx, int64(5)).Return(&live, nil).Once()

		got, err := svc.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, got.Role)
	})

	t.Run("blocked after issue", func(t *testing.T) {
		live := *user
		live.Status = domain.StatusBlocked
		repo.On("GetByID", ctx, int64(5)).Return(&live, nil).Once()

		_, err := svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, domain.ErrAccountBlocked)
	})

	t.Run("deleted user", func(t *testing.T) {
		repo.On("GetByID", ctx, int64(5)).Return(nil, nil).Once()

		_, err := svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "")
		assert.ErrorIs(t, err, domain.ErrMissingToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

func TestValidateAccessTokenRejects(t *testing.T) {
	cfg := testConfig()
	svc := NewService(new(mocks.UserRepository), cfg)
	user := &domain.User{ID: 1, Role: domain.RoleBuyer}

	t.Run("expired", func(t *testing.T) {
		expired := *cfg
		expired.JWTAccessExpiry = -time.Minute
		token, _, err := NewService(nil, &expired).Issue(user)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := *cfg
		other.JWTSecret = "another-secret"
		token, _, err := NewService(nil, &other).Issue(user)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
			UserID: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(signed)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("no expiry", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: 1})
		signed, err := token.SignedString([]byte(cfg.JWTSecret))
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(signed)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

func TestUpdateProfileAndPassword(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.UserRepository)
	svc := NewService(repo, testConfig())

	user := func() *domain.User {
		return &domain.User{ID: 3, Name: "Carol", Email: "carol@example.com", PasswordHash: hashed(t, "secret1")}
	}

	t.Run("email taken", func(t *testing.T) {
		repo.On("GetByID", ctx, int64(3)).Return(user(), nil).Once()
		repo.On("ExistsByEmail", ctx, "taken@example.com").Return(true, nil).Once()

		email := "taken@example.com"
		_, err := svc.UpdateProfile(ctx, 3, domain.UpdateProfileInput{Email: &email})
		assert.ErrorIs(t, err, domain.ErrEmailExists)
	})

	t.Run("rename", func(t *testing.T) {
		repo.On("GetByID", ctx, int64(3)).Return(user(), nil).Once()
		repo.On("UpdateProfile", ctx, mock.MatchedBy(func(u *domain.User) bool { return u.Name == "Caroline" })).Return(nil).Once()

		name := "Caroline"
		got, err := svc.UpdateProfile(ctx, 3, domain.UpdateProfileInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Caroline", got.Name)
	})

	t.Run("wrong current password", func(t *testing.T) {
		repo.On("GetByID", ctx, int64(3)).Return(user(), nil).Once()

		err := svc.ChangePassword(ctx, 3, domain.ChangePasswordInput{CurrentPassword: "nope", NewPassword: "secret2"})
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("changes password", func(t *testing.T) {
		repo.On("GetByID", ctx, int64(3)).Return(user(), nil).Once()
		repo.On("UpdatePassword", ctx, int64(3), mock.MatchedBy(func(h string) bool {
			return bcrypt.CompareHashAndPassword([]byte(h), []byte("secret2")) == nil
		})).Return(nil).Once()

		err := svc.ChangePassword(ctx, 3, domain.ChangePasswordInput{CurrentPassword: "secret1", NewPassword: "secret2"})
		assert.NoError(t, err)
	})

	repo.AssertExpectations(t)
}

func TestSeedAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates when missing", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		svc := NewService(repo, testConfig())

		repo.On("GetByEmail", ctx, "admin@primeproperty.com").Return(nil, nil).Once()
		repo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == domain.RoleAdmin && u.Name == "System Admin"
		})).Return(nil).Once()

		_, created, err := svc.SeedAdmin(ctx)
		require.NoError(t, err)
		assert.True(t, created)
		repo.AssertExpectations(t)
	})

	t.Run("idempotent", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		svc := NewService(repo, testConfig())

		repo.On("GetByEmail", ctx, "admin@primeproperty.com").Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil).Once()

		_, created, err := svc.SeedAdmin(ctx)
		require.NoError(t, err)
		assert.False(t, created)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
