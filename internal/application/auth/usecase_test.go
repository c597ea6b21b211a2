package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Tienda-api/pkg/jwt"
)

const secret = "secreto-de-prueba"

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func newUseCase(repo *mockUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "tienda-test"}).
		WithBcryptCost(bcrypt.MinCost)
}

func hashed(t *testing.T, pw string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin_OKGeneraTokenConRol(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	repo.On("FindByUsername", ctx, "admin").Return(&entity.User{
		ID: 1, Username: "admin", PasswordHash: hashed(t, "clave-segura"), Role: entity.RoleAdmin, Active: true,
	}, nil)

	out, err := newUseCase(repo).Login(ctx, dto.LoginRequest{Username: " Admin ", Password: "clave-segura"})

	require.NoError(t, err)
	id, err := pkgjwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.UserID)
	assert.Equal(t, entity.RoleAdmin, id.Role)
	assert.Equal(t, "admin", out.User.Username)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	repo.On("FindByUsername", ctx, "ana").Return(&entity.User{ID: 2, Username: "ana", PasswordHash: hashed(t, "correcta1"), Active: true}, nil)

	_, err := newUseCase(repo).Login(ctx, dto.LoginRequest{Username: "ana", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistenteMismoError(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	repo.On("FindByUsername", ctx, "nadie").Return(nil, nil)

	_, err := newUseCase(repo).Login(ctx, dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegisterUser_HasheaYRolPorDefecto(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	repo.On("FindByUsername", ctx, "tendero1").Return(nil, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleTendero &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
	})).Return(int64(5), nil)

	out, err := newUseCase(repo).RegisterUser(ctx, dto.RegisterUserRequest{Username: "tendero1", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), out.ID)
	assert.Equal(t, "tendero1", out.Name)
}

func TestRegisterUser_Duplicado(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	repo.On("FindByUsername", ctx, "admin").Return(&entity.User{ID: 1}, nil)

	_, err := newUseCase(repo).RegisterUser(ctx, dto.RegisterUserRequest{Username: "admin", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestMe_UsuarioNoExiste(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	repo.On("FindByID", ctx, int64(7)).Return(nil, nil)

	_, err := newUseCase(repo).Me(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
