package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akwaabafreight/tracking-api/internal/application/auth"
	"github.com/akwaabafreight/tracking-api/internal/application/dto"
	"github.com/akwaabafreight/tracking-api/internal/domain"
	"github.com/akwaabafreight/tracking-api/internal/domain/entity"
	pkgjwt "github.com/akwaabafreight/tracking-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory UserRepository fake
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func newUseCase(repo *fakeUserRepo) *auth.UseCase {
	return auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     "unit-test-secret",
		ExpMinutes: 60,
		Issuer:     "akwaaba-tracking-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// Case 1: a registration followed by a login with the same credentials
// succeeds and keeps the registered role.
func TestRegisterThenLogin_RoundTrip(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newUseCase(repo)

	reg, err := uc.Register(dto.RegisterRequest{
		Email:    "ama@example.com",
		Password: "pw1",
		Role:     "employee",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "employee", reg.User.Role)

	out, err := uc.Login(dto.LoginRequest{Email: "ama@example.com", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.User.ID)
	assert.Equal(t, "employee", out.User.Role)

	// The issued token must carry the user's id and role.
	userID, role, err := pkgjwt.Parse("unit-test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "employee", role)
}

// Case 2: an omitted role defaults to customer.
func TestRegister_DefaultRoleIsCustomer(t *testing.T) {
	uc := newUseCase(&fakeUserRepo{})

	out, err := uc.Register(dto.RegisterRequest{Email: "kofi@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "customer", out.User.Role)
}

// Case 3: the password is stored hashed, never in plaintext.
func TestRegister_PasswordIsHashed(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Email: "abena@example.com", Password: "secret-pw"})
	require.NoError(t, err)

	require.Len(t, repo.users, 1)
	assert.NotEqual(t, "secret-pw", repo.users[0].PasswordHash)
	assert.NotEmpty(t, repo.users[0].PasswordHash)
}

// Case 4: a second registration with the same email fails with a conflict
// and no second account is created.
func TestRegister_DuplicateEmail_Conflict(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Email: "dup@example.com", Password: "pw1"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "dup@example.com", Password: "pw2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, repo.users, 1, "no second account must be created")
}

// Case 5: an unknown role is rejected.
func TestRegister_UnknownRole_Rejected(t *testing.T) {
	uc := newUseCase(&fakeUserRepo{})

	_, err := uc.Register(dto.RegisterRequest{Email: "x@example.com", Password: "pw", Role: "superadmin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// Unknown email and wrong password must return the same error so the
// response does not reveal whether the account exists.
func TestLogin_UnknownEmailAndWrongPassword_SameError(t *testing.T) {
	uc := newUseCase(&fakeUserRepo{})

	_, err := uc.Register(dto.RegisterRequest{Email: "real@example.com", Password: "right-pw"})
	require.NoError(t, err)

	_, errUnknown := uc.Login(dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	_, errWrongPw := uc.Login(dto.LoginRequest{Email: "real@example.com", Password: "wrong-pw"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, domain.ErrInvalidCredentials)
}

// The login summary includes the phone; the register summary does not.
func TestLogin_SummaryIncludesPhone(t *testing.T) {
	uc := newUseCase(&fakeUserRepo{})

	reg, err := uc.Register(dto.RegisterRequest{
		Email:    "efua@example.com",
		Password: "pw",
		Phone:    "+233200000000",
	})
	require.NoError(t, err)
	assert.Empty(t, reg.User.Phone)

	out, err := uc.Login(dto.LoginRequest{Email: "efua@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "+233200000000", out.User.Phone)
}
