package auth

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type passThroughTx struct{}

func (passThroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	users map[string]user.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	if _, err := f.GetByEmail(ctx, newUser.Email); err == nil {
		return user.User{}, user.ErrUserEmailExists
	}
	newUser.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id string, req user.UpdateUserRequest) error {
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	created []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	newEmployee.ID = "emp-1"
	f.created = append(f.created, newEmployee)
	return newEmployee, nil
}

type fixture struct {
	svc       auth.AuthService
	users     *fakeUserRepo
	employees *fakeEmployeeRepo
	jwt       jwt.Service
}

func newFixture(allowAdminSignup bool) fixture {
	now := time.Date(2024, 6, 10, 8, 30, 0, 0, time.UTC)
	clk := clock.Fixed(now)
	users := newFakeUserRepo()
	employees := &fakeEmployeeRepo{}
	jwtService := jwt.NewJWTService(testSecret, "24h", clock.New(time.UTC))
	return fixture{
		svc:       NewAuthService(passThroughTx{}, users, employees, jwtService, clk, allowAdminSignup),
		users:     users,
		employees: employees,
		jwt:       jwtService,
	}
}

func TestSignup_EmployeeProvisionsProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(true)

	resp, err := f.svc.Signup(ctx, auth.SignupRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.RoleEmployee, resp.User.Role)
	assert.Equal(t, "jane@example.com", resp.User.Email)

	require.Len(t, f.employees.created, 1)
	profile := f.employees.created[0]
	assert.Equal(t, resp.User.ID, profile.UserID)
	assert.Equal(t, employee.DefaultPosition, profile.Position)
	assert.Equal(t, employee.DefaultDepartment, profile.Department)
	assert.Equal(t, employee.StatusActive, profile.Status)
	require.NotNil(t, profile.HireDate)
	assert.Equal(t, "2024-06-10", *profile.HireDate)
	assert.Empty(t, profile.Phone)

	stored := f.users.users[resp.User.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestSignup_AdminHasNoProfile(t *testing.T) {
	f := newFixture(true)

	resp, err := f.svc.Signup(context.Background(), auth.SignupRequest{
		FirstName: "Ada",
		LastName:  "Admin",
		Email:     "ada@example.com",
		Password:  "secret1",
		Role:      user.RoleAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, resp.User.Role)
	assert.Empty(t, f.employees.created)
}

func TestSignup_AdminDisabled(t *testing.T) {
	f := newFixture(false)

	_, err := f.svc.Signup(context.Background(), auth.SignupRequest{
		FirstName: "Ada",
		LastName:  "Admin",
		Email:     "ada@example.com",
		Password:  "secret1",
		Role:      user.RoleAdmin,
	})

	assert.ErrorIs(t, err, auth.ErrAdminSignupDisabled)
	assert.Empty(t, f.users.users)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(true)
	req := auth.SignupRequest{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "secret1"}

	_, err := f.svc.Signup(ctx, req)
	require.NoError(t, err)

	req.Email = "JANE@example.com"
	_, err = f.svc.Signup(ctx, req)
	assert.ErrorIs(t, err, auth.ErrUserExists)
	assert.Len(t, f.employees.created, 1)
}

func TestSignup_Validation(t *testing.T) {
	cases := []struct {
		name    string
		req     auth.SignupRequest
		message string
	}{
		{"missing fields", auth.SignupRequest{Email: "a@b.co"}, "All fields are required"},
		{"bad role", auth.SignupRequest{FirstName: "a", LastName: "b", Email: "a@b.co", Password: "secret1", Role: "owner"}, "Invalid role"},
		{"bad email", auth.SignupRequest{FirstName: "a", LastName: "b", Email: "nope", Password: "secret1"}, "Invalid email format"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(true)
			_, err := f.svc.Signup(context.Background(), c.req)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.Message(), c.message)
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(true)
	_, err := f.svc.Signup(ctx, auth.SignupRequest{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		resp, err := f.svc.Login(ctx, auth.LoginRequest{Email: "jane@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Jane", resp.User.FirstName)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.svc.Login(ctx, auth.LoginRequest{Email: "jane@example.com", Password: "nope123"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := f.svc.Login(ctx, auth.LoginRequest{Email: "ghost@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := f.svc.Login(ctx, auth.LoginRequest{Email: "jane@example.com"})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "Email and password are required", verrs.Message())
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	f := newFixture(true)
	resp, err := f.svc.Signup(ctx, auth.SignupRequest{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)

	got, err := f.svc.Verify(ctx, user.Identity{UserID: resp.User.ID, Role: user.RoleEmployee})
	require.NoError(t, err)
	assert.Equal(t, resp.User, got)

	_, err = f.svc.Verify(ctx, user.Identity{UserID: "missing"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
