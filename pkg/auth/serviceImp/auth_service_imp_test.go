package serviceImp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"farmtrack/database"
	"farmtrack/entities"
	"farmtrack/pkg/apperr"
	"farmtrack/pkg/auth/repositoryImp"
	"farmtrack/pkg/auth/service"
	"farmtrack/pkg/auth/serviceImp"
	"farmtrack/pkg/auth/token"
)

func newSvc(t *testing.T) service.AuthService {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	return serviceImp.NewAuthService(repositoryImp.New(db), "s3cret", time.Hour, nil)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := newSvc(t)
	u, err := svc.Register(context.Background(), service.RegisterInput{
		Name: "Asha", Email: " Asha@Example.org ", Password: "hunter22", PhoneNumber: "999",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.org", u.Email)
	assert.Equal(t, entities.RoleUser, u.Role)
	assert.NotEqual(t, "hunter22", u.PasswordHash)
	cost, err := bcrypt.Cost([]byte(u.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestRegisterValidation(t *testing.T) {
	_, err := newSvc(t).Register(context.Background(), service.RegisterInput{
		Name: " ", Email: "nope", Password: "123", Role: "root",
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Equal(t, []string{"name", "email", "password", "role"}, apperr.FieldsOf(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newSvc(t)
	in := service.RegisterInput{Name: "Asha", Email: "asha@example.org", Password: "hunter22"}
	_, err := svc.Register(ctx, in)
	require.NoError(t, err)
	_, err = svc.Register(ctx, in)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newSvc(t)
	reg, err := svc.Register(ctx, service.RegisterInput{Name: "Asha", Email: "asha@example.org", Password: "hunter22", Role: "admin"})
	require.NoError(t, err)

	u, tok, err := svc.Login(ctx, "ASHA@example.org", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, u.ID)
	claims, err := token.Parse("s3cret", tok)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, claims.Subject)
	assert.Equal(t, "admin", claims.Role)

	_, _, err = svc.Login(ctx, "asha@example.org", "wrong")
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
	_, _, err = svc.Login(ctx, "nobody@example.org", "hunter22")
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
}

func TestListAndGet(t *testing.T) {
	ctx := context.Background()
	svc := newSvc(t)
	reg, err := svc.Register(ctx, service.RegisterInput{Name: "Asha", Email: "asha@example.org", Password: "hunter22"})
	require.NoError(t, err)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Asha", users[0].Name)

	got, err := svc.Get(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, reg.Email, got.Email)
	_, err = svc.Get(ctx, "missing")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
