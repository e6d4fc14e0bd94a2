package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Aruzhan01/academy-system/models"
	"github.com/Aruzhan01/academy-system/repositories"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	admins   map[string]*models.Admin
	countVal int
	countErr error
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Admin)}
}

func (f *fakeAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	if _, ok := f.admins[admin.Username]; ok {
		return repositories.ErrAdminUsernameTaken
	}
	stored := *admin
	f.admins[admin.Username] = &stored
	return nil
}

func (f *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, repositories.ErrAdminNotFound
	}
	copied := *admin
	return &copied, nil
}

func (f *fakeAdminRepo) Count(ctx context.Context) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.countVal, nil
}

func seedAdmin(t *testing.T, repo *fakeAdminRepo, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	repo.admins[username] = &models.Admin{Username: username, PasswordHash: string(hash)}
	repo.countVal = len(repo.admins)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeAdminRepo()
	seedAdmin(t, repo, "admin", "s3cret")
	svc := NewAuthService(repo)

	admin, err := svc.Login(context.Background(), LoginInput{Username: " admin ", Password: "s3cret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if admin.Username != "admin" {
		t.Fatalf("unexpected username: %q", admin.Username)
	}
	if admin.PasswordHash != "" {
		t.Fatalf("password hash must not leave the service")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	seedAdmin(t, repo, "admin", "s3cret")
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "wrong"})
	if !errors.Is(err, ErrAuthInvalidCredentials) {
		t.Fatalf("expected ErrAuthInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeAdminRepo())

	_, err := svc.Login(context.Background(), LoginInput{Username: "ghost", Password: "whatever"})
	if !errors.Is(err, ErrAuthInvalidCredentials) {
		t.Fatalf("expected ErrAuthInvalidCredentials, got %v", err)
	}
}

func TestLogin_BlankCredentials(t *testing.T) {
	svc := NewAuthService(newFakeAdminRepo())

	_, err := svc.Login(context.Background(), LoginInput{Username: "  ", Password: ""})
	if !errors.Is(err, ErrAuthInvalidCredentials) {
		t.Fatalf("expected ErrAuthInvalidCredentials, got %v", err)
	}
}

func TestEnsureDefaultAdmin_SeedsEmptyTable(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewAuthService(repo)

	if err := svc.EnsureDefaultAdmin(context.Background(), "admin", "s3cret"); err != nil {
		t.Fatalf("ensure default admin: %v", err)
	}

	admin, ok := repo.admins["admin"]
	if !ok {
		t.Fatalf("admin account should have been created")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestEnsureDefaultAdmin_NoOpWhenAdminsExist(t *testing.T) {
	repo := newFakeAdminRepo()
	seedAdmin(t, repo, "existing", "pw")
	svc := NewAuthService(repo)

	if err := svc.EnsureDefaultAdmin(context.Background(), "admin", "s3cret"); err != nil {
		t.Fatalf("ensure default admin: %v", err)
	}
	if _, ok := repo.admins["admin"]; ok {
		t.Fatalf("seeding must be skipped when admins exist")
	}
}

func TestEnsureDefaultAdmin_NoOpWithoutCredentials(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewAuthService(repo)

	if err := svc.EnsureDefaultAdmin(context.Background(), "", ""); err != nil {
		t.Fatalf("ensure default admin: %v", err)
	}
	if len(repo.admins) != 0 {
		t.Fatalf("nothing should be seeded without configured credentials")
	}
}

func TestEnsureDefaultAdmin_ToleratesSeedRace(t *testing.T) {
	repo := newFakeAdminRepo()
	// Count reports empty, but the row already exists: a concurrent seeder won.
	repo.admins["admin"] = &models.Admin{Username: "admin", PasswordHash: "hash"}
	svc := NewAuthService(repo)

	if err := svc.EnsureDefaultAdmin(context.Background(), "admin", "s3cret"); err != nil {
		t.Fatalf("seed race should not surface an error: %v", err)
	}
}
