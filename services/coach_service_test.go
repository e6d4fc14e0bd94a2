package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Aruzhan01/academy-system/models"
	"github.com/Aruzhan01/academy-system/repositories"
)

type fakeCoachRepo struct {
	coaches  map[int]*models.Coach
	nextID   int
	countVal int
	countErr error
}

func newFakeCoachRepo() *fakeCoachRepo {
	return &fakeCoachRepo{coaches: make(map[int]*models.Coach)}
}

func (f *fakeCoachRepo) Create(ctx context.Context, coach *models.Coach) error {
	f.nextID++
	coach.ID = f.nextID
	coach.CreatedAt = time.Now()
	stored := *coach
	f.coaches[coach.ID] = &stored
	return nil
}

func (f *fakeCoachRepo) GetByID(ctx context.Context, id int) (*models.Coach, error) {
	coach, ok := f.coaches[id]
	if !ok {
		return nil, repositories.ErrCoachNotFound
	}
	copied := *coach
	return &copied, nil
}

func (f *fakeCoachRepo) GetAll(ctx context.Context) ([]models.Coach, error) {
	coaches := make([]models.Coach, 0, len(f.coaches))
	for _, c := range f.coaches {
		coaches = append(coaches, *c)
	}
	return coaches, nil
}

func (f *fakeCoachRepo) Update(ctx context.Context, coach *models.Coach) error {
	if _, ok := f.coaches[coach.ID]; !ok {
		return repositories.ErrCoachNotFound
	}
	stored := *coach
	f.coaches[coach.ID] = &stored
	return nil
}

func (f *fakeCoachRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.coaches[id]; !ok {
		return repositories.ErrCoachNotFound
	}
	delete(f.coaches, id)
	return nil
}

func (f *fakeCoachRepo) Count(ctx context.Context) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.countVal, nil
}

func TestCreateCoach_TrimsAndStores(t *testing.T) {
	repo := newFakeCoachRepo()
	svc := NewCoachService(repo)

	coach, err := svc.CreateCoach(context.Background(), CreateCoachInput{
		FullName: "  Aibek Suleimenov  ",
		Role:     "Head Coach",
		Phone:    "+7 701 000 0000",
	})
	if err != nil {
		t.Fatalf("create coach: %v", err)
	}
	if coach.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if coach.FullName != "Aibek Suleimenov" {
		t.Fatalf("expected trimmed full name, got %q", coach.FullName)
	}
}

func TestCreateCoach_RequiresFields(t *testing.T) {
	svc := NewCoachService(newFakeCoachRepo())

	_, err := svc.CreateCoach(context.Background(), CreateCoachInput{
		FullName: "Aibek Suleimenov",
	})
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}

func TestGetCoachByID_NotFound(t *testing.T) {
	svc := NewCoachService(newFakeCoachRepo())

	if _, err := svc.GetCoachByID(context.Background(), 42); !errors.Is(err, ErrCoachNotFound) {
		t.Fatalf("expected ErrCoachNotFound, got %v", err)
	}
}

func TestUpdateCoach_RetainsOmittedFields(t *testing.T) {
	repo := newFakeCoachRepo()
	svc := NewCoachService(repo)

	desc := "UEFA B licensed"
	created, err := svc.CreateCoach(context.Background(), CreateCoachInput{
		FullName:    "Aibek Suleimenov",
		Role:        "Head Coach",
		Phone:       "+7 701 000 0000",
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("create coach: %v", err)
	}

	newPhone := "+7 702 111 1111"
	updated, err := svc.UpdateCoach(context.Background(), created.ID, UpdateCoachInput{Phone: &newPhone})
	if err != nil {
		t.Fatalf("update coach: %v", err)
	}

	if updated.Phone != newPhone {
		t.Fatalf("unexpected phone: got=%q want=%q", updated.Phone, newPhone)
	}
	if updated.FullName != "Aibek Suleimenov" {
		t.Fatalf("full name should be retained, got %q", updated.FullName)
	}
	if updated.Description == nil || *updated.Description != desc {
		t.Fatalf("description should be retained")
	}
}

func TestUpdateCoach_NotFound(t *testing.T) {
	svc := NewCoachService(newFakeCoachRepo())

	name := "Someone"
	if _, err := svc.UpdateCoach(context.Background(), 7, UpdateCoachInput{FullName: &name}); !errors.Is(err, ErrCoachNotFound) {
		t.Fatalf("expected ErrCoachNotFound, got %v", err)
	}
}

func TestDeleteCoach(t *testing.T) {
	repo := newFakeCoachRepo()
	svc := NewCoachService(repo)

	created, err := svc.CreateCoach(context.Background(), CreateCoachInput{
		FullName: "Aibek Suleimenov",
		Role:     "Head Coach",
		Phone:    "+7 701 000 0000",
	})
	if err != nil {
		t.Fatalf("create coach: %v", err)
	}

	if err := svc.DeleteCoach(context.Background(), created.ID); err != nil {
		t.Fatalf("delete coach: %v", err)
	}
	if err := svc.DeleteCoach(context.Background(), created.ID); !errors.Is(err, ErrCoachNotFound) {
		t.Fatalf("expected ErrCoachNotFound on second delete, got %v", err)
	}
}
