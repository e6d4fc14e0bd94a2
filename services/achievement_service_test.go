package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Aruzhan01/academy-system/models"
	"github.com/Aruzhan01/academy-system/repositories"
)

type fakeAchievementRepo struct {
	achievements map[int]*models.Achievement
	nextID       int
	countVal     int
	countErr     error
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{achievements: make(map[int]*models.Achievement)}
}

func (f *fakeAchievementRepo) Create(ctx context.Context, achievement *models.Achievement) error {
	f.nextID++
	achievement.ID = f.nextID
	achievement.CreatedAt = time.Now()
	stored := *achievement
	f.achievements[achievement.ID] = &stored
	return nil
}

func (f *fakeAchievementRepo) GetByID(ctx context.Context, id int) (*models.Achievement, error) {
	achievement, ok := f.achievements[id]
	if !ok {
		return nil, repositories.ErrAchievementNotFound
	}
	copied := *achievement
	return &copied, nil
}

func (f *fakeAchievementRepo) GetAll(ctx context.Context) ([]models.Achievement, error) {
	achievements := make([]models.Achievement, 0, len(f.achievements))
	for _, a := range f.achievements {
		achievements = append(achievements, *a)
	}
	return achievements, nil
}

func (f *fakeAchievementRepo) Update(ctx context.Context, achievement *models.Achievement) error {
	if _, ok := f.achievements[achievement.ID]; !ok {
		return repositories.ErrAchievementNotFound
	}
	stored := *achievement
	f.achievements[achievement.ID] = &stored
	return nil
}

func (f *fakeAchievementRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.achievements[id]; !ok {
		return repositories.ErrAchievementNotFound
	}
	delete(f.achievements, id)
	return nil
}

func (f *fakeAchievementRepo) Count(ctx context.Context) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.countVal, nil
}

func TestCreateAchievement_UploadsImageAndVideo(t *testing.T) {
	repo := newFakeAchievementRepo()
	uploader := &fakeUploader{}
	svc := NewAchievementService(repo, uploader)

	image := &FileUpload{Reader: strings.NewReader("img"), ContentType: "image/jpeg"}
	video := &FileUpload{Reader: strings.NewReader("vid"), ContentType: "video/mp4"}
	achievement, err := svc.CreateAchievement(context.Background(), CreateAchievementInput{Title: "League Champions 2024"}, image, video)
	if err != nil {
		t.Fatalf("create achievement: %v", err)
	}

	if len(uploader.uploads) != 2 {
		t.Fatalf("expected two uploads, got %d", len(uploader.uploads))
	}
	if achievement.ImageKey == nil || !strings.HasSuffix(*achievement.ImageKey, ".jpg") {
		t.Fatalf("unexpected image key: %v", achievement.ImageKey)
	}
	if achievement.VideoKey == nil || !strings.HasSuffix(*achievement.VideoKey, ".mp4") {
		t.Fatalf("unexpected video key: %v", achievement.VideoKey)
	}
	if achievement.ImageURL == nil || achievement.VideoURL == nil {
		t.Fatalf("public URLs should be populated")
	}
}

func TestCreateAchievement_RejectsUnsupportedVideoType(t *testing.T) {
	repo := newFakeAchievementRepo()
	svc := NewAchievementService(repo, &fakeUploader{})

	video := &FileUpload{Reader: strings.NewReader("vid"), ContentType: "video/x-msvideo"}
	_, err := svc.CreateAchievement(context.Background(), CreateAchievementInput{Title: "Cup Final"}, nil, video)
	if !errors.Is(err, ErrUnsupportedVideoType) {
		t.Fatalf("expected ErrUnsupportedVideoType, got %v", err)
	}
	if len(repo.achievements) != 0 {
		t.Fatalf("no row should be written on rejected upload")
	}
}

func TestUpdateAchievement_KeepsExistingMediaWhenOmitted(t *testing.T) {
	repo := newFakeAchievementRepo()
	uploader := &fakeUploader{}
	svc := NewAchievementService(repo, uploader)

	image := &FileUpload{Reader: strings.NewReader("img"), ContentType: "image/png"}
	created, err := svc.CreateAchievement(context.Background(), CreateAchievementInput{Title: "League Champions 2024"}, image, nil)
	if err != nil {
		t.Fatalf("create achievement: %v", err)
	}
	oldKey := *created.ImageKey

	category := "football"
	updated, err := svc.UpdateAchievement(context.Background(), created.ID, UpdateAchievementInput{Category: &category}, nil, nil)
	if err != nil {
		t.Fatalf("update achievement: %v", err)
	}

	if updated.ImageKey == nil || *updated.ImageKey != oldKey {
		t.Fatalf("image key should be retained when no new file is sent")
	}
	if len(uploader.uploads) != 1 {
		t.Fatalf("update without files must not upload, got %d uploads", len(uploader.uploads))
	}
}
