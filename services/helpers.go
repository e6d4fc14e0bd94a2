package services

import (
	"fmt"
	"io"

	"github.com/Aruzhan01/academy-system/models"
	"github.com/Aruzhan01/academy-system/storage"
	"github.com/google/uuid"
)

// FileUpload carries an incoming media file from the handler layer.
type FileUpload struct {
	Reader      io.Reader
	ContentType string
}

// imageExtensionFromContentType restricts uploads to the formats the media
// store accepts for images.
func imageExtensionFromContentType(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImageType, contentType)
	}
}

func videoExtensionFromContentType(contentType string) (string, error) {
	switch contentType {
	case "video/mp4":
		return ".mp4", nil
	case "video/webm":
		return ".webm", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedVideoType, contentType)
	}
}

// newMediaKey builds a fresh object key. Replacements always upload under a
// new key, so the previous object is orphaned rather than overwritten.
func newMediaKey(prefix, ext string) string {
	return fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)
}

func publicURL(key *string, uploader storage.FileUploader) *string {
	if key == nil || *key == "" || uploader == nil {
		return nil
	}
	url := uploader.GetPublicURL(*key)
	if url == "" {
		return nil
	}
	return &url
}

func populatePartnerLogoURL(partner *models.Partner, uploader storage.FileUploader) {
	if partner != nil {
		partner.LogoURL = publicURL(partner.LogoKey, uploader)
	}
}

func populateTournamentImageURL(tournament *models.Tournament, uploader storage.FileUploader) {
	if tournament != nil {
		tournament.ImageURL = publicURL(tournament.ImageKey, uploader)
	}
}

func populateAchievementMediaURLs(achievement *models.Achievement, uploader storage.FileUploader) {
	if achievement != nil {
		achievement.ImageURL = publicURL(achievement.ImageKey, uploader)
		achievement.VideoURL = publicURL(achievement.VideoKey, uploader)
	}
}
