package handlers

import (
	"fmt"
	"net/http"

	"github.com/Aruzhan01/academy-system/services"
)

type AchievementHandler struct {
	achievementService services.AchievementService
}

func NewAchievementHandler(as services.AchievementService) *AchievementHandler {
	return &AchievementHandler{
		achievementService: as,
	}
}

func (h *AchievementHandler) GetAllAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.achievementService.GetAllAchievements(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"achievements": achievements}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AchievementHandler) CreateAchievement(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	image, imageFile, err := formFile(r, "image")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if imageFile != nil {
		defer imageFile.Close()
	}

	video, videoFile, err := formFile(r, "video")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if videoFile != nil {
		defer videoFile.Close()
	}

	var input services.CreateAchievementInput
	if title := formValue(r, "title"); title != nil {
		input.Title = *title
	}
	input.Category = formValue(r, "category")
	input.Description = formValue(r, "description")

	achievement, err := h.achievementService.CreateAchievement(r.Context(), input, image, video)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"achievement": achievement}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AchievementHandler) UpdateAchievement(w http.ResponseWriter, r *http.Request) {
	achievementID, err := getIDFromURL(r, "achievementID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	image, imageFile, err := formFile(r, "image")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if imageFile != nil {
		defer imageFile.Close()
	}

	video, videoFile, err := formFile(r, "video")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if videoFile != nil {
		defer videoFile.Close()
	}

	input := services.UpdateAchievementInput{
		Title:       formValue(r, "title"),
		Category:    formValue(r, "category"),
		Description: formValue(r, "description"),
	}

	achievement, err := h.achievementService.UpdateAchievement(r.Context(), achievementID, input, image, video)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"achievement": achievement}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AchievementHandler) DeleteAchievement(w http.ResponseWriter, r *http.Request) {
	achievementID, err := getIDFromURL(r, "achievementID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.achievementService.DeleteAchievement(r.Context(), achievementID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
