package handlers

import (
	"net/http"

	"github.com/Aruzhan01/academy-system/services"
)

type CoachHandler struct {
	coachService services.CoachService
}

func NewCoachHandler(cs services.CoachService) *CoachHandler {
	return &CoachHandler{
		coachService: cs,
	}
}

func (h *CoachHandler) GetAllCoaches(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.coachService.GetAllCoaches(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"coaches": coaches}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CoachHandler) CreateCoach(w http.ResponseWriter, r *http.Request) {
	var input services.CreateCoachInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	coach, err := h.coachService.CreateCoach(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"coach": coach}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CoachHandler) UpdateCoach(w http.ResponseWriter, r *http.Request) {
	coachID, err := getIDFromURL(r, "coachID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateCoachInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	coach, err := h.coachService.UpdateCoach(r.Context(), coachID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"coach": coach}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CoachHandler) DeleteCoach(w http.ResponseWriter, r *http.Request) {
	coachID, err := getIDFromURL(r, "coachID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.coachService.DeleteCoach(r.Context(), coachID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
