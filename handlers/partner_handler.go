package handlers

import (
	"fmt"
	"net/http"

	"github.com/Aruzhan01/academy-system/services"
)

type PartnerHandler struct {
	partnerService services.PartnerService
}

func NewPartnerHandler(ps services.PartnerService) *PartnerHandler {
	return &PartnerHandler{
		partnerService: ps,
	}
}

func (h *PartnerHandler) GetAllPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.partnerService.GetAllPartners(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"partners": partners}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PartnerHandler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	logo, file, err := formFile(r, "image")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if file != nil {
		defer file.Close()
	}

	var input services.CreatePartnerInput
	if name := formValue(r, "name"); name != nil {
		input.Name = *name
	}
	input.Description = formValue(r, "description")
	input.Website = formValue(r, "website")

	partner, err := h.partnerService.CreatePartner(r.Context(), input, logo)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"partner": partner}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PartnerHandler) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	partnerID, err := getIDFromURL(r, "partnerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	logo, file, err := formFile(r, "image")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if file != nil {
		defer file.Close()
	}

	input := services.UpdatePartnerInput{
		Name:        formValue(r, "name"),
		Description: formValue(r, "description"),
		Website:     formValue(r, "website"),
	}

	partner, err := h.partnerService.UpdatePartner(r.Context(), partnerID, input, logo)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"partner": partner}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PartnerHandler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	partnerID, err := getIDFromURL(r, "partnerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.partnerService.DeletePartner(r.Context(), partnerID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
