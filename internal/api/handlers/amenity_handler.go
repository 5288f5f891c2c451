package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tomiwaje/stayfinder/internal/application/services"
)

// AmenityHandler handles amenity catalog requests.
type AmenityHandler struct {
	facade *services.Facade
}

// NewAmenityHandler creates a new amenity handler.
func NewAmenityHandler(facade *services.Facade) *AmenityHandler {
	return &AmenityHandler{facade: facade}
}

// CreateAmenity handles POST /api/v1/amenities
func (h *AmenityHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	var input services.AmenityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	amenity, err := h.facade.CreateAmenity(r.Context(), input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, amenity)
}

// ListAmenities handles GET /api/v1/amenities
func (h *AmenityHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.facade.ListAmenities(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, amenities)
}

// GetAmenity handles GET /api/v1/amenities/{id}
func (h *AmenityHandler) GetAmenity(w http.ResponseWriter, r *http.Request) {
	amenity, err := h.facade.GetAmenity(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, amenity)
}

// UpdateAmenity handles PUT /api/v1/amenities/{id}
func (h *AmenityHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	var input services.AmenityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	amenity, err := h.facade.UpdateAmenity(r.Context(), r.PathValue("id"), input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, amenity)
}
