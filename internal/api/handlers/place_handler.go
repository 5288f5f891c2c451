package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tomiwaje/stayfinder/internal/application/services"
	"github.com/tomiwaje/stayfinder/internal/domain/entities"
)

// PlaceHandler handles listing requests.
type PlaceHandler struct {
	facade *services.Facade
}

// NewPlaceHandler creates a new place handler.
func NewPlaceHandler(facade *services.Facade) *PlaceHandler {
	return &PlaceHandler{facade: facade}
}

// placeDetailResponse is the expanded view of a place: the owner and every
// amenity are nested as full records rather than ids.
type placeDetailResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Price       float64             `json:"price"`
	Latitude    float64             `json:"latitude"`
	Longitude   float64             `json:"longitude"`
	Owner       *entities.User      `json:"owner"`
	Amenities   []*entities.Amenity `json:"amenities"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func (h *PlaceHandler) expandPlace(r *http.Request, place *entities.Place) (*placeDetailResponse, error) {
	owner, err := h.facade.GetUser(r.Context(), place.OwnerID)
	if err != nil {
		return nil, err
	}

	amenities := make([]*entities.Amenity, 0, len(place.AmenityIDs))
	for _, amenityID := range place.AmenityIDs {
		amenity, err := h.facade.GetAmenity(r.Context(), amenityID)
		if err != nil {
			return nil, err
		}
		amenities = append(amenities, amenity)
	}

	return &placeDetailResponse{
		ID:          place.ID,
		Title:       place.Title,
		Description: place.Description,
		Price:       place.Price,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		Owner:       owner,
		Amenities:   amenities,
		CreatedAt:   place.CreatedAt,
		UpdatedAt:   place.UpdatedAt,
	}, nil
}

// CreatePlace handles POST /api/v1/places
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var input services.PlaceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	place, err := h.facade.CreatePlace(r.Context(), input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, place)
}

// ListPlaces handles GET /api/v1/places. An optional owner_id query
// parameter narrows the listing to one owner.
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	var (
		places []*entities.Place
		err    error
	)

	if ownerID := r.URL.Query().Get("owner_id"); ownerID != "" {
		places, err = h.facade.ListPlacesByOwner(r.Context(), ownerID)
	} else {
		places, err = h.facade.ListPlaces(r.Context())
	}
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, places)
}

// GetPlace handles GET /api/v1/places/{id}
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	place, err := h.facade.GetPlace(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	detail, err := h.expandPlace(r, place)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, detail)
}

// UpdatePlace handles PUT /api/v1/places/{id}
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	var input services.UpdatePlaceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	place, err := h.facade.UpdatePlace(r.Context(), r.PathValue("id"), input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, place)
}

// AddAmenity handles POST /api/v1/places/{place_id}/amenities/{amenity_id}
func (h *PlaceHandler) AddAmenity(w http.ResponseWriter, r *http.Request) {
	place, err := h.facade.AddPlaceAmenity(r.Context(), r.PathValue("place_id"), r.PathValue("amenity_id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, place)
}

// ListReviews handles GET /api/v1/places/{place_id}/reviews
func (h *PlaceHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.facade.ListReviewsByPlace(r.Context(), r.PathValue("place_id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reviews)
}
