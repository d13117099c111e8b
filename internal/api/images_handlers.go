package api

import (
	"bytes"
	"net/http"

	"github.com/lealre/friendlyeats-backend/internal/logx"
	"github.com/lealre/friendlyeats-backend/internal/mongodb"
	"github.com/lealre/friendlyeats-backend/internal/services/restaurants"
)

const maxImageUploadBytes = 10 << 20 // 10 MiB

// UploadRestaurantImage accepts a multipart upload under the "image"
// field, stores the blob and patches the restaurant's photo URL.
func (api *API) UploadRestaurantImage(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	restaurantId := r.PathValue("id")

	r.Body = http.MaxBytesReader(w, r.Body, maxImageUploadBytes)
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, formatErrorMessage(restaurants.ErrInvalidImage))
		return
	}
	defer file.Close()

	photoURL, err := restaurants.UpdateRestaurantImage(
		api.Db, r.Context(), restaurantId, header.Filename, header.Header.Get("Content-Type"), file,
	)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(restaurants.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update restaurant image")
		return
	}

	respondWithJSON(w, http.StatusOK, restaurants.UpdatedPhotoResponse{Photo: photoURL})
}

// GetImage streams a stored image blob back to the client. The blob is
// buffered so the content type is known before the first body byte.
func (api *API) GetImage(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	fileId := r.PathValue("id")

	var buf bytes.Buffer
	contentType, err := api.Db.OpenImage(fileId, &buf)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			respondWithError(w, http.StatusNotFound, "Image not found")
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to read image")
		return
	}

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Write(buf.Bytes())
}
