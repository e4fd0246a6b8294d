package handlers

import (
	"github.com/gin-gonic/gin"

	"telehealth-server/internal/models"
	"telehealth-server/internal/query"
	"telehealth-server/internal/utils"
)

// FavoriteHandler handles the favorite doctors list.
type FavoriteHandler struct {
	Doctors *query.Doctors
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(doctors *query.Doctors) *FavoriteHandler {
	return &FavoriteHandler{Doctors: doctors}
}

// GetFavorites returns the favorite ids and the catalog records they
// resolve to. Ids without a catalog record are listed but not resolved.
func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	ids := sess.Store.Favorites()
	doctors := make([]models.Doctor, 0, len(ids))
	for _, id := range ids {
		if d, found := h.Doctors.ByID(id); found {
			doctors = append(doctors, d)
		}
	}
	utils.Success(c, "Favorites retrieved successfully", gin.H{
		"favoriteDoctors": ids,
		"doctors":         doctors,
	})
}

// AddFavorite adds a doctor id. Adding an existing favorite is a no-op.
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	added := sess.Store.AddToFavorites(c.Request.Context(), c.Param("doctorId"))
	utils.Success(c, "Favorites updated", gin.H{
		"added":           added,
		"favoriteDoctors": sess.Store.Favorites(),
	})
}

// RemoveFavorite removes a doctor id. Removing an absent id is a no-op.
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	removed := sess.Store.RemoveFromFavorites(c.Request.Context(), c.Param("doctorId"))
	utils.Success(c, "Favorites updated", gin.H{
		"removed":         removed,
		"favoriteDoctors": sess.Store.Favorites(),
	})
}
