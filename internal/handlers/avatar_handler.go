package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/haldenworks/contact-manager/internal/httperr"
	"github.com/haldenworks/contact-manager/internal/models"
	"github.com/haldenworks/contact-manager/internal/storage"
)

// 5 MiB upload cap before decoding.
const maxAvatarUpload = 5 << 20

type AvatarHandler struct {
	db    *gorm.DB
	store *storage.AvatarStore
}

func NewAvatarHandler(db *gorm.DB, store *storage.AvatarStore) *AvatarHandler {
	return &AvatarHandler{db: db, store: store}
}

func (h *AvatarHandler) Upload(c *gin.Context) {
	if !h.store.Enabled() {
		httperr.BadRequest(c, "avatar_storage_not_configured", "Avatar uploads are disabled on this server.")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var person models.Person
	if err := h.db.First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "person_not_found", "No person with this id.")
			return
		}
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar_file", "Multipart field 'avatar' is required.")
		return
	}
	defer file.Close()

	data, err := storage.ProcessAvatar(http.MaxBytesReader(c.Writer, file, maxAvatarUpload))
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "The file is not a decodable image.")
			return
		}
		httperr.Internal(c, "failed_to_process_image", "Could not process the image.")
		return
	}

	url, err := h.store.Upload(c.Request.Context(), data)
	if err != nil {
		httperr.Internal(c, "failed_to_store_avatar", "Could not store the avatar.")
		return
	}

	person.AvatarURL = url
	if err := h.db.Save(&person).Error; err != nil {
		httperr.Internal(c, "failed_to_update_person", "Could not save the avatar URL.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
