package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/config"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/httperr"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/httpresp"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/images"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/storage"
)

// GalleryHandler cuida dos pares antes/depois. Inserção só pelo admin;
// não existe edição, como sempre funcionou.
type GalleryHandler struct {
	db      *gorm.DB
	config  *config.Config
	uploads *storage.Uploads
}

func NewGalleryHandler(db *gorm.DB, cfg *config.Config, uploads *storage.Uploads) *GalleryHandler {
	return &GalleryHandler{db: db, config: cfg, uploads: uploads}
}

func (h *GalleryHandler) ListPublic(c *gin.Context) {
	if !h.config.Flags.GaleriaFotos {
		httpresp.List(c, []models.Gallery{})
		return
	}

	var items []models.Gallery
	h.db.Order("created_at DESC").Find(&items)
	httpresp.List(c, items)
}

// Create recebe multipart com "before", "after" e "caption". As
// miniaturas WebP são geradas na hora; falha na miniatura não impede o
// cadastro do par.
func (h *GalleryHandler) Create(c *gin.Context) {
	caption := c.PostForm("caption")
	if caption == "" {
		httperr.BadRequest(c, "missing_caption", "Legenda obrigatória.")
		return
	}

	before, err := c.FormFile("before")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Imagem 'antes' obrigatória.")
		return
	}
	after, err := c.FormFile("after")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Imagem 'depois' obrigatória.")
		return
	}

	beforePath, err := h.uploads.Save(c, before)
	if err != nil {
		h.writeUploadError(c, err)
		return
	}
	afterPath, err := h.uploads.Save(c, after)
	if err != nil {
		h.writeUploadError(c, err)
		return
	}

	item := models.Gallery{
		BeforePath: beforePath,
		AfterPath:  afterPath,
		Caption:    caption,
	}

	if thumb, err := images.Thumbnail(beforePath); err == nil {
		item.ThumbBeforePath = thumb
	} else {
		log.Warn().Err(err).Str("file", beforePath).Msg("failed to generate thumbnail")
	}
	if thumb, err := images.Thumbnail(afterPath); err == nil {
		item.ThumbAfterPath = thumb
	} else {
		log.Warn().Err(err).Str("file", afterPath).Msg("failed to generate thumbnail")
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_gallery", "Erro ao salvar a galeria.")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *GalleryHandler) writeUploadError(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrInvalidExtension) {
		httperr.BadRequest(c, "invalid_file_type", "Apenas png, jpg e jpeg são aceitos.")
		return
	}
	httperr.Internal(c, "upload_failed", "Erro ao salvar a imagem.")
}
