package receipt

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"

	"turnero/internal/infrastructure/receipt"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
	"turnero/internal/shared/utils"
)

// FileLocator resolves a receipt file name to a path on disk.
type FileLocator interface {
	Path(name string) (string, error)
}

type ReceiptHandler struct {
	files  FileLocator
	logger logger.Interface
}

func NewReceiptHandler(files FileLocator, logger logger.Interface) *ReceiptHandler {
	return &ReceiptHandler{files: files, logger: logger}
}

// Download handles GET /receipts/:filename
func (h *ReceiptHandler) Download(c *gin.Context) {
	name := c.Param("filename")
	if !receipt.ValidFilename(name) {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("receipt not found"))
		return
	}

	path, err := h.files.Path(name)
	if err != nil {
		if stderrors.Is(err, receipt.ErrNotFound) {
			utils.ErrorResponseWithError(c, errors.NewNotFoundError("receipt not found"))
			return
		}
		h.logger.Errorw("failed to locate receipt", "file", name, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Cache-Control", "private, max-age=300")
	c.FileAttachment(path, name)
}
