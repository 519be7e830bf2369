package reviews

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"adgm-backend/internal/checklist"
	"adgm-backend/internal/shared/metrics"
	"adgm-backend/internal/shared/server/middleware"
	"adgm-backend/internal/shared/server/respond"
)

const maxReviewUploadSize = 50 << 20 // 50MB across all files

// Handler wires HTTP handlers to the review service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches review routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.create)
	rg.GET("/processes", h.processes)
}

func (h *Handler) create(c *gin.Context) {
	ownerID := middleware.OwnerIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxReviewUploadSize)

	form, err := c.MultipartForm()
	if err != nil {
		metrics.IncReviewFailed()
		respond.Error(c, http.StatusBadRequest, "validation_error", "multipart form is required", nil)
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "at least one file is required", nil)
		return
	}

	files := make([]File, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			metrics.IncReviewFailed()
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file "+fh.Filename, nil)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			metrics.IncReviewFailed()
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file "+fh.Filename, nil)
			return
		}
		files = append(files, File{Name: fh.Filename, Data: data})
	}

	report := h.Svc.Review(c.Request.Context(), ownerID, files)
	respond.JSON(c, http.StatusOK, report)
}

type processResponse struct {
	Process     string                  `json:"process"`
	Description string                  `json:"description"`
	Documents   []checklist.Requirement `json:"documents"`
	References  []string                `json:"references"`
}

func (h *Handler) processes(c *gin.Context) {
	processes := checklist.Processes()

	resp := make([]processResponse, 0, len(processes))
	for _, name := range processes {
		resp = append(resp, processResponse{
			Process:     name,
			Description: checklist.ProcessDescription(name),
			Documents:   checklist.Requirements(name),
			References:  checklist.References(name),
		})
	}

	respond.JSON(c, http.StatusOK, resp)
}
