package inference

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/eleven-am/vision-backend/internal/dto"
	"github.com/eleven-am/vision-backend/internal/shared"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("handler", "inference"),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/grounding/2d", h.Grounding2D)
	g.POST("/spatial/understanding", h.SpatialUnderstanding)
	g.POST("/video/understanding", h.VideoUnderstanding)
	g.POST("/video/understanding/upload", h.VideoUnderstandingUpload)
	g.POST("/image/description", h.ImageDescription)
	g.POST("/document/parsing", h.DocumentParsing)
	g.POST("/ocr/document", h.DocumentOCR)
	g.POST("/ocr/wild", h.WildOCR)
	g.POST("/image/comparison", h.ImageComparison)
}

// respond writes the task envelope with a status derived from the error
// class. Parse failures stay 200: the request was served, the model's
// output just didn't fit the expected shape.
func respond(c echo.Context, resp dto.InferenceResponse, err error) error {
	status := http.StatusOK
	if err != nil {
		status = shared.StatusFor(err)
	}
	return c.JSON(status, resp)
}

func bindError(c echo.Context, err error) error {
	wrapped := shared.InvalidInputf("invalid request body: %v", err)
	return c.JSON(http.StatusBadRequest, dto.FailureResponse(wrapped, nil))
}

// @Summary      2D object grounding
// @Description  Detects and localizes objects in an image, returning bounding boxes in relative coordinates (0-1000)
// @Tags         grounding
// @Accept       json
// @Produce      json
// @Param        request  body      dto.Grounding2DRequest  true  "Grounding request"
// @Success      200      {object}  dto.InferenceResponse
// @Failure      400      {object}  dto.InferenceResponse
// @Router       /v1/grounding/2d [post]
func (h *Handler) Grounding2D(c echo.Context) error {
	var req dto.Grounding2DRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	resp, err := h.service.Grounding2D(c.Request().Context(), req)
	return respond(c, resp, err)
}

// @Summary      Spatial understanding
// @Description  Answers spatial questions about an image: object relationships, positions, and affordances
// @Tags         spatial
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SpatialUnderstandingRequest  true  "Spatial understanding request"
// @Success      200      {object}  dto.InferenceResponse
// @Failure      400      {object}  dto.InferenceResponse
// @Router       /v1/spatial/understanding [post]
func (h *Handler) SpatialUnderstanding(c echo.Context) error {
	var req dto.SpatialUnderstandingRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	resp, err := h.service.SpatialUnderstanding(c.Request().Context(), req)
	return respond(c, resp, err)
}

// @Summary      Video understanding
// @Description  Analyzes a video supplied as a URL, base64 blob, or frame list and answers questions about its content
// @Tags         video
// @Accept       json
// @Produce      json
// @Param        request  body      dto.VideoUnderstandingRequest  true  "Video understanding request"
// @Success      200      {object}  dto.InferenceResponse
// @Failure      400      {object}  dto.InferenceResponse
// @Failure      413      {object}  dto.InferenceResponse
// @Router       /v1/video/understanding [post]
func (h *Handler) VideoUnderstanding(c echo.Context) error {
	var req dto.VideoUnderstandingRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	resp, err := h.service.VideoUnderstanding(c.Request().Context(), req)
	return respond(c, resp, err)
}

// @Summary      Video understanding from upload
// @Description  Analyzes a video file sent directly via multipart upload
// @Tags         video
// @Accept       multipart/form-data
// @Produce      json
// @Param        file        formData  file    true   "Video file to analyze"
// @Param        prompt      formData  string  true   "Question or instruction about the video"
// @Param        max_tokens  formData  int     false  "Maximum tokens to generate"
// @Param        max_frames  formData  int     false  "Maximum frames to process"
// @Param        sample_fps  formData  number  false  "Sampling FPS"
// @Success      200         {object}  dto.InferenceResponse
// @Failure      400         {object}  dto.InferenceResponse
// @Failure      413         {object}  dto.InferenceResponse
// @Router       /v1/video/understanding/upload [post]
func (h *Handler) VideoUnderstandingUpload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.FailureResponse(shared.InvalidInput("file is required"), nil))
	}

	req, err := uploadForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.FailureResponse(err, nil))
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", "error", err, "filename", fileHeader.Filename)
		return c.JSON(http.StatusBadRequest, dto.FailureResponse(shared.InvalidInput("could not read uploaded file"), nil))
	}
	defer src.Close()

	resp, err := h.service.VideoUnderstandingUpload(c.Request().Context(), src, fileHeader.Filename, req)
	return respond(c, resp, err)
}

// uploadForm maps the multipart form fields onto the JSON request
// shape so the upload path shares the body path's defaults.
func uploadForm(c echo.Context) (dto.VideoUnderstandingRequest, error) {
	req := dto.VideoUnderstandingRequest{
		Prompt: c.FormValue("prompt"),
		Task:   c.FormValue("task"),
	}

	if v := c.FormValue("max_tokens"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, shared.InvalidInput("max_tokens must be an integer")
		}
		req.MaxTokens = &n
	}
	if v := c.FormValue("temperature"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, shared.InvalidInput("temperature must be a number")
		}
		req.Temperature = &f
	}
	if v := c.FormValue("top_p"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, shared.InvalidInput("top_p must be a number")
		}
		req.TopP = &f
	}
	if v := c.FormValue("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, shared.InvalidInput("seed must be an integer")
		}
		req.Seed = &n
	}
	if v := c.FormValue("max_frames"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, shared.InvalidInput("max_frames must be an integer")
		}
		req.MaxFrames = &n
	}
	if v := c.FormValue("sample_fps"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, shared.InvalidInput("sample_fps must be a number")
		}
		req.SampleFPS = &f
	}

	return req, nil
}

// @Summary      Image description
// @Description  Generates an image description at the requested level of detail
// @Tags         description
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ImageDescriptionRequest  true  "Description request"
// @Success      200      {object}  dto.InferenceResponse
// @Failure      400      {object}  dto.InferenceResponse
// @Router       /v1/image/description [post]
func (h *Handler) ImageDescription(c echo.Context) error {
	var req dto.ImageDescriptionRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	resp, err := h.service.ImageDescription(c.Request().Context(), req)
	return respond(c, resp, err)
}

// @Summary      Document parsing
// @Description  Converts a document image to HTML, Markdown, or the model's layout-aware qwenvl formats
// @Tags         document
// @Accept       json
// @Produce      json
// @Param        request  body      dto.DocumentParsingRequest  true  "Document parsing request"
// @Success      200      {object}  dto.InferenceResponse
// @Failure      400      {object}  dto.InferenceResponse
// @Router       /v1/document/parsing [post]
func (h *Handler) DocumentParsing(c echo.Context) error {
	var req dto.DocumentParsingRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	resp, err := h.service.DocumentParsing(c.Request().Context(), req)
	return respond(c, resp, err)
}

// @Summary      Document OCR
// @Description  Extracts text from structured documents with optional bounding boxes
// @Tags         ocr
// @Accept       json
// @Produce      json
// @Param        request  body      dto.OCRRequest  true  "OCR request"
// @Success      200      {object}  dto.InferenceResponse
// @Failure      400      {object}  dto.InferenceResponse
// @Router       /v1/ocr/document [post]
func (h *Handler) DocumentOCR(c echo.Context) error {
	var req dto.OCRRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	resp, err := h.service.DocumentOCR(c.Request().Context(), req)
	return respond(c, resp, err)
}

// @Summary      Wild OCR
// @Description  Extracts text from natural scenes: signs, labels, and other surfaces
// @Tags         ocr
// @Accept       json
// @Produce      json
// @Param        request  body      dto.OCRRequest  true  "OCR request"
// @Success      200      {object}  dto.InferenceResponse
// @Failure      400      {object}  dto.InferenceResponse
// @Router       /v1/ocr/wild [post]
func (h *Handler) WildOCR(c echo.Context) error {
	var req dto.OCRRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	resp, err := h.service.WildOCR(c.Request().Context(), req)
	return respond(c, resp, err)
}

// @Summary      Image comparison
// @Description  Compares 2-4 images and reports differences, changes, or similarities
// @Tags         comparison
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ImageComparisonRequest  true  "Comparison request"
// @Success      200      {object}  dto.InferenceResponse
// @Failure      400      {object}  dto.InferenceResponse
// @Router       /v1/image/comparison [post]
func (h *Handler) ImageComparison(c echo.Context) error {
	var req dto.ImageComparisonRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	resp, err := h.service.ImageComparison(c.Request().Context(), req)
	return respond(c, resp, err)
}
