package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "interiorquote/internal/adapter/http/dto/request"
	response "interiorquote/internal/adapter/http/dto/response"
	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase"
	"interiorquote/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidItems   = pkg.NewDomainErrorSimple("INVALID_ITEMS", "Items must be a non-empty array", http.StatusBadRequest)
)

// QuoteHandler exposes the quote lifecycle: generate, edit, preview,
// finalize and the client decision.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Generate godoc
// @Summary      Generate the quote of a project
// @Description  Builds the bill of quantities, prices it and stores a draft. Regenerating overwrites the current quote and bumps its version.
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      201  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /projects/{id}/quote [post]
func (h *QuoteHandler) Generate(c *gin.Context) {
	projectID := c.Param("id")
	log.Printf("[quote][handler] generate start project_id=%s", projectID)

	q, err := h.usecase.Generate(c.Request.Context(), projectID)
	if err != nil {
		log.Printf("[quote][handler] generate failed project_id=%s err=%v", projectID, err)
		respondError(c, mapQuoteError(err))
		return
	}
	log.Printf("[quote][handler] generate success project_id=%s quote_id=%s version=%d", projectID, q.ID, q.Version)

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// GetByProject godoc
// @Summary  Get the current quote of a project
// @Tags     quotes
// @Produce  json
// @Param    id   path      string  true  "Project ID"
// @Success  200  {object}  response.QuoteResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /projects/{id}/quote [get]
func (h *QuoteHandler) GetByProject(c *gin.Context) {
	q, err := h.usecase.GetByProjectID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// Get godoc
// @Summary  Get a quote
// @Tags     quotes
// @Produce  json
// @Param    id   path      string  true  "Quote ID"
// @Success  200  {object}  response.QuoteResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// UpdateItems godoc
// @Summary      Replace the items of a quote
// @Description  Recomputes every line total and the grand total and bumps the version. Send expected_version to reject stale edits with 409.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Quote ID"
// @Param        payload  body      request.UpdateItemsRequest  true  "Items"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /quotes/{id}/items [put]
func (h *QuoteHandler) UpdateItems(c *gin.Context) {
	quoteID := c.Param("id")

	var payload request.UpdateItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	items, err := payload.DecodeItems()
	if err != nil {
		log.Printf("[quote][handler] update-items invalid payload quote_id=%s err=%v", quoteID, err)
		respondError(c, errInvalidItems)
		return
	}

	q, err := h.usecase.UpdateItems(c.Request.Context(), quoteID, items, payload.ExpectedVersion)
	if err != nil {
		log.Printf("[quote][handler] update-items failed quote_id=%s err=%v", quoteID, err)
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// Preview godoc
// @Summary  Render the quote document
// @Tags     quotes
// @Produce  json
// @Param    id   path      string  true  "Quote ID"
// @Success  200  {object}  response.QuoteResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  500  {object}  pkg.HTTPError
// @Router   /quotes/{id}/preview [post]
func (h *QuoteHandler) Preview(c *gin.Context) {
	q, err := h.usecase.Preview(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// Finalize godoc
// @Summary      Send the quote to the client
// @Description  Renders the latest document, marks the quote as sent and emails it. outcome tells whether the client was notified.
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.FinalizeResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /quotes/{id}/finalize [post]
func (h *QuoteHandler) Finalize(c *gin.Context) {
	quoteID := c.Param("id")
	log.Printf("[quote][handler] finalize start quote_id=%s", quoteID)

	res, err := h.usecase.Finalize(c.Request.Context(), quoteID)
	if err != nil {
		log.Printf("[quote][handler] finalize failed quote_id=%s err=%v", quoteID, err)
		respondError(c, mapQuoteError(err))
		return
	}
	log.Printf("[quote][handler] finalize success quote_id=%s outcome=%s", quoteID, res.Outcome)

	c.JSON(http.StatusOK, response.FromFinalizeResult(res))
}

// SetDecision godoc
// @Summary  Record the client decision on a sent quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id       path      string                   true  "Quote ID"
// @Param    payload  body      request.DecisionRequest  true  "approved or rejected"
// @Success  200      {object}  response.QuoteResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  409      {object}  pkg.HTTPError
// @Router   /quotes/{id}/decision [patch]
func (h *QuoteHandler) SetDecision(c *gin.Context) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	q, err := h.usecase.SetDecision(c.Request.Context(), c.Param("id"), entities.QuoteStatus(payload.Status))
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ExportExcel godoc
// @Summary  Download the quote as a spreadsheet
// @Tags     quotes
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    id   path  string  true  "Quote ID"
// @Success  200  {file}  file
// @Failure  404  {object}  pkg.HTTPError
// @Router   /quotes/{id}/export/excel [get]
func (h *QuoteHandler) ExportExcel(c *gin.Context) {
	b, filename, err := h.usecase.ExportExcel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, b)
}

func mapQuoteError(err error) *pkg.AppError {
	var genErr *usecase.GenerationError
	var renderErr *usecase.RenderError

	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidQuoteID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidItems):
		return errInvalidItems
	case errors.Is(err, usecase.ErrInvalidDecision):
		return pkg.NewDomainErrorSimple("INVALID_DECISION", "Decision must be approved or rejected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteVersionConflict):
		return pkg.NewDomainErrorSimple("QUOTE_VERSION_CONFLICT", "Quote was modified by another request", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Quote status does not allow this operation", http.StatusConflict)
	case errors.As(err, &genErr):
		return pkg.NewDomainError("GENERATION_FAILED", "Quote generation failed", genErr.Err, http.StatusInternalServerError)
	case errors.As(err, &renderErr):
		return pkg.NewDomainError("RENDER_FAILED", "Document rendering failed", renderErr.Err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
