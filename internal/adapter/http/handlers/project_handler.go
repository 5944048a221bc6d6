package handlers

import (
	"errors"
	"log"
	"net/http"

	request "interiorquote/internal/adapter/http/dto/request"
	response "interiorquote/internal/adapter/http/dto/response"
	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase"
	"interiorquote/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// Create godoc
// @Summary  Submit a design request
// @Tags     projects
// @Accept   json
// @Produce  json
// @Param    payload  body      request.ProjectRequest  true  "Project"
// @Success  201      {object}  response.ProjectResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidProjectPayload)
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[project][handler] create failed owner_id=%s err=%v", payload.OwnerID, err)
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p))
}

// List returns the projects of an owner (?owner_id=).
func (h *ProjectHandler) List(c *gin.Context) {
	ps, err := h.usecase.ListByOwner(c.Request.Context(), c.Query("owner_id"))
	if err != nil {
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(ps))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidProjectPayload)
		return
	}

	in := payload.ToEntity()
	in.ID = c.Param("id")
	p, err := h.usecase.Update(c.Request.Context(), in)
	if err != nil {
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	var payload request.ProjectStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	p, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.ProjectStatus(payload.Status))
	if err != nil {
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

// GeneratePreview asks the image provider for a rendering of the requested
// style and stores its URL on the project.
func (h *ProjectHandler) GeneratePreview(c *gin.Context) {
	projectID := c.Param("id")
	log.Printf("[project][handler] preview-image start project_id=%s", projectID)

	p, err := h.usecase.GeneratePreview(c.Request.Context(), projectID)
	if err != nil {
		log.Printf("[project][handler] preview-image failed project_id=%s err=%v", projectID, err)
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func mapProjectError(err error) *pkg.AppError {
	var genErr *usecase.GenerationError

	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidProjectInput):
		return errInvalidProjectPayload
	case errors.Is(err, usecase.ErrInvalidProjectStatus):
		return pkg.NewDomainErrorSimple("INVALID_PROJECT_STATUS", "Unknown project status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.As(err, &genErr):
		return pkg.NewDomainError("GENERATION_FAILED", "Preview generation failed", genErr.Err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
