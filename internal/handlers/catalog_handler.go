package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/audit"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
)

// CatalogRepository is the CRUD surface shared by services, professionals,
// products and expenses.
type CatalogRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Add(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, item T) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type CatalogHandler[T any] struct {
	repo   CatalogRepository[T]
	entity string
	audit  *audit.Dispatcher
}

func NewCatalogHandler[T any](
	repo CatalogRepository[T],
	entity string,
	audit *audit.Dispatcher,
) *CatalogHandler[T] {
	return &CatalogHandler[T]{repo: repo, entity: entity, audit: audit}
}

func (h *CatalogHandler[T]) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, items)
}

func (h *CatalogHandler[T]) Create(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		invalidRequest(c, err)
		return
	}

	created, err := h.repo.Add(c.Request.Context(), item)
	if err != nil {
		writeError(c, err)
		return
	}

	h.dispatch(c, "created", "")
	httpresp.Created(c, created)
}

// Update replaces the whole record; the id comes from the path.
func (h *CatalogHandler[T]) Update(c *gin.Context) {
	id := c.Param("id")

	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		invalidRequest(c, err)
		return
	}

	found, err := h.repo.Update(c.Request.Context(), id, item)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		httperr.NotFound(c, h.entity+"_not_found", "Registro não encontrado.")
		return
	}

	h.dispatch(c, "updated", id)
	httpresp.NoContent(c)
}

func (h *CatalogHandler[T]) Delete(c *gin.Context) {
	id := c.Param("id")

	found, err := h.repo.Remove(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		httperr.NotFound(c, h.entity+"_not_found", "Registro não encontrado.")
		return
	}

	h.dispatch(c, "deleted", id)
	httpresp.NoContent(c)
}

func (h *CatalogHandler[T]) dispatch(c *gin.Context, verb, id string) {
	h.audit.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextSubject),
		Action:   h.entity + "_" + verb,
		Entity:   h.entity,
		EntityID: id,
	})
}
