package http

import (
	"agenda-bff/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListEntities - Lists the paginated collections this service exposes
// @Summary List collections
// @Description Returns every list (cadastros, agendamentos) with its page size and filter options
// @Tags Lists
// @Produce json
// @Success 200 {array} entityResp
// @Router /api/v1/lists [get]
func (h *handler) ListEntities(c *gin.Context) {
	response.OK(c, h.newEntitiesResp(h.uc.Entities()))
}

// Browse - Fetches a single page without opening a session
// @Summary Browse a list page
// @Description Fetches one page of a list. Upstream failures are reported in the view's error field.
// @Tags Lists
// @Produce json
// @Param entity path string true "List name" Enums(cadastros, agendamentos)
// @Param page query int false "1-based page number" default(1)
// @Param filtro query string false "Filter value"
// @Success 200 {object} viewResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/lists/{entity} [get]
func (h *handler) Browse(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	entity, req, err := h.processBrowseRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "listing.delivery.http.Browse: processBrowseRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	// 2. Call UseCase
	view, err := h.uc.Browse(ctx, entity, req.Page, req.Filter)
	if err != nil {
		h.l.Warnf(ctx, "listing.delivery.http.Browse: usecase Browse failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newViewResp(view))
}

// Filters - Filter options of a list
// @Summary List filter options
// @Description Returns the selectable filter options. An empty array means the list takes free text.
// @Tags Lists
// @Produce json
// @Param entity path string true "List name" Enums(cadastros, agendamentos)
// @Success 200 {array} filterOptionResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/lists/{entity}/filters [get]
func (h *handler) Filters(c *gin.Context) {
	ctx := c.Request.Context()

	opts, err := h.uc.Filters(ctx, c.Param("entity"))
	if err != nil {
		h.l.Warnf(ctx, "listing.delivery.http.Filters: usecase Filters failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newFilterOptionsResp(opts))
}

// OpenSession - Opens a list session and loads its first page
// @Summary Open a list session
// @Description Creates a stateful list controller and performs the initial load (page 1, default filter)
// @Tags Sessions
// @Produce json
// @Param entity path string true "List name" Enums(cadastros, agendamentos)
// @Success 201 {object} sessionResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/lists/{entity}/sessions [post]
func (h *handler) OpenSession(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.uc.Open(ctx, c.Param("entity"))
	if err != nil {
		h.l.Warnf(ctx, "listing.delivery.http.OpenSession: usecase Open failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, sessionResp{ID: sess.ID, View: h.newViewResp(sess.View)})
}

// GetSession - Current view of a session
// @Summary Get session view
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} viewResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/sessions/{id} [get]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	view, err := h.uc.Get(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newViewResp(view))
}

// ChangePage - Moves a session to another page
// @Summary Change page
// @Description Pages outside 1..total_pages are ignored and reported with changed=false
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body changePageReq true "Target page"
// @Success 200 {object} changePageResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/sessions/{id}/page [put]
func (h *handler) ChangePage(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	id, req, err := h.processChangePageRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "listing.delivery.http.ChangePage: processChangePageRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	// 2. Call UseCase
	view, changed, err := h.uc.ChangePage(ctx, id, *req.Page)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, changePageResp{Changed: changed, View: h.newViewResp(view)})
}

// ChangeFilter - Schedules a filter change
// @Summary Change filter
// @Description The fetch runs after the debounce delay; follow /events or poll the session for the result
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body changeFilterReq true "New filter, empty to clear"
// @Success 202 {object} viewResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/sessions/{id}/filter [put]
func (h *handler) ChangeFilter(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	id, req, err := h.processChangeFilterRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "listing.delivery.http.ChangeFilter: processChangeFilterRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	// 2. Call UseCase
	view, err := h.uc.ChangeFilter(ctx, id, *req.Filter)
	if err != nil {
		h.l.Warnf(ctx, "listing.delivery.http.ChangeFilter: usecase ChangeFilter failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Accepted(c, h.newViewResp(view))
}

// Retry - Repeats the last attempted fetch
// @Summary Retry
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} viewResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/sessions/{id}/retry [post]
func (h *handler) Retry(c *gin.Context) {
	ctx := c.Request.Context()

	view, err := h.uc.Retry(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newViewResp(view))
}

// CloseSession - Closes a session
// @Summary Close session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/sessions/{id} [delete]
func (h *handler) CloseSession(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Close(ctx, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
