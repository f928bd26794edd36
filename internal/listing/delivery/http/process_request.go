package http

import "github.com/gin-gonic/gin"

func (h *handler) processBrowseRequest(c *gin.Context) (string, browseReq, error) {
	var req browseReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return "", req, errWrongBody
	}
	return c.Param("entity"), req, nil
}

func (h *handler) processChangePageRequest(c *gin.Context) (string, changePageReq, error) {
	var req changePageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", req, errWrongBody
	}
	return c.Param("id"), req, nil
}

func (h *handler) processChangeFilterRequest(c *gin.Context) (string, changeFilterReq, error) {
	var req changeFilterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", req, errWrongBody
	}
	return c.Param("id"), req, nil
}
