package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, error) {
	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidParam
	}
	return req, req.validate()
}

func (h *handler) processListInternshipsReq(c *gin.Context) (listInternshipsReq, error) {
	var req listInternshipsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidParam
	}
	return req, req.validate()
}

func (h *handler) processSelectViewReq(c *gin.Context) (selectViewReq, error) {
	var req selectViewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidParam
	}
	return req, nil
}
