package handler

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"retailapi/internal/apierror"
	"retailapi/internal/resource"

	"github.com/gin-gonic/gin"
)

// bindBody decodes the request JSON object keeping the distinction between a
// missing key and an explicit null. An empty body decodes to an empty object.
// Returns false after recording the error; the caller should return immediately.
func bindBody(c *gin.Context) (resource.Body, bool) {
	body := resource.Body{}
	if c.Request.Body == nil {
		return body, true
	}
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		fail(c, apierror.BadRequest("JSON inválido: se esperaba un objeto"))
		return nil, false
	}
	return body, true
}

// parseID reads the positive integer :id path parameter.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, apierror.BadRequest("ID inválido"))
		return 0, false
	}
	return id, true
}

// fail hands err to middleware.ErrorHandler, which writes the response.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
