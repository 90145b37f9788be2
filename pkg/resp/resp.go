package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "created", "data": data})
}
func Modified(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "modified"})
}
func Removed(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "removed"})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}
