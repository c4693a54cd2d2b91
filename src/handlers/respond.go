package handlers

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope: {"ok": true, "data": ...}
// on success, {"ok": false, "error": "..."} on failure.

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"ok": true, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"ok": false, "error": message})
}
