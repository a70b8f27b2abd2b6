package main

import (
	"net/http"

	"guestdesk/src/utils"

	"github.com/gin-gonic/gin"
)

func adminHandlers(g *gin.RouterGroup, desk *utils.Desk) *gin.RouterGroup {
	admin := g.Group("/admin")
	admin.
		POST("/seed", func(ctx *gin.Context) {
			n, err := desk.Seed(ctx.Request.Context())
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"ok": true, "inserted": n})
		}).
		POST("/reset", func(ctx *gin.Context) {
			n, err := desk.ResetTestData(ctx.Request.Context())
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"ok": true, "resetCount": n})
		})
	return admin
}
