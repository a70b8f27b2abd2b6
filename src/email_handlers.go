package main

import (
	"net/http"

	"guestdesk/src/types"
	"guestdesk/src/utils"

	"github.com/gin-gonic/gin"
)

func emailHandlers(g *gin.RouterGroup, desk *utils.Desk) *gin.RouterGroup {
	g.
		POST("/emails/send", func(ctx *gin.Context) {
			var body types.SendEmailRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := desk.SendRaw(ctx.Request.Context(), body); err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"ok": true, "message": "Email sent"})
		})
	return g
}
