package main

import (
	"net/http"

	"guestdesk/src/types"
	"guestdesk/src/utils"

	"github.com/gin-gonic/gin"
)

func formHandlers(g *gin.RouterGroup, desk *utils.Desk) *gin.RouterGroup {
	g.
		GET("/form/:id", func(ctx *gin.Context) {
			var params types.BookingURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			form, err := desk.GetForm(ctx.Request.Context(), params.ID)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": form})
		}).
		POST("/form/submit", func(ctx *gin.Context) {
			var body types.FormSubmitRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			res, err := desk.SubmitForm(ctx.Request.Context(), body.BookingID, *body.FormData)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"ok":         true,
				"bookingId":  body.BookingID,
				"isRevision": res.Record.IsRevision,
				"changes":    res.Changes,
			})
		})
	return g
}
