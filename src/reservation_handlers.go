package main

import (
	"log"
	"net/http"

	"guestdesk/src/types"
	"guestdesk/src/utils"

	"github.com/gin-gonic/gin"
)

func reservationHandlers(g *gin.RouterGroup, desk *utils.Desk) *gin.RouterGroup {
	g.
		GET("/reservations", func(ctx *gin.Context) {
			var filters types.ReservationQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			data, err := desk.ListReservations(ctx.Request.Context(), filters)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"reservations": data, "total": len(data)})
		}).
		GET("/reservations/summary", func(ctx *gin.Context) {
			summary, err := desk.Summary(ctx.Request.Context())
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": summary})
		}).
		GET("/reservations/:id", func(ctx *gin.Context) {
			var params types.BookingURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			detail, err := desk.GetReservation(ctx.Request.Context(), params.ID)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": detail})
		}).
		POST("/reservations/status", func(ctx *gin.Context) {
			var body types.UpdateStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			res, err := desk.UpdateStatus(ctx.Request.Context(), body.BookingID, string(body.Status))
			if err != nil {
				log.Printf("Error updating status of %s: %s\n", body.BookingID, err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"ok": true, "reservation": res})
		}).
		POST("/reservations/:id/emails", func(ctx *gin.Context) {
			var params types.BookingURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.SendReservationEmailRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			res, err := desk.SendReservationEmail(ctx.Request.Context(), params.ID, body.Type, body.Language)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"ok": true, "record": res.Record, "reservation": res.Reservation})
		})
	return g
}
