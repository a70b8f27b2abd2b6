package main

import (
	"net/http"

	"guestdesk/src/utils"

	"github.com/gin-gonic/gin"
)

func reminderHandlers(g *gin.RouterGroup, desk *utils.Desk) *gin.RouterGroup {
	g.
		POST("/reminders/check", func(ctx *gin.Context) {
			report, err := desk.CheckReminders(ctx.Request.Context())
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"ok":            true,
				"runId":         report.RunID,
				"checked":       report.Checked,
				"remindersSent": report.RemindersSent,
				"failed":        report.Failed,
				"results":       report.Results,
			})
		})
	return g
}
