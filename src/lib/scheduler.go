package lib

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var scheduler gocron.Scheduler

func NewScheduler(s gocron.Scheduler) {
	scheduler = s
}

func GetScheduler(loc *time.Location) (gocron.Scheduler, error) {
	if scheduler != nil {
		return scheduler, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	sched, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		log.Printf("[scheduler] Error initializing Scheduler: %s\n", err.Error())
		return nil, err
	}
	scheduler = sched
	return sched, nil
}

// ScheduleCronJob registers task on a cron expression. A run still in
// progress when the next tick fires makes that tick reschedule.
func ScheduleCronJob(sched gocron.Scheduler, name, expr string, task func()) (string, error) {
	j, err := sched.NewJob(
		gocron.CronJob(expr, false),
		gocron.NewTask(task),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("[scheduler] Error creating job %s: %s\n", name, err.Error())
		return "", err
	}
	log.Printf("[scheduler] Job %s scheduled as %s (%s)\n", name, j.ID().String(), expr)
	return j.ID().String(), nil
}
