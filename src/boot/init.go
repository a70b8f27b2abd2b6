package boot

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"guestdesk/src/config"
	"guestdesk/src/lib"
	awslib "guestdesk/src/lib/aws"
	"guestdesk/src/lib/mailer"
	"guestdesk/src/types"
	"guestdesk/src/utils"

	"github.com/tidwall/gjson"
)

const (
	reminderJobName     = "reminder-sweep"
	checkRemindersEvent = "check-reminders"
)

// LoadCredentials returns the Google service account JSON from the
// configured source.
func LoadCredentials(ctx context.Context, cfg *config.Config) ([]byte, error) {
	switch cfg.CredentialsSource {
	case config.CredentialsFromEnv:
		return []byte(cfg.ServiceAccountJSON), nil
	case config.CredentialsFromFile:
		return os.ReadFile(cfg.ServiceAccountFile)
	case config.CredentialsFromS3:
		key := filepath.Base(cfg.ServiceAccountFile)
		if err := awslib.S3DownloadFile(ctx, cfg.S3SecretsBucket, key, cfg.ServiceAccountFile); err != nil {
			return nil, err
		}
		return os.ReadFile(cfg.ServiceAccountFile)
	case config.CredentialsFromSecrets:
		secret, err := awslib.GetSecretString(ctx, cfg.ServiceAccountSecret)
		if err != nil {
			return nil, err
		}
		return []byte(secret), nil
	}
	return nil, fmt.Errorf("unknown credentials source: %s", cfg.CredentialsSource)
}

func InitStore(ctx context.Context, cfg *config.Config) (*lib.SheetsStore, error) {
	creds, err := LoadCredentials(ctx, cfg)
	if err != nil {
		log.Printf("[boot] Error loading service account credentials: %s\n", err.Error())
		return nil, err
	}
	svc, err := lib.NewSheetsService(ctx, creds)
	if err != nil {
		return nil, err
	}
	return lib.NewSheetsStore(svc, cfg.SheetsID, cfg.SheetName, cfg.SheetRange), nil
}

func DeskOptions(cfg *config.Config) utils.DeskOptions {
	return utils.DeskOptions{
		From:             cfg.EmailFrom,
		FromName:         cfg.EmailFromName,
		Location:         cfg.Location,
		FormURL:          cfg.FormURL,
		ReminderLanguage: types.Language(cfg.ReminderLanguage),
	}
}

// InitDesk wires the sheet store, the mail driver and the optional sweep
// lock and report topic.
func InitDesk(ctx context.Context, cfg *config.Config) (*utils.Desk, error) {
	if cfg.AWSIAMRoleARN != "" {
		lib.SetAWSRole(cfg.AWSIAMRoleARN)
	}
	store, err := InitStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	desk := utils.NewDesk(store, mailer.NewMailer(cfg), DeskOptions(cfg))
	if cfg.RedisHost != "" {
		if rdb := lib.GetRedisClient(cfg.RedisHost); rdb != nil {
			desk.WithSweepLock(lib.NewSweepLock(rdb, cfg.SweepLockTTL))
		}
	}
	if cfg.ReminderTopicARN != "" {
		desk.WithReportPublisher(awslib.NewSNSPublisher(cfg.ReminderTopicARN))
	}
	return desk, nil
}

type Sweeper interface {
	CheckReminders(ctx context.Context) (*types.SweepReport, error)
}

func RunSweep(s Sweeper, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	report, err := s.CheckReminders(ctx)
	if err != nil {
		log.Printf("[boot] Reminder sweep failed: %s\n", err.Error())
		return
	}
	log.Printf("[boot] Reminder sweep %s sent %d, failed %d\n", report.RunID, report.RemindersSent, report.Failed)
}

func InitScheduler(cfg *config.Config, s Sweeper) {
	if cfg.ReminderCron == "" {
		log.Println("[boot] REMINDER_CRON is empty, reminder sweep is not scheduled")
		return
	}
	sched, err := lib.GetScheduler(cfg.Location)
	if err != nil {
		return
	}
	_, err = lib.ScheduleCronJob(sched, reminderJobName, cfg.ReminderCron, func() {
		RunSweep(s, cfg.ReminderTimeout)
	})
	if err != nil {
		return
	}
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler(nil)
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Printf("[boot] Error stopping scheduler: %s\n", err.Error())
	}
}

// IsSweepTrigger reports whether a queue message asks for a reminder sweep.
// Messages delivered through an SNS subscription are unwrapped first. A
// message without an event field counts as a trigger.
func IsSweepTrigger(payload string) bool {
	if !gjson.Valid(payload) {
		return false
	}
	if gjson.Get(payload, "Type").String() == "Notification" {
		payload = gjson.Get(payload, "Message").String()
		if !gjson.Valid(payload) {
			return false
		}
	}
	event := gjson.Get(payload, "event")
	return !event.Exists() || event.String() == checkRemindersEvent
}

func SweepTriggerHandler(s Sweeper, timeout time.Duration) types.Handler {
	return func(payload string) {
		if !IsSweepTrigger(payload) {
			log.Printf("[boot] Ignoring queue message: %.80s\n", payload)
			return
		}
		RunSweep(s, timeout)
	}
}

func InitConsumers(ctx context.Context, cfg *config.Config, s Sweeper) {
	if cfg.ReminderQueue == "" {
		return
	}
	awslib.NewSQSConsumer(cfg.ReminderQueue, SweepTriggerHandler(s, cfg.ReminderTimeout)).Listen(ctx)
}
