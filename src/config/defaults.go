package config

import "time"

const (
	DefaultAPIEnv   = "local"
	DefaultPort     = "9090"
	DefaultAppURL   = "http://localhost:3000"
	DefaultTimezone = "Asia/Tokyo"

	DefaultSheetName          = "Reservations"
	DefaultSheetRange         = "A1:AD"
	DefaultCredentialsSource  = CredentialsFromEnv
	DefaultServiceAccountFile = "service-account.json"

	DefaultMailDriver    = MailDriverLog
	DefaultEmailFrom     = "noreply@yumedono.com"
	DefaultEmailFromName = "Yumedono"
	DefaultSMTPProvider  = "default"
	DefaultSMTPPort      = 587

	DefaultReminderCron     = "0 9 * * *"
	DefaultReminderTimeout  = 5 * time.Minute
	DefaultReminderLanguage = "ja"
	DefaultSweepLockTTL     = 10 * time.Minute
)

const (
	CredentialsFromEnv     = "env"
	CredentialsFromFile    = "file"
	CredentialsFromS3      = "s3"
	CredentialsFromSecrets = "secretsmanager"
)

const (
	MailDriverLog  = "log"
	MailDriverSMTP = "smtp"
	MailDriverSES  = "ses"
)
