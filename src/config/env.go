package config

const (
	EnvAPIEnv          = "API_ENV"
	EnvPort            = "PORT"
	EnvMaintenanceMode = "MAINTENANCE_MODE"
	EnvAppURL          = "APP_URL"
	EnvAppHost         = "APP_HOST"
	EnvTimezone        = "TIMEZONE"
	EnvLogFile         = "LOG_FILE"

	EnvSheetsID             = "GOOGLE_SHEETS_ID"
	EnvSheetName            = "SHEET_NAME"
	EnvSheetRange           = "SHEET_RANGE"
	EnvCredentialsSource    = "GOOGLE_CREDENTIALS_SOURCE"
	EnvServiceAccountJSON   = "GOOGLE_SERVICE_ACCOUNT_JSON"
	EnvServiceAccountFile   = "GOOGLE_SERVICE_ACCOUNT_FILE"
	EnvServiceAccountSecret = "GOOGLE_SERVICE_ACCOUNT_SECRET"
	EnvS3SecretsBucket      = "S3_SECRETS_BUCKET"
	EnvAWSIAMRoleARN        = "AWS_IAM_ROLE_ARN"

	EnvMailDriver    = "MAIL_DRIVER"
	EnvEmailFrom     = "EMAIL_FROM"
	EnvEmailFromName = "EMAIL_FROM_NAME"
	EnvSMTPProvider  = "SMTP_PROVIDER"
	EnvSMTPHost      = "SMTP_HOST"
	EnvSMTPPort      = "SMTP_PORT"
	EnvSMTPUsername  = "SMTP_USERNAME"
	EnvSMTPPassword  = "SMTP_PASSWORD"

	EnvReminderCron     = "REMINDER_CRON"
	EnvReminderTimeout  = "REMINDER_TIMEOUT"
	EnvReminderLanguage = "REMINDER_LANGUAGE"
	EnvReminderQueue    = "REMINDER_QUEUE"
	EnvReminderTopicARN = "REMINDER_TOPIC_ARN"
	EnvRedisHost        = "REDIS_HOST"
	EnvSweepLockTTL     = "SWEEP_LOCK_TTL"
)
