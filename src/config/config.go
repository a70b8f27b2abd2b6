package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"guestdesk/src/types"

	"github.com/go-co-op/gocron/v2"
)

type Config struct {
	APIEnv          types.Environment
	Port            string
	MaintenanceMode bool
	AppURL          string
	AppHost         string
	Timezone        string
	Location        *time.Location
	LogFile         string

	SheetsID             string
	SheetName            string
	SheetRange           string
	CredentialsSource    string
	ServiceAccountJSON   string
	ServiceAccountFile   string
	ServiceAccountSecret string
	S3SecretsBucket      string
	AWSIAMRoleARN        string

	MailDriver    string
	EmailFrom     string
	EmailFromName string
	SMTPProvider  string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string

	ReminderCron     string
	ReminderTimeout  time.Duration
	ReminderLanguage string
	ReminderQueue    string
	ReminderTopicARN string
	RedisHost        string
	SweepLockTTL     time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		APIEnv:          types.Environment(getEnvStr(EnvAPIEnv, DefaultAPIEnv)),
		Port:            getEnvStr(EnvPort, DefaultPort),
		MaintenanceMode: getEnvBool(EnvMaintenanceMode, false),
		AppURL:          strings.TrimRight(getEnvStr(EnvAppURL, DefaultAppURL), "/"),
		AppHost:         getEnvStr(EnvAppHost, ""),
		Timezone:        getEnvStr(EnvTimezone, DefaultTimezone),
		LogFile:         getEnvStr(EnvLogFile, ""),

		SheetsID:             getEnvStr(EnvSheetsID, ""),
		SheetName:            getEnvStr(EnvSheetName, DefaultSheetName),
		SheetRange:           getEnvStr(EnvSheetRange, DefaultSheetRange),
		CredentialsSource:    getEnvStr(EnvCredentialsSource, DefaultCredentialsSource),
		ServiceAccountJSON:   getEnvStr(EnvServiceAccountJSON, ""),
		ServiceAccountFile:   getEnvStr(EnvServiceAccountFile, DefaultServiceAccountFile),
		ServiceAccountSecret: getEnvStr(EnvServiceAccountSecret, ""),
		S3SecretsBucket:      getEnvStr(EnvS3SecretsBucket, ""),
		AWSIAMRoleARN:        getEnvStr(EnvAWSIAMRoleARN, ""),

		MailDriver:    getEnvStr(EnvMailDriver, DefaultMailDriver),
		EmailFrom:     getEnvStr(EnvEmailFrom, DefaultEmailFrom),
		EmailFromName: getEnvStr(EnvEmailFromName, DefaultEmailFromName),
		SMTPProvider:  getEnvStr(EnvSMTPProvider, DefaultSMTPProvider),
		SMTPHost:      getEnvStr(EnvSMTPHost, ""),
		SMTPPort:      getEnvNum(EnvSMTPPort, DefaultSMTPPort),
		SMTPUsername:  getEnvStr(EnvSMTPUsername, ""),
		SMTPPassword:  getEnvStr(EnvSMTPPassword, ""),

		ReminderCron:     getEnvStr(EnvReminderCron, DefaultReminderCron),
		ReminderTimeout:  getEnvDuration(EnvReminderTimeout, DefaultReminderTimeout),
		ReminderLanguage: getEnvStr(EnvReminderLanguage, DefaultReminderLanguage),
		ReminderQueue:    getEnvStr(EnvReminderQueue, ""),
		ReminderTopicARN: getEnvStr(EnvReminderTopicARN, ""),
		RedisHost:        getEnvStr(EnvRedisHost, ""),
		SweepLockTTL:     getEnvDuration(EnvSweepLockTTL, DefaultSweepLockTTL),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) IsLocal() bool {
	return cfg.APIEnv == types.Local
}

// FormURL is the guest questionnaire link for a booking.
func (cfg *Config) FormURL(bookingID string) string {
	return fmt.Sprintf("%s/form?bookingId=%s", cfg.AppURL, bookingID)
}

func (cfg *Config) Validate() error {
	var errors []string

	switch cfg.APIEnv {
	case types.Local, types.Test, types.Production:
	default:
		errors = append(errors, fmt.Sprintf("API_ENV must be one of local, test, production, got: %s", cfg.APIEnv))
	}

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("PORT must be between 1 and 65535, got: %s", cfg.Port))
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		errors = append(errors, fmt.Sprintf("TIMEZONE is not a valid location: %s", cfg.Timezone))
	} else {
		cfg.Location = loc
	}

	if cfg.SheetsID == "" {
		errors = append(errors, "GOOGLE_SHEETS_ID cannot be empty")
	}
	if cfg.SheetName == "" {
		errors = append(errors, "SHEET_NAME cannot be empty")
	}

	switch cfg.CredentialsSource {
	case CredentialsFromEnv:
		if cfg.ServiceAccountJSON == "" {
			errors = append(errors, "GOOGLE_SERVICE_ACCOUNT_JSON is required when credentials source is env")
		}
	case CredentialsFromFile:
	case CredentialsFromS3:
		if cfg.S3SecretsBucket == "" {
			errors = append(errors, "S3_SECRETS_BUCKET is required when credentials source is s3")
		}
	case CredentialsFromSecrets:
		if cfg.ServiceAccountSecret == "" {
			errors = append(errors, "GOOGLE_SERVICE_ACCOUNT_SECRET is required when credentials source is secretsmanager")
		}
	default:
		errors = append(errors, fmt.Sprintf("GOOGLE_CREDENTIALS_SOURCE must be one of env, file, s3, secretsmanager, got: %s", cfg.CredentialsSource))
	}

	switch cfg.MailDriver {
	case MailDriverLog, MailDriverSES:
	case MailDriverSMTP:
		if cfg.SMTPProvider == DefaultSMTPProvider && cfg.SMTPHost == "" {
			errors = append(errors, "SMTP_HOST is required when mail driver is smtp")
		}
	default:
		errors = append(errors, fmt.Sprintf("MAIL_DRIVER must be one of log, smtp, ses, got: %s", cfg.MailDriver))
	}

	if cfg.EmailFrom == "" {
		errors = append(errors, "EMAIL_FROM cannot be empty")
	}

	if cfg.ReminderCron != "" {
		if err := validateCron(cfg.ReminderCron); err != nil {
			errors = append(errors, fmt.Sprintf("REMINDER_CRON is not a valid cron expression: %s", cfg.ReminderCron))
		}
	}
	if cfg.ReminderTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("REMINDER_TIMEOUT must be positive, got: %s", cfg.ReminderTimeout))
	}
	if cfg.ReminderLanguage != "ja" && cfg.ReminderLanguage != "en" {
		errors = append(errors, fmt.Sprintf("REMINDER_LANGUAGE must be ja or en, got: %s", cfg.ReminderLanguage))
	}
	if cfg.SweepLockTTL <= 0 {
		errors = append(errors, fmt.Sprintf("SWEEP_LOCK_TTL must be positive, got: %s", cfg.SweepLockTTL))
	}

	if len(errors) > 0 {
		errMsg := "configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}
	return nil
}

// validateCron parses expr the same way the reminder job is scheduled, on a
// scheduler that is never started.
func validateCron(expr string) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	defer sched.Shutdown()
	_, err = sched.NewJob(gocron.CronJob(expr, false), gocron.NewTask(func() {}))
	return err
}

func (cfg *Config) LogConfiguration() {
	log.Printf("[config] env=%s port=%s sheet=%s!%s credentials=%s mail=%s reminder_cron=%q queue=%q redis=%v\n",
		cfg.APIEnv, cfg.Port, cfg.SheetName, cfg.SheetRange, cfg.CredentialsSource, cfg.MailDriver,
		cfg.ReminderCron, cfg.ReminderQueue, cfg.RedisHost != "")
}

func getEnvStr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] Invalid number for %s: %s\n", key, v)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] Invalid duration for %s: %s\n", key, v)
		return fallback
	}
	return d
}
