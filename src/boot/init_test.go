package boot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"guestdesk/src/config"
	"guestdesk/src/lib"
	"guestdesk/src/types"

	"github.com/go-co-op/gocron/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls int
	err   error
}

func (s *countingSweeper) CheckReminders(ctx context.Context) (*types.SweepReport, error) {
	s.calls++
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("missing deadline")
	}
	if s.err != nil {
		return nil, s.err
	}
	return &types.SweepReport{RunID: "run"}, nil
}

func TestIsSweepTrigger(t *testing.T) {
	assert.True(t, IsSweepTrigger(`{}`))
	assert.True(t, IsSweepTrigger(`{"event":"check-reminders"}`))
	assert.False(t, IsSweepTrigger(`{"event":"something-else"}`))
	assert.False(t, IsSweepTrigger(`not json`))

	wrapped := `{"Type":"Notification","Message":"{\"event\":\"check-reminders\"}"}`
	assert.True(t, IsSweepTrigger(wrapped))
	assert.False(t, IsSweepTrigger(`{"Type":"Notification","Message":"hello"}`))
}

func TestSweepTriggerHandler(t *testing.T) {
	s := &countingSweeper{}
	h := SweepTriggerHandler(s, time.Minute)

	h(`{"event":"check-reminders"}`)
	h(`{"event":"other"}`)
	h(`garbage`)
	assert.Equal(t, 1, s.calls)

	s.err = errors.New("sheet unavailable")
	h(`{}`)
	assert.Equal(t, 2, s.calls)
}

func TestLoadCredentials(t *testing.T) {
	ctx := context.Background()

	creds, err := LoadCredentials(ctx, &config.Config{
		CredentialsSource:  config.CredentialsFromEnv,
		ServiceAccountJSON: `{"type":"service_account"}`,
	})
	require.Nil(t, err)
	assert.JSONEq(t, `{"type":"service_account"}`, string(creds))

	file := filepath.Join(t.TempDir(), "sa.json")
	require.Nil(t, os.WriteFile(file, []byte(`{"client_email":"x"}`), 0o600))
	creds, err = LoadCredentials(ctx, &config.Config{CredentialsSource: config.CredentialsFromFile, ServiceAccountFile: file})
	require.Nil(t, err)
	assert.Equal(t, `{"client_email":"x"}`, string(creds))

	_, err = LoadCredentials(ctx, &config.Config{CredentialsSource: "carrier-pigeon"})
	assert.EqualError(t, err, "unknown credentials source: carrier-pigeon")
}

func TestDeskOptions(t *testing.T) {
	cfg := &config.Config{
		EmailFrom:        "noreply@yumedono.com",
		EmailFromName:    "Yumedono",
		AppURL:           "https://guests.example.com",
		Location:         time.UTC,
		ReminderLanguage: "en",
	}
	opts := DeskOptions(cfg)
	assert.Equal(t, types.LANG_EN, opts.ReminderLanguage)
	assert.Equal(t, "https://guests.example.com/form?bookingId=BK-1", opts.FormURL("BK-1"))
}

func useScheduler(t *testing.T) gocron.Scheduler {
	sched, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	require.Nil(t, err)
	lib.NewScheduler(sched)
	t.Cleanup(func() { lib.NewScheduler(nil) })
	return sched
}

func TestInitScheduler(t *testing.T) {
	sched := useScheduler(t)
	cfg := &config.Config{ReminderCron: "0 9 * * *", ReminderTimeout: time.Minute, Location: time.UTC}

	InitScheduler(cfg, &countingSweeper{})
	require.Len(t, sched.Jobs(), 1)
	assert.Equal(t, "reminder-sweep", sched.Jobs()[0].Name())

	StopScheduler()
}

func TestInitSchedulerWithoutCron(t *testing.T) {
	sched := useScheduler(t)

	InitScheduler(&config.Config{Location: time.UTC}, &countingSweeper{})
	assert.Empty(t, sched.Jobs())

	StopScheduler()
}
