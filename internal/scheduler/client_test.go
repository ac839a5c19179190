package scheduler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
)

type testConfig struct {
	redisURL string
}

func (c testConfig) GetRedisURL() string              { return c.redisURL }
func (c testConfig) GetRedisTLSInsecure() bool        { return false }
func (c testConfig) GetAsynqQueueName() string        { return "default" }
func (c testConfig) GetAsynqConcurrency() int         { return 1 }
func (c testConfig) GetRescanInterval() time.Duration { return time.Hour }

func TestScheduleCompanyRescan(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(testConfig{redisURL: "redis://" + mr.Addr()})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer client.Close()

	if err := client.ScheduleCompanyRescan(context.Background(), "Acme"); err != nil {
		t.Fatalf("schedule rescan: %v", err)
	}

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: mr.Addr()})
	defer inspector.Close()

	tasks, err := inspector.ListScheduledTasks("default")
	if err != nil {
		t.Fatalf("list scheduled tasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 scheduled task, got %d", len(tasks))
	}
	if tasks[0].Type != TaskCompanyRescan {
		t.Fatalf("expected task type %q, got %q", TaskCompanyRescan, tasks[0].Type)
	}

	var payload CompanyRescanPayload
	if err := json.Unmarshal(tasks[0].Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Company != "Acme" {
		t.Fatalf("expected Acme payload, got %q", payload.Company)
	}

	// A second schedule for the same company is deduplicated.
	if err := client.ScheduleCompanyRescan(context.Background(), "Acme"); err != nil {
		t.Fatalf("duplicate schedule should be a no-op, got %v", err)
	}
	tasks, err = inspector.ListScheduledTasks("default")
	if err != nil {
		t.Fatalf("list scheduled tasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected deduplicated task, got %d", len(tasks))
	}
}

func TestNewClientRequiresRedisURL(t *testing.T) {
	if _, err := NewClient(testConfig{}); err == nil {
		t.Fatalf("expected error without redis url")
	}
}

func TestCompanyRescanTaskRoundTrip(t *testing.T) {
	task, err := NewCompanyRescanTask(CompanyRescanPayload{Company: "Acme"})
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	payload, err := ParseCompanyRescanPayload(task)
	if err != nil {
		t.Fatalf("parse payload: %v", err)
	}
	if payload.Company != "Acme" {
		t.Fatalf("expected Acme, got %q", payload.Company)
	}
}
