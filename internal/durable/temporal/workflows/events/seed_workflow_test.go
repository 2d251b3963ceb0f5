package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/converter"
	"go.temporal.io/sdk/testsuite"
	"go.temporal.io/sdk/workflow"

	eventsmemory "github.com/Apurer/action-repo-api/internal/domains/events/adapters/memory"
	eventsapp "github.com/Apurer/action-repo-api/internal/domains/events/application"
	eventsports "github.com/Apurer/action-repo-api/internal/domains/events/ports"
	eventactivities "github.com/Apurer/action-repo-api/internal/durable/temporal/activities/events"
)

func newSeedTestEnv(t *testing.T, repo eventsports.Repository) *testsuite.TestWorkflowEnvironment {
	t.Helper()
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	acts := eventactivities.NewActivities(eventsapp.NewService(repo), repo)
	env.RegisterWorkflowWithOptions(EventSeedWorkflow, workflow.RegisterOptions{Name: EventSeedWorkflowName})
	env.RegisterActivityWithOptions(acts.PrepareSchema, activity.RegisterOptions{Name: eventactivities.PrepareSchemaActivityName})
	env.RegisterActivityWithOptions(acts.ResetEvents, activity.RegisterOptions{Name: eventactivities.ResetEventsActivityName})
	env.RegisterActivityWithOptions(acts.InsertSampleEvents, activity.RegisterOptions{Name: eventactivities.InsertSampleEventsActivityName})
	env.RegisterActivityWithOptions(acts.CountEvents, activity.RegisterOptions{Name: eventactivities.CountEventsActivityName})
	return env
}

func TestEventSeedWorkflow_SeedsSampleEvents(t *testing.T) {
	repo := eventsmemory.NewRepository()
	env := newSeedTestEnv(t, repo)
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	env.SetStartTime(start)

	env.ExecuteWorkflow(EventSeedWorkflowName, EventSeedWorkflowInput{TraceID: "trace-1"})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	var result eventsports.SeedResult
	require.NoError(t, env.GetWorkflowResult(&result))
	require.Equal(t, eventsports.SeedResult{Inserted: 3, Total: 3}, result)

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.True(t, events[0].Timestamp.Equal(start), "workflow time anchors the sample timestamps")
	require.Equal(t, 1, repo.SchemaRuns())
}

func TestEventSeedWorkflow_ResetRunsBeforeInsert(t *testing.T) {
	repo := eventsmemory.NewRepository()
	_, err := eventsapp.NewService(repo).Seed(context.Background(), eventsports.SeedInput{})
	require.NoError(t, err)
	env := newSeedTestEnv(t, repo)

	var order []string
	env.SetOnActivityStartedListener(func(info *activity.Info, _ context.Context, _ converter.EncodedValues) {
		order = append(order, info.ActivityType.Name)
	})
	env.ExecuteWorkflow(EventSeedWorkflowName, EventSeedWorkflowInput{Seed: eventsports.SeedInput{Reset: true}})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	var result eventsports.SeedResult
	require.NoError(t, env.GetWorkflowResult(&result))
	require.Equal(t, int64(3), result.Total)
	require.Equal(t, []string{
		eventactivities.PrepareSchemaActivityName,
		eventactivities.ResetEventsActivityName,
		eventactivities.InsertSampleEventsActivityName,
		eventactivities.CountEventsActivityName,
	}, order)
}

type lockedRepo struct {
	*eventsmemory.Repository
}

func (lockedRepo) EnsureSchema(context.Context) error {
	return errors.New("permission denied")
}

func TestEventSeedWorkflow_FailsWhenSchemaCannotBePrepared(t *testing.T) {
	repo := lockedRepo{Repository: eventsmemory.NewRepository()}
	env := newSeedTestEnv(t, repo)

	env.ExecuteWorkflow(EventSeedWorkflowName, EventSeedWorkflowInput{})

	require.True(t, env.IsWorkflowCompleted())
	require.ErrorContains(t, env.GetWorkflowError(), "permission denied")
	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, total)
}
