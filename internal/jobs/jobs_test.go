package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f readFactory) Create() queries.UoW {
	return f.factory.New()
}

type stubJob struct {
	name     string
	startErr error
	log      *[]string
}

func (j stubJob) Name() string { return j.name }

func (j stubJob) Start() error {
	if j.startErr != nil {
		return j.startErr
	}
	*j.log = append(*j.log, "start "+j.name)
	return nil
}

func (j stubJob) Stop() {
	*j.log = append(*j.log, "stop "+j.name)
}

func newSummaryHandler(t *testing.T) queries.GetDispatchSummaryQueryHandler {
	t.Helper()
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, slog.New(slog.DiscardHandler))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	l := ledger.New()
	_, err := l.Settle(2_000, 1_000)
	require.NoError(t, err)
	require.NoError(t, uow.LedgerRepository().Save(ctx, l))
	require.NoError(t, uow.Commit(ctx))

	return queries.NewGetDispatchSummaryQueryHandler(readFactory{factory: factory})
}

func TestDispatchSummaryJob_Run(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	job := jobs.NewDispatchSummaryJob(newSummaryHandler(t), "@every 1h", logger)
	job.Run(context.Background())

	assert.Contains(t, buf.String(), "Dispatch summary")
	assert.Contains(t, buf.String(), "revenue=18.00")
	assert.Contains(t, buf.String(), "driver_pay=2.00")
	assert.Contains(t, buf.String(), "completed=1")
}

func TestDispatchSummaryJob_StartStop(t *testing.T) {
	job := jobs.NewDispatchSummaryJob(newSummaryHandler(t), "@every 1h", slog.New(slog.DiscardHandler))
	require.NoError(t, job.Start())
	job.Stop()

	bad := jobs.NewDispatchSummaryJob(newSummaryHandler(t), "every hour", slog.New(slog.DiscardHandler))
	assert.Error(t, bad.Start())
}

func TestJobManager_StartAll(t *testing.T) {
	var log []string
	jm := jobs.NewJobManager(stubJob{name: "a", log: &log}, nil, stubJob{name: "b", log: &log})

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, log)
}

func TestJobManager_StopsStartedJobsOnFailure(t *testing.T) {
	var log []string
	jm := jobs.NewJobManager(
		stubJob{name: "a", log: &log},
		stubJob{name: "b", log: &log, startErr: errors.New("bad schedule")},
		stubJob{name: "c", log: &log},
	)

	err := jm.StartAll()
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to start b job")
	assert.Equal(t, []string{"start a", "stop a"}, log)
}
