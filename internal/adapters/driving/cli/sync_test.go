package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

// mockSyncOrchestrator implements driving.SyncOrchestrator for testing.
type mockSyncOrchestrator struct {
	report   *domain.SyncReport
	err      error
	lastDays int
	cleared  bool
}

func (m *mockSyncOrchestrator) Sync(_ context.Context, days int) (*domain.SyncReport, error) {
	m.lastDays = days
	return m.report, m.err
}

func (m *mockSyncOrchestrator) ClearAndSync(_ context.Context, days int) (*domain.SyncReport, error) {
	m.cleared = true
	m.lastDays = days
	return m.report, m.err
}

func okSyncReport() *domain.SyncReport {
	return &domain.SyncReport{
		Generation: "gen-1",
		Days:       120,
		Kinds: map[domain.Kind]domain.KindReport{
			domain.KindSleep:    {Fetched: 10, Persisted: 10, Indexed: 10},
			domain.KindActivity: {Fetched: 5, Persisted: 5, Indexed: 5},
		},
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		syncDays = 0
		syncReset = false
		askShowContext = false
		summaryDays = 7
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestSyncCmd_NotConfigured(t *testing.T) {
	oldSync := syncOrchestrator
	syncOrchestrator = nil
	defer func() { syncOrchestrator = oldSync }()

	_, err := runCommand(t, "sync")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "telemetry is not configured")
}

func TestSyncCmd_PrintsReport(t *testing.T) {
	oldSync := syncOrchestrator
	mock := &mockSyncOrchestrator{report: okSyncReport()}
	syncOrchestrator = mock
	defer func() { syncOrchestrator = oldSync }()

	out, err := runCommand(t, "sync", "--days", "30")

	assert.NoError(t, err)
	assert.Equal(t, 30, mock.lastDays)
	assert.False(t, mock.cleared)
	assert.Contains(t, out, "10 fetched, 10 persisted, 10 chunks")
	assert.Contains(t, out, "Sync complete.")
}

func TestSyncCmd_DefaultDays(t *testing.T) {
	oldSync := syncOrchestrator
	mock := &mockSyncOrchestrator{report: okSyncReport()}
	syncOrchestrator = mock
	defer func() { syncOrchestrator = oldSync }()

	_, err := runCommand(t, "sync")

	assert.NoError(t, err)
	assert.Equal(t, defaultSyncDays, mock.lastDays)
}

func TestSyncCmd_Reset(t *testing.T) {
	oldSync := syncOrchestrator
	mock := &mockSyncOrchestrator{report: okSyncReport()}
	syncOrchestrator = mock
	defer func() { syncOrchestrator = oldSync }()

	_, err := runCommand(t, "sync", "--reset")

	assert.NoError(t, err)
	assert.True(t, mock.cleared)
}

func TestSyncCmd_PartialFailureStillReports(t *testing.T) {
	report := okSyncReport()
	report.Kinds[domain.KindHeartRate] = domain.KindReport{Error: "upstream timeout"}

	oldSync := syncOrchestrator
	syncOrchestrator = &mockSyncOrchestrator{report: report}
	defer func() { syncOrchestrator = oldSync }()

	out, err := runCommand(t, "sync")

	assert.NoError(t, err)
	assert.Contains(t, out, "FAILED: upstream timeout")
	assert.Contains(t, out, "Completed with 1 failed kinds.")
}

func TestSyncCmd_AuthRejected(t *testing.T) {
	oldSync := syncOrchestrator
	syncOrchestrator = &mockSyncOrchestrator{err: domain.ErrAuthInvalid}
	defer func() { syncOrchestrator = oldSync }()

	_, err := runCommand(t, "sync")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "access token was rejected")
}

func TestSyncCmd_AlreadyRunning(t *testing.T) {
	oldSync := syncOrchestrator
	syncOrchestrator = &mockSyncOrchestrator{err: domain.ErrSyncInProgress}
	defer func() { syncOrchestrator = oldSync }()

	_, err := runCommand(t, "sync")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already running")
}

func TestSyncCmd_GenericError(t *testing.T) {
	oldSync := syncOrchestrator
	syncOrchestrator = &mockSyncOrchestrator{err: errors.New("boom")}
	defer func() { syncOrchestrator = oldSync }()

	_, err := runCommand(t, "sync")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sync failed")
}
