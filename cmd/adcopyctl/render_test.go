package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"adcopy/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Cache", "Deleted"},
		[][]string{{"interpretations", "12"}, {"landing pages"}},
		[]columnAlignment{alignLeft, alignRight},
	)

	assert.Contains(t, out, "interpretations")
	assert.Contains(t, out, "landing pages")
	assert.Contains(t, out, "12")
	assert.Empty(t, renderTable(nil, nil, nil))
}

func TestPrintScan_Empty(t *testing.T) {
	var buf bytes.Buffer
	printScan(&buf, nil, nil)

	assert.Equal(t, "Nothing to clean up\n", buf.String())
}

func TestPrintScan_CountsBothDomains(t *testing.T) {
	var buf bytes.Buffer
	printScan(&buf, []string{"/tmp/adcopy/a.mp4", "/tmp/adcopy/b.wav"}, []string{"audio/c.wav"})

	out := buf.String()
	assert.Contains(t, out, "a.mp4")
	assert.Contains(t, out, "audio/c.wav")
	assert.Contains(t, out, "2 stale temp files, 1 stale objects")
}

func TestPrintCleanupReport_ListsFailures(t *testing.T) {
	started := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	report := &usecase.CleanupReport{
		StartedAt:  started,
		FinishedAt: started.Add(1500 * time.Millisecond),
		TempFiles: usecase.DeletionReport{
			Scanned: 2,
			Deleted: 1,
			Failed:  1,
			Outcomes: []usecase.DeletionOutcome{
				{Target: "/tmp/adcopy/a.mp4", Deleted: true},
				{Target: "/tmp/adcopy/b.wav", Error: "permission denied"},
			},
		},
		Objects: usecase.DeletionReport{ScanErr: "bucket unavailable"},
	}

	var buf bytes.Buffer
	printCleanupReport(&buf, report)

	out := buf.String()
	assert.Contains(t, out, "bucket unavailable")
	assert.Contains(t, out, "permission denied")
	assert.NotContains(t, out, "a.mp4")
	assert.True(t, strings.HasSuffix(out, "Finished in 1.5s\n"))
}

func TestTokenCommand_RejectsInvalidUser(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"token", "--user", "not-a-uuid"})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --user")
}
