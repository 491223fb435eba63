package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-hrportal/internal/attendance"
	"go-hrportal/internal/payroll"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecomputer struct {
	companyID string
	dryRun    bool
	result    payroll.RecomputeResult
	err       error
}

func (f *fakeRecomputer) RecomputeAll(_ context.Context, companyID string, dryRun bool) (payroll.RecomputeResult, error) {
	f.companyID = companyID
	f.dryRun = dryRun
	return f.result, f.err
}

type fakeAbsentMarker struct {
	companyID string
	date      string
}

func (f *fakeAbsentMarker) MarkAbsent(_ context.Context, companyID, date string) (attendance.MarkAbsentResult, error) {
	f.companyID = companyID
	f.date = date
	return attendance.MarkAbsentResult{Date: date, Marked: 4}, nil
}

func runCLI(t *testing.T, deps depsFactory, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(deps)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func noDeps() (*cliDeps, error) {
	return nil, errors.New("deps should not be built")
}

func TestGeofenceCheckCommand(t *testing.T) {
	t.Run("within radius", func(t *testing.T) {
		out, err := runCLI(t, noDeps, "geofence", "check",
			"--office-lat", "-6.2", "--office-lng", "106.816666",
			"--radius", "100",
			"--lat", "-6.2", "--lng", "106.817",
		)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, true, got["within_radius"])
		assert.Equal(t, float64(37), got["distance_meters"])
	})

	t.Run("outside radius", func(t *testing.T) {
		out, err := runCLI(t, noDeps, "geofence", "check",
			"--office-lat", "-6.2", "--office-lng", "106.816666",
			"--radius", "100",
			"--lat", "-6.21", "--lng", "106.816666",
		)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, false, got["within_radius"])
	})

	t.Run("invalid radius", func(t *testing.T) {
		_, err := runCLI(t, noDeps, "geofence", "check",
			"--office-lat", "-6.2", "--office-lng", "106.8",
			"--radius", "0",
			"--lat", "-6.2", "--lng", "106.8",
		)
		assert.Error(t, err)
	})

	t.Run("missing flag", func(t *testing.T) {
		_, err := runCLI(t, noDeps, "geofence", "check", "--lat", "1", "--lng", "1")
		assert.Error(t, err)
	})
}

func TestPayslipRecomputeCommand(t *testing.T) {
	rec := &fakeRecomputer{result: payroll.RecomputeResult{Checked: 3, Drifted: 1, IDs: []string{"p-1"}}}
	closed := false
	deps := func() (*cliDeps, error) {
		return &cliDeps{payroll: rec, close: func() { closed = true }}, nil
	}

	out, err := runCLI(t, deps, "payslip", "recompute", "--company", "c-1", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "c-1", rec.companyID)
	assert.True(t, rec.dryRun)
	assert.True(t, closed)
	assert.Contains(t, out, `"drifted": 1`)
}

func TestPayslipRecomputeCommand_Error(t *testing.T) {
	rec := &fakeRecomputer{err: errors.New("db down")}
	deps := func() (*cliDeps, error) {
		return &cliDeps{payroll: rec, close: func() {}}, nil
	}

	_, err := runCLI(t, deps, "payslip", "recompute", "--company", "c-1")
	assert.EqualError(t, err, "db down")
	assert.False(t, rec.dryRun)
}

func TestAttendanceMarkAbsentCommand(t *testing.T) {
	marker := &fakeAbsentMarker{}
	deps := func() (*cliDeps, error) {
		return &cliDeps{attendance: marker, close: func() {}}, nil
	}

	out, err := runCLI(t, deps, "attendance", "mark-absent", "--company", "c-1", "--date", "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, "c-1", marker.companyID)
	assert.Equal(t, "2026-03-02", marker.date)
	assert.Contains(t, out, `"marked": 4`)
}

func TestSplitRecipients(t *testing.T) {
	assert.Equal(t, []string{"hr@acme.id", "ops@acme.id"}, splitRecipients(" hr@acme.id, ,ops@acme.id "))
	assert.Nil(t, splitRecipients(""))
}

func TestRBACModelPath(t *testing.T) {
	assert.Equal(t, "", rbacModelPath(""))
	assert.Equal(t, "", rbacModelPath("does/not/exist.conf"))
	assert.Equal(t, "cli.go", rbacModelPath("cli.go"))
}
