package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/chronogrog/internal/errors"
	"github.com/felixgeelhaar/chronogrog/internal/exitcode"
	"github.com/felixgeelhaar/chronogrog/internal/plan"
	"github.com/felixgeelhaar/chronogrog/internal/resource"
	"github.com/felixgeelhaar/chronogrog/internal/schedule"
	"github.com/felixgeelhaar/chronogrog/internal/version"
)

func TestAllocate_NoConflicts(t *testing.T) {
	res := runCLI(t, "", "allocate", "-i", goldenInput)
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout,
		"phase 3 (Damned Squirrel Mk. II/Brew Day): mashtun -> Mash Tun #4 from 2020-01-04 11 to 2020-01-04 17\n")
	assert.Contains(t, res.stdout, "fermentor -> Fermentor One #1")
	assert.True(t, strings.HasSuffix(res.stdout, "6 assigned, 0 conflicts\n"), res.stdout)
}

func TestAllocate_Conflicts(t *testing.T) {
	res := runCLI(t, stoutsYAML, "allocate")
	require.NoError(t, res.err, "conflicts only fail with --strict")

	assert.Contains(t, res.stdout, "phase 2 (Dry Stout/Primary): fermentor -> Only Fermentor #1")
	assert.Contains(t, res.stdout,
		"phase 4 (Oatmeal Stout/Primary): fermentor unavailable from 2020-01-01 to 2020-01-11, next free 2020-01-11 00\n")
	assert.Contains(t, res.stdout, "1 assigned, 1 conflicts\n")
	assert.Contains(t, res.stderr, "level=WARN")
	assert.Contains(t, res.stderr, "resource requests could not be met")
	assert.Contains(t, res.stderr, "conflicts=1")
}

func TestAllocate_Strict(t *testing.T) {
	res := runCLI(t, stoutsYAML, "allocate", "--strict")

	require.Error(t, res.err)
	assert.Equal(t, exitcode.AllocationConflict, exitcode.DetermineExitCode(res.err))
	assert.Contains(t, res.stdout, "1 conflicts", "the report is written before failing")
}

func TestAllocate_StrictFromConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("allocate:\n  strict: true\n"), 0o600))

	res := runCLI(t, stoutsYAML, "allocate", "--config", cfgPath)

	require.Error(t, res.err)
	assert.Equal(t, exitcode.AllocationConflict, exitcode.DetermineExitCode(res.err))
}

func TestAllocate_JSON(t *testing.T) {
	res := runCLI(t, stoutsYAML, "allocate", "--format", "json")
	require.NoError(t, res.err)

	var report plan.Report
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
	require.Len(t, report.Assignments, 1)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, 1, report.Assignments[0].Resource.ID)
	assert.Equal(t, resource.Fermentor, report.Conflicts[0].ResourceType)
	require.NotNil(t, report.Conflicts[0].NextAvailable)
	assert.Equal(t, time.Date(2020, 1, 11, 0, 0, 1, 0, time.UTC), report.Conflicts[0].NextAvailable.UTC())
}

func TestAllocate_YAML(t *testing.T) {
	res := runCLI(t, stoutsYAML, "allocate", "-f", "yaml")
	require.NoError(t, res.err)

	var report plan.Report
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &report))
	require.Len(t, report.Assignments, 1)
	assert.Equal(t, "Only Fermentor", report.Assignments[0].Resource.Name)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, 4, report.Conflicts[0].PhaseID)
}

func TestAllocate_UnknownFormat(t *testing.T) {
	res := runCLI(t, stoutsYAML, "allocate", "-f", "csv")
	require.Error(t, res.err)
	assert.Equal(t, exitcode.UsageError, exitcode.DetermineExitCode(res.err))
	assert.Empty(t, res.stdout)
}

func TestValidate(t *testing.T) {
	res := runCLI(t, "", "validate", "-i", goldenInput)
	require.NoError(t, res.err)

	s, err := schedule.LoadFile(goldenInput)
	require.NoError(t, err)
	fingerprint, err := schedule.Fingerprint(s)
	require.NoError(t, err)

	assert.Contains(t, res.stdout, `✓ schedule "Brewery Production Schedule" is valid`)
	assert.Contains(t, res.stdout, "recipes:     2\n")
	assert.Contains(t, res.stdout, "phases:      6\n")
	assert.Contains(t, res.stdout, "resources:   6\n")
	assert.Contains(t, res.stdout, "fingerprint: "+fingerprint+"\n")
}

func TestSchemaErrorsAreFatal(t *testing.T) {
	doc := `{"name": "No Color", "timeline": {"start": "2020-01-01"},
		"recipes": [{"name": "Plain", "phases": []}]}`

	for _, args := range [][]string{{}, {"render"}, {"allocate"}, {"validate"}} {
		t.Run(strings.Join(append([]string{"root"}, args...), " "), func(t *testing.T) {
			res := runCLI(t, doc, args...)
			require.Error(t, res.err)
			assert.True(t, errors.HasCode(res.err, errors.ErrCodeSchemaInvalidValue), res.err.Error())
			assert.Equal(t, exitcode.InvalidInput, exitcode.DetermineExitCode(res.err))
			assert.Empty(t, res.stdout)
		})
	}
}

func TestReview_RequiresInputFile(t *testing.T) {
	res := runCLI(t, readFile(t, goldenInput), "review")

	require.Error(t, res.err)
	assert.Equal(t, exitcode.UsageError, exitcode.DetermineExitCode(res.err))
}

func TestInit_NonInteractive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starter.yaml")

	res := runCLI(t, "", "init", "--yes", "-o", path,
		"--name", "Garage", "--start", "2021-03-01", "--equipment", "mashtun,kettle,fermentor,keg")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "✓ Wrote "+path)

	s, err := schedule.LoadFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	assert.Equal(t, "Garage", s.Name)
	assert.Len(t, s.Resources, 4)

	// the scaffold renders
	rendered := runCLI(t, "", "-i", path)
	require.NoError(t, rendered.err)
	assert.True(t, strings.HasPrefix(rendered.stdout, "[1] House Pale Ale\n"), rendered.stdout)

	// and allocates without conflicts
	allocated := runCLI(t, "", "allocate", "-i", path)
	require.NoError(t, allocated.err)
	assert.Contains(t, allocated.stdout, "0 conflicts")
}

func TestInit_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o600))

	res := runCLI(t, "", "init", "--yes", "-o", path)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "IO-003")
	assert.Equal(t, "keep me", readFile(t, path))

	res = runCLI(t, "", "init", "--yes", "--force", "-o", path)
	require.NoError(t, res.err)
	assert.NotEqual(t, "keep me", readFile(t, path))
}

func TestInit_InvalidValues(t *testing.T) {
	dir := t.TempDir()

	for _, args := range [][]string{
		{"--start", "next week"},
		{"--color", "brown"},
	} {
		path := filepath.Join(dir, "starter.yaml")
		res := runCLI(t, "", append([]string{"init", "--yes", "-o", path}, args...)...)
		require.Error(t, res.err, args)
		assert.Equal(t, exitcode.UsageError, exitcode.DetermineExitCode(res.err))
		assert.NoFileExists(t, path)
	}
}

func TestVersion(t *testing.T) {
	t.Run("short", func(t *testing.T) {
		res := runCLI(t, "", "version")
		require.NoError(t, res.err)
		assert.Equal(t, "chronogrog "+version.GetInfo().Short()+"\n", res.stdout)
	})

	t.Run("json", func(t *testing.T) {
		res := runCLI(t, "", "version", "--json")
		require.NoError(t, res.err)

		var info version.Info
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &info))
		assert.Equal(t, version.GetInfo(), info)
	})

	t.Run("verbose", func(t *testing.T) {
		res := runCLI(t, "", "version", "-v")
		require.NoError(t, res.err)
		assert.Equal(t, version.GetInfo().String()+"\n", res.stdout)
	})
}
