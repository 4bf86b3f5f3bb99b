package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/confounds/internal/confounds"
	"github.com/banshee-data/confounds/internal/fsutil"
	"github.com/banshee-data/confounds/internal/table"
)

const sampleTSV = "trans_x\ttrans_y\ttrans_z\trot_x\trot_y\trot_z\tcsf\twhite_matter\tcosine00\n" +
	"0.1\t0.2\t0.3\t0.4\t0.5\t0.6\t100\t90\t0.9\n" +
	"0.2\t0.3\t0.4\t0.5\t0.6\t0.7\t101\t91\t0.8\n" +
	"0.3\t0.4\t0.5\t0.6\t0.7\t0.8\t102\t92\t0.7\n"

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	t.Run("preset name", func(t *testing.T) {
		t.Parallel()
		cats, err := confounds.Resolve(parseStrategy("minimal"))
		require.NoError(t, err)
		assert.Len(t, cats, 3)
	})

	t.Run("comma list", func(t *testing.T) {
		t.Parallel()
		cats, err := confounds.Resolve(parseStrategy("motion,global"))
		require.NoError(t, err)
		assert.Equal(t, []confounds.Category{confounds.Motion, confounds.GlobalSignal}, cats)
	})
}

func TestInputStem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"data/sub-01_desc-confounds_regressors.tsv", "sub-01"},
		{"data/sub-02_task-rest_space-MNI152_bold.nii.gz", "sub-02_task-rest"},
		{"plain.tsv", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, inputStem(tt.in), "input %s", tt.in)
	}
}

func TestBuildOptionsBadMode(t *testing.T) {
	t.Parallel()

	cfg := Config{Motion: "cubic", WMCSF: "basic", GlobalSignal: "basic", Strategy: "minimal"}
	_, err := buildOptions(cfg, fsutil.NewMemoryFileSystem())
	assert.ErrorContains(t, err, "-motion")
}

func TestRun(t *testing.T) {
	t.Parallel()

	fsys := fsutil.NewMemoryFileSystem()
	require.NoError(t, fsys.WriteFile("sub-01_desc-confounds_regressors.tsv", []byte(sampleTSV), 0644))

	cfg := Config{
		Inputs:       []string{"sub-01_desc-confounds_regressors.tsv"},
		OutputDir:    "out",
		Strategy:     "minimal",
		Motion:       "basic",
		WMCSF:        "basic",
		GlobalSignal: "basic",
		PCAMotion:    1,
		Report:       true,
	}
	require.NoError(t, run(cfg, fsys))

	reduced, err := table.ReadTSV(fsys, "out/sub-01_reduced.tsv")
	require.NoError(t, err)
	assert.Equal(t, 9, reduced.NumCols())
	assert.Equal(t, 3, reduced.Rows())

	assert.True(t, fsys.Exists("out/sub-01_qc.html"), "QC report should be written")
}

func TestRunBadInput(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Inputs:       []string{"missing.tsv"},
		OutputDir:    "out",
		Strategy:     "minimal",
		Motion:       "basic",
		WMCSF:        "basic",
		GlobalSignal: "basic",
		PCAMotion:    1,
	}
	err := run(cfg, fsutil.NewMemoryFileSystem())
	assert.ErrorContains(t, err, "missing.tsv")
}
