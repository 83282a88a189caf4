package integrationtests

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vk/satb/internal/app"
	"github.com/vk/satb/internal/cli"
	"github.com/vk/satb/internal/testutil"
)

// writeMXLFixture packs the SATB fixture into an .mxl archive with a
// standard container manifest.
func writeMXLFixture(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	manifest, err := zw.Create("META-INF/container.xml")
	require.NoError(t, err)
	_, err = manifest.Write([]byte(`<container><rootfiles><rootfile full-path="score.musicxml"/></rootfiles></container>`))
	require.NoError(t, err)
	scoreEntry, err := zw.Create("score.musicxml")
	require.NoError(t, err)
	_, err = scoreEntry.Write([]byte(testutil.ScoreSATB))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestPipeline_WatchReprocessesOnChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := testutil.WriteScoreFile(t, dir, "chorale.musicxml")
	outPath := filepath.Join(dir, "chorale-4part.musicxml")

	out := &testutil.SafeBuffer{}
	cfg, _, err := cli.Parse([]string{"-watch", input}, out)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- app.NewApp(out, cfg, nil).Run(ctx)
	}()

	// The initial pass writes the combined score.
	require.Eventually(t, func() bool {
		_, err := os.Stat(outPath)
		return err == nil
	}, 10*time.Second, 50*time.Millisecond, "initial processing should write the output")

	// Remove the output and rewrite the input: the watcher must reprocess.
	require.NoError(t, os.Remove(outPath))
	require.NoError(t, os.WriteFile(input, []byte(testutil.ScoreSATB), 0o644))

	require.Eventually(t, func() bool {
		_, err := os.Stat(outPath)
		return err == nil
	}, 10*time.Second, 50*time.Millisecond, "watch mode should reprocess the changed input")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err, "watch mode should exit cleanly on cancellation")
	case <-time.After(5 * time.Second):
		t.Fatal("watch mode did not exit after context cancellation")
	}
}
