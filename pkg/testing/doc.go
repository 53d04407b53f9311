// Package testing provides test helpers for visuals and canvases.
//
// # Recording
//
// RecordingCanvas implements graphics.Canvas and keeps a serialized list of
// every call, so tests can assert on what a visual draws without
// rasterizing:
//
//	canvas := shadowtest.NewRecordingCanvas(graphics.Size{Width: 200, Height: 100})
//	d.Draw(canvas)
//	if n := canvas.Count("drawPath"); n != 4 {
//	    t.Errorf("expected 4 corner paths, got %d", n)
//	}
//
// # Snapshot Testing
//
// Capture and compare golden snapshots of a visual's draw:
//
//	snapshot := shadowtest.CaptureSnapshot(d, graphics.RectFromLTWH(0, 0, 200, 100))
//	snapshot.MatchesFile(t, "testdata/default_ring.snapshot.json")
//
// Update snapshots with:
//
//	SHADOW_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import shadowtest "github.com/go-drift/shadow/pkg/testing"
package testing
