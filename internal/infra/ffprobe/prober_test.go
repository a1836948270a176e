package ffprobe

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"batchrename/internal/domain"
	appErrors "batchrename/internal/errors"
)

const blackmagicJSON = `{
  "streams": [
    {"index": 0, "codec_name": "pcm_s24le", "codec_type": "audio", "tags": {"creation_time": "2000-01-01T00:00:00.000000Z"}},
    {
      "index": 1,
      "codec_name": "prores",
      "codec_type": "video",
      "width": 3840,
      "height": 2160,
      "duration": "12.480000",
      "tags": {"creation_time": "2023-07-04T14:22:10.000000Z", "handler_name": "VideoHandler"}
    }
  ],
  "format": {
    "filename": "A001_C003.mov",
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "tags": {
      "com.blackmagic-design.camera.lensFocalLength": "50.0 mm",
      "com.blackmagic-design.camera.lensType": "Sigma 18-35mm"
    }
  }
}`

func TestParseJSONExtractsVideoAndFormatTags(t *testing.T) {
	result, err := ParseJSON([]byte(blackmagicJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != domain.ProbeOK {
		t.Fatalf("expected ok status, got %s", result.Status)
	}
	meta := result.Metadata
	if meta.Codec != "prores" || meta.Width != "3840" || meta.Height != "2160" || meta.Duration != "12.480000" {
		t.Fatalf("unexpected stream fields: %+v", meta)
	}
	if meta.CreationTime != "2023-07-04T14:22:10.000000Z" {
		t.Fatalf("expected creation time from the video stream, got %q", meta.CreationTime)
	}
	if meta.FocalLength != "50.0 mm" {
		t.Fatalf("unexpected focal length %q", meta.FocalLength)
	}
}

func TestParseJSONDefaultsMissingFields(t *testing.T) {
	result, err := ParseJSON([]byte(`{"streams": [{"codec_type": "video", "codec_name": "h264"}], "format": {}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	meta := result.Metadata
	if meta.Codec != "h264" {
		t.Fatalf("unexpected codec %q", meta.Codec)
	}
	for _, value := range []string{meta.Duration, meta.CreationTime, meta.Width, meta.Height, meta.FocalLength} {
		if value != domain.NotAvailable {
			t.Fatalf("expected sentinel for missing fields, got %+v", meta)
		}
	}
}

func TestParseJSONWithoutVideoStream(t *testing.T) {
	result, err := ParseJSON([]byte(`{"streams": [{"codec_type": "audio"}], "format": {"tags": {"com.blackmagic-design.camera.lensFocalLength": "24mm"}}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != domain.ProbeNoVideoStream || !result.HasMetadata() {
		t.Fatalf("expected metadata without video stream, got %+v", result)
	}
	if result.Metadata.FocalLength != "24mm" || result.Metadata.CreationTime != domain.NotAvailable {
		t.Fatalf("unexpected metadata %+v", result.Metadata)
	}
}

func TestParseJSONRejectsGarbage(t *testing.T) {
	if _, err := ParseJSON([]byte("not json")); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
	if _, err := ParseJSON([]byte(`{}`)); err == nil {
		t.Fatalf("expected error for empty probe output")
	}
}

func TestProbeMissingBinaryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mov")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := Prober{Binary: filepath.Join(t.TempDir(), "no-ffprobe")}.Probe(context.Background(), path)
	if result.Status != domain.ProbeFailed || result.Reason == nil {
		t.Fatalf("expected failed result, got %+v", result)
	}
	if result.HasMetadata() {
		t.Fatalf("failed probe must not carry metadata")
	}
}

func scriptedFFprobe(t *testing.T, output string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("scripted ffprobe needs /bin/sh")
	}
	path := filepath.Join(t.TempDir(), "ffprobe")
	script := "#!/bin/sh\ncat <<'JSON'\n" + output + "\nJSON\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDumpReturnsRawOutput(t *testing.T) {
	prober := Prober{Binary: scriptedFFprobe(t, blackmagicJSON)}

	out, err := prober.Dump(context.Background(), "A001_C003.mov")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), `"com.blackmagic-design.camera.lensType": "Sigma 18-35mm"`) {
		t.Fatalf("expected untouched ffprobe output, got %s", out)
	}

	result := prober.Probe(context.Background(), "A001_C003.mov")
	if !result.HasMetadata() || result.Metadata.FocalLength != "50.0 mm" {
		t.Fatalf("expected parsed metadata, got %+v", result)
	}
}

func TestDumpMissingBinaryFails(t *testing.T) {
	_, err := Prober{Binary: filepath.Join(t.TempDir(), "no-ffprobe")}.Dump(context.Background(), "clip.mov")
	if appErrors.KindOf(err) != appErrors.ProbeFailure {
		t.Fatalf("expected ProbeFailure, got %v", err)
	}
}
