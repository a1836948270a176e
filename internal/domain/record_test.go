package domain

import (
	"strings"
	"testing"
	"time"
)

func TestRenderReport(t *testing.T) {
	now := time.Date(2024, 3, 9, 8, 5, 7, 0, time.Local)
	records := []RenameRecord{
		{OriginalPath: "/in/a.mov", NewFilename: "2024-03-09_P_WS_AM_001.mov"},
		{OriginalPath: "/in/b.mp4", NewFilename: "2024-03-09_P_CU_PM_002.mp4"},
	}

	got := RenderReport("batchrename", now, records, nil)
	want := "Renamed Files Report\n" +
		"====================\n\n" +
		"Script: batchrename\n" +
		"Date: 2024-03-09 08:05:07\n\n" +
		"2024-03-09_P_WS_AM_001.mov\n" +
		"2024-03-09_P_CU_PM_002.mp4"
	if got != want {
		t.Fatalf("unexpected report:\n%s", got)
	}
}

func TestRenderReportListsSkips(t *testing.T) {
	now := time.Date(2024, 3, 9, 8, 5, 7, 0, time.Local)
	got := RenderReport("batchrename", now, nil, []SkipRecord{{Path: "/in/broken.mkv", Reason: "ffprobe failed"}})
	if !strings.Contains(got, "Skipped Files\n") {
		t.Fatalf("expected skipped section, got:\n%s", got)
	}
	if !strings.HasSuffix(got, "/in/broken.mkv: ffprobe failed") {
		t.Fatalf("expected skip line, got:\n%s", got)
	}
}

func TestProbeResultHasMetadata(t *testing.T) {
	meta := NewMediaMetadata("", "h264", "", "", "", "")
	if !Probed(meta).HasMetadata() || !ProbedWithoutVideo(meta).HasMetadata() {
		t.Fatalf("expected metadata for successful probes")
	}
	if ProbeFailure(nil).HasMetadata() {
		t.Fatalf("expected no metadata for failed probe")
	}
	if meta.Duration != NotAvailable || meta.Codec != "h264" {
		t.Fatalf("unexpected defaults: %+v", meta)
	}
}

func TestIsVideoExtension(t *testing.T) {
	for _, ext := range []string{".mov", ".MP4", ".Avi", ".mkv", ".FLV"} {
		if !IsVideoExtension(ext) {
			t.Errorf("expected %s to be a video extension", ext)
		}
	}
	for _, ext := range []string{".txt", ".jpg", "", ".m4v"} {
		if IsVideoExtension(ext) {
			t.Errorf("expected %s to be rejected", ext)
		}
	}
}
