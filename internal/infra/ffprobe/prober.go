// Package ffprobe turns `ffprobe -print_format json` output into the media
// metadata the renamer needs.
package ffprobe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"batchrename/internal/domain"
	appErrors "batchrename/internal/errors"
)

const DefaultBinary = "ffprobe"

// Prober runs one ffprobe call per file.
type Prober struct {
	// Binary defaults to DefaultBinary looked up on PATH.
	Binary string
}

// Probe never returns an error: a crashed or missing ffprobe, or output that
// is not JSON, becomes a failed result carrying the reason.
func (p Prober) Probe(ctx context.Context, path string) domain.ProbeResult {
	out, err := p.Dump(ctx, path)
	if err != nil {
		return domain.ProbeFailure(err)
	}

	result, err := ParseJSON(out)
	if err != nil {
		return domain.ProbeFailure(appErrors.Wrap(appErrors.ProbeFailure, "parse", path, err))
	}
	return result
}

// Dump returns everything ffprobe reports for path as raw JSON.
func (p Prober) Dump(ctx context.Context, path string) ([]byte, error) {
	binary := p.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	cmd := exec.CommandContext(ctx, binary,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return nil, appErrors.Wrap(appErrors.ProbeFailure, binary, path, err)
	}
	return out, nil
}

// ParseJSON converts raw ffprobe JSON output into a probe result.
func ParseJSON(data []byte) (domain.ProbeResult, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.ProbeResult{}, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	if raw.Format == nil && len(raw.Streams) == 0 {
		return domain.ProbeResult{}, errors.New("ffprobe reported neither streams nor format")
	}
	return buildResult(&raw), nil
}

type ffprobeOutput struct {
	Format  *ffprobeFormat  `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Tags map[string]string `json:"tags"`
}

type ffprobeStream struct {
	CodecName string            `json:"codec_name"`
	CodecType string            `json:"codec_type"`
	Width     *int              `json:"width"`
	Height    *int              `json:"height"`
	Duration  string            `json:"duration"`
	Tags      map[string]string `json:"tags"`
}

func buildResult(raw *ffprobeOutput) domain.ProbeResult {
	var focalLength string
	if raw.Format != nil {
		focalLength = raw.Format.Tags[domain.FocalLengthTag]
	}

	video := primaryVideo(raw.Streams)
	if video == nil {
		return domain.ProbedWithoutVideo(domain.NewMediaMetadata("", "", "", "", "", focalLength))
	}

	return domain.Probed(domain.NewMediaMetadata(
		video.Duration,
		video.CodecName,
		video.Tags["creation_time"],
		optionalInt(video.Width),
		optionalInt(video.Height),
		focalLength,
	))
}

func primaryVideo(streams []ffprobeStream) *ffprobeStream {
	for i := range streams {
		if streams[i].CodecType == "video" {
			return &streams[i]
		}
	}
	return nil
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
