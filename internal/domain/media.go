package domain

import "strings"

// NotAvailable marks a metadata field the probe did not report. It can end up
// in a filename, so it must stay free of path separators.
const NotAvailable = "N-A"

// FocalLengthTag is the format-level tag Blackmagic cameras use for the lens
// focal length, e.g. "50.0 mm".
const FocalLengthTag = "com.blackmagic-design.camera.lensFocalLength"

type MediaMetadata struct {
	Duration     string
	Codec        string
	CreationTime string
	Width        string
	Height       string
	FocalLength  string
}

// Fields returns the metadata as labelled pairs in display order.
func (m MediaMetadata) Fields() [][2]string {
	return [][2]string{
		{"Video Duration", m.Duration},
		{"Video Codec", m.Codec},
		{"Date", m.CreationTime},
		{"Width", m.Width},
		{"Height", m.Height},
		{"Focal Length", m.FocalLength},
	}
}

type ProbeStatus int

const (
	ProbeOK ProbeStatus = iota
	ProbeNoVideoStream
	ProbeFailed
)

func (s ProbeStatus) String() string {
	switch s {
	case ProbeOK:
		return "ok"
	case ProbeNoVideoStream:
		return "no video stream"
	default:
		return "failed"
	}
}

// ProbeResult is the outcome of probing one file. A result without a video
// stream still carries the container level metadata; a failed one carries
// none.
type ProbeResult struct {
	Status   ProbeStatus
	Metadata MediaMetadata
	Reason   error
}

func Probed(meta MediaMetadata) ProbeResult {
	return ProbeResult{Status: ProbeOK, Metadata: meta}
}

func ProbedWithoutVideo(meta MediaMetadata) ProbeResult {
	return ProbeResult{Status: ProbeNoVideoStream, Metadata: meta}
}

func ProbeFailure(reason error) ProbeResult {
	return ProbeResult{Status: ProbeFailed, Reason: reason}
}

func (r ProbeResult) HasMetadata() bool {
	return r.Status != ProbeFailed
}

func IsVideoExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".mov", ".mp4", ".avi", ".mkv", ".flv":
		return true
	default:
		return false
	}
}

// orNA substitutes NotAvailable for empty values.
func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return NotAvailable
	}
	return value
}

// NewMediaMetadata builds metadata from raw probe values, filling gaps with
// NotAvailable.
func NewMediaMetadata(duration, codec, creationTime, width, height, focalLength string) MediaMetadata {
	return MediaMetadata{
		Duration:     orNA(duration),
		Codec:        orNA(codec),
		CreationTime: orNA(creationTime),
		Width:        orNA(width),
		Height:       orNA(height),
		FocalLength:  orNA(focalLength),
	}
}
