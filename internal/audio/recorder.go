package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/google/uuid"

	"github.com/andreaprogra/rapport-vocal/internal/config"
	"github.com/andreaprogra/rapport-vocal/internal/logger"
	"github.com/andreaprogra/rapport-vocal/models"
)

// captureTool describes one known command-line capture tool and the format
// it produces. Args receives the output path last.
type captureTool struct {
	mime   string
	binary string
	args   func(outPath string) []string
}

// knownTools maps a base MIME type to the capture command producing it. The
// preferred-format order from the configuration decides which entry wins.
var knownTools = map[string]captureTool{
	"audio/ogg": {
		mime:   "audio/ogg",
		binary: "ffmpeg",
		args: func(out string) []string {
			return []string{"-hide_banner", "-loglevel", "error", "-f", "pulse", "-i", "default", "-c:a", "libopus", out}
		},
	},
	"audio/webm": {
		mime:   "audio/webm",
		binary: "ffmpeg",
		args: func(out string) []string {
			return []string{"-hide_banner", "-loglevel", "error", "-f", "pulse", "-i", "default", "-c:a", "libopus", "-f", "webm", out}
		},
	},
	"audio/mp3": {
		mime:   "audio/mp3",
		binary: "ffmpeg",
		args: func(out string) []string {
			return []string{"-hide_banner", "-loglevel", "error", "-f", "pulse", "-i", "default", "-c:a", "libmp3lame", out}
		},
	},
	"audio/wav": {
		mime:   "audio/wav",
		binary: "arecord",
		args: func(out string) []string {
			return []string{"-f", "cd", "-t", "wav", out}
		},
	},
}

type execRecorder struct {
	tool   captureTool
	logger *logger.Logger

	mu      sync.Mutex
	cmd     *exec.Cmd
	outPath string
}

// NewExecRecorder picks the first preferred format whose capture tool is
// installed, mirroring how capture format negotiation worked historically.
// Returns ErrNoRecorder when none is available; callers can still offer file
// upload in that case.
func NewExecRecorder(cfg config.Ingestion, logger *logger.Logger) (Recorder, error) {
	for _, format := range cfg.PreferredFormats {
		tool, ok := knownTools[baseMIME(format)]
		if !ok {
			continue
		}
		if _, err := exec.LookPath(tool.binary); err != nil {
			continue
		}

		logger.Debug().
			Str("func", "NewExecRecorder").
			Str("format", tool.mime).
			Str("binary", tool.binary).
			Msg("capture tool selected")
		return &execRecorder{tool: tool, logger: logger}, nil
	}

	return nil, ErrNoRecorder
}

func (r *execRecorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cmd != nil {
		return ErrAlreadyRecording
	}

	outPath := filepath.Join(os.TempDir(), fmt.Sprintf("rapport-vocal-%s%s", uuid.NewString(), extensionFor(r.tool.mime)))

	cmd := exec.CommandContext(ctx, r.tool.binary, r.tool.args(outPath)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start capture tool: %w", err)
	}

	r.cmd = cmd
	r.outPath = outPath

	r.logger.Debug().
		Str("func", "execRecorder.Start").
		Str("out", outPath).
		Msg("recording started")
	return nil
}

func (r *execRecorder) Stop() (models.Recording, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cmd == nil {
		return models.Recording{}, ErrNotRecording
	}

	cmd, outPath := r.cmd, r.outPath
	r.cmd, r.outPath = nil, ""

	// SIGINT lets the tool finalize the container; a hard kill would leave
	// a truncated file that the transcription webhook rejects.
	if err := cmd.Process.Signal(syscall.SIGINT); err != nil {
		_ = cmd.Process.Kill()
	}
	_ = cmd.Wait()

	defer os.Remove(outPath)

	data, err := os.ReadFile(outPath)
	if err != nil {
		return models.Recording{}, fmt.Errorf("read captured audio: %w", err)
	}
	if len(data) == 0 {
		return models.Recording{}, fmt.Errorf("capture produced no audio data")
	}

	r.logger.Debug().
		Str("func", "execRecorder.Stop").
		Int("bytes", len(data)).
		Msg("recording stopped")

	return models.Recording{Data: data, MIME: r.tool.mime}, nil
}

func (r *execRecorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cmd != nil
}

// baseMIME strips codec parameters: "audio/webm;codecs=opus" -> "audio/webm".
func baseMIME(mime string) string {
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return strings.ToLower(strings.TrimSpace(mime))
}

func extensionFor(mime string) string {
	switch baseMIME(mime) {
	case "audio/ogg":
		return ".ogg"
	case "audio/webm":
		return ".webm"
	case "audio/mp3", "audio/mpeg":
		return ".mp3"
	case "audio/wav":
		return ".wav"
	case "audio/mp4", "audio/m4a":
		return ".m4a"
	default:
		return ".bin"
	}
}
