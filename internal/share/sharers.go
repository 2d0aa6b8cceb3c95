package share

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/andreaprogra/rapport-vocal/internal/logger"
)

// systemSharer hands the PDF to an external share command (xdg-open by
// default, or whatever the deployment configures). Exit code 1 is treated as
// a user cancel so the chain can fall through.
type systemSharer struct {
	command string
	logger  *logger.Logger
}

func NewSystemSharer(command string, logger *logger.Logger) Sharer {
	return &systemSharer{command: command, logger: logger}
}

func (s *systemSharer) Name() string { return "system" }

func (s *systemSharer) Share(ctx context.Context, content Content) error {
	if len(content.PDF) == 0 {
		return ErrShareUnavailable
	}

	command := strings.TrimSpace(s.command)
	if command == "" {
		return ErrShareUnavailable
	}

	parts := strings.Fields(command)
	if _, err := exec.LookPath(parts[0]); err != nil {
		return ErrShareUnavailable
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("%s.pdf", sanitizeFileName(content.Title)))
	if err := os.WriteFile(path, content.PDF, 0o600); err != nil {
		return fmt.Errorf("write pdf for sharing: %w", err)
	}

	args := append(parts[1:], path)
	cmd := exec.CommandContext(ctx, parts[0], args...)
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return ErrShareCancelled
		}
		return fmt.Errorf("share command: %w", err)
	}

	s.logger.Debug().
		Str("func", "systemSharer.Share").
		Str("path", path).
		Msg("pdf handed to share command")
	return nil
}

// textFileSharer writes the report text to the export directory.
type textFileSharer struct {
	dir    string
	logger *logger.Logger
}

func NewTextFileSharer(dir string, logger *logger.Logger) Sharer {
	return &textFileSharer{dir: dir, logger: logger}
}

func (s *textFileSharer) Name() string { return "text-file" }

func (s *textFileSharer) Share(_ context.Context, content Content) error {
	if strings.TrimSpace(s.dir) == "" {
		return ErrShareUnavailable
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return ErrShareUnavailable
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.txt",
		sanitizeFileName(content.Title), time.Now().Format("2006-01-02_15-04-05")))

	body := fmt.Sprintf("%s\n\n%s", content.Title, content.Text)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		return fmt.Errorf("write text export: %w", err)
	}

	s.logger.Debug().
		Str("func", "textFileSharer.Share").
		Str("path", path).
		Msg("report exported as text")
	return nil
}

// clipboardSharer is the last resort: copy title and text to the clipboard.
type clipboardSharer struct {
	logger *logger.Logger
}

func NewClipboardSharer(logger *logger.Logger) Sharer {
	return &clipboardSharer{logger: logger}
}

func (s *clipboardSharer) Name() string { return "clipboard" }

func (s *clipboardSharer) Share(_ context.Context, content Content) error {
	if clipboard.Unsupported {
		return ErrShareUnavailable
	}

	body := fmt.Sprintf("%s\n\n%s", content.Title, content.Text)
	if err := clipboard.WriteAll(body); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	s.logger.Debug().
		Str("func", "clipboardSharer.Share").
		Msg("report copied to clipboard")
	return nil
}

// sanitizeFileName keeps letters, digits, dashes and underscores so a report
// title can serve as a file name on any filesystem.
func sanitizeFileName(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, title)

	if cleaned == "" {
		return "rapport"
	}
	if len(cleaned) > 60 {
		cleaned = cleaned[:60]
	}
	return cleaned
}
