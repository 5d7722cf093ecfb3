package browser

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/bnema/nova/internal/domain"
	"github.com/bnema/nova/internal/ports"
)

type runFunc func(ctx context.Context, name string, args ...string) error

// Launcher opens known sites with the desktop's URL handler.
type Launcher struct {
	goos string
	run  runFunc
}

var _ ports.SiteLauncher = (*Launcher)(nil)

func NewLauncher() *Launcher {
	return &Launcher{goos: runtime.GOOS, run: runCommand}
}

func (l *Launcher) Open(ctx context.Context, site string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, ok := domain.SiteURL(site)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSite, site)
	}

	name, args := openCommand(l.goos, target)
	if err := l.run(ctx, name, args...); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	return nil
}

func openCommand(goos, target string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("locate %s: %w", name, err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
