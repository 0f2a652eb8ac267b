// Package open launches URLs with the system's default handler.
package open

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/vidrock-cli/vidrock/constant"
)

// ErrNotWebURL is returned when the input is not an absolute http(s) URL.
var ErrNotWebURL = errors.New("not an http(s) URL")

// Run opens the given URL and waits for the handler to exit.
func Run(input string) error {
	cmd, err := command(input)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Start opens the given URL without waiting.
func Start(input string) error {
	cmd, err := command(input)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Validate reports whether input can be handed to the system browser.
func Validate(input string) error {
	u, err := url.Parse(input)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrNotWebURL, input)
	}
	return nil
}

func command(input string) (*exec.Cmd, error) {
	if err := Validate(input); err != nil {
		return nil, err
	}

	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
	case constant.Darwin:
		return exec.Command("open", input), nil
	case constant.Linux:
		return exec.Command("xdg-open", input), nil
	case constant.Android:
		return exec.Command("termux-open-url", input), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}
