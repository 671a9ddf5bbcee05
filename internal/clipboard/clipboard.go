package clipboard

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	sysclip "github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("clipboard is unavailable")

// Writer is the write-only clipboard primitive.
type Writer interface {
	WriteText(text string) error
}

// Func adapts a plain function to Writer.
type Func func(text string) error

func (f Func) WriteText(text string) error {
	return f(text)
}

type systemWriter struct{}

// System writes through the platform clipboard tool (pbcopy, xclip, xsel,
// wl-copy, the Windows API). Without one it falls back to an OSC 52
// sequence on the controlling terminal.
func System() Writer {
	return systemWriter{}
}

func (systemWriter) WriteText(text string) error {
	if !sysclip.Unsupported {
		if err := sysclip.WriteAll(text); err == nil {
			return nil
		}
	}
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer tty.Close()
	return OSC52(tty, inTmux()).WriteText(text)
}

type osc52Writer struct {
	out  io.Writer
	tmux bool
}

// OSC52 writes the clipboard escape sequence to out. With tmux set the
// sequence is also wrapped in a DCS passthrough.
func OSC52(out io.Writer, tmux bool) Writer {
	return osc52Writer{out: out, tmux: tmux}
}

func (w osc52Writer) WriteText(text string) error {
	sequence := "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\x07"
	if w.tmux {
		if _, err := fmt.Fprintf(w.out, "\x1bPtmux;\x1b%s\x1b\\", sequence); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w.out, sequence)
	return err
}

func inTmux() bool {
	term := os.Getenv("TERM")
	return os.Getenv("TMUX") != "" ||
		strings.HasPrefix(term, "tmux") ||
		strings.HasPrefix(term, "screen")
}
