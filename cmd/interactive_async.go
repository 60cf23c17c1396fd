//go:build !windows

// interactive_async.go - Asynchroner Modus
// Wartet per poll auf Eingaben und gibt zwischen zwei Tasten periodische
// Meldungen aus, ohne die Eingabezeile zu zerstoeren (Hide/Show).
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/ollama/comlin/readline"
)

// pollInterval bestimmt, wie schnell Meldungen und Groessenaenderungen
// zwischen zwei Tasten angezeigt werden.
const pollInterval = 100 * time.Millisecond

// runAsync startet den Meldungs-Erzeuger und die Eingabeschleife. Endet die
// Eingabe, wird der Erzeuger ueber den Context beendet.
func runAsync(ctx context.Context, s *session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages := make(chan string)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return produceAsync(gctx, s.opts.Interval, messages)
	})

	g.Go(func() error {
		defer cancel()

		winch := make(chan os.Signal, 1)
		signal.Notify(winch, unix.SIGWINCH)
		defer signal.Stop(winch)

		for {
			line, err := s.readAsync(gctx, messages, winch)
			switch {
			case errors.Is(err, io.EOF), errors.Is(err, readline.ErrInterrupt), errors.Is(err, context.Canceled):
				return nil
			case err != nil:
				return err
			}

			if err := s.handleLine(line); err != nil {
				return err
			}
		}
	})

	return g.Wait()
}

// produceAsync schickt in jedem Intervall eine nummerierte Meldung.
func produceAsync(ctx context.Context, interval time.Duration, out chan<- string) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for counter := 0; ; counter++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		select {
		case out <- fmt.Sprintf("Async output %d.", counter):
		case <-ctx.Done():
			return nil
		}
	}
}

// readAsync editiert eine Zeile mit Start/Feed/Stop. Solange keine Taste
// anliegt, werden Meldungen und Groessenaenderungen verarbeitet.
func (s *session) readAsync(ctx context.Context, messages <-chan string, winch <-chan os.Signal) (string, error) {
	if err := s.rl.Start(s.opts.Prompt); err != nil {
		return "", err
	}

	for {
		ready, err := pollInput(s.rl.Terminal.InputFd(), pollInterval)
		if err != nil {
			//nolint:errcheck
			s.rl.Stop()
			return "", err
		}

		if ready {
			done, err := s.rl.Feed()
			if !done && err != nil {
				return "", err
			}
			if done {
				stopErr := s.rl.Stop()
				if err != nil {
					return s.rl.Text(), err
				}
				return s.rl.Text(), stopErr
			}
		}

		select {
		case <-ctx.Done():
			//nolint:errcheck
			s.rl.Stop()
			return "", ctx.Err()
		case msg := <-messages:
			if err := s.printAbove(msg); err != nil {
				return "", err
			}
		case <-winch:
			if err := s.resize(); err != nil {
				return "", err
			}
		default:
		}
	}
}

// printAbove gibt msg ueber der Eingabezeile aus.
func (s *session) printAbove(msg string) error {
	if err := s.rl.Hide(); err != nil {
		return err
	}
	// im Raw-Mode fehlt die Umsetzung von \n nach \r\n
	fmt.Fprintf(s.out, "%s\r\n", msg)
	return s.rl.Show()
}

// resize uebernimmt die neue Fensterbreite und zeichnet die Zeile neu.
func (s *session) resize() error {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		slog.Debug("could not read terminal size", "error", err)
		return nil
	}

	if err := s.rl.Hide(); err != nil {
		return err
	}
	s.rl.SetColumns(width)
	slog.Debug("terminal resized", "columns", width)
	return s.rl.Show()
}

// pollInput wartet hoechstens timeout auf lesbare Daten an fd. Ohne
// Deskriptor wird sofort gelesen.
func pollInput(fd int, timeout time.Duration) (bool, error) {
	if fd < 0 {
		return true, nil
	}

	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, int(timeout.Milliseconds()))
	if errors.Is(err, unix.EINTR) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("poll: %w", err)
	}

	return n > 0 && fds[0].Revents != 0, nil
}
