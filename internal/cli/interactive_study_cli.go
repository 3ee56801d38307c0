// Package cli runs interactive study sessions in the terminal and prints
// artifacts, streaks and the dashboard.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/briefly/internal/streak"
)

var errEnd = errors.New("end")

// ActivityRecorder counts a finished study session towards the streak.
type ActivityRecorder interface {
	RecordActivityNow(ctx context.Context) (streak.StudyStreak, error)
}

//go:generate mockgen -source=interactive_study_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli

// Session runs one step of a study session. It returns errEnd once every item was studied.
type Session interface {
	Session(ctx context.Context) error
}

// InteractiveStudyCLI contains the terminal plumbing shared by study sessions.
type InteractiveStudyCLI struct {
	recorder     ActivityRecorder
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	correct      *color.Color
	wrong        *color.Color
}

func newInteractiveStudyCLI(recorder ActivityRecorder, stdin io.Reader, stdout io.Writer) *InteractiveStudyCLI {
	return &InteractiveStudyCLI{
		recorder:     recorder,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		correct:      color.New(color.FgGreen),
		wrong:        color.New(color.FgRed),
	}
}

// Run steps through session until it ends, then records the study activity.
// An interrupted session is not recorded.
func (cli *InteractiveStudyCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		for ctx.Err() == nil {
			if err := session.Session(ctx); err != nil {
				errCh <- err
				return
			}
		}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
		return nil
	case err := <-errCh:
		if err == nil {
			return nil
		}
		if !errors.Is(err, errEnd) {
			return fmt.Errorf("error: %w", err)
		}
	}

	current, err := cli.recorder.RecordActivityNow(ctx)
	if err != nil {
		return fmt.Errorf("RecordActivityNow() > %w", err)
	}
	fmt.Fprintf(cli.stdoutWriter, "Study streak: %s\n", cli.bold.Sprint(dayCount(current.Current)))
	return nil
}

func (cli *InteractiveStudyCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func dayCount(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
