package annotate

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/steward/pkg/category"
	"github.com/pseudomuto/steward/pkg/model"
	"github.com/pseudomuto/steward/pkg/ui"
)

const (
	// SkipToken leaves the current member without categories
	SkipToken = "s"

	// QuitToken stops the annotation session after confirmation
	QuitToken = "q"

	quitConfirmation = "Are you sure you want to quit annotating the dataset? (progress will be saved)"
)

var (
	// ErrAbort is returned when the operator quits the session. It is not a
	// failure: everything annotated so far is kept and written out.
	ErrAbort = errors.New("annotation aborted by operator")

	// ErrInputClosed is returned when operator input ends before an answer
	// was given.
	ErrInputClosed = errors.New("operator input closed")
)

// CategoryPrompter asks the operator for the data categories of a member.
type CategoryPrompter interface {
	Categories(member model.Member, valid []string, validate bool) ([]string, error)
}

// Prompter reads operator answers line by line.
type Prompter struct {
	in  *bufio.Reader
	out *ui.Printer
}

// NewPrompter returns a Prompter reading answers from in and writing prompts
// to out.
func NewPrompter(in io.Reader, out *ui.Printer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Categories asks for a comma separated list of categories for member.
//
// The answer "s" returns an empty list. The answer "q" asks for confirmation
// and returns ErrAbort when confirmed; otherwise the same question is asked
// again. Any other answer is split on commas and trimmed. When validate is
// set the list must pass category.Validate against valid, and the question
// is repeated until it does. Accepted lists are returned as typed, including
// duplicates.
func (p *Prompter) Categories(member model.Member, valid []string, validate bool) ([]string, error) {
	msg := fmt.Sprintf(
		"Enter comma separated data categories for [%s] [%s: skip, %s: quit]",
		member.MemberName(),
		SkipToken,
		QuitToken,
	)

	for {
		answer, err := p.Prompt(msg)
		if err != nil {
			return nil, err
		}

		response := splitResponse(answer)

		if isToken(response, SkipToken) {
			return []string{}, nil
		}

		if isToken(response, QuitToken) {
			quit, err := p.Confirm(quitConfirmation)
			if err != nil {
				return nil, err
			}
			if quit {
				return nil, ErrAbort
			}
			continue
		}

		if validate {
			if err := category.Validate(response, valid); err != nil {
				slog.Debug("Rejected categories", "member", member.MemberName(), "err", err)
				p.out.Error(
					"[%s] is not a valid data category, please re-confirm and try again!",
					strings.Join(response, ", "),
				)
				continue
			}
		}

		return response, nil
	}
}

// Prompt writes msg and returns the first non-blank line typed by the
// operator.
func (p *Prompter) Prompt(msg string) (string, error) {
	for {
		p.out.Print("%s: ", msg)

		line, err := p.readLine()
		if err != nil {
			return "", err
		}

		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}
}

// Confirm asks a yes/no question. A blank answer means no.
func (p *Prompter) Confirm(msg string) (bool, error) {
	for {
		p.out.Print("%s [y/N]: ", msg)

		line, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		default:
			p.out.Error("Error: invalid input")
		}
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", errors.Wrap(err, "failed to read operator input")
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func splitResponse(answer string) []string {
	parts := strings.Split(answer, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

func isToken(response []string, token string) bool {
	return len(response) == 1 && response[0] == token
}
