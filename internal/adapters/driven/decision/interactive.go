package decision

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driven"
)

// Ensure Interactive implements the interface.
var _ driven.DecisionSource = (*Interactive)(nil)

// applyToAllMarker anywhere in an answer makes it sticky.
const applyToAllMarker = "*"

const (
	kindQuestion = "What kind of assignment is this? Valid options: c, cpp, none\n" +
		"You can put * at the end to mark all assignments as the same type."
	fileCountQuestion = "How many files should be expected with the submission?\n" +
		"You can put * at the end to mark all assignments with the same count."
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	invalidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Interactive asks an operator for each answer, re-prompting until the
// answer is valid. End of input aborts with domain.ErrDecisionAborted.
type Interactive struct {
	mu     sync.Mutex
	reader *bufio.Reader
	out    io.Writer
	color  bool

	// lastHeader avoids repeating the assignment name between the kind and
	// file count questions of the same assignment.
	lastHeader int64
}

// NewInteractive creates an interactive decision source reading answers
// from in and writing prompts to out.
func NewInteractive(in io.Reader, out io.Writer) *Interactive {
	return &Interactive{
		reader:     bufio.NewReader(in),
		out:        out,
		lastHeader: -1,
	}
}

// SetColor enables or disables coloured prompts.
func (i *Interactive) SetColor(c bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.color = c
}

// Kind asks for the assignment kind.
func (i *Interactive) Kind(ctx context.Context, assignment domain.RemoteAssignment) (domain.KindAnswer, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	for {
		line, err := i.ask(ctx, assignment, kindQuestion)
		if err != nil {
			return domain.KindAnswer{}, err
		}

		kind, err := domain.ParseAssignmentKind(strings.ReplaceAll(line, applyToAllMarker, ""))
		if err != nil {
			i.printf(invalidStyle, "%q is not one of c, cpp, none", line)
			continue
		}
		return domain.KindAnswer{
			Kind:       kind,
			ApplyToAll: strings.Contains(line, applyToAllMarker),
		}, nil
	}
}

// FileCount asks for the expected number of files.
func (i *Interactive) FileCount(
	ctx context.Context, assignment domain.RemoteAssignment,
) (domain.FileCountAnswer, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	for {
		line, err := i.ask(ctx, assignment, fileCountQuestion)
		if err != nil {
			return domain.FileCountAnswer{}, err
		}

		raw := strings.TrimSpace(strings.ReplaceAll(line, applyToAllMarker, ""))
		count, err := strconv.Atoi(raw)
		if err != nil || count < 0 {
			i.printf(invalidStyle, "%q is not a file count, enter a whole number such as 1", line)
			continue
		}
		return domain.FileCountAnswer{
			FileCount:  count,
			ApplyToAll: strings.Contains(line, applyToAllMarker),
		}, nil
	}
}

// ask prints the question and reads one trimmed line (caller must hold the lock).
func (i *Interactive) ask(ctx context.Context, assignment domain.RemoteAssignment, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrDecisionAborted, err)
	}

	if i.lastHeader != assignment.ID {
		i.printf(headerStyle, "\nAssignment: %s", assignment.Name)
		i.lastHeader = assignment.ID
	}
	i.printf(questionStyle, "%s", question)
	fmt.Fprint(i.out, "> ")

	input, err := i.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(input) == "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: end of input", domain.ErrDecisionAborted)
		}
		return "", fmt.Errorf("%w: %w", domain.ErrDecisionAborted, err)
	}
	return strings.TrimSpace(input), nil
}

func (i *Interactive) printf(style lipgloss.Style, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if i.color {
		line = style.Render(line)
	}
	fmt.Fprintln(i.out, line)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
