package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	gkerrors "github.com/wexinc/gatekeep/internal/errors"
	"github.com/wexinc/gatekeep/internal/tui/styles"
)

// ErrInputClosed is returned when standard input ends before the session
// was exited through the menu.
var ErrInputClosed = errors.New("input closed")

// maxLineSize is the longest input line Ask accepts.
const maxLineSize = 1024 * 1024

// Prompter reads answers line by line and writes styled console output.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Prompter{
		in:  scanner,
		out: out,
	}
}

// Ask prints prompt and returns the next input line without its line
// ending. It returns ErrInputClosed at end of input.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, styles.PromptStyle.Render(prompt))
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(p.out)
		return "", ErrInputClosed
	}
	return strings.TrimRight(p.in.Text(), "\r"), nil
}

// Confirm asks a yes/no question. Only "yes" (any case) confirms.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	answer, err := p.Ask(prompt + " (yes/no): ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "yes"), nil
}

// Blank writes an empty line.
func (p *Prompter) Blank() {
	fmt.Fprintln(p.out)
}

// Line writes text with style.
func (p *Prompter) Line(style lipgloss.Style, text string) {
	fmt.Fprintln(p.out, style.Render(text))
}

// Plain writes text unstyled.
func (p *Prompter) Plain(text string) {
	fmt.Fprintln(p.out, text)
}

// Success writes a success message.
func (p *Prompter) Success(format string, args ...any) {
	p.Line(styles.SuccessTextStyle, fmt.Sprintf(format, args...))
}

// Warn writes a warning message.
func (p *Prompter) Warn(format string, args ...any) {
	p.Line(styles.WarningTextStyle, fmt.Sprintf(format, args...))
}

// Fail writes a short error line: the message and, if present, the
// suggestion.
func (p *Prompter) Fail(err error) {
	msg := gkerrors.Message(err)
	var ge *gkerrors.GateError
	if errors.As(err, &ge) && ge.Suggestion != "" {
		msg += ". " + ge.Suggestion
	}
	p.Line(styles.ErrorTextStyle, msg)
}

// Report writes an error with its details and suggestion.
func (p *Prompter) Report(err error) {
	var ge *gkerrors.GateError
	if errors.As(err, &ge) {
		p.Line(styles.ErrorTextStyle, strings.TrimRight(ge.Format(), "\n"))
		return
	}
	p.Line(styles.ErrorTextStyle, "Error: "+err.Error())
}

// selectIndex resolves a 1-based menu number against n entries and returns
// the 0-based index.
func selectIndex(input string, n int) (int, error) {
	input = strings.TrimSpace(input)
	pos, err := strconv.Atoi(input)
	if err != nil || pos < 1 || pos > n {
		return 0, gkerrors.InvalidSelection(input, n)
	}
	return pos - 1, nil
}
