package interactive

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fastgen/fastgen/pkg/wizard"
)

// DialogPresenter is the fallback strategy: a numbered list read line by
// line. It works anywhere a reader and writer exist, including pipes and
// terminals without raw-mode support.
type DialogPresenter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewDialogPresenter creates a DialogPresenter over the given streams.
func NewDialogPresenter(in io.Reader, out io.Writer) *DialogPresenter {
	return &DialogPresenter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// SelectOne prints the numbered list and reads one selection.
// Empty input skips the menu, "q" cancels the run, and end of input is
// treated as cancellation.
func (d *DialogPresenter) SelectOne(p wizard.Prompt) (*wizard.Entry, error) {
	d.printEntries(p)
	for {
		fmt.Fprint(d.out, "Select a number (empty to skip, q to quit): ")
		line, err := d.readLine()
		if err != nil {
			return nil, err
		}
		switch {
		case line == "":
			return wizard.SkipEntry, nil
		case strings.EqualFold(line, "q"):
			return nil, wizard.ErrCancelled
		}
		idx, err := strconv.Atoi(line)
		if err != nil || idx < 1 || idx > len(p.Entries) {
			fmt.Fprintf(d.out, "Please enter a number between 1 and %d.\n", len(p.Entries))
			continue
		}
		return p.Entries[idx-1], nil
	}
}

// SelectMany prints the numbered list and reads a space- or
// comma-separated set of selections. Empty input skips the menu.
func (d *DialogPresenter) SelectMany(p wizard.Prompt) ([]*wizard.Entry, error) {
	d.printEntries(p)
	for {
		fmt.Fprint(d.out, "Select numbers separated by spaces (empty to skip, q to quit): ")
		line, err := d.readLine()
		if err != nil {
			return nil, err
		}
		switch {
		case line == "":
			return []*wizard.Entry{wizard.SkipEntry}, nil
		case strings.EqualFold(line, "q"):
			return nil, wizard.ErrCancelled
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == ','
		})
		entries := make([]*wizard.Entry, 0, len(fields))
		valid := true
		for _, field := range fields {
			if field == "" {
				continue
			}
			idx, err := strconv.Atoi(field)
			if err != nil || idx < 1 || idx > len(p.Entries) {
				fmt.Fprintf(d.out, "Please enter numbers between 1 and %d.\n", len(p.Entries))
				valid = false
				break
			}
			entries = append(entries, p.Entries[idx-1])
		}
		if !valid {
			continue
		}
		if len(entries) == 0 {
			return []*wizard.Entry{wizard.SkipEntry}, nil
		}
		return entries, nil
	}
}

func (d *DialogPresenter) printEntries(p wizard.Prompt) {
	fmt.Fprintf(d.out, "\n%s\n", p.Title)
	if p.Description != "" {
		fmt.Fprintf(d.out, "%s\n", p.Description)
	}
	for i, e := range p.Entries {
		if e.Description != "" {
			fmt.Fprintf(d.out, "  %d) %s - %s\n", i+1, e.UserView, e.Description)
		} else {
			fmt.Fprintf(d.out, "  %d) %s\n", i+1, e.UserView)
		}
	}
}

// readLine reads one trimmed line. End of input counts as cancellation
// so a closed stdin can never leave the wizard blocked.
func (d *DialogPresenter) readLine() (string, error) {
	line, err := d.in.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return "", wizard.ErrCancelled
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
