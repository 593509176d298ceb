package interactive

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pterm/pterm"
)

// TextOptions configures a free-form text prompt.
type TextOptions struct {
	Message           string
	Default           string
	Validation        string // regex pattern
	ValidationMessage string
	Required          bool
}

// Text prompts for a line of text with optional regex validation,
// re-asking until the input passes.
func Text(opts *TextOptions) (string, error) {
	if opts == nil {
		return "", fmt.Errorf("options cannot be nil")
	}

	var validationRegex *regexp.Regexp
	if opts.Validation != "" {
		var err error
		validationRegex, err = regexp.Compile(opts.Validation)
		if err != nil {
			return "", fmt.Errorf("invalid validation pattern: %w", err)
		}
	}

	for {
		message := opts.Message
		if opts.Default != "" {
			message = fmt.Sprintf("%s (default: %s)", message, opts.Default)
		}

		result, err := pterm.DefaultInteractiveTextInput.
			WithMultiLine(false).
			Show(message)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		result = strings.TrimSpace(result)
		if result == "" && opts.Default != "" {
			result = opts.Default
		}
		if result == "" {
			if opts.Required {
				pterm.Error.Println("This field is required")
				continue
			}
			return result, nil
		}

		if validationRegex != nil && !validationRegex.MatchString(result) {
			errMsg := opts.ValidationMessage
			if errMsg == "" {
				errMsg = fmt.Sprintf("Input does not match required pattern: %s", opts.Validation)
			}
			pterm.Error.Println(errMsg)
			continue
		}

		return result, nil
	}
}
