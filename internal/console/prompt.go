package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/rhyrak/exam-registry/pkg/model"
)

const invalidInput = "Invalid input. Please try again."

// errInputClosed is returned by prompts once the input stream is exhausted.
var errInputClosed = errors.New("input closed")

// readLine prints prompt and returns the next input line without surrounding
// whitespace. Lines have no length limit; a final line without a newline is
// still returned.
func (c *Controller) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", errInputClosed
		}
	}
	return strings.TrimSpace(line), nil
}

// promptText re-prompts until a non-empty value is entered.
func (c *Controller) promptText(prompt, field string) (string, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}
		if verr := model.CheckField(field, line); verr != nil {
			c.reject(verr)
			continue
		}
		return line, nil
	}
}

// promptInt re-prompts until check accepts an integer.
func (c *Controller) promptInt(prompt, field string, check func(int) error) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, perr := strconv.Atoi(line)
		if perr != nil {
			c.reject(&model.ValidationError{Field: field, Reason: "must be a whole number"})
			continue
		}
		if verr := check(v); verr != nil {
			c.reject(verr)
			continue
		}
		return v, nil
	}
}

// promptField asks for a bounded reservation field, showing its range.
func (c *Controller) promptField(label, field string) (int, error) {
	prompt := label + ": "
	if lo, hi, ok := model.Bounds(field); ok {
		prompt = fmt.Sprintf("%s (%d-%d): ", label, lo, hi)
	}
	return c.promptInt(prompt, field, func(v int) error {
		return model.CheckField(field, v)
	})
}

func (c *Controller) reject(err error) {
	c.logger.Debug("input rejected", zap.Error(err))
	fmt.Fprintln(c.out, invalidInput)
}
