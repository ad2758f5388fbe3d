package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input was
// read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetTextDefault prompts like GetSimpleText but shows the current value and
// keeps it when the user just presses Enter.
func GetTextDefault(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	shown := prompt
	if current != "" {
		shown = fmt.Sprintf("%s [%s]", prompt, current)
	}
	answer, err := GetSimpleText(reader, shown, w)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}

// GetChoice prompts with a numbered option list. The user may answer with a
// number, the literal option text, or press Enter to keep the current value.
func GetChoice(reader *bufio.Reader, prompt string, options []string, current string, w io.Writer) (string, error) {
	fmt.Fprintln(w, prompt)
	for i, opt := range options {
		marker := " "
		if opt == current {
			marker = "*"
		}
		fmt.Fprintf(w, " %s %d) %s\n", marker, i+1, opt)
	}

	answer, err := GetSimpleText(reader, "Choose", w)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	for _, opt := range options {
		if strings.EqualFold(opt, answer) {
			return opt, nil
		}
	}
	fmt.Fprintln(w, "Unrecognized choice, keeping", current)
	return current, nil
}

// GetYesNo reads a yes/no answer; Enter keeps the current value.
func GetYesNo(reader *bufio.Reader, prompt string, current bool, w io.Writer) (bool, error) {
	shown := prompt + " [y/N]"
	if current {
		shown = prompt + " [Y/n]"
	}
	answer, err := GetSimpleText(reader, shown, w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return current, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return current, nil
	}
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo. A newline is printed after the read to keep
// the UI tidy.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetMultiline prints a prompt to w and reads lines until an empty line is
// entered. The collected text is joined with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, _ := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
