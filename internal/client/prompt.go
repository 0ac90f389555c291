package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// EnvMasterPassword supplies the master password to scripts instead of the
// terminal prompt.
const EnvMasterPassword = "VAULT_MASTER_PASSWORD"

var errNoInput = errors.New("no input")

// prompter reads answers from in and writes prompts to out. A terminal is
// read without echo; any other reader is consumed line by line.
type prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: in, out: out}
}

func (p *prompter) readSecret(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(secret), nil
	}

	return p.readLine()
}

func (p *prompter) confirm(prompt string) (bool, error) {
	fmt.Fprint(p.out, prompt)

	answer, err := p.readLine()
	if errors.Is(err, errNoInput) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *prompter) readLine() (string, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.in)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", errNoInput
		}
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// masterPassword returns the master password from the environment or asks
// for it once.
func (p *prompter) masterPassword() (string, error) {
	if pw, ok := os.LookupEnv(EnvMasterPassword); ok {
		return pw, nil
	}
	return p.readSecret("Master password: ")
}

// newMasterPassword returns the master password from the environment or asks
// for it twice.
func (p *prompter) newMasterPassword() (string, error) {
	if pw, ok := os.LookupEnv(EnvMasterPassword); ok {
		return pw, nil
	}

	first, err := p.readSecret("New master password: ")
	if err != nil {
		return "", err
	}
	second, err := p.readSecret("Repeat master password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errPasswordsDoNotMatch
	}
	return first, nil
}
