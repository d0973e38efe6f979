package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// AuthCmd is the parent command for account operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Account management",
	Long:  `Registration, login and password reset.`,
}

var securityQuestions = [3]string{
	"What is your mother's maiden name?",
	"What street did you grow up on?",
	"What was the name of your first pet?",
}

func readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

func readAnswers() ([3]string, error) {
	var answers [3]string
	for i, q := range securityQuestions {
		answer, err := readLine(fmt.Sprintf("%s ", q))
		if err != nil {
			return answers, err
		}
		answers[i] = answer
	}
	return answers, nil
}
