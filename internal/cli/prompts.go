package cli

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

func lookbackOptions() []string {
	return []string{
		"1y - past year",
		"3y - past three years",
		"5y - past five years",
	}
}

// defaultLookbackOption maps a configured lookback ("1y", "3y", "5y") to
// the matching menu option, falling back to the first option for anything
// unrecognized.
func defaultLookbackOption(defaultLookback string) string {
	options := lookbackOptions()
	for _, opt := range options {
		if strings.HasPrefix(opt, defaultLookback+" ") {
			return opt
		}
	}
	return options[0]
}

// lookbackFromOption extracts the lookback window from a selected menu
// option.
func lookbackFromOption(option string) string {
	return strings.Fields(option)[0]
}

// PromptForLookback asks the user for the trend window used by stock
// analysis answers.
func PromptForLookback(defaultLookback string) (string, error) {
	prompt := &survey.Select{
		Message: "Select the stock trend lookback window:",
		Options: lookbackOptions(),
		Default: defaultLookbackOption(defaultLookback),
		Help:    "How much price history to analyze and chart for stock questions.",
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}

	return lookbackFromOption(selected), nil
}
