package parser

import (
	"fmt"
	"strings"
)

// MapError takes a raw input and a participle error, and returns a human-friendly guidance message.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("I wasn't able to understand your command")
	}

	parts := strings.Fields(strings.ToLower(input))
	cmd := parts[0]

	switch cmd {
	case "click":
		return fmt.Errorf("The command click must be: click [times: N]")
	case "buy":
		return fmt.Errorf("The command buy must be: buy <upgrade-id>")
	case "shop":
		return fmt.Errorf("The command shop must be: shop")
	case "theme":
		return fmt.Errorf("The command theme must be: theme <list|buy|apply> [theme-id]")
	case "stats":
		return fmt.Errorf("The command stats must be: stats")
	case "save":
		return fmt.Errorf("The command save must be: save")
	case "reset":
		return fmt.Errorf("The command reset must be: reset confirm")
	case "help":
		return fmt.Errorf("The command help must be: help [command]")
	}

	return fmt.Errorf("I wasn't able to understand your command")
}
