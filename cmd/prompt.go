package cmd

import (
	"errors"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	"edt-finder-cli/model"
)

// promptString asks for a non-empty value when a command misses its
// argument, the way the interactive menu of the original tool did.
func promptString(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("value is required")
			}
			return nil
		},
	}
	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// promptDay offers the seven day codes with their full names.
func promptDay() (model.DayCode, error) {
	items := make([]string, 0, len(model.DayOrder))
	for _, d := range model.DayOrder {
		items = append(items, string(d)+" ("+d.Name()+")")
	}
	sel := promptui.Select{Label: "Day", Items: items, Size: 7}
	i, _, err := sel.Run()
	if err != nil {
		return "", err
	}
	return model.DayOrder[i], nil
}

// promptDate asks for a YYYY-MM-DD date.
func promptDate(label string) (time.Time, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := time.Parse(time.DateOnly, strings.TrimSpace(input))
			return err
		},
	}
	value, err := prompt.Run()
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.DateOnly, strings.TrimSpace(value))
}

// promptClock asks for an HH:MM time and returns minutes since midnight.
func promptClock(label string) (int, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := model.ParseClock(input)
			return err
		},
	}
	value, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return model.ParseClock(value)
}
