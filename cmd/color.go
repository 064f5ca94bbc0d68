package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/txlens/txlens/util/cache"
)

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

// setColorPreference toggles the stored preference when value is empty.
func setColorPreference(c *cache.Cache, value string) (bool, error) {
	var on bool
	if value == "" {
		stored, found := c.GetBool(colorPrefKey)
		on = found && !stored
	} else {
		parsed, err := parseOnOff(value)
		if err != nil {
			return false, err
		}
		on = parsed
	}
	if err := c.SetBool(colorPrefKey, on); err != nil {
		return false, fmt.Errorf("couldn't save color preference: %w", err)
	}
	return on, nil
}

var colorCmd = &cobra.Command{
	Use:       "color [on|off]",
	Short:     "Turn colored output on or off, toggles with no argument",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a := current
		value := ""
		if len(args) == 1 {
			value = args[0]
		}
		on, err := setColorPreference(a.cache, value)
		if err != nil {
			return err
		}
		state := "off"
		if on {
			state = "on"
		}
		a.ui.Success("Colored output is %s", state)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(colorCmd)
}
