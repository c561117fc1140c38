package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var keysRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove an API key",
	Args:    cobra.ExactArgs(1),
	RunE:    runKeysRemove,
}

var keysRemoveYes bool

func init() {
	keysCmd.AddCommand(keysRemoveCmd)

	keysRemoveCmd.Flags().BoolVarP(&keysRemoveYes, "yes", "y", false, "Skip confirmation prompt")
}

func runKeysRemove(_ *cobra.Command, args []string) error {
	keyID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid key id: %s", args[0])
	}

	client, err := getClient()
	if err != nil {
		return err
	}

	return removeKey(client, keyID, args[0], keysRemoveYes)
}
