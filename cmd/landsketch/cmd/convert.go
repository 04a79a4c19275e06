package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var convertOut string

var convertCmd = &cobra.Command{
	Use:   "convert FILE",
	Short: "Convert a .plan file to the JSON design layout",
	Long: `Convert a .plan text design into the persisted JSON layout used by the
editor. All points are written in the {x, z} convention.

Examples:
  landsketch convert lot.plan                 # JSON to stdout
  landsketch convert lot.plan --out lot.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDesign(args[0])
		if err != nil {
			return err
		}
		data, err := d.EncodeJSON()
		if err != nil {
			return err
		}
		if convertOut == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(convertOut, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", convertOut, err)
		}
		if verbose {
			fmt.Printf("wrote %s (%d bytes)\n", convertOut, len(data))
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertOut, "out", "", "output path (default stdout)")
	rootCmd.AddCommand(convertCmd)
}
