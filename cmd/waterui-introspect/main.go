// SPDX-License-Identifier: Unlicense OR MIT

// Command waterui-introspect prints the *_id() dispatch table every
// backend author needs when bringing up a new platform: one row per
// terminal view, its name, and the TypeID force_as_X dispatches on.
// It is a debugging aid over the FFI boundary, not a backend itself.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"waterui.dev/core/ffi"
	"waterui.dev/core/view"
)

var hotReload bool

var rootCmd = &cobra.Command{
	Use:   "waterui-introspect",
	Short: "Print the WaterUI FFI dispatch table",
	RunE: func(cmd *cobra.Command, args []string) error {
		view.SetHotReload(hotReload)
		return printTable()
	},
}

func printTable() error {
	for _, e := range ffi.Table() {
		fmt.Printf("%-20s %s\n", e.Name, e.ID)
	}
	return nil
}

func init() {
	rootCmd.Flags().BoolVar(&hotReload, "hot-reload", false, "compute ids using the hot-reload hashing scheme instead of process ordinals")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
