// sidescroll is a side-scrolling platformer with procedurally
// generated levels.
//
// Usage:
//
//	sidescroll play             - Play in a window
//	sidescroll gen              - Print a generated level as text
//	sidescroll preview          - Scroll through a generated level in the terminal
//
// Global flags:
//
//	--seed <value>   - Generation seed (0 = derive from current time)
//	--config <dir>   - Load config JSON from a directory instead of the embedded defaults
package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hyunmoon/sidescroll/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

var (
	flagSeed      int64
	flagConfigDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sidescroll",
	Short: "Side-scrolling platformer with generated levels",
	Long: `sidescroll runs a side-scrolling platformer whose levels are
procedurally generated from a seed. The same seed always produces the
same level.

Examples:
  sidescroll play
  sidescroll play --seed 42
  sidescroll gen --seed 42
  sidescroll preview --seed 42`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Generation seed (0 = derive from current time)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Directory with physics.json, entities.json, gen.json")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(previewCmd)
}

// loadConfig reads the JSON config set, embedded by default or from
// --config when given.
func loadConfig() (*config.GameConfig, error) {
	var loader *config.Loader
	if flagConfigDir != "" {
		loader = config.NewLoader(flagConfigDir)
	} else {
		sub, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, err
		}
		loader = config.NewFSLoader(sub)
	}
	return loader.LoadAll()
}

// resolveSeed turns the --seed flag into a concrete seed.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	seed := time.Now().UnixNano()
	log.Info("using time-derived seed", "seed", seed)
	return seed
}
