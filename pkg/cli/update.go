package cli

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/rs/zerolog"
)

// updateRepo is the GitHub slug releases are fetched from.
const updateRepo = "Fepozopo/bimp"

func runUpdate(log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	yes := fs.Bool("y", false, "update without asking for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	current, err := semver.Parse(strings.TrimPrefix(Version, "v"))
	if err != nil {
		return fmt.Errorf("could not parse current version %q: %w", Version, err)
	}

	latest, found, err := selfupdate.DetectLatest(updateRepo)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	fmt.Printf("Current version: %s\n", current)
	if !found || latest == nil {
		fmt.Printf("No releases found for %s.\n", updateRepo)
		return nil
	}
	fmt.Printf("Latest version: %s\n", latest.Version)

	if latest.Version.LTE(current) {
		fmt.Println("You are already running the latest version.")
		return nil
	}
	if latest.AssetURL == "" {
		fmt.Println("A new version is available but has no downloadable asset; please update manually.")
		return nil
	}

	if !*yes {
		fmt.Printf("Update to %s? (y/N): ", latest.Version)
		line, rerr := bufio.NewReader(os.Stdin).ReadString('\n')
		if rerr != nil {
			return fmt.Errorf("failed reading input: %w", rerr)
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			fmt.Println("Update cancelled.")
			return nil
		}
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}
	log.Info().Str("version", latest.Version.String()).Msg("updating")
	if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	fmt.Printf("Updated to version %s.\n", latest.Version)
	return nil
}
