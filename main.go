package main

import (
	"encoding/json"
	"fmt"
	"os"

	"addpath/internal/ensure"
	"addpath/internal/env"
	"addpath/internal/inspect"
	"addpath/internal/logging"
	"addpath/internal/model"
	"addpath/internal/pathlist"
	"addpath/internal/tui"
	"addpath/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "addpath-dev",
		Repository: "addpath",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/addpath-dev/addpath/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: addpath [options]\n\n")
		fmt.Fprintf(os.Stderr, "addpath makes sure the dependency Scripts directory of the current\n")
		fmt.Fprintf(os.Stderr, "checkout is on your PATH, and persists the change for future sessions.\n")
		fmt.Fprintf(os.Stderr, "It can also inspect the PATH it manages.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  addpath                # Add <cwd>/_build/target-deps/python/Scripts to PATH\n")
		fmt.Fprintf(os.Stderr, "  addpath --dir ~/bin    # Add an arbitrary directory instead\n")
		fmt.Fprintf(os.Stderr, "  addpath --dry-run      # Show what would change without writing\n")
		fmt.Fprintf(os.Stderr, "  addpath --report       # Print a diagnostic PATH report\n")
		fmt.Fprintf(os.Stderr, "  addpath --tui          # Browse PATH entries interactively\n")
	}

	dirFlag := pflag.StringP("dir", "d", "", "Directory to put on PATH (default: the checkout's Scripts dir)")
	dryRunFlag := pflag.Bool("dry-run", false, "Report what would change without persisting anything")
	jsonFlag := pflag.BoolP("json", "j", false, "Output the PATH inspection as JSON")
	reportFlag := pflag.BoolP("report", "r", false, "Print a diagnostic PATH report (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	tuiFlag := pflag.BoolP("tui", "t", false, "Browse PATH entries interactively")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode on http://localhost:8080")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for a newer release")
	verboseFlag := pflag.CountP("verbose", "v", "Increase log verbosity (repeatable)")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	logging.Setup(*verboseFlag)

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("addpath version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	if *webFlag {
		web.StartServer(targetDir(*dirFlag))
		return
	}

	if *reportFlag {
		runReportMode(*dirFlag, *outputFlag, *verboseFlag > 0)
		return
	}

	if *jsonFlag {
		runJsonMode(*dirFlag)
		return
	}

	if *tuiFlag {
		runTuiMode(*dirFlag)
		return
	}

	// Default: check and persist
	runEnsureMode(*dirFlag, *dryRunFlag)
}

// targetDir resolves the directory to manage: an explicit override, or
// the Scripts directory of the checkout we are run from.
func targetDir(override string) string {
	if override != "" {
		return override
	}
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error determining working directory: %v\n", err)
		os.Exit(1)
	}
	return pathlist.ScriptsDir(cwd)
}

func runEnsureMode(dir string, dryRun bool) {
	_, err := ensure.Run(ensure.Options{
		Dir:       targetDir(dir),
		PathValue: os.Getenv("PATH"),
		Separator: pathlist.Separator(),
		Writer:    env.SystemWriter{},
		Out:       os.Stdout,
		DryRun:    dryRun,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating PATH: %v\n", err)
		os.Exit(1)
	}
}

func runReportMode(dir, outputFile string, verbose bool) {
	ins := inspect.Analyze(os.Getenv("PATH"), pathlist.Separator(), targetDir(dir))
	inspect.Attribute(&ins)

	report := inspect.GenerateReport(ins, verbose)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Println(report)
	}
}

func runJsonMode(dir string) {
	ins := inspect.Analyze(os.Getenv("PATH"), pathlist.Separator(), targetDir(dir))
	inspect.Attribute(&ins)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(ins)
}

func runTuiMode(dir string) {
	m := tui.InitialModel(targetDir(dir), pathlist.Separator(), env.SystemWriter{})
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
