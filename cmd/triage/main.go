package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/sweepline/disk-triage/internal/featureflags"
	"github.com/sweepline/disk-triage/internal/log"
	"github.com/sweepline/disk-triage/internal/resultstore"
	"github.com/sweepline/disk-triage/internal/triage"
	"github.com/sweepline/disk-triage/internal/triage/signature"
	"github.com/sweepline/disk-triage/internal/utils"
)

var (
	root         = flag.String("root", "", "root directory to sweep")
	textFiles    = flag.Bool("text", false, "also include files whose header looks like printable text")
	upload       = flag.String("upload", "", "bucket path for uploading triage reports (e.g. file:///var/lib/disk-triage)")
	uploadLabel  = flag.String("upload-label", "", "optional label prefixed to the stored report filename")
	features     = flag.String("features", "", "override features that are enabled/disabled by default")
	listFeatures = flag.Bool("list-features", false, "list available features that can be toggled")
	listTasks    = flag.Bool("list-tasks", false, "prints out a list of available triage tasks")
	help         = flag.Bool("help", false, "print help on available options")
	extensions   = utils.CommaSeparatedFlags("ext", nil,
		"list of file extensions to include, separated by commas; an empty entry matches extensionless files")
	taskNames = utils.CommaSeparatedFlags("task", []string{"basic", "signature"},
		"list of triage tasks to run, separated by commas. Use -list-tasks to see available options")
)

func printTasks() {
	fmt.Println("Available triage tasks:")
	for _, task := range triage.AllTasks() {
		fmt.Println(task)
	}
	fmt.Println()
}

func printFeatureFlags() {
	fmt.Printf("Feature List\n\n")
	fmt.Printf("%-30s %s\n", "Name", "Default")
	fmt.Printf("----------------------------------------\n")

	state := featureflags.State()
	sortedFeatures := maps.Keys(state)
	slices.Sort(sortedFeatures)

	stateStrings := map[bool]string{false: "Off", true: "On"}
	for _, feature := range sortedFeatures {
		fmt.Printf("%-30s %s\n", feature, stateStrings[state[feature]])
	}

	fmt.Println()
}

func printReport(report *triage.TreeReport) {
	heading := color.New(color.FgCyan, color.Bold)
	alert := color.New(color.FgRed, color.Bold)

	heading.Printf("Triage report for %s\n", report.Root)
	fmt.Printf("candidate files: %d\n", report.FileCount)
	fmt.Printf("size Benford deviation: %.4f\n\n", report.SizeBenfordDeviation)

	for _, file := range report.Files {
		if file.Kind != "" && file.Kind != signature.Unknown {
			alert.Printf("%-30s %s\n", file.Kind, file.Path)
		} else {
			fmt.Printf("%-30s %s\n", "-", file.Path)
		}
		if file.Basic != nil && file.Basic.SHA256 != "" {
			fmt.Printf("  %s  %d bytes  entropy %.3f  %s\n",
				file.Basic.SHA256[:12], file.Basic.Size, file.Basic.HeaderEntropy, file.Basic.DetectedType)
		}
	}
}

func main() {
	log.Initialize(os.Getenv("LOGGER_ENV"))

	extensions.InitFlag()
	taskNames.InitFlag()
	flag.Parse()

	if err := featureflags.Update(*features); err != nil {
		slog.Error("Failed to parse feature flags", "error", err)
		os.Exit(1)
	}

	if *help {
		flag.Usage()
		return
	}
	if *listTasks {
		printTasks()
		return
	}
	if *listFeatures {
		printFeatureFlags()
		return
	}
	if *root == "" {
		flag.Usage()
		return
	}

	var tasks []triage.Task
	for _, taskName := range taskNames.Values {
		task, ok := triage.TaskFromString(strings.ToLower(taskName))
		if !ok {
			slog.Error("Unknown triage task: " + taskName)
			printTasks()
			os.Exit(1)
		}
		if task == triage.All {
			tasks = triage.AllTasks()
			break
		}
		tasks = append(tasks, task)
	}

	ctx := log.ContextWithAttrs(context.Background(), slog.String("root", *root))
	slog.InfoContext(ctx, "Starting triage sweep")

	report, err := triage.AnalyzeTree(ctx, *root, triage.Options{
		Extensions:       extensions.Values,
		IncludeTextFiles: *textFiles,
		Tasks:            tasks,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Triage sweep failed", "error", err)
		os.Exit(1)
	}

	printReport(report)

	if *upload != "" {
		rs := resultstore.New(*upload)
		filename := resultstore.MakeFilename(report.Root, *uploadLabel)
		if err := rs.SaveWithFilename(ctx, report, filename); err != nil {
			slog.ErrorContext(ctx, "Upload error", "error", err)
			os.Exit(1)
		}
	}
}
