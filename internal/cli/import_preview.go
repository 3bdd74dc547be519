package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Pleasurecruise/cdk/internal/content"
	"github.com/Pleasurecruise/cdk/internal/importers"
)

// ImportPreviewCommand parses pasted content from a file or stdin and shows
// what a bulk import against an existing collection would do.
type ImportPreviewCommand struct {
	InputFile       string
	ExistingFile    string
	AllowDuplicates bool
	ParseOnly       bool
}

func NewImportPreviewCommand() *ImportPreviewCommand {
	return &ImportPreviewCommand{}
}

func (cmd *ImportPreviewCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-preview", flag.ExitOnError)

	fs.StringVar(&cmd.InputFile, "input", "", "File with pasted content (defaults to stdin)")
	fs.StringVar(&cmd.ExistingFile, "existing", "", "File with the current collection, one item per line")
	fs.BoolVar(&cmd.AllowDuplicates, "allow-duplicates", false, "Append everything without deduplication")
	fs.BoolVar(&cmd.ParseOnly, "parse-only", false, "Only show parsed items, skip the import step")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-preview [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Parse pasted distribution content and preview the resulting import.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import-preview -input codes.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import-preview -input codes.txt -existing current.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  cat codes.txt | %s import-preview -parse-only\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ImportPreviewCommand) Run() error {
	raw, err := cmd.readInput()
	if err != nil {
		return err
	}

	if cmd.ParseOnly {
		items := content.Parse(raw)
		fmt.Printf("=== Parsed Items (%d) ===\n", len(items))
		for _, item := range items {
			fmt.Println(item)
		}
		return nil
	}

	current, err := cmd.readExisting()
	if err != nil {
		return err
	}

	result, err := importers.Reconcile(raw, current, cmd.AllowDuplicates)
	if err != nil {
		return fmt.Errorf("import rejected: %w", err)
	}

	fmt.Printf("=== Import Preview ===\n")
	fmt.Printf("Existing items: %d\n", len(current))
	fmt.Printf("Imported items: %d%s\n", result.Imported, result.SkippedInfo)
	fmt.Printf("Merged collection: %d items\n", len(result.Items))
	for _, item := range result.Items[len(current):] {
		fmt.Println(item)
	}

	return nil
}

func (cmd *ImportPreviewCommand) readInput() (string, error) {
	if cmd.InputFile == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(cmd.InputFile)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// readExisting loads the current collection file, one item per line.
// Lines are kept verbatim apart from trailing newline trimming, since the
// collection is whatever the caller already holds.
func (cmd *ImportPreviewCommand) readExisting() ([]string, error) {
	if cmd.ExistingFile == "" {
		return nil, nil
	}

	f, err := os.Open(cmd.ExistingFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open existing collection: %w", err)
	}
	defer f.Close()

	var items []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read existing collection: %w", err)
	}
	return items, nil
}
