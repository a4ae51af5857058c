package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/leandrowiemesfilho/doc2md/internal/converter"
	"github.com/leandrowiemesfilho/doc2md/internal/utils"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "doc2md",
		Usage: "Convert documents (DOCX, PDF, TXT) to Markdown",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file or directory",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Value:   4,
				Usage:   "Number of files converted in parallel",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable verbose output",
			},
		},
		Commands: []*cli.Command{serveCommand()},
		Action:   convertAction,
	}
}

func convertAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no input files specified")
	}

	inputs := c.Args().Slice()
	outputOption := c.String("output")
	verbose := c.Bool("verbose")

	outputs := make([]string, len(inputs))
	for i, inputPath := range inputs {
		// Check if input file exists
		if !utils.FileExists(inputPath) {
			return fmt.Errorf("input file does not exist: %s", inputPath)
		}

		// Reject unsupported types before any conversion starts
		_, fileType, err := converter.GetConverter(inputPath)
		if err != nil {
			return fmt.Errorf("failed to convert %s: %w", inputPath, err)
		}

		outputs[i], err = utils.GetOutputPath(inputPath, outputOption, len(inputs) > 1)
		if err != nil {
			return fmt.Errorf("failed to determine output path: %w", err)
		}

		if verbose {
			log.Printf("Processing: %s (detected file type: %s) -> %s", inputPath, fileType, outputs[i])
		}
	}

	results, err := converter.ConvertAll(c.Context, inputs, c.Int("jobs"))
	if err != nil {
		return err
	}

	for i, markdown := range results {
		if err := writeMarkdown(outputs[i], markdown); err != nil {
			return err
		}
		if verbose {
			log.Printf("Successfully converted: %s", inputs[i])
		}
	}

	return nil
}

func writeMarkdown(outputPath, markdown string) error {
	// Create output directory if needed
	if err := utils.EnsureDir(filepath.Dir(outputPath)); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return nil
}
