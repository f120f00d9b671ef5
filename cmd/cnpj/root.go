package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nexconsult/cnpj-toolkit/internal/cnpj"
	"github.com/nexconsult/cnpj-toolkit/internal/logger"
	"github.com/nexconsult/cnpj-toolkit/internal/models"
	"github.com/nexconsult/cnpj-toolkit/internal/services"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// exitCode ends the program with a status but no error message
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	src    cnpj.Source
	log    *logrus.Logger
	json   bool
}

func newRootCmd(in io.Reader, out, errOut io.Writer, src cnpj.Source) *cobra.Command {
	c := &cli{in: in, out: out, errOut: errOut, src: src}

	var logLevel string

	root := &cobra.Command{
		Use:           "cnpj",
		Short:         "Validate, mask, format and generate Brazilian CNPJ numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.log = logger.NewWithOutput(logLevel, "text", c.errOut)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().BoolVar(&c.json, "json", false, "print JSON instead of text")
	root.PersistentFlags().StringVar(&logLevel, "log-level", envOr("LOG_LEVEL", "warn"), "log level")

	root.AddCommand(
		c.validateCmd(),
		c.maskCmd(),
		c.formatCmd(),
		c.generateCmd(),
		c.analyzeCmd(),
		c.extractCmd(),
	)
	return root
}

func (c *cli) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <cnpj>...",
		Short: "Validate CNPJs; exits with status 1 when any is not valid",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			results := make([]models.ValidationResult, 0, len(args))
			for _, arg := range args {
				result := models.NewValidationResult(arg, cnpj.Validate(arg))
				results = append(results, result)
				if !result.Valid {
					failed++
				}
				logger.WithFields(c.log, logrus.Fields{
					"input":   arg,
					"outcome": result.Outcome.String(),
				}).Debug("validated")
			}

			if c.json {
				if err := c.printJSON(results); err != nil {
					return err
				}
			} else {
				for _, result := range results {
					fmt.Fprintf(c.out, "%s\t%s\t%s\n", result.Input, result.Outcome, result.Message)
				}
			}

			if failed > 0 {
				return exitCode(1)
			}
			return nil
		},
	}
}

func (c *cli) maskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mask <value>...",
		Short: "Mask partial or complete input (XX.XXX.XXX/XXXX-XX)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printEach(args, cnpj.Mask)
		},
	}
}

func (c *cli) formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <cnpj>...",
		Short: "Format raw 14-digit CNPJs, printing anything else unchanged",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printEach(args, cnpj.Format)
		},
	}
}

func (c *cli) generateCmd() *cobra.Command {
	var (
		count        int
		masked       bool
		randomBranch bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate fictitious CNPJs for testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("count must be positive, got %d", count)
			}

			var opts []cnpj.GeneratorOption
			if randomBranch {
				opts = append(opts, cnpj.WithRandomBranch())
			}
			generator, err := cnpj.NewGenerator(c.src, opts...)
			if err != nil {
				return err
			}

			generated := generator.GenerateN(count)
			if masked {
				for i, value := range generated {
					generated[i] = cnpj.Format(value)
				}
			}

			if c.json {
				return c.printJSON(models.GenerateResponse{
					CNPJs:      generated,
					Count:      len(generated),
					Fictitious: true,
					Notice:     models.GeneratedNotice,
					Timestamp:  time.Now(),
				})
			}

			fmt.Fprintln(c.errOut, models.GeneratedNotice)
			for _, value := range generated {
				fmt.Fprintln(c.out, value)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "how many CNPJs to generate")
	cmd.Flags().BoolVarP(&masked, "masked", "m", false, "print masked values")
	cmd.Flags().BoolVar(&randomBranch, "random-branch", false, "draw the branch digits at random instead of 0001")
	return cmd
}

func (c *cli) analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <cnpj>...",
		Short: "Show outcome, root, branch and kind of CNPJs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]cnpj.Info, 0, len(args))
			for _, arg := range args {
				infos = append(infos, cnpj.Analyze(arg))
			}
			if c.json {
				return c.printJSON(infos)
			}
			for _, info := range infos {
				fmt.Fprintf(c.out, "%s\t%s\t%s\troot=%s\tbranch=%s\n",
					info.Original, info.Outcome, info.Kind, info.Root, info.Branch)
			}
			return nil
		},
	}
}

func (c *cli) extractCmd() *cobra.Command {
	var html bool

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Print every valid CNPJ found in a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := c.in
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", args[0], err)
				}
				defer f.Close()
				r = f
			}

			var (
				found []string
				err   error
			)
			if html {
				found, err = services.NewExtractorService(c.log).ExtractHTML(r)
			} else {
				found, err = extractLines(r)
			}
			if err != nil {
				return err
			}

			if c.json {
				return c.printJSON(found)
			}
			for _, value := range found {
				fmt.Fprintln(c.out, value)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&html, "html", false, "parse the input as an HTML document")
	return cmd
}

// extractLines scans text line by line, keeping first-seen order across lines
func extractLines(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	found := []string{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		for _, value := range cnpj.Extract(scanner.Text()) {
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			found = append(found, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return found, nil
}

func (c *cli) printEach(args []string, fn func(string) string) error {
	outputs := make([]models.MaskResponse, 0, len(args))
	for _, arg := range args {
		outputs = append(outputs, models.MaskResponse{Input: arg, Output: fn(arg)})
	}
	if c.json {
		return c.printJSON(outputs)
	}
	for _, output := range outputs {
		fmt.Fprintln(c.out, output.Output)
	}
	return nil
}

func (c *cli) printJSON(v interface{}) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
