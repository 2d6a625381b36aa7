package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/f3rmion/maodou/internal/pinyin"
	"github.com/f3rmion/maodou/internal/quotes"
	"github.com/f3rmion/maodou/internal/report"
	"github.com/f3rmion/maodou/internal/textstats"
	"github.com/spf13/cobra"
)

var errUnreadable = errors.New("input is not valid UTF-8")

var countCmd = &cobra.Command{
	Use:   "count [file|-]",
	Short: "Count a text file or stdin",
	Long: `Count a UTF-8 text file, or standard input when no file or '-' is given.

Examples:
  maodou count notes.txt
  pbpaste | maodou count
  maodou count --json notes.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().Bool("json", false, "output as JSON")
}

// countOutput is the --json document.
type countOutput struct {
	Stats    textstats.Stats     `json:"stats"`
	Density  float64             `json:"density"`
	Mix      string              `json:"mix"`
	Size     string              `json:"size"`
	Comment  string              `json:"comment"`
	TopHanzi []report.HanziCount `json:"top_hanzi,omitempty"`
}

func runCount(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	text, err := readInput(cmd.InOrStdin(), args)
	if errors.Is(err, errUnreadable) {
		fmt.Fprintln(cmd.ErrOrStderr(), quotes.Unreadable)
		cmd.SilenceErrors = true
		return err
	}
	if err != nil {
		return err
	}

	st, err := textstats.Require(text)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), quotes.EmptyPrompt)
		cmd.SilenceErrors = true
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	top := report.TopHanzi(text, cfg.TopHanzi, pinyin.NewAnnotator())

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(countOutput{
			Stats:    st,
			Density:  textstats.Density(st),
			Mix:      textstats.Mix(st).String(),
			Size:     textstats.Size(st).String(),
			Comment:  report.Comment(st),
			TopHanzi: top,
		})
	}

	fmt.Fprint(out, report.Detail(st))
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.DensityLine(st))
	fmt.Fprintln(out, report.BeanLine(st))
	fmt.Fprintln(out, report.Comment(st))
	if len(top) > 0 {
		fmt.Fprintln(out, "高频汉字："+report.HanziLine(top))
	}
	return nil
}

// readInput reads the named file, or stdin for no argument or "-".
func readInput(stdin io.Reader, args []string) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if !utf8.Valid(data) {
		return "", errUnreadable
	}
	return string(data), nil
}
