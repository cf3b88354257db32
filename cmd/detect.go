package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tsingjyujing/langsel/controller"
	"github.com/tsingjyujing/langsel/text"
)

// readInputs returns the positional arguments, or all of stdin when there are none.
func readInputs(stdin io.Reader, args []string) ([]string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		args = []string{string(data)}
	}
	if !lo.EveryBy(args, utf8.ValidString) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8 text", text.ErrInvalidInput)
	}
	return args, nil
}

func addDetectionFlags(command *cobra.Command) {
	command.Flags().Int("max-chars", text.DefaultMaxChars, "Maximum length of the extracted fragment")
	command.Flags().String("normalize", text.NormalizationNFC, "Unicode normalization before detection: none, nfc or nfkc")
}

func displayLanguage(lang text.Language) string {
	if lang == text.Undetermined {
		return "undetermined"
	}
	return lang.String()
}

func NewDetectCommand() *cobra.Command {
	var raw, asJSON bool

	detectCommand := &cobra.Command{
		Use:   "detect [text...]",
		Short: "Detect the language of each argument, or of stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			envelope, err := readConfig(cmd)
			if err != nil {
				return err
			}
			pipeline, err := envelope.NewPipeline()
			if err != nil {
				return err
			}
			inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			encoder := json.NewEncoder(out)
			encoder.SetEscapeHTML(false)
			for _, input := range inputs {
				run := pipeline.Run
				if raw {
					run = pipeline.RunRaw
				}
				result, err := run(input)
				if err != nil {
					return err
				}
				logger.WithField("fragment", result.Fragment).Debugf("Detected %s", result.Language)
				if asJSON {
					if err := encoder.Encode(controller.NewDetectResult(result)); err != nil {
						return err
					}
					continue
				}
				if _, err := fmt.Fprintln(out, displayLanguage(result.Language)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addDetectionFlags(detectCommand)
	detectCommand.Flags().BoolVar(&raw, "raw", false, "Detect on the whole text instead of its first sentence")
	detectCommand.Flags().BoolVar(&asJSON, "json", false, "Print one JSON object per input")
	return detectCommand
}

func NewExtractCommand() *cobra.Command {
	extractCommand := &cobra.Command{
		Use:   "extract [text...]",
		Short: "Print the fragment of each argument, or of stdin, that detection looks at",
		RunE: func(cmd *cobra.Command, args []string) error {
			envelope, err := readConfig(cmd)
			if err != nil {
				return err
			}
			inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			for _, input := range inputs {
				fragment, err := text.ExtractFirstSentence(input, envelope.Detection.MaxChars)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), fragment); err != nil {
					return err
				}
			}
			return nil
		},
	}
	extractCommand.Flags().Int("max-chars", text.DefaultMaxChars, "Maximum length of the extracted fragment")
	return extractCommand
}
