package cmd

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/tsingjyujing/langsel/controller"
	"github.com/tsingjyujing/langsel/text"
)

type DetectInput struct {
	Text string `json:"text" jsonschema:"the text to detect the language of"`
	Raw  bool   `json:"raw,omitempty" jsonschema:"detect on the whole text instead of its first sentence"`
}

type ExtractInput struct {
	Text     string `json:"text" jsonschema:"the text to extract the first sentence from"`
	MaxChars int    `json:"max_chars,omitempty" jsonschema:"maximum fragment length in characters, the server default when omitted"`
}

type ExtractOutput struct {
	Fragment string `json:"fragment" jsonschema:"the extracted fragment"`
}

type LangselMCP struct {
	pipeline *text.Pipeline
}

func (l LangselMCP) DetectLanguage(ctx context.Context, req *mcp.CallToolRequest, input DetectInput) (*mcp.CallToolResult, controller.DetectResult, error) {
	run := l.pipeline.Run
	if input.Raw {
		run = l.pipeline.RunRaw
	}
	result, err := run(input.Text)
	if err != nil {
		return nil, controller.DetectResult{}, err
	}
	return nil, controller.NewDetectResult(result), nil
}

func (l LangselMCP) ExtractFirstSentence(ctx context.Context, req *mcp.CallToolRequest, input ExtractInput) (*mcp.CallToolResult, ExtractOutput, error) {
	maxChars := input.MaxChars
	if maxChars == 0 {
		maxChars = l.pipeline.MaxChars()
	}
	fragment, err := text.ExtractFirstSentence(input.Text, maxChars)
	if err != nil {
		return nil, ExtractOutput{}, err
	}
	return nil, ExtractOutput{Fragment: fragment}, nil
}

func NewMcpCommand() *cobra.Command {
	mcpCommand := &cobra.Command{
		Use:   "mcp",
		Short: "Starting MCP server",
		Run: func(cmd *cobra.Command, args []string) {
			envelope, err := readConfig(cmd)
			if err != nil {
				logger.WithError(err).Fatal("Failed to load configuration")
			}
			pipeline, err := envelope.NewPipeline()
			if err != nil {
				logger.WithError(err).Fatal("Failed to create detection pipeline")
			}
			l := LangselMCP{pipeline: pipeline}
			server := mcp.NewServer(&mcp.Implementation{Name: "langsel-mcp", Title: "MCP server for detecting the language of short texts", Version: "v1.0.0"}, nil)
			mcp.AddTool(server, &mcp.Tool{Name: "detect_language", Description: "Detect whether a text is English, Japanese or Vietnamese; language is null when undetermined"}, l.DetectLanguage)
			mcp.AddTool(server, &mcp.Tool{Name: "extract_first_sentence", Description: "Extract the short leading fragment of a text that language detection looks at, without quoted spans and acronyms"}, l.ExtractFirstSentence)
			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				logger.Fatal(err)
			}
		},
	}
	addDetectionFlags(mcpCommand)
	return mcpCommand
}
