package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/tsingjyujing/langsel/text"
	"github.com/tsingjyujing/langsel/utils"
)

var logger = utils.Logger

var detectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "langsel_detections_total",
	Help: "Number of detections by resulting language.",
}, []string{"language"})

type Controller struct {
	pipeline *text.Pipeline
}

func NewController(pipeline *text.Pipeline) (*Controller, error) {
	if pipeline == nil {
		return nil, errors.New("controller requires a detection pipeline")
	}
	return &Controller{pipeline: pipeline}, nil
}

func invalidInput(echoCtx echo.Context, format string, args ...any) error {
	return utils.EchoHandleGenericError(echoCtx, fmt.Errorf("%w: "+format, append([]any{text.ErrInvalidInput}, args...)...), http.StatusBadRequest)
}

type DetectParams struct {
	Text *string `json:"text"`
	// Raw skips first-sentence extraction.
	Raw bool `json:"raw"`
}

type DetectResult struct {
	// Language is null when undetermined.
	Language *string `json:"language" jsonschema:"English, Japanese, Vietnamese or null when undetermined"`
	Locale   string  `json:"locale" jsonschema:"BCP-47 tag of the language, und when undetermined"`
	Fragment string  `json:"fragment" jsonschema:"the text the language was detected on"`
}

// NewDetectResult converts a pipeline result into its JSON form.
func NewDetectResult(result text.Result) DetectResult {
	out := DetectResult{
		Locale:   result.Language.Tag().String(),
		Fragment: result.Fragment,
	}
	if result.Language != text.Undetermined {
		out.Language = lo.ToPtr(string(result.Language))
	}
	return out
}

func (c *Controller) run(input string, raw bool) (text.Result, error) {
	var (
		result text.Result
		err    error
	)
	if raw {
		result, err = c.pipeline.RunRaw(input)
	} else {
		result, err = c.pipeline.Run(input)
	}
	if err != nil {
		return text.Result{}, err
	}
	detectionsTotal.WithLabelValues(strings.ToLower(result.Language.String())).Inc()
	logger.WithFields(logrus.Fields{
		"language": result.Language.String(),
		"fragment": result.Fragment,
	}).Debug("Detected language")
	return result, nil
}

func (c *Controller) Detect(echoCtx echo.Context) error {
	param := DetectParams{}
	if err := echoCtx.Bind(&param); err != nil {
		return invalidInput(echoCtx, "%v", err)
	}
	if param.Text == nil {
		return invalidInput(echoCtx, "field 'text' is required")
	}
	result, err := c.run(*param.Text, param.Raw)
	if err != nil {
		return utils.EchoHandleError(echoCtx, err)
	}
	return echoCtx.JSON(http.StatusOK, NewDetectResult(result))
}

type DetectBatchParams struct {
	Texts []*string `json:"texts"`
	Raw   bool      `json:"raw"`
}

func (c *Controller) DetectBatch(echoCtx echo.Context) error {
	param := DetectBatchParams{}
	if err := echoCtx.Bind(&param); err != nil {
		return invalidInput(echoCtx, "%v", err)
	}
	if param.Texts == nil {
		return invalidInput(echoCtx, "field 'texts' is required")
	}
	if lo.Contains(param.Texts, nil) {
		return invalidInput(echoCtx, "every item of 'texts' must be a string")
	}
	results := make([]text.Result, 0, len(param.Texts))
	for _, t := range param.Texts {
		result, err := c.run(*t, param.Raw)
		if err != nil {
			return utils.EchoHandleError(echoCtx, err)
		}
		results = append(results, result)
	}
	return echoCtx.JSON(http.StatusOK, lo.Map(results, func(item text.Result, _ int) DetectResult {
		return NewDetectResult(item)
	}))
}

type ExtractParams struct {
	Text *string `json:"text"`
	// MaxChars defaults to the configured bound.
	MaxChars *int `json:"max_chars"`
}

func (c *Controller) Extract(echoCtx echo.Context) error {
	param := ExtractParams{}
	if err := echoCtx.Bind(&param); err != nil {
		return invalidInput(echoCtx, "%v", err)
	}
	if param.Text == nil {
		return invalidInput(echoCtx, "field 'text' is required")
	}
	maxChars := lo.FromPtrOr(param.MaxChars, c.pipeline.MaxChars())
	fragment, err := text.ExtractFirstSentence(*param.Text, maxChars)
	if err != nil {
		return utils.EchoHandleError(echoCtx, err)
	}
	return echoCtx.JSON(http.StatusOK, map[string]string{"fragment": fragment})
}

type LanguageItem struct {
	Name   string `json:"name"`
	Locale string `json:"locale"`
}

// ListLanguages returns the languages the detector can report.
func (c *Controller) ListLanguages(echoCtx echo.Context) error {
	return echoCtx.JSON(http.StatusOK, lo.Map(text.SupportedLanguages, func(item text.Language, _ int) LanguageItem {
		return LanguageItem{Name: item.String(), Locale: item.Tag().String()}
	}))
}
