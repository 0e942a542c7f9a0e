package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"github.com/davejbax/go-baseconv"
	"github.com/davejbax/go-baseconv/internal/config"
	"github.com/davejbax/go-baseconv/internal/decode"
	"github.com/davejbax/go-baseconv/internal/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"io"
	"sigs.k8s.io/yaml"
	"strings"
)

const decimalRadix = 10

// maxValueLength bounds a single line of standard input
const maxValueLength = 64 << 20

type ConvertOptions struct {
	Value      string
	FromBase   int
	ToBase     int
	Precision  int
	Exact      bool
	Output     string
	ConfigFile string
	LogLevel   string

	in  io.Reader
	out io.Writer
	log *logrus.Logger
}

type conversionOutput struct {
	Input     string `json:"input"`
	FromBase  int    `json:"fromBase"`
	Result    string `json:"result"`
	ToBase    int    `json:"toBase"`
	Precision int    `json:"precision"`
	Exact     bool   `json:"exact,omitempty"`
	Truncated bool   `json:"truncated,omitempty"`
	Decimal   string `json:"decimal"`
}

func DefaultConvertOptions() *ConvertOptions {
	cfg := config.Default()

	return &ConvertOptions{
		Precision: cfg.Precision,
		Exact:     cfg.Exact,
		Output:    cfg.Output,
		LogLevel:  cfg.LogLevel,
	}
}

func NewCmdConvert() *cobra.Command {
	o := DefaultConvertOptions()
	cmd := &cobra.Command{
		Use:   "baseconv -s FROM -t TO [-v VALUE | VALUE...]",
		Short: "Convert numbers between different base systems (supports fractional values).",
		Long: `Convert numbers between different base systems (supports fractional values).

Values are taken from --value and any arguments. If there are none, one value is read from each line of standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	_ = cmd.MarkFlagRequired("from-base")
	_ = cmd.MarkFlagRequired("to-base")
	return cmd
}

func (o *ConvertOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Value, "value", "v", o.Value, "Number to convert, e.g. 1010.101 or FF.8.")
	fs.IntVarP(&o.FromBase, "from-base", "s", o.FromBase, "Base of the input (2-36).")
	fs.IntVarP(&o.ToBase, "to-base", "t", o.ToBase, "Base to convert to (2-36).")
	fs.IntVarP(&o.Precision, "precision", "p", o.Precision, "Maximum number of fractional digits in the result.")
	fs.BoolVar(&o.Exact, "exact", o.Exact, "Convert fractional parts exactly instead of through floating point.")
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(config.Outputs, ", ")))
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "YAML file with default settings.")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level (debug, info, warning, error).")
}

// Complete fills in every setting that wasn't given as a flag from the config file and environment
func (o *ConvertOptions) Complete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(o.ConfigFile)
	if err != nil {
		return err
	}

	fs := cmd.Flags()
	if !fs.Changed("precision") {
		o.Precision = cfg.Precision
	}
	if !fs.Changed("exact") {
		o.Exact = cfg.Exact
	}
	if !fs.Changed("output") {
		o.Output = cfg.Output
	}
	if !fs.Changed("log-level") {
		o.LogLevel = cfg.LogLevel
	}

	o.in = cmd.InOrStdin()
	o.out = cmd.OutOrStdout()

	o.log, err = log.InitLogs(cmd.ErrOrStderr(), o.LogLevel)
	return err
}

func (o *ConvertOptions) Validate(args []string) error {
	if _, err := decode.AsRadix(o.FromBase); err != nil {
		return fmt.Errorf("invalid source base: %w", err)
	}

	if _, err := decode.AsRadix(o.ToBase); err != nil {
		return fmt.Errorf("invalid target base: %w", err)
	}

	cfg := config.Config{Precision: o.Precision, Output: o.Output}
	return cfg.Validate()
}

func (o *ConvertOptions) Run(ctx context.Context, args []string) error {
	values, err := o.values(args)
	if err != nil {
		return err
	}

	o.log.WithFields(logrus.Fields{
		"values":    len(values),
		"from":      o.FromBase,
		"to":        o.ToBase,
		"precision": o.Precision,
		"exact":     o.Exact,
	}).Debug("converting")

	conversions := make([]*baseconv.Conversion, 0, len(values))
	for _, value := range values {
		if err := ctx.Err(); err != nil {
			return err
		}

		conversion, err := o.convert(value)
		if err != nil {
			return fmt.Errorf("could not convert %q: %w", value, err)
		}

		conversions = append(conversions, conversion)
	}

	switch o.Output {
	case config.OutputText:
		return o.printText(conversions)
	case config.OutputJSON:
		marshalled, err := json.MarshalIndent(o.outputs(conversions), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(o.out, string(marshalled))
		return err
	case config.OutputYAML:
		marshalled, err := yaml.Marshal(o.outputs(conversions))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(o.out, string(marshalled))
		return err
	case config.OutputBinary:
		for _, conversion := range conversions {
			if _, err := conversion.WriteTo(o.out); err != nil {
				return fmt.Errorf("could not write record: %w", err)
			}
		}
		return nil
	default:
		return fmt.Errorf("ConvertOptions were not validated: --output=%q should have been rejected", o.Output)
	}
}

func (o *ConvertOptions) values(args []string) ([]string, error) {
	var values []string
	if o.Value != "" {
		values = append(values, o.Value)
	}
	values = append(values, args...)

	if len(values) > 0 {
		return values, nil
	}

	scanner := bufio.NewScanner(o.in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxValueLength)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			values = append(values, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read values from input: %w", err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no value to convert: use --value, pass arguments or write to standard input")
	}

	return values, nil
}

func (o *ConvertOptions) convert(value string) (*baseconv.Conversion, error) {
	var (
		conversion *baseconv.Conversion
		err        error
	)

	if o.Exact {
		conversion, err = baseconv.ConvertExact(value, o.FromBase, o.ToBase, o.Precision)
	} else {
		conversion, err = baseconv.Convert(value, o.FromBase, o.ToBase, o.Precision)
	}

	if err != nil {
		return nil, err
	}

	entry := o.log.WithFields(logrus.Fields{
		"input":            value,
		"integerDigits":    len(conversion.Source.Integer),
		"fractionalDigits": len(conversion.Source.Fraction),
		"result":           conversion.String(),
	})
	entry.Debug("converted")

	if conversion.Truncated() {
		entry.Info("fractional part reached the precision limit and may be truncated")
	}

	return conversion, nil
}

func (o *ConvertOptions) printText(conversions []*baseconv.Conversion) error {
	for i, conversion := range conversions {
		if i > 0 {
			fmt.Fprintln(o.out)
		}

		fmt.Fprintf(o.out, "Input: %s (base %d)\n", conversion.Input, conversion.From)
		fmt.Fprintf(o.out, "Result: %s (base %d)\n", conversion.String(), conversion.To)

		// Only worth showing when it isn't already one of the two lines above
		if conversion.From != decimalRadix || conversion.To != decimalRadix {
			fmt.Fprintf(o.out, "Decimal: %s\n", conversion.Decimal())
		}
	}

	return nil
}

func (o *ConvertOptions) outputs(conversions []*baseconv.Conversion) []conversionOutput {
	outputs := make([]conversionOutput, 0, len(conversions))
	for _, conversion := range conversions {
		outputs = append(outputs, conversionOutput{
			Input:     conversion.Input,
			FromBase:  int(conversion.From),
			Result:    conversion.String(),
			ToBase:    int(conversion.To),
			Precision: conversion.Precision,
			Exact:     conversion.Exact,
			Truncated: conversion.Truncated(),
			Decimal:   conversion.Decimal(),
		})
	}

	return outputs
}
