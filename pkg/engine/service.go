package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
	"github.com/Victor-armando18/checkout-functions/internal/infrastructure"
	"github.com/Victor-armando18/checkout-functions/internal/infrastructure/metafield"
	"github.com/Victor-armando18/checkout-functions/internal/usecase"
	"github.com/Victor-armando18/checkout-functions/internal/usecase/runengine"
)

// Options configures a Runner.
type Options struct {
	// RulesDir overrides the embedded rule packs; empty uses the embedded ones.
	RulesDir string
}

// Runner wires the default infrastructure behind the decision functions.
type Runner struct {
	dispatcher *runengine.UseCase
	preview    *usecase.PreviewService
}

func NewRunner(opts Options) (*Runner, error) {
	configs, err := metafield.NewLoader()
	if err != nil {
		return nil, err
	}

	svc := usecase.NewEngineService(
		infrastructure.NewFileRuleLoader(opts.RulesDir),
		infrastructure.NewJsonLogicExecutor(),
		configs,
	)

	return &Runner{
		dispatcher: runengine.New(svc.Functions()...),
		preview:    usecase.NewPreviewService(svc),
	}, nil
}

// Run executes target on a raw host input.
func (r *Runner) Run(ctx context.Context, target Target, input []byte) (*FunctionResult, error) {
	return r.dispatcher.Run(ctx, target, input)
}

// Preview executes target and applies the result to the input snapshot.
func (r *Runner) Preview(ctx context.Context, target Target, input []byte) (*Preview, error) {
	return r.preview.Preview(ctx, target, input)
}

// Execute is the single-shot function contract: read the input from in,
// apply patch (RFC 6902, may be empty), run, and write the result to out.
func (r *Runner) Execute(ctx context.Context, target Target, in io.Reader, out io.Writer, patch []byte) error {
	input, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	input, err = infrastructure.ApplyInputPatch(input, patch)
	if err != nil {
		return err
	}

	result, err := r.Run(ctx, target, input)
	if err != nil {
		return err
	}

	return encodeResult(out, result)
}

func encodeResult(w io.Writer, result *domain.FunctionResult) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// ApplyInputPatch applies an RFC 6902 patch to a raw function input.
func ApplyInputPatch(input, patch []byte) ([]byte, error) {
	return infrastructure.ApplyInputPatch(input, patch)
}
