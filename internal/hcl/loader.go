package hcl

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/trainloop/internal/config"
	"github.com/vk/trainloop/internal/ctxlog"
	"github.com/vk/trainloop/internal/fsutil"
)

// Defaults applied when a plan omits the corresponding optional attribute.
const (
	defaultStep    = 1000
	defaultPrefix  = "episode"
	defaultPolicy  = "ignore"
	defaultRetries = 2
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses and merges all .hcl files reachable from the given paths and
// translates them into the agnostic model. Each of the run, checkpoint and
// trainer blocks must appear exactly once across the merged set.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	planFiles, err := fsutil.CollectFiles(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	if len(planFiles) == 0 {
		return nil, fmt.Errorf("no .hcl plan files found under %v", paths)
	}
	logger.Debug("Discovered plan files.", "count", len(planFiles))

	parser := hclparse.NewParser()
	merged := &planRoot{}

	for _, file := range planFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse plan file %s: %w", file, diags)
		}

		var root planRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode plan file %s: %w", file, diags)
		}

		if err := mergeBlock(&merged.Run, root.Run, "run", file); err != nil {
			return nil, err
		}
		if err := mergeBlock(&merged.Checkpoint, root.Checkpoint, "checkpoint", file); err != nil {
			return nil, err
		}
		if err := mergeBlock(&merged.Trainer, root.Trainer, "trainer", file); err != nil {
			return nil, err
		}
	}

	model, err := l.translate(merged)
	if err != nil {
		return nil, err
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("Plan loading complete.",
		"episodes", model.Run.Episodes(),
		"pointer_path", model.Checkpoint.Path,
		"trainer", model.Trainer.Executable,
	)
	return model, nil
}

// mergeBlock assigns src into *dst, rejecting duplicates across files.
func mergeBlock[T any](dst **T, src *T, name, file string) error {
	if src == nil {
		return nil
	}
	if *dst != nil {
		return fmt.Errorf("duplicate %q block in %s: the plan may declare it only once", name, file)
	}
	*dst = src
	return nil
}

// translate converts the merged HCL schema into the agnostic model,
// applying defaults for omitted optional attributes.
func (l *Loader) translate(root *planRoot) (*config.Model, error) {
	model := &config.Model{}

	if root.Run != nil {
		run := &config.Run{
			Start: root.Run.Start,
			Stop:  root.Run.Stop,
			Step:  defaultStep,
		}
		if root.Run.Step != 0 {
			run.Step = root.Run.Step
		}

		policyStr := root.Run.OnFailure
		if policyStr == "" {
			policyStr = defaultPolicy
		}
		policy, err := config.ParseFailurePolicy(policyStr)
		if err != nil {
			return nil, err
		}
		run.OnFailure = policy

		run.Retries = defaultRetries
		if root.Run.Retries != nil {
			run.Retries = *root.Run.Retries
		}

		model.Run = run
	}

	if root.Checkpoint != nil {
		cp := &config.Checkpoint{
			Path:   root.Checkpoint.Path,
			Prefix: root.Checkpoint.Prefix,
		}
		if cp.Prefix == "" {
			cp.Prefix = defaultPrefix
		}
		model.Checkpoint = cp
	}

	if root.Trainer != nil {
		tr := &config.Trainer{
			Executable: root.Trainer.Executable,
			EnvName:    root.Trainer.EnvName,
			ExtraArgs:  bindExtraArgs(root.Trainer.ExtraArgs),
		}
		if root.Trainer.Timeout != "" {
			timeout, err := time.ParseDuration(root.Trainer.Timeout)
			if err != nil {
				return nil, fmt.Errorf("invalid trainer.timeout %q: %w", root.Trainer.Timeout, err)
			}
			tr.Timeout = timeout
		}
		model.Trainer = tr
	}

	return model, nil
}

// bindExtraArgs wraps the raw extra_args expression into a closure that
// evaluates it per episode, with `episode` bound in the evaluation context.
func bindExtraArgs(expr hcl.Expression) config.ArgsFunc {
	if expr == nil {
		return nil
	}
	return func(episode int) ([]string, error) {
		evalCtx := &hcl.EvalContext{
			Variables: map[string]cty.Value{
				"episode": cty.NumberIntVal(int64(episode)),
			},
		}
		val, diags := expr.Value(evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate trainer.extra_args for episode %d: %w", episode, diags)
		}
		if val.IsNull() {
			return nil, nil
		}

		listVal, err := convert.Convert(val, cty.List(cty.String))
		if err != nil {
			return nil, fmt.Errorf("trainer.extra_args must be a list of strings: %w", err)
		}

		var args []string
		for it := listVal.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			args = append(args, elem.AsString())
		}
		return args, nil
	}
}
