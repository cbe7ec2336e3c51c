package hcl

import "github.com/hashicorp/hcl/v2"

// planRoot is the top-level structure of a plan file. Every block is
// optional at the file level because a plan may be split across several
// files in one directory; the loader enforces that each block appears
// exactly once across the merged set.
type planRoot struct {
	Run        *runBlock        `hcl:"run,block"`
	Checkpoint *checkpointBlock `hcl:"checkpoint,block"`
	Trainer    *trainerBlock    `hcl:"trainer,block"`
	Remain     hcl.Body         `hcl:",remain"`
}

// runBlock declares the episode range and the failure policy.
type runBlock struct {
	Start     int    `hcl:"start"`
	Stop      int    `hcl:"stop"`
	Step      int    `hcl:"step,optional"`
	OnFailure string `hcl:"on_failure,optional"`
	Retries   *int   `hcl:"retries,optional"`
}

// checkpointBlock declares the pointer file the driver maintains.
type checkpointBlock struct {
	Path   string `hcl:"path"`
	Prefix string `hcl:"prefix,optional"`
}

// trainerBlock declares the external training command. ExtraArgs stays an
// undecoded expression so it can be evaluated per episode with the
// `episode` variable in scope.
type trainerBlock struct {
	Executable string         `hcl:"executable"`
	EnvName    string         `hcl:"env_name"`
	Timeout    string         `hcl:"timeout,optional"`
	ExtraArgs  hcl.Expression `hcl:"extra_args,optional"`
}
