package generator

import (
	"fmt"

	"github.com/ridoystarlord/schemagen/loader"
	"github.com/ridoystarlord/schemagen/schema"
	"github.com/ridoystarlord/schemagen/validator"
)

// Target names one generator.
type Target string

const (
	TargetSQL        Target = "sql"
	TargetModels     Target = "models"
	TargetTypes      Target = "types"
	TargetValidators Target = "validators"
	TargetParsers    Target = "parsers"
	TargetDocs       Target = "docs"
)

// AllTargets returns every target in its canonical run order.
func AllTargets() []Target {
	return []Target{TargetSQL, TargetModels, TargetTypes, TargetValidators, TargetParsers, TargetDocs}
}

// Result is one target's outcome: the files it wrote, or why it failed.
type Result struct {
	Target Target
	Files  []string
	Err    error
}

// State tracks the pipeline through one generation run.
type State int

const (
	StateIdle State = iota
	StateLoaded
	StateValidated
	StateGenerating
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoaded:
		return "loaded"
	case StateValidated:
		return "validated"
	case StateGenerating:
		return "generating"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Pipeline drives one schema document through load, validate and the
// selected generators. A load or validation failure is fatal; a
// failing generator is recorded and the remaining targets still run.
type Pipeline struct {
	schemaPath string
	outputDir  string

	state   State
	doc     *schema.Document
	results []Result
}

// New returns an idle pipeline for one schema file and output tree.
func New(schemaPath, outputDir string) *Pipeline {
	return &Pipeline{schemaPath: schemaPath, outputDir: outputDir, state: StateIdle}
}

// State returns the pipeline's current state.
func (p *Pipeline) State() State { return p.state }

// Document returns the loaded schema document, nil before Load.
func (p *Pipeline) Document() *schema.Document { return p.doc }

// Results returns the per-target outcomes of the last Generate call.
func (p *Pipeline) Results() []Result { return p.results }

// OK reports whether every selected target succeeded.
func (p *Pipeline) OK() bool {
	if p.state != StateDone {
		return false
	}
	for _, r := range p.results {
		if r.Err != nil {
			return false
		}
	}
	return true
}

// Load parses the schema document. Failure aborts the run before
// anything is generated.
func (p *Pipeline) Load() error {
	if p.state != StateIdle {
		return fmt.Errorf("load: pipeline is %s, want idle", p.state)
	}
	doc, err := loader.Load(p.schemaPath)
	if err != nil {
		p.state = StateFailed
		return err
	}
	p.doc = doc
	p.state = StateLoaded
	return nil
}

// Validate checks the loaded document. Any validation error moves the
// pipeline to failed; warnings do not.
func (p *Pipeline) Validate() (validator.Result, error) {
	if p.state != StateLoaded {
		return validator.Result{}, fmt.Errorf("validate: pipeline is %s, want loaded", p.state)
	}
	result := validator.Validate(p.doc)
	if !result.Valid() {
		p.state = StateFailed
		return result, fmt.Errorf("schema validation failed with %d error(s)", len(result.Errors))
	}
	p.state = StateValidated
	return result, nil
}

// Generate runs the selected targets (nil means all) against the
// validated document. Each target's failure is recorded against its
// Result without stopping the rest.
func (p *Pipeline) Generate(targets []Target) ([]Result, error) {
	if p.state != StateValidated {
		return nil, fmt.Errorf("generate: pipeline is %s, want validated", p.state)
	}
	if len(targets) == 0 {
		targets = AllTargets()
	}

	p.state = StateGenerating
	p.results = nil
	for _, target := range targets {
		p.results = append(p.results, runTarget(target, p.doc, p.outputDir))
	}
	p.state = StateDone
	return p.results, nil
}

// WrittenFiles lists every artifact path written by successful targets.
func (p *Pipeline) WrittenFiles() []string {
	var files []string
	for _, r := range p.results {
		files = append(files, r.Files...)
	}
	return files
}

// runTarget invokes one generator, converting a panic into a recorded
// failure so one broken target cannot take down the others.
func runTarget(target Target, doc *schema.Document, outDir string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Target: target, Err: fmt.Errorf("generator panicked: %v", r)}
		}
	}()

	var fn func(*schema.Document, string) ([]string, error)
	switch target {
	case TargetSQL:
		fn = GenerateSQL
	case TargetModels:
		fn = GenerateRecords
	case TargetTypes:
		fn = GenerateInterfaces
	case TargetValidators:
		fn = GenerateValidators
	case TargetParsers:
		fn = GenerateParsers
	case TargetDocs:
		fn = GenerateDocs
	default:
		return Result{Target: target, Err: fmt.Errorf("unknown target %q", target)}
	}

	files, err := fn(doc, outDir)
	return Result{Target: target, Files: files, Err: err}
}
