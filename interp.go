package arith

import "strconv"

// Stage identifies the pipeline stage that produced an error.
type Stage int8

const (
	StageLex Stage = iota
	StageParse
	StageEval
)

func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	case StageEval:
		return "eval"
	default:
		return "Stage(" + strconv.Itoa(int(s)) + ")"
	}
}

// PipelineError is the error type returned by Interpret, InterpretDetails,
// and Validate. It tags the underlying stage error with the stage it came
// from; Unwrap exposes the typed stage error for errors.As.
type PipelineError struct {
	Stage Stage
	Err   error
}

func (err *PipelineError) Error() string {
	return err.Stage.String() + " error: " + err.Err.Error()
}

func (err *PipelineError) Unwrap() error {
	return err.Err
}

// Interpret tokenizes, parses, and evaluates src. The first error aborts
// the remaining stages and is returned as a *PipelineError.
func Interpret(src string) (float64, error) {
	d, err := InterpretDetails(src)
	if err != nil {
		return 0, err
	}
	return d.Result, nil
}

// Details retains the intermediate artifacts of an interpretation for
// callers that want to inspect them, such as a REPL's verbose mode.
type Details struct {
	Tokens []Token
	AST    Node
	Result float64
}

// InterpretDetails is Interpret, but it also returns the token sequence and
// syntax tree that produced the result.
func InterpretDetails(src string) (*Details, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, &PipelineError{Stage: StageLex, Err: err}
	}
	n, err := Parse(toks)
	if err != nil {
		return nil, &PipelineError{Stage: StageParse, Err: err}
	}
	v, err := Evaluate(n)
	if err != nil {
		return nil, &PipelineError{Stage: StageEval, Err: err}
	}
	return &Details{Tokens: toks, AST: n, Result: v}, nil
}

// Validate checks that src is a syntactically valid expression without
// evaluating it. A nil result means Interpret cannot fail at the lex or
// parse stage, though it may still fail at evaluation.
func Validate(src string) error {
	toks, err := Tokenize(src)
	if err != nil {
		return &PipelineError{Stage: StageLex, Err: err}
	}
	if _, err := Parse(toks); err != nil {
		return &PipelineError{Stage: StageParse, Err: err}
	}
	return nil
}

// FormatResult renders v in its shortest decimal form; whole values print
// without a fractional part.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
