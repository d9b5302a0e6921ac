package arith_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arithlang/arith"
)

func TestInterpretStages(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		stage arith.Stage
		kind  any
	}{
		{"lex", "2 + a", arith.StageLex, new(*arith.LexError)},
		{"parse-bracket", "(2 + 3", arith.StageParse, new(*arith.BracketError)},
		{"parse-trailing", "2 + 3)", arith.StageParse, new(*arith.TrailingInputError)},
		{"parse-empty", "", arith.StageParse, new(*arith.EmptyExpressionError)},
		{"parse-token", "2 +", arith.StageParse, new(*arith.TokenError)},
		{"eval", "1 / 0", arith.StageEval, new(*arith.DivideByZeroError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := arith.Interpret(c.src)
			var perr *arith.PipelineError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, c.stage, perr.Stage)
			assert.True(t, errors.As(err, c.kind), "%#v does not unwrap to %T", err, c.kind)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []string{"1", "2 + 3 * 4", "(2 + 3) * 4", "--5", "1 / 0", "1 % 0"}
	for _, src := range valid {
		assert.NoError(t, arith.Validate(src), "validating %q", src)
	}
	invalid := []struct {
		src   string
		stage arith.Stage
	}{
		{"2 + a", arith.StageLex},
		{"(2 + 3", arith.StageParse},
		{"", arith.StageParse},
		{"2 3", arith.StageParse},
	}
	for _, c := range invalid {
		err := arith.Validate(c.src)
		var perr *arith.PipelineError
		require.ErrorAs(t, err, &perr, "validating %q", c.src)
		assert.Equal(t, c.stage, perr.Stage, "validating %q", c.src)
	}
}

// A Validate success means Interpret cannot fail before evaluation.
func TestValidateImpliesNoSyntaxError(t *testing.T) {
	for _, src := range []string{"1 / 0", "1 % 0", "2 ^ 3 ^ 2", "-(4) * 2"} {
		require.NoError(t, arith.Validate(src))
		_, err := arith.Interpret(src)
		if err == nil {
			continue
		}
		var perr *arith.PipelineError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, arith.StageEval, perr.Stage, "interpreting %q", src)
	}
}

func TestInterpretDetails(t *testing.T) {
	d, err := arith.InterpretDetails("(2 + 3) * 4")
	require.NoError(t, err)
	assert.Equal(t, 20.0, d.Result)
	assert.Equal(t, "((2 + 3) * 4)", d.AST.String())
	require.Len(t, d.Tokens, 8)
	assert.Equal(t, arith.LParen, d.Tokens[0].Kind)
	assert.Equal(t, arith.EOF, d.Tokens[7].Kind)
}

func TestPipelineErrorMessage(t *testing.T) {
	_, err := arith.Interpret("(2 + 3")
	require.Error(t, err)
	assert.Equal(t, "parse error: column 7: open ( with no close )", err.Error())

	_, err = arith.Interpret("1 % 0")
	require.Error(t, err)
	assert.Equal(t, "eval error: modulo by zero", err.Error())
}

func TestFormatResult(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{14, "14"},
		{-5, "-5"},
		{3.5, "3.5"},
		{0.25, "0.25"},
		{0, "0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, arith.FormatResult(c.v))
	}
}

func ExampleInterpret() {
	v, err := arith.Interpret("2 ^ 3 ^ 2")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(arith.FormatResult(v))
	// Output:
	// 512
}
