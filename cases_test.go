package sigflag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type parseCase struct {
	args     []string
	err      string
	expected Values
}

func noErrorCase(expected Values, args ...string) parseCase {
	return parseCase{args: args, expected: expected}
}

func errorCase(err string, args ...string) parseCase {
	return parseCase{args: args, err: err}
}

func (me parseCase) Run(t *testing.T, f Func) {
	actual, err := ParseErr(f, me.args)
	if me.err != "" {
		assert.EqualError(t, err, me.err, "%v", me)
		return
	}
	if !assert.NoError(t, err, "%v", me) {
		return
	}
	assert.EqualValues(t, me.expected, actual, "%v", me)
}

func RunCases(t *testing.T, f Func, cases []parseCase) {
	for _, _case := range cases {
		_case.Run(t, f)
	}
}
