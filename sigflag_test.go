package sigflag

import (
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetFlags(log.Lshortfile)
	os.Exit(m.Run())
}

func params(ps ...Param) Func {
	return Func{Params: ps}
}

func TestPlainParam(t *testing.T) {
	RunCases(t, params(P("required")), []parseCase{
		noErrorCase(Values{"required": ""}, ""),
		noErrorCase(Values{"required": "hello, world"}, "hello, world"),
		errorCase(`missing argument: "required"`),
		errorCase(`excess argument: "world"`, "hello", "world"),
	})
}

func TestAnnotated(t *testing.T) {
	RunCases(t, params(P("required").Type(Int)), []parseCase{
		noErrorCase(Values{"required": 0}, "0"),
		noErrorCase(Values{"required": -42}, "-42"),
		errorCase(`invalid int value: "x"`, "x"),
	})
}

func TestDefault(t *testing.T) {
	RunCases(t, params(P("optional").Default(0)), []parseCase{
		noErrorCase(Values{"optional": 0}),
		noErrorCase(Values{"optional": 1}, "--optional", "1"),
		noErrorCase(Values{"optional": 1}, "--optional=1"),
	})
}

func TestAnnotatedDefault(t *testing.T) {
	RunCases(t, params(P("optional").Type(Int).Default(0)), []parseCase{
		noErrorCase(Values{"optional": 0}),
		noErrorCase(Values{"optional": 1}, "--optional", "1"),
		errorCase(`argument --optional: invalid int value: "x"`, "--optional", "x"),
	})
}

func TestListAnnotated(t *testing.T) {
	RunCases(t, params(P("required").Type(UntypedList)), []parseCase{
		noErrorCase(Values{"required": []interface{}{"1", "2", "3"}}, "1", "2", "3"),
		noErrorCase(Values{"required": []interface{}{"1"}}, "1"),
		errorCase(`missing argument: "required"`),
	})
}

func TestListTyped(t *testing.T) {
	RunCases(t, params(P("required").Type(ListOf(Int))), []parseCase{
		noErrorCase(Values{"required": []interface{}{1, 2, 3}}, "1", "2", "3"),
		errorCase(`invalid int value: "x"`, "1", "x"),
	})
}

func TestListDefault(t *testing.T) {
	def := []interface{}{}
	RunCases(t, params(P("optional").Default(def)), []parseCase{
		noErrorCase(Values{"optional": def}),
		noErrorCase(Values{"optional": []interface{}{"1", "2", "3"}}, "--optional", "1", "2", "3"),
	})
}

func TestListDefaultTyped(t *testing.T) {
	RunCases(t, params(P("optional").Default([]interface{}{1})), []parseCase{
		noErrorCase(Values{"optional": []interface{}{1, 2}}, "--optional", "1", "2"),
		noErrorCase(Values{"optional": []interface{}{1}}),
	})
}

func TestTupleAnnotated(t *testing.T) {
	RunCases(t, params(P("required").Type(UntypedTuple)), []parseCase{
		noErrorCase(Values{"required": Tuple{"1", "2"}}, "1", "2"),
	})
}

func TestTupleTyped(t *testing.T) {
	RunCases(t, params(P("required").Type(TupleOf(Int, String))), []parseCase{
		noErrorCase(Values{"required": Tuple{1, "2"}}, "1", "2"),
		errorCase("number of arguments (1) is too few, 2 are required", "1"),
		errorCase("number of arguments (3) is too many, 2 are required", "1", "2", "3"),
	})
}

func TestTupleVariadic(t *testing.T) {
	RunCases(t, params(P("required").Type(TupleVariadic(Int))), []parseCase{
		noErrorCase(Values{"required": Tuple{1, 2, 3}}, "1", "2", "3"),
	})
}

func TestTupleDefault(t *testing.T) {
	RunCases(t, params(P("optional").Default(Tuple{})), []parseCase{
		noErrorCase(Values{"optional": Tuple{"1"}}, "--optional", "1"),
		noErrorCase(Values{"optional": Tuple{}}),
	})
}

func TestTupleDefaultTyped(t *testing.T) {
	RunCases(t, params(P("optional").Default(Tuple{1})), []parseCase{
		noErrorCase(Values{"optional": Tuple{1, 2, 3}}, "--optional", "1", "2", "3"),
	})
}

func TestTupleDefaultMixed(t *testing.T) {
	RunCases(t, params(P("optional").Default(Tuple{1, "2"})), []parseCase{
		noErrorCase(Values{"optional": Tuple{3, "4"}}, "--optional", "3", "4"),
		noErrorCase(Values{"optional": Tuple{1, "2"}}),
		errorCase("argument --optional: number of arguments (1) is too few, 2 are required", "--optional", "3"),
	})
}

func TestPositiveFlag(t *testing.T) {
	RunCases(t, params(P("flag").Default(false)), []parseCase{
		noErrorCase(Values{"flag": true}, "--flag"),
		noErrorCase(Values{"flag": false}),
		errorCase("flag --flag does not take a value", "--flag=true"),
	})
}

// Presence inverts the declared default, whatever it is.
func TestNegativeFlag(t *testing.T) {
	RunCases(t, params(P("flag").Default(true)), []parseCase{
		noErrorCase(Values{"flag": false}, "--flag"),
		noErrorCase(Values{"flag": true}),
	})
}

func TestSnakeCasedFlag(t *testing.T) {
	RunCases(t, params(P("snake_cased").Default("")), []parseCase{
		noErrorCase(Values{"snake_cased": "test"}, "--snake-cased", "test"),
		errorCase(`unknown flag: "snake_cased"`, "--snake_cased", "test"),
	})
}

var choice = NewEnum("choice", "first", "second")

func TestEnumAnnotated(t *testing.T) {
	RunCases(t, params(P("required").Type(choice)), []parseCase{
		noErrorCase(Values{"required": choice.Member("first")}, "first"),
		errorCase(`"third" is not a valid choice, must be one of {first,second}`, "third"),
	})
}

func TestEnumDefault(t *testing.T) {
	RunCases(t, params(P("optional").Default(choice.Member("first"))), []parseCase{
		noErrorCase(Values{"optional": choice.Member("second")}, "--optional", "second"),
		noErrorCase(Values{"optional": choice.Member("first")}),
	})
}

func TestEnumList(t *testing.T) {
	RunCases(t, params(P("required").Type(ListOf(choice))), []parseCase{
		noErrorCase(
			Values{"required": []interface{}{choice.Member("first"), choice.Member("first"), choice.Member("second")}},
			"first", "first", "second"),
		errorCase(`"third" is not a valid choice, must be one of {first,second}`, "first", "third"),
	})
}

func TestEnumListDefault(t *testing.T) {
	RunCases(t, params(P("optional").Default([]interface{}{choice.Member("first")})), []parseCase{
		noErrorCase(
			Values{"optional": []interface{}{choice.Member("first"), choice.Member("second")}},
			"--optional", "first", "second"),
	})
}

func TestEnumTupleFixed(t *testing.T) {
	RunCases(t, params(P("required").Type(TupleOf(choice, choice))), []parseCase{
		noErrorCase(Values{"required": Tuple{choice.Member("first"), choice.Member("first")}}, "first", "first"),
	})
}

func TestEnumTupleVariadic(t *testing.T) {
	RunCases(t, params(P("required").Type(TupleVariadic(choice))), []parseCase{
		noErrorCase(
			Values{"required": Tuple{choice.Member("first"), choice.Member("first"), choice.Member("second")}},
			"first", "first", "second"),
	})
}

func TestEnumTupleDefault(t *testing.T) {
	RunCases(t, params(P("optional").Default(Tuple{choice.Member("first")})), []parseCase{
		noErrorCase(
			Values{"optional": Tuple{choice.Member("first"), choice.Member("second")}},
			"--optional", "first", "second"),
	})
}

// Plain parameters are consumed before annotated positionals, regardless of
// declaration order.
func TestPositionalOrder(t *testing.T) {
	f := params(
		P("verbose").Default(true),
		P("a"),
		P("b").Type(Int),
		P("c"),
	)
	RunCases(t, f, []parseCase{
		noErrorCase(Values{"verbose": true, "a": "x", "c": "y", "b": 3}, "x", "y", "3"),
		errorCase(`missing argument: "b"`, "x", "y"),
	})
}

func TestFlagTakesFollowingTokens(t *testing.T) {
	f := params(P("required"), P("optional").Default([]interface{}{1}))
	RunCases(t, f, []parseCase{
		noErrorCase(
			Values{"required": "a", "optional": []interface{}{2, 3}},
			"a", "--optional", "2", "3"),
		noErrorCase(
			Values{"required": "a", "optional": []interface{}{2, 3}},
			"--optional", "2", "3", "--", "a"),
		errorCase("flag --optional requires a value", "a", "--optional"),
	})
}

func TestUnknownFlag(t *testing.T) {
	RunCases(t, params(P("required")), []parseCase{
		errorCase(`unknown flag: "nope"`, "--nope", "x"),
	})
}

func TestDefaultHelp(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}} {
		_, err := ParseErr(params(P("required")), args)
		assert.Equal(t, ErrDefaultHelp, err)
	}
}

func TestDurationScalar(t *testing.T) {
	f := params(P("timeout").Type(Duration).Default(10 * time.Second))
	RunCases(t, f, []parseCase{
		noErrorCase(Values{"timeout": 10 * time.Second}),
		noErrorCase(Values{"timeout": 5 * time.Second}, "--timeout=5s"),
		errorCase(`argument --timeout: invalid duration value: "yes"`, "--timeout", "yes"),
	})
}

func TestBytes(t *testing.T) {
	vals, err := ParseErr(params(P("b").Type(BytesScalar).Default(Bytes(0))), []string{"--b=100g"})
	require.NoError(t, err)
	assert.EqualValues(t, 100e9, vals["b"])
}

func TestFloatDefault(t *testing.T) {
	RunCases(t, params(P("ratio").Default(1.5)), []parseCase{
		noErrorCase(Values{"ratio": 2.5}, "--ratio", "2.5"),
		noErrorCase(Values{"ratio": 1.5}),
	})
}

func TestValuesGetters(t *testing.T) {
	f := params(
		P("name"),
		P("count").Type(Int).Default(0),
		P("verbose").Default(false),
		P("pair").Default(Tuple{1, "2"}),
	)
	vals, err := ParseErr(f, []string{"joe", "--count", "3", "--verbose"})
	require.NoError(t, err)
	assert.EqualValues(t, "joe", vals.String("name"))
	assert.EqualValues(t, 3, vals.Int("count"))
	assert.True(t, vals.Bool("verbose"))
	assert.EqualValues(t, Tuple{1, "2"}, vals.Tuple("pair"))
}

func TestFlagName(t *testing.T) {
	assert.EqualValues(t, "no-upload", flagName("noUpload"))
	assert.EqualValues(t, "snake-cased", flagName("snake_cased"))
	assert.EqualValues(t, "data-dir", flagName("DataDir"))
	assert.EqualValues(t, "v", flagName("v"))
}
