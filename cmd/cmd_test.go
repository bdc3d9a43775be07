package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vipcxj/intervals/internal/interval"
	"github.com/vipcxj/intervals/internal/shell"
)

func TestChoiceValue(t *testing.T) {
	v := newOutputValue()
	require.Equal(t, outputText, v.String())
	require.NoError(t, v.Set(" JSON "))
	require.Equal(t, outputJSON, v.String())
	require.EqualError(t, v.Set("xml"), "must be one of text, json, yaml")
	require.Equal(t, outputJSON, v.String())
	require.Equal(t, "output", v.Type())
}

func TestShellValue(t *testing.T) {
	v := &shellValue{ShellType: shell.ShellTypeAuto}
	require.Equal(t, "auto", v.String())
	require.NoError(t, v.Set("PowerShell"))
	require.Equal(t, shell.ShellTypePowershell, v.ShellType)
	require.EqualError(t, v.Set("fish"), "must be one of auto, sh, powershell, cmd")
}

func TestBindEnv(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	numberType := newNumberTypeValue()
	flags.VarP(numberType, "type", "t", "")
	prefix := flags.String("var-prefix", "", "")
	require.NoError(t, flags.Parse([]string{"--var-prefix", "CLI_"}))

	t.Setenv("INTERVALS_TYPE", "float")
	t.Setenv("INTERVALS_VAR_PREFIX", "ENV_")
	require.NoError(t, bindEnv(flags))
	require.Equal(t, numberFloat, numberType.String())
	require.Equal(t, "CLI_", *prefix)

	t.Setenv("INTERVALS_TYPE", "hex")
	flags = pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Var(newNumberTypeValue(), "type", "")
	err := bindEnv(flags)
	require.ErrorContains(t, err, "INTERVALS_TYPE")
}

func TestNewSetDoc(t *testing.T) {
	set := interval.Union[int](interval.LessThan(0), interval.Closed(3, 5))
	exp := setDoc{
		Text:  "(-∞ ; 0) ∪ [3 ; 5]",
		Empty: false,
		Ranges: []rangeDoc{
			{
				Lower: boundDoc{Unbounded: true},
				Upper: boundDoc{Value: "0"},
			},
			{
				Lower: boundDoc{Value: "3", Closed: true},
				Upper: boundDoc{Value: "5", Closed: true},
			},
		},
	}
	if diff := cmp.Diff(exp, newSetDoc(set)); diff != "" {
		t.Fatalf("newSetDoc mismatch (-want +got):\n%s", diff)
	}

	empty := newSetDoc[int](interval.EmptySet[int]())
	require.True(t, empty.Empty)
	require.Equal(t, "∅", empty.Text)
	require.NotNil(t, empty.Ranges)
}

func TestWriteSet(t *testing.T) {
	set := interval.Union[float64](interval.Open(0.5, 1.0), interval.AtLeast(2.0))
	exp := newSetDoc(set)

	for _, format := range []string{outputJSON, outputYAML} {
		var buf bytes.Buffer
		require.NoError(t, writeSet(&buf, format, set))
		var got setDoc
		if format == outputJSON {
			require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		} else {
			require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		}
		if diff := cmp.Diff(exp, got); diff != "" {
			t.Fatalf("%s round trip mismatch (-want +got):\n%s", format, diff)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, writeSet(&buf, outputText, set))
	require.Equal(t, "(0.5 ; 1) ∪ [2 ; +∞)\n", buf.String())
}

func TestJoinArgs(t *testing.T) {
	require.Equal(t, "[0,5) + {7}", joinArgs([]string{"[0,5)", "+", "{7}"}))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriteResults(t *testing.T) {
	values := []string{"-1", "0", "5"}
	results := []bool{true, false, true}
	cases := []struct {
		join []string
		exp  string
	}{
		{nil, "-1: true\n0: false\n5: true\n"},
		{[]string{"comma"}, "-1,5\n"},
		{[]string{"json"}, "[\"-1\",\"5\"]\n"},
		{[]string{"newline"}, "-1\n5\n"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		require.NoError(t, writeResults(&buf, tc.join, values, results))
		require.Equal(t, tc.exp, buf.String(), "join %v", tc.join)
	}

	var buf bytes.Buffer
	require.NoError(t, writeResults(&buf, []string{"json"}, values, []bool{false, false, false}))
	require.Equal(t, "[]\n", buf.String())

	require.Error(t, writeResults(&buf, []string{"tabs"}, values, results))
	require.EqualError(t, writeResults(failingWriter{}, nil, values, results), "broken pipe")
	require.EqualError(t, writeResults(failingWriter{}, []string{"comma"}, values, results), "broken pipe")
}

func TestWriteErrorsPropagate(t *testing.T) {
	for _, args := range [][]string{
		{"filter", "1-3", "2"},
		{"filter", "1-3"},
		{"contains", "[0,5)", "2"},
		{"eval", "[0,5)"},
		{"export", "--shell", "sh", "a=1"},
	} {
		root := NewRootCmd()
		root.SetOut(failingWriter{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs(args)
		require.Errorf(t, root.Execute(), "%v", args)
	}
}
