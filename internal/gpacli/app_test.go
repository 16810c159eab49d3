package gpacli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := NewApp(&out, &errOut)
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"gpa"}, args...))
	return out.String(), err
}

func TestParseEntries(t *testing.T) {
	entries, err := ParseEntries([]string{"90:3", " 80 : 2"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.EqualValues(t, "90", entries[0].Marks)
	assert.EqualValues(t, "3", entries[0].Credits)
	assert.EqualValues(t, " 80 ", entries[1].Marks)

	_, err = ParseEntries([]string{"90:3", "80"})
	assert.ErrorIs(t, err, ErrMalformedEntry)
	assert.Contains(t, err.Error(), "argument 2")
}

func TestCalcCommand(t *testing.T) {
	out, err := run(t, "calc", "90:3", "80:2")
	require.NoError(t, err)
	assert.Equal(t, "GPA: 3.72\n", out)
}

func TestCalcCommandNoEntries(t *testing.T) {
	out, err := run(t, "calc")
	require.NoError(t, err)
	assert.Equal(t, "GPA: 0.00\n", out)
}

func TestCalcCommandBreakdown(t *testing.T) {
	out, err := run(t, "calc", "--breakdown", "90:3", "80:2")
	require.NoError(t, err)
	assert.Contains(t, out, "1. marks 90  credits 3  grade point 4.0\n")
	assert.Contains(t, out, "2. marks 80  credits 2  grade point 3.3\n")
	assert.Contains(t, out, "GPA: 3.72\n")
}

func TestCalcCommandInvalidEntry(t *testing.T) {
	_, err := run(t, "calc", "55:2", "150:1")
	require.Error(t, err)

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Equal(t, "entry 2: Invalid marks: Please enter a value between 0 and 100.", err.Error())

	_, err = run(t, "calc", "90-3")
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.ExitCode())
}

func TestScaleCommand(t *testing.T) {
	out, err := run(t, "scale")
	require.NoError(t, err)
	assert.Contains(t, out, "   90 - 100    4.0\n")
	assert.Contains(t, out, "    0 - <50    0.0\n")
}

func TestGradePointCommand(t *testing.T) {
	out, err := run(t, "grade-point", "72")
	require.NoError(t, err)
	assert.Equal(t, "2.7\n", out)

	_, err = run(t, "grade-point", "101")
	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, err.Error(), "Invalid marks")

	_, err = run(t, "grade-point")
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.ExitCode())
}
