package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sgostarter/libprime/engine"
	"github.com/stretchr/testify/assert"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	trace, verbose, strict, bound, configFile = false, false, false, 0, ""

	var outBuf, errBuf bytes.Buffer

	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()

	return outBuf.String(), errBuf.String(), err
}

func TestCLIFraction(t *testing.T) {
	stdout, _, err := execute(t, "", "2.25")
	assert.Nil(t, err)
	assert.Equal(t, "2.25 = 9/4 ==> 2 1/4\n", stdout)
}

func TestCLIFactorize(t *testing.T) {
	stdout, _, err := execute(t, "", "1234")
	assert.Nil(t, err)
	assert.Equal(t, "1234 = 2 * 617\n", stdout)
}

func TestCLIPrompt(t *testing.T) {
	stdout, _, err := execute(t, "0.12\n")
	assert.Nil(t, err)
	assert.Contains(t, stdout, "Enter an integer number to factorize into prime numbers:")
	assert.Contains(t, stdout, "0.12 = 3/25\n")
}

func TestCLIRecoverableErrors(t *testing.T) {
	_, stderr, err := execute(t, "", "0.123456789")
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(stderr, "number has too many digits"))

	_, stderr, err = execute(t, "", "9223372036854775807")
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(stderr, "too large int"))

	_, stderr, err = execute(t, "", "12ab")
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(stderr, "please specify an integer value"))
}

func TestCLIInvalidOption(t *testing.T) {
	stdout, _, err := execute(t, "", "abc")
	assert.True(t, errors.Is(err, errInvalidOption))
	assert.Contains(t, stdout, "Invalid command line option: 'abc'")
}

func TestCLIBoundTooLarge(t *testing.T) {
	_, _, err := execute(t, "", "--bound", "100000000000", "1234")
	assert.True(t, errors.Is(err, engine.ErrBoundTooLarge))
}

func TestCLIUnfactored(t *testing.T) {
	stdout, _, err := execute(t, "", "2000006")
	assert.Nil(t, err)
	assert.Equal(t, "2000006 = 2 * (1000003 unfactored)\n", stdout)
}
