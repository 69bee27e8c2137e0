package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePhasesAcceptsKnownNames(t *testing.T) {
	require.NoError(t, validatePhases([]string{"prune", "hoist", "prune+hoist"}))
}

func TestValidatePhasesSuggestsClosestMatch(t *testing.T) {
	err := validatePhases([]string{"prunee"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `did you mean "prune"`)
}

func TestValidatePhasesRejectsUnrelatedName(t *testing.T) {
	err := validatePhases([]string{"xyzzy"})
	require.Error(t, err)
}

func TestExitCodeForMapsCliErrors(t *testing.T) {
	require.Equal(t, exitSuccess, exitCodeFor(nil))
	require.Equal(t, exitUsageError, exitCodeFor(usageError(errors.New("bad flag"))))
	require.Equal(t, exitBuilderError, exitCodeFor(builderError(errors.New("no parse"))))
	require.Equal(t, exitOracleError, exitCodeFor(oracleError(errors.New("tester crashed"))))
}

func TestExitCodeForDefaultsToOracleError(t *testing.T) {
	require.Equal(t, exitOracleError, exitCodeFor(errors.New("unwrapped failure")))
}
