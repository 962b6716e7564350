package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseProcessState(t *testing.T) {
	req := require.New(t)

	req.Equal(ProcessRunning, ParseProcessState("R"))
	req.Equal(ProcessSleeping, ParseProcessState("S"))
	req.Equal(ProcessWaiting, ParseProcessState("D"))
	req.Equal(ProcessUnknown, ParseProcessState("?"))
	req.Equal(ProcessUnknown, ParseProcessState(""))
}
