package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Success(map[string]string{"result": "success"})
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	require.NoError(t, formatter.Success("g/4"))
	assert.Equal(t, "g/4\n", buf.String())
}

func TestExitError(t *testing.T) {
	underlying := errors.New("boom")
	err := WrapExitError(ExitNotFound, "script not found", underlying)

	assert.Equal(t, "script not found: boom", err.Error())
	assert.Equal(t, ExitNotFound, GetExitCode(err))
	assert.ErrorIs(t, err, underlying)
}

func TestGetExitCode_PlainError(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(errors.New("boom")))
}
