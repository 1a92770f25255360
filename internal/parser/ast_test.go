package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClick(t *testing.T) {
	p := Build()

	cmd, err := p.ParseString("", "click")
	require.NoError(t, err)
	require.NotNil(t, cmd.Click)
	assert.Equal(t, 1, cmd.Click.Repeat())

	cmd, err = p.ParseString("", "click times: 25")
	require.NoError(t, err)
	require.NotNil(t, cmd.Click)
	assert.Equal(t, 25, cmd.Click.Repeat())
}

func TestParseBuy(t *testing.T) {
	p := Build()

	cmd, err := p.ParseString("", "buy grandma")
	require.NoError(t, err)
	require.NotNil(t, cmd.Buy)
	assert.Equal(t, "grandma", cmd.Buy.ID)

	cmd, err = p.ParseString("", "buy reinforced-finger")
	require.NoError(t, err)
	require.NotNil(t, cmd.Buy)
	assert.Equal(t, "reinforced-finger", cmd.Buy.ID)

	// buy needs an id
	_, err = p.ParseString("", "buy")
	assert.Error(t, err)
}

func TestParseTheme(t *testing.T) {
	p := Build()

	cmd, err := p.ParseString("", "theme list")
	require.NoError(t, err)
	require.NotNil(t, cmd.Theme)
	assert.Equal(t, "list", cmd.Theme.Action)
	assert.Empty(t, cmd.Theme.ID)

	cmd, err = p.ParseString("", "theme buy midnight")
	require.NoError(t, err)
	require.NotNil(t, cmd.Theme)
	assert.Equal(t, "buy", cmd.Theme.Action)
	assert.Equal(t, "midnight", cmd.Theme.ID)

	cmd, err = p.ParseString("", "theme apply golden")
	require.NoError(t, err)
	require.NotNil(t, cmd.Theme)
	assert.Equal(t, "apply", cmd.Theme.Action)
	assert.Equal(t, "golden", cmd.Theme.ID)

	_, err = p.ParseString("", "theme repaint")
	assert.Error(t, err)
}

func TestParseBareCommands(t *testing.T) {
	p := Build()

	cmd, err := p.ParseString("", "shop")
	require.NoError(t, err)
	assert.NotNil(t, cmd.Shop)

	cmd, err = p.ParseString("", "stats")
	require.NoError(t, err)
	assert.NotNil(t, cmd.Stats)

	cmd, err = p.ParseString("", "save")
	require.NoError(t, err)
	assert.NotNil(t, cmd.Save)
}

func TestParseReset(t *testing.T) {
	p := Build()

	cmd, err := p.ParseString("", "reset")
	require.NoError(t, err)
	require.NotNil(t, cmd.Reset)
	assert.False(t, cmd.Reset.Confirm)

	cmd, err = p.ParseString("", "reset confirm")
	require.NoError(t, err)
	require.NotNil(t, cmd.Reset)
	assert.True(t, cmd.Reset.Confirm)
}

func TestParseHelp(t *testing.T) {
	p := Build()

	cmd, err := p.ParseString("", "help")
	require.NoError(t, err)
	require.NotNil(t, cmd.Help)
	assert.Empty(t, cmd.Help.Command)

	cmd, err = p.ParseString("", "help buy")
	require.NoError(t, err)
	require.NotNil(t, cmd.Help)
	assert.Equal(t, "buy", cmd.Help.Command)
}

func TestParseIsCaseTolerantOnKeywords(t *testing.T) {
	p := Build()

	cmd, err := p.ParseString("", "Click")
	require.NoError(t, err)
	assert.NotNil(t, cmd.Click)
}

func TestMapError(t *testing.T) {
	cases := map[string]string{
		"click times 5": "click [times: N]",
		"buy":           "buy <upgrade-id>",
		"theme repaint": "theme <list|buy|apply>",
		"reset now":     "reset confirm",
		"frobnicate":    "understand your command",
		"":              "understand your command",
	}
	for input, want := range cases {
		err := MapError(input, assert.AnError)
		require.Error(t, err)
		assert.Contains(t, err.Error(), want, "input %q", input)
	}
}
