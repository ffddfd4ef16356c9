package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type startCall struct {
	name string
	args []string
}

func newTestLauncher(command string, available map[string]bool) (*Launcher, *[]startCall) {
	var calls []startCall
	l := NewLauncher(command, []string{"--new-tab"}, NullLogger())
	l.lookPath = func(name string) (string, error) {
		if available[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
	l.start = func(name string, args ...string) error {
		calls = append(calls, startCall{name: name, args: args})
		return nil
	}
	return l, &calls
}

func TestLauncher_ConfiguredCommand(t *testing.T) {
	l, calls := newTestLauncher("firefox", nil)

	require.NoError(t, l.Open("https://shop.example/p/1"))
	require.Len(t, *calls, 1)
	assert.Equal(t, "firefox", (*calls)[0].name)
	assert.Equal(t, []string{"--new-tab", "https://shop.example/p/1"}, (*calls)[0].args)
}

func TestLauncher_NoneAvailable(t *testing.T) {
	l, calls := newTestLauncher("", map[string]bool{})

	assert.ErrorIs(t, l.Open("https://shop.example"), ErrNoBrowser)
	assert.Empty(t, *calls)
}
