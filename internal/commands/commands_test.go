package commands

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestExecuteParsesFlags(t *testing.T) {
	r := NewRegistry()
	fs := newFlagSet("run")
	ticks := fs.Int("ticks", 10, "")
	scene := fs.String("scene", "", "")
	var ran bool
	r.Register("run", "simulate a scene", fs, func() error {
		ran = true
		return nil
	})

	require.NoError(t, r.Execute([]string{"run", "-ticks", "64", "-scene", "a.yaml"}))
	assert.True(t, ran)
	assert.Equal(t, 64, *ticks)
	assert.Equal(t, "a.yaml", *scene)
	assert.Empty(t, fs.Args())
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register("fail", "", newFlagSet("fail"), func() error { return boom })

	assert.ErrorIs(t, r.Execute(nil), ErrMissingCommand)
	assert.ErrorIs(t, r.Execute([]string{"nope"}), ErrUnknownCommand)

	err := r.Execute([]string{"fail"})
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "fail: boom")

	assert.Error(t, r.Execute([]string{"fail", "-undefined"}))
}

func TestUsage(t *testing.T) {
	r := NewRegistry()
	r.Register("terrain", "generate a scene", newFlagSet("terrain"), func() error { return nil })
	r.Register("render", "write PNG frames", newFlagSet("render"), func() error { return nil })
	assert.Equal(t, []string{"render", "terrain"}, r.Names())

	var buf bytes.Buffer
	r.Usage(&buf)
	assert.Equal(t, "  render     write PNG frames\n  terrain    generate a scene\n", buf.String())
}
