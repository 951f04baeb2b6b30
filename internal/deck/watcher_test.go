package deck

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

type reload struct {
	deck *Deck
	err  error
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := writeFile(t, "deck.md", "# One\n")
	w, err := NewWatcher(path, 20*time.Millisecond, zaptest.NewLogger(t))
	require.NoError(t, err)

	got := make(chan reload, 4)
	w.Start(context.Background(), func(d *Deck, err error) {
		got <- reload{d, err}
	})

	require.NoError(t, os.WriteFile(path, []byte("# One\n---\n# Two\n"), 0644))

	select {
	case r := <-got:
		require.NoError(t, r.err)
		require.Len(t, r.deck.Slides, 2)
		assert.Equal(t, "Two", r.deck.Slides[1].Title)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	require.NoError(t, w.Close())
}

func TestWatcherReportsParseErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := writeFile(t, "deck.toml", "[[slides]]\ntitle = \"a\"\n")
	w, err := NewWatcher(path, 20*time.Millisecond, nil)
	require.NoError(t, err)

	got := make(chan reload, 4)
	w.Start(context.Background(), func(d *Deck, err error) {
		got <- reload{d, err}
	})

	require.NoError(t, os.WriteFile(path, []byte("[[slides]"), 0644))

	select {
	case r := <-got:
		require.Error(t, r.err)
		assert.Nil(t, r.deck)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}

	require.NoError(t, w.Close())
}

func TestWatcherStopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := writeFile(t, "deck.md", "# One\n")
	w, err := NewWatcher(path, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, path, w.Path())

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx, func(*Deck, error) {})
	cancel()

	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "second close is a no-op")
}
