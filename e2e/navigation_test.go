//go:build e2e && unix

package main

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startDeck(t *testing.T, titles ...string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	deckPath, err := tf.WriteDeck("talk.md", titles...)
	require.NoError(t, err, "Failed to write deck")

	require.NoError(t, tf.StartApp("--no-animate", deckPath), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	return tf
}

var counterRe = regexp.MustCompile(`\b(\d+/\d+)\b`)

// lastCounter returns the most recently drawn "i/N" slide counter
func lastCounter(s string) string {
	matches := counterRe.FindAllString(ansiRe.ReplaceAllString(s, ""), -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1]
}

func TestKeyboardNavigation(t *testing.T) {
	t.Parallel()
	tf := startDeck(t, "Wrap", "Earn", "Redeem")
	defer tf.Cleanup()

	require.True(t, tf.SeePlain("talk  1/3"), "Should show deck title and counter")
	require.True(t, tf.SeePlain("Wrap"), "Should show first slide")

	tf.Next()
	require.True(t, tf.SeePlain("2/3"), "Right arrow should advance")
	require.True(t, tf.SeePlain("Earn"), "Should show second slide")

	tf.Next()
	tf.Next()
	require.NoError(t, tf.WaitForE(func(s string) bool {
		return lastCounter(s) == "1/3"
	}, 2*time.Second, "Paging past the end should wrap to the first slide"))

	tf.Prev()
	require.NoError(t, tf.WaitForE(func(s string) bool {
		return lastCounter(s) == "3/3"
	}, 2*time.Second, "Paging before the start should wrap to the last slide"))
}

func TestJumpNavigation(t *testing.T) {
	t.Parallel()
	tf := startDeck(t, "One", "Two", "Three", "Four")
	defer tf.Cleanup()

	tf.SendKeys("3")
	require.True(t, tf.SeePlain("3/4"), "Digit should jump to slide")

	tf.JumpTo(2)
	require.NoError(t, tf.WaitForE(func(s string) bool {
		return lastCounter(s) == "2/4"
	}, 2*time.Second, "Jump prompt should move to slide 2"))

	tf.JumpTo(9)
	require.True(t, tf.WaitForStatusMessage("index out of range", 2*time.Second),
		"Out of range jump should report an error")
}

func TestMouseNavigation(t *testing.T) {
	t.Parallel()
	tf := startDeck(t, "Left", "Right")
	defer tf.Cleanup()

	// The next arrow sits in the rightmost three columns beside the card
	tf.Click(118, 4)
	require.True(t, tf.SeePlain("2/2"), "Clicking the next arrow should advance")
}

func TestSingleSlideHasNoNavigation(t *testing.T) {
	t.Parallel()
	tf := startDeck(t, "Alone")
	defer tf.Cleanup()

	require.True(t, tf.SeePlain("1/1"), "Should show single slide counter")
	tf.Next()
	time.Sleep(200 * time.Millisecond)
	require.NotContains(t, tf.SnapshotPlain(), "●", "Single slide deck should not draw dots")
}
