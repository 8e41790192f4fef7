// Package testutil provides shared test helpers for boards, moves and
// errors.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(tb testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	tb.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		report(tb, fmt.Sprintf("mismatch (-want +got):\n%s", diff), msgAndArgs...)
	}
}

// AssertBoardsEqual compares two boards field by field. The report includes
// both positions as FEN.
func AssertBoardsEqual(tb testing.TB, got, want *chess.Board, msgAndArgs ...interface{}) {
	tb.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		report(tb, fmt.Sprintf("board mismatch\n want %s\n  got %s\n(-want +got):\n%s",
			engine.BoardToFEN(want), engine.BoardToFEN(got), diff), msgAndArgs...)
	}
}

// AssertMoveTexts checks that moves contain exactly the given coordinate
// texts, in any order.
func AssertMoveTexts(tb testing.TB, moves chess.MoveList, want []string, msgAndArgs ...interface{}) {
	tb.Helper()
	got := MoveTexts(moves)
	sorted := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff(want, got, sorted, cmpopts.EquateEmpty()); diff != "" {
		report(tb, fmt.Sprintf("move set mismatch (-want +got):\n%s", diff), msgAndArgs...)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(tb testing.TB, err error, msgAndArgs ...interface{}) {
	tb.Helper()
	if err != nil {
		report(tb, fmt.Sprintf("unexpected error: %v", err), msgAndArgs...)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(tb testing.TB, err, target error, msgAndArgs ...interface{}) {
	tb.Helper()
	if !errors.Is(err, target) {
		report(tb, fmt.Sprintf("error %v is not %v", err, target), msgAndArgs...)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(tb testing.TB, got, substr string, msgAndArgs ...interface{}) {
	tb.Helper()
	if !strings.Contains(got, substr) {
		report(tb, fmt.Sprintf("%q does not contain %q", got, substr), msgAndArgs...)
	}
}

func report(tb testing.TB, failure string, msgAndArgs ...interface{}) {
	tb.Helper()
	if msg := formatMessage(msgAndArgs...); msg != "" {
		tb.Errorf("%s: %s", msg, failure)
	} else {
		tb.Error(failure)
	}
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
