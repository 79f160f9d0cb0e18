// Mangamatch Core
// Copyright (c) 2026 The Mangamatch Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later

package titles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  string
	}{
		{"no", "no"},       // length ≤2 passes through
		{"cat", "cat"},     // nothing to strip
		{"cats", "cat"},    // plural
		{"stories", "story"},
		{"classes", "class"},
		{"boxes", "box"},
		{"running", "run"}, // doubled consonant collapsed
		{"jumped", "jump"},
		{"quickly", "quick"},
		{"hunter", "hunt"},
		{"station", "stat"},
		{"bus", "bus"},     // -us plurals left alone
		{"glass", "glass"}, // -ss left alone
		{"進撃", "進撃"},       // non-Latin passes through
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Stem(tt.token), "token %q", tt.token)
	}
}

func TestStemEquatesInflections(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Stem("story"), Stem("stories"))
	assert.Equal(t, Stem("run"), Stem("running"))
	assert.Equal(t, Stem("cat"), Stem("cats"))
}
