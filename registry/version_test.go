// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rob-gra/go-heatlink/registry"
)

func TestParseVersionPadsMissingComponents(t *testing.T) {
	v, err := registry.ParseVersion("3.92")
	require.NoError(t, err)
	assert.Equal(t, registry.Version{3, 92, 0, 0}, v)
}

func TestParseVersionTruncatesExtraComponents(t *testing.T) {
	v, err := registry.ParseVersion("3.92.1.0.99")
	require.NoError(t, err)
	assert.Equal(t, registry.Version{3, 92, 1, 0}, v)
}

func TestParseVersionRejectsNonNumeric(t *testing.T) {
	_, err := registry.ParseVersion("3.x.1.0")
	assert.Error(t, err)
}

func TestMustParseVersionPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		registry.MustParseVersion("not.a.version")
	})
}

func TestVersionString(t *testing.T) {
	v := registry.MustParseVersion("3.92.1.0")
	assert.Equal(t, "3.92.1.0", v.String())
}

func TestVersionCompare(t *testing.T) {
	a := registry.MustParseVersion("3.90.1.0")
	b := registry.MustParseVersion("3.92.1.0")
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestInRangeNilVersionAlwaysMatches(t *testing.T) {
	since := registry.MustParseVersion("1.0.0.0")
	assert.True(t, registry.InRange(nil, &since, nil))
}

func TestInRangeBounds(t *testing.T) {
	since := registry.MustParseVersion("1.0.0.0")
	until := registry.MustParseVersion("2.0.0.0")

	below := registry.MustParseVersion("0.9.0.0")
	within := registry.MustParseVersion("1.5.0.0")
	above := registry.MustParseVersion("2.1.0.0")

	assert.False(t, registry.InRange(&below, &since, &until))
	assert.True(t, registry.InRange(&within, &since, &until))
	assert.False(t, registry.InRange(&above, &since, &until))
}

func TestInRangeUnboundedOnBothSides(t *testing.T) {
	v := registry.MustParseVersion("99.0.0.0")
	assert.True(t, registry.InRange(&v, nil, nil))
}
