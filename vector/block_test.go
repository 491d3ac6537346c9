// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rob-gra/go-heatlink/codec"
	"github.com/rob-gra/go-heatlink/registry"
	"github.com/rob-gra/go-heatlink/vector"
)

func fieldAt(index int, words int, writeable bool) *vector.Field {
	var typ = codec.Unknown
	if words == 3 {
		typ = codec.FullVersion
	}
	return vector.NewField(&registry.FieldDefinition{
		Index: index, Count: words, Names: []string{"f"},
		Type: typ, Writeable: writeable, DataType: "UINT16",
	})
}

func TestCollectMergesAdjacentFields(t *testing.T) {
	fields := []*vector.Field{fieldAt(0, 1, false), fieldAt(1, 1, false), fieldAt(2, 1, false)}
	bl := vector.Collect(fields, 16)
	require.Len(t, bl.Blocks, 1)
	assert.Equal(t, 0, bl.Blocks[0].FirstAddr())
	assert.Equal(t, 2, bl.Blocks[0].LastAddr())
}

func TestCollectSplitsOnGap(t *testing.T) {
	fields := []*vector.Field{fieldAt(0, 1, false), fieldAt(5, 1, false)}
	bl := vector.Collect(fields, 16)
	require.Len(t, bl.Blocks, 2)
	assert.Equal(t, 0, bl.Blocks[0].FirstAddr())
	assert.Equal(t, 5, bl.Blocks[1].FirstAddr())
}

func TestCollectAccountsForMultiwordFields(t *testing.T) {
	// a 2-word field at index 0 occupies addresses 0-1; a field at index 2
	// is adjacent and should merge into the same block.
	fields := []*vector.Field{fieldAt(0, 2, false), fieldAt(2, 1, false)}
	bl := vector.Collect(fields, 16)
	require.Len(t, bl.Blocks, 1)
	assert.Equal(t, 0, bl.Blocks[0].FirstAddr())
	assert.Equal(t, 2, bl.Blocks[0].LastAddr())
}

func TestAppendSingleAlwaysStartsNewBlock(t *testing.T) {
	bl := vector.NewBlockList(16)
	bl.AppendSingle(fieldAt(0, 1, false))
	bl.AppendSingle(fieldAt(1, 1, false))
	assert.Len(t, bl.Blocks, 2)
}

func TestIntegrateDataScattersSingleWordFields(t *testing.T) {
	f0, f1 := fieldAt(0, 1, false), fieldAt(1, 1, false)
	bl := vector.Collect([]*vector.Field{f0, f1}, 16)
	require.Len(t, bl.Blocks, 1)

	require.NoError(t, bl.Blocks[0].IntegrateData([]int64{100, 200}))
	assert.Equal(t, int64(100), *f0.Raw)
	assert.Equal(t, int64(200), *f1.Raw)
}

func TestIntegrateDataRejectsWrongLength(t *testing.T) {
	f0 := fieldAt(0, 1, false)
	bl := vector.Collect([]*vector.Field{f0}, 16)
	err := bl.Blocks[0].IntegrateData([]int64{1, 2, 3})
	assert.Error(t, err)
}

func TestIntegrateDataPacksMultiwordFields(t *testing.T) {
	f0 := fieldAt(0, 2, false)
	bl := vector.Collect([]*vector.Field{f0}, 16)

	require.NoError(t, bl.Blocks[0].IntegrateData([]int64{0x1234, 0x5678}))
	assert.Equal(t, int64(0x12345678), *f0.Raw)
}

func TestGetDataArrUsesPendingOverKnown(t *testing.T) {
	f0 := fieldAt(0, 1, true)
	f0.SetRaw(10)
	require.NoError(t, f0.QueueWrite(20))

	bl := vector.Collect([]*vector.Field{f0}, 16)
	arr, ok := bl.Blocks[0].GetDataArr()
	require.True(t, ok)
	assert.Equal(t, []int64{20}, arr)
}

func TestGetDataArrFailsWhenAddressUnaccountedFor(t *testing.T) {
	f0, f1 := fieldAt(0, 1, false), fieldAt(1, 1, false)
	f0.SetRaw(1)
	// f1 never read and has no pending write.
	bl := vector.Collect([]*vector.Field{f0, f1}, 16)

	_, ok := bl.Blocks[0].GetDataArr()
	assert.False(t, ok)
}

func TestIntegrateDataPacksMultiwordFieldsAtCFIChunkWidth(t *testing.T) {
	// A CFI-class vector packs multi-register fields 32 bits per chunk,
	// unlike SHI's 16-bit registers (spec.md §4.2/§9).
	f0 := fieldAt(0, 2, false)
	bl := vector.Collect([]*vector.Field{f0}, 32)

	require.NoError(t, bl.Blocks[0].IntegrateData([]int64{0x00010002, 0x00030004}))
	assert.Equal(t, int64(0x0001000200030004), *f0.Raw)
}

func TestGetDataArrUnpacksMultiwordFields(t *testing.T) {
	f0 := fieldAt(0, 3, true)
	require.NoError(t, f0.QueueWrite("18.52.86"))

	bl := vector.Collect([]*vector.Field{f0}, 16)
	arr, ok := bl.Blocks[0].GetDataArr()
	require.True(t, ok)
	assert.Equal(t, []int64{18, 52, 86}, arr)
}
