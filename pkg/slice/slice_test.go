// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/quantumbooks/pkg/slice"
)

func isEven(n int) bool { return n%2 == 0 }

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, slice.Map([]int{1, 2, 3}, strconv.Itoa))
	assert.Nil(t, slice.Map[int, string](nil, strconv.Itoa))
}

func TestFilter(t *testing.T) {
	assert.Equal(t, []int{2, 4}, slice.Filter([]int{1, 2, 3, 4}, isEven))
	assert.Nil(t, slice.Filter([]int{1, 3}, isEven))
	assert.Nil(t, slice.Filter[int](nil, isEven))
}

func TestPartition(t *testing.T) {
	even, odd := slice.Partition([]int{1, 2, 3, 4, 5}, isEven)
	assert.Equal(t, []int{2, 4}, even)
	assert.Equal(t, []int{1, 3, 5}, odd)

	even, odd = slice.Partition[int](nil, isEven)
	assert.Nil(t, even)
	assert.Nil(t, odd)
}
