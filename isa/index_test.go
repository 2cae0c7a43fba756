package isa

import (
	"math/bits"
	"slices"
	"sync"
	"testing"

	"github.com/ezrec/isacore/fault"
	"github.com/stretchr/testify/assert"
)

func mustDescriptor(t *testing.T, syntax string, template string) *Descriptor {
	desc, err := NewDescriptor(FORMAT_R3, syntax, template, "", Semantic{})
	if err != nil {
		t.Fatal(err)
	}
	return desc
}

func TestIndexOrder(t *testing.T) {
	assert := assert.New(t)

	basic, err := Basic()
	if !assert.NoError(err) {
		return
	}

	index, err := NewIndex(basic)
	if !assert.NoError(err) {
		return
	}

	var groups []*Group
	for grp := range index.Groups() {
		groups = append(groups, grp)
	}
	assert.True(len(groups) > 1)

	for n := 1; n < len(groups); n++ {
		a, b := groups[n-1], groups[n]
		if a.Specificity() == b.Specificity() {
			assert.Less(a.Mask(), b.Mask())
		} else {
			assert.Greater(a.Specificity(), b.Specificity())
		}
	}

	total := 0
	for _, grp := range groups {
		total += grp.Len()
		for match, desc := range grp.All() {
			assert.Equal(grp.Mask(), desc.Mask)
			assert.Equal(match, desc.Match)
		}
	}
	assert.Equal(len(basic), total)
}

func TestIndexAmbiguous(t *testing.T) {
	assert := assert.New(t)

	a := mustDescriptor(t, "and_ge $t1 = $t2 , $t3", "000000 fffff sssss 1110 ttttt 00000 01")
	b := mustDescriptor(t, "and_ltu $t1 = $t2 , $t3", "000000 fffff sssss 1110 ttttt 00000 01")

	_, err := NewIndex([]*Descriptor{a, b})
	assert.ErrorIs(err, fault.ErrConfiguration)
	assert.ErrorIs(err, fault.ErrAmbiguous)
	assert.Contains(err.Error(), "and_ge")
	assert.Contains(err.Error(), "and_ltu")
}

func TestIndexSuperset(t *testing.T) {
	assert := assert.New(t)

	wide := mustDescriptor(t, "sb $t1 , -100 = $t2", "001001 ttttt fffff 0000 ssssssssssss")
	narrow := mustDescriptor(t, "sb $t1, $t2, 1 = $t3", "001001 aaaaa fffff 0000 sssss 00000 tt")

	for _, order := range [][]*Descriptor{{wide, narrow}, {narrow, wide}} {
		index, err := NewIndex(order)
		if !assert.NoError(err) {
			continue
		}
		// Low bits zero: both match, the more specific mask wins.
		assert.Equal(narrow, index.Find(0x24000000|3<<7))
		// Only the wide mask matches.
		assert.Equal(wide, index.Find(0x24000000|0x7c))
		// Neither matches.
		assert.Nil(index.Find(0x28000000))
	}
}

func TestIndexTie(t *testing.T) {
	assert := assert.New(t)

	// Equal specificity: the numerically smaller mask is searched first.
	low := mustDescriptor(t, "low", "0000000000000000 xxxxxxxxxxxxxxxx")
	high := mustDescriptor(t, "high", "xxxxxxxxxxxxxxxx 0000000000000000")

	index, err := NewIndex([]*Descriptor{low, high})
	if !assert.NoError(err) {
		return
	}
	assert.Equal(high, index.Find(0))
	assert.Equal(low, index.Find(0x00001234))
	assert.Equal(high, index.Find(0x12340000))
	assert.Nil(index.Find(0x12341234))
}

func TestIndexEmpty(t *testing.T) {
	assert := assert.New(t)

	index, err := NewIndex(nil)
	assert.NoError(err)
	assert.Nil(index.Find(0))
	assert.Empty(slices.Collect(index.Groups()))
}

func TestIndexConcurrent(t *testing.T) {
	assert := assert.New(t)

	cat, err := NewDefaultCatalog()
	if !assert.NoError(err) {
		return
	}

	var wg sync.WaitGroup
	found := make([]int, 8)
	for n := range found {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for desc := range cat.Basic() {
				if cat.FindByBinaryCode(desc.Match) != nil {
					found[n]++
				}
			}
		}()
	}
	wg.Wait()

	for _, count := range found {
		assert.Equal(found[0], count)
	}
}

func FuzzIndexFind(f *testing.F) {
	basic, err := Basic()
	if err != nil {
		f.Fatal(err)
	}
	index, err := NewIndex(basic)
	if err != nil {
		f.Fatal(err)
	}

	for _, desc := range basic {
		f.Add(desc.Match)
		f.Add(desc.Match | ^desc.Mask)
	}

	f.Fuzz(func(t *testing.T, word uint32) {
		assert := assert.New(t)

		found := index.Find(word)

		var best *Descriptor
		for _, desc := range basic {
			if !desc.Matches(word) {
				continue
			}
			if best == nil {
				best = desc
				continue
			}
			bs, ds := bits.OnesCount32(best.Mask), bits.OnesCount32(desc.Mask)
			if ds > bs || (ds == bs && desc.Mask < best.Mask) {
				best = desc
			}
		}

		assert.Equal(best, found)
	})
}
