// Licensed to Elasticsearch B.V. under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Elasticsearch B.V. licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package pinref_test

import (
	"fmt"
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elastic/go-pinref"
)

func TestHandle(t *testing.T) {
	t.Run("clone adds one reference", func(t *testing.T) {
		s := pinref.New(1)
		s.Pin()
		defer s.Destroy()

		h1 := s.NewHandle()
		h2 := h1.Clone()
		assert.Equal(t, uint64(2), s.RefCount())
		assert.Equal(t, 1, *h2.Value())

		h2.Release()
		assert.Equal(t, uint64(1), s.RefCount())
		h1.Release()
		assert.Equal(t, uint64(0), s.RefCount())
	})

	t.Run("count follows the live handles", func(t *testing.T) {
		s := pinref.New("x")
		s.Pin()
		defer s.Destroy()

		root := s.NewHandle()
		var clones []*pinref.Handle[string]
		for i := 0; i < 5; i++ {
			h := root.Clone()
			clones = append(clones, &h)
			require.Equal(t, uint64(2+i), s.RefCount())
		}

		for i, h := range clones {
			h.Release()
			require.Equal(t, uint64(5-i), s.RefCount())
		}
		root.Release()
		assert.Equal(t, uint64(0), s.RefCount())
	})

	t.Run("double release panics", func(t *testing.T) {
		s := pinref.New(1)
		s.Pin()
		defer s.Destroy()

		h := s.NewHandle()
		h.Release()
		assert.Panics(t, func() { h.Release() })
	})

	t.Run("use after release panics", func(t *testing.T) {
		s := pinref.New(1)
		s.Pin()
		defer s.Destroy()

		h := s.NewHandle()
		h.Release()
		assert.Panics(t, func() { h.Value() })
		assert.Panics(t, func() { h.Clone() })
		assert.Panics(t, func() { h.RefCount() })
	})
}

func TestValueForwarding(t *testing.T) {
	s := pinref.New("abc")
	s.Pin()
	defer s.Destroy()

	h1 := s.NewHandle()
	defer h1.Release()
	h2 := h1.Clone()
	defer h2.Release()

	t.Run("equality", func(t *testing.T) {
		assert.True(t, pinref.Equal(&h1, &h2))
	})

	t.Run("ordering", func(t *testing.T) {
		assert.Equal(t, 0, pinref.Compare(&h1, &h2))

		other := pinref.New("abd")
		other.Pin()
		defer other.Destroy()
		ho := other.NewHandle()
		defer ho.Release()

		assert.False(t, pinref.Equal(&h1, &ho))
		assert.Equal(t, -1, pinref.Compare(&h1, &ho))
		assert.Equal(t, 1, pinref.Compare(&ho, &h1))
	})

	t.Run("hashing", func(t *testing.T) {
		seed := maphash.MakeSeed()
		assert.Equal(t, pinref.Hash(seed, &h1), pinref.Hash(seed, &h2))
		assert.Equal(t, maphash.Comparable(seed, "abc"), pinref.Hash(seed, &h1))
	})

	t.Run("formatting", func(t *testing.T) {
		assert.Equal(t, "abc", fmt.Sprintf("%s", &h1))
		assert.Equal(t, `"abc"`, fmt.Sprintf("%q", &h1))
		assert.Equal(t, "abc", fmt.Sprintf("%v", &s))
	})

	t.Run("storages forward like their handles", func(t *testing.T) {
		same := pinref.New("abc")
		larger := pinref.New("abd")

		assert.True(t, pinref.EqualStorage(&s, &same))
		assert.False(t, pinref.EqualStorage(&s, &larger))

		assert.Equal(t, 0, pinref.CompareStorage(&s, &same))
		assert.Equal(t, -1, pinref.CompareStorage(&s, &larger))
		assert.Equal(t, 1, pinref.CompareStorage(&larger, &s))

		seed := maphash.MakeSeed()
		assert.Equal(t, pinref.Hash(seed, &h1), pinref.HashStorage(seed, &s))
		assert.Equal(t, pinref.HashStorage(seed, &same), pinref.HashStorage(seed, &s))
	})
}
