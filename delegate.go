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

package pinref

import (
	"cmp"
	"fmt"
	"hash/maphash"
)

// Equal reports whether two handles refer to equal values. Two handles
// of the same storage always compare equal.
func Equal[T comparable, C any, PC Counter[C]](a, b *GenericHandle[T, C, PC]) bool {
	return *a.Value() == *b.Value()
}

// Compare orders two handles by their referenced values.
func Compare[T cmp.Ordered, C any, PC Counter[C]](a, b *GenericHandle[T, C, PC]) int {
	return cmp.Compare(*a.Value(), *b.Value())
}

// Hash hashes the value referenced by h with the given seed. Handles
// whose values compare equal hash identically, consistent with
// maphash.Comparable of the value itself.
func Hash[T comparable, C any, PC Counter[C]](seed maphash.Seed, h *GenericHandle[T, C, PC]) uint64 {
	return maphash.Comparable(seed, *h.Value())
}

// EqualStorage is Equal for storages: it reports whether two storages
// contain equal values.
func EqualStorage[T comparable, C any, PC Counter[C]](a, b *GenericStorage[T, C, PC]) bool {
	return *a.Value() == *b.Value()
}

// CompareStorage orders two storages by their contained values.
func CompareStorage[T cmp.Ordered, C any, PC Counter[C]](a, b *GenericStorage[T, C, PC]) int {
	return cmp.Compare(*a.Value(), *b.Value())
}

// HashStorage hashes the value contained in s with the given seed,
// consistent with Hash of any handle derived from s.
func HashStorage[T comparable, C any, PC Counter[C]](seed maphash.Seed, s *GenericStorage[T, C, PC]) uint64 {
	return maphash.Comparable(seed, *s.Value())
}

// Format implements fmt.Formatter, forwarding verb and flags to the
// referenced value.
func (h *GenericHandle[T, C, PC]) Format(st fmt.State, verb rune) {
	fmt.Fprintf(st, fmt.FormatString(st, verb), *h.Value())
}

// Format implements fmt.Formatter, forwarding verb and flags to the
// contained value.
func (s *GenericStorage[T, C, PC]) Format(st fmt.State, verb rune) {
	fmt.Fprintf(st, fmt.FormatString(st, verb), *s.Value())
}
