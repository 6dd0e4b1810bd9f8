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

//go:build pinref_unsafe_disable_abort

package pinref

import "fmt"

// Building with the pinref_unsafe_disable_abort tag downgrades the
// fatal conditions to panics so tests can exercise the failure path
// in-process. A recovered panic from here leaves handles referring to
// a record whose owner is gone; the tag is unsound and must never be
// set for production builds.
func abortf(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}
