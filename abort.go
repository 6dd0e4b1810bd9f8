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

//go:build !pinref_unsafe_disable_abort

package pinref

import (
	"fmt"
	"os"
	"runtime/debug"
)

// abortf terminates the process with the given message and a stack
// trace. It is not a panic on purpose: the conditions funnelled here
// precede a dangling reference, and recovering would resume execution
// with that reference still reachable. The record's memory has not
// been reused at this point, so producing the message is still safe.
func abortf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Stderr.Write(debug.Stack())
	os.Exit(2)
}
