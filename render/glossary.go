// Copyright 2024 Georg Jung
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package render

// DefaultGlossaries returns the built-in attribute glossaries: the
// printer-state and job-state enum labels. The result is a fresh copy
// the caller may extend
func DefaultGlossaries() map[string]map[int32]string {
	return map[string]map[int32]string{
		"printer-state": {
			3: "idle",
			4: "processing",
			5: "stopped",
		},
		"job-state": {
			3: "pending",
			4: "held",
			5: "processing",
			6: "stopped",
			7: "canceled",
			8: "aborted",
			9: "completed",
		},
	}
}
