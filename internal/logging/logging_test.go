// Copyright 2025 Georg Jung
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

package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	if New("test") == nil {
		t.Fatal("expected a logger")
	}
}

func TestSetLevel(t *testing.T) {
	defer func() {
		if err := SetLevel("info"); err != nil {
			t.Fatalf("failed to restore level: %s", err)
		}
	}()
	if err := SetLevel("DEBUG"); err != nil {
		t.Fatalf("failed to set level: %s", err)
	}
	if !level.Enabled(zap.DebugLevel) {
		t.Fatal("debug level should be enabled")
	}
	if err := SetLevel("bogus"); err == nil {
		t.Fatal("expected an error for an unknown level name")
	}
	if !level.Enabled(zap.DebugLevel) {
		t.Fatal("a failed SetLevel must not change the level")
	}
}
