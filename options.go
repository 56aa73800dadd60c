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

package ippdecoder

// DecoderOptionFunc is a type that represents functions that modify the Decoder config
type DecoderOptionFunc func(*Decoder)

// WithMaxNestingDepth specifies the collection recursion limit. Values
// below one select ipp.DefaultMaxNestingDepth
func WithMaxNestingDepth(depth int) DecoderOptionFunc {
	return func(d *Decoder) {
		d.decodeOpts.MaxNestingDepth = depth
	}
}

// WithPermissiveMembers specifies whether plain named attribute records
// are accepted in place of memberAttrName markers inside collections.
// Some printer firmwares encode collection members that way. This is
// disabled by default
func WithPermissiveMembers(permissive bool) DecoderOptionFunc {
	return func(d *Decoder) {
		d.decodeOpts.PermissiveMembers = permissive
	}
}

// WithOperationName registers a mnemonic for an operation code, e.g. a
// vendor extension. It overrides any registered name in both rendered
// text and export output
func WithOperationName(code uint16, name string) DecoderOptionFunc {
	return func(d *Decoder) {
		d.renderer.OperationNames[code] = name
		d.exporter.OperationNames[code] = name
	}
}

// WithStatusName registers a mnemonic for a status code. It overrides
// any registered name in both rendered text and export output
func WithStatusName(code uint16, name string) DecoderOptionFunc {
	return func(d *Decoder) {
		d.renderer.StatusNames[code] = name
		d.exporter.StatusNames[code] = name
	}
}

// WithGlossary registers labels for an attribute's integer values in
// rendered text, replacing any built-in glossary for that attribute
func WithGlossary(attribute string, labels map[int32]string) DecoderOptionFunc {
	return func(d *Decoder) {
		copied := make(map[int32]string, len(labels))
		for value, label := range labels {
			copied[value] = label
		}
		d.renderer.Glossaries[attribute] = copied
	}
}

// WithIndent specifies the per-level indentation unit for rendered
// text. The default is two spaces
func WithIndent(indent string) DecoderOptionFunc {
	return func(d *Decoder) {
		d.renderer.Indent = indent
	}
}
