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

package ipp

import "fmt"

// Tag is a single byte from the attribute stream. Values below 0x10
// delimit attribute groups, everything else describes the syntax of an
// attribute value (RFC 8010, section 3.5.1)
type Tag uint8

// Delimiter tags
const (
	TagZero                   Tag = 0x00
	TagOperationGroup         Tag = 0x01
	TagJobGroup               Tag = 0x02
	TagEnd                    Tag = 0x03
	TagPrinterGroup           Tag = 0x04
	TagUnsupportedGroup       Tag = 0x05
	TagSubscriptionGroup      Tag = 0x06
	TagEventNotificationGroup Tag = 0x07
	TagResourceGroup          Tag = 0x08
	TagDocumentGroup          Tag = 0x09
	TagSystemGroup            Tag = 0x0a
)

// Out-of-band value tags
const (
	TagUnsupportedValue Tag = 0x10
	TagDefault          Tag = 0x11
	TagUnknown          Tag = 0x12
	TagNoValue          Tag = 0x13
	TagNotSettable      Tag = 0x15
	TagDeleteAttr       Tag = 0x16
	TagAdminDefine      Tag = 0x17
)

// Integer value tags
const (
	TagInteger Tag = 0x21
	TagBoolean Tag = 0x22
	TagEnum    Tag = 0x23
)

// Octet-string value tags
const (
	TagOctetString     Tag = 0x30
	TagDateTime        Tag = 0x31
	TagResolution      Tag = 0x32
	TagRange           Tag = 0x33
	TagBeginCollection Tag = 0x34
	TagTextLang        Tag = 0x35
	TagNameLang        Tag = 0x36
	TagEndCollection   Tag = 0x37
)

// Character-string value tags
const (
	TagText           Tag = 0x41
	TagName           Tag = 0x42
	TagReservedString Tag = 0x43
	TagKeyword        Tag = 0x44
	TagURI            Tag = 0x45
	TagURIScheme      Tag = 0x46
	TagCharset        Tag = 0x47
	TagLanguage       Tag = 0x48
	TagMimeType       Tag = 0x49
	TagMemberName     Tag = 0x4a
	TagExtension      Tag = 0x7f
)

// IsDelimiter returns true for tags that delimit attribute groups rather
// than carry a value
func (t Tag) IsDelimiter() bool {
	return t < 0x10
}

// IsGroup returns true for delimiter tags that open an attribute group
func (t Tag) IsGroup() bool {
	return t.IsDelimiter() && t != TagEnd
}

// IsOutOfBand returns true for out-of-band value tags, which carry no
// payload semantics
func (t Tag) IsOutOfBand() bool {
	return t >= 0x10 && t < 0x20
}

// IsIntegerClass returns true for tags in the integer syntax range
func (t Tag) IsIntegerClass() bool {
	return t >= 0x20 && t < 0x30
}

var tagNames = map[Tag]string{
	TagZero:                   "zero",
	TagOperationGroup:         "operation-attributes-tag",
	TagJobGroup:               "job-attributes-tag",
	TagEnd:                    "end-of-attributes-tag",
	TagPrinterGroup:           "printer-attributes-tag",
	TagUnsupportedGroup:       "unsupported-attributes-tag",
	TagSubscriptionGroup:      "subscription-attributes-tag",
	TagEventNotificationGroup: "event-notification-attributes-tag",
	TagResourceGroup:          "resource-attributes-tag",
	TagDocumentGroup:          "document-attributes-tag",
	TagSystemGroup:            "system-attributes-tag",
	TagUnsupportedValue:       "unsupported",
	TagDefault:                "default",
	TagUnknown:                "unknown",
	TagNoValue:                "no-value",
	TagNotSettable:            "not-settable",
	TagDeleteAttr:             "delete-attribute",
	TagAdminDefine:            "admin-define",
	TagInteger:                "integer",
	TagBoolean:                "boolean",
	TagEnum:                   "enum",
	TagOctetString:            "octetString",
	TagDateTime:               "dateTime",
	TagResolution:             "resolution",
	TagRange:                  "rangeOfInteger",
	TagBeginCollection:        "collection",
	TagTextLang:               "textWithLanguage",
	TagNameLang:               "nameWithLanguage",
	TagEndCollection:          "endCollection",
	TagText:                   "textWithoutLanguage",
	TagName:                   "nameWithoutLanguage",
	TagReservedString:         "reserved-string",
	TagKeyword:                "keyword",
	TagURI:                    "uri",
	TagURIScheme:              "uriScheme",
	TagCharset:                "charset",
	TagLanguage:               "naturalLanguage",
	TagMimeType:               "mimeMediaType",
	TagMemberName:             "memberAttrName",
	TagExtension:              "extension",
}

// String returns the RFC 8010 name for the tag, or a hex form for tags
// without a registered name
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("0x%02x", uint8(t))
}

// GroupName returns a human-readable heading for a group delimiter tag.
// Unrecognized delimiters render as a hex form so vendor and future
// group tags still produce useful output
func (t Tag) GroupName() string {
	if name, ok := groupNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown-group-0x%02x", uint8(t))
}

var groupNames = map[Tag]string{
	TagOperationGroup:         "operation-attributes",
	TagJobGroup:               "job-attributes",
	TagPrinterGroup:           "printer-attributes",
	TagUnsupportedGroup:       "unsupported-attributes",
	TagSubscriptionGroup:      "subscription-attributes",
	TagEventNotificationGroup: "event-notification-attributes",
	TagResourceGroup:          "resource-attributes",
	TagDocumentGroup:          "document-attributes",
	TagSystemGroup:            "system-attributes",
}
