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

// Status is an IPP status code
type Status uint16

// Successful status codes (RFC 8011, RFC 3995)
const (
	StatusOk                     Status = 0x0000
	StatusOkIgnoredOrSubstituted Status = 0x0001
	StatusOkConflicting          Status = 0x0002
	StatusOkIgnoredSubscriptions Status = 0x0003
	StatusOkTooManyEvents        Status = 0x0005
	StatusOkEventsComplete       Status = 0x0007
	StatusRedirectionOtherSite   Status = 0x0300
)

// Client error status codes
const (
	StatusErrorBadRequest          Status = 0x0400
	StatusErrorForbidden           Status = 0x0401
	StatusErrorNotAuthenticated    Status = 0x0402
	StatusErrorNotAuthorized       Status = 0x0403
	StatusErrorNotPossible         Status = 0x0404
	StatusErrorTimeout             Status = 0x0405
	StatusErrorNotFound            Status = 0x0406
	StatusErrorGone                Status = 0x0407
	StatusErrorRequestEntity       Status = 0x0408
	StatusErrorRequestValue        Status = 0x0409
	StatusErrorDocumentFormat      Status = 0x040a
	StatusErrorAttributesOrValues  Status = 0x040b
	StatusErrorURIScheme           Status = 0x040c
	StatusErrorCharset             Status = 0x040d
	StatusErrorConflicting         Status = 0x040e
	StatusErrorCompressionNotSup   Status = 0x040f
	StatusErrorCompression         Status = 0x0410
	StatusErrorDocumentFormatError Status = 0x0411
	StatusErrorDocumentAccess      Status = 0x0412
	StatusErrorAttributesNotSet    Status = 0x0413
	StatusErrorIgnoredAllSubs      Status = 0x0414
	StatusErrorTooManySubs         Status = 0x0415
)

// Server error status codes
const (
	StatusErrorInternal             Status = 0x0500
	StatusErrorOperationNotSup      Status = 0x0501
	StatusErrorServiceUnavailable   Status = 0x0502
	StatusErrorVersionNotSup        Status = 0x0503
	StatusErrorDevice               Status = 0x0504
	StatusErrorTemporary            Status = 0x0505
	StatusErrorNotAcceptingJobs     Status = 0x0506
	StatusErrorBusy                 Status = 0x0507
	StatusErrorJobCanceled          Status = 0x0508
	StatusErrorMultipleJobsNotSup   Status = 0x0509
	StatusErrorPrinterIsDeactivated Status = 0x050a
	StatusErrorTooManyJobs          Status = 0x050b
	StatusErrorTooManyDocuments     Status = 0x050c
)

// String returns the registered status keyword, or a hex form for
// unregistered codes
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", uint16(s))
}

// StatusNames returns a fresh copy of the registered status name table,
// keyed by numeric code
func StatusNames() map[uint16]string {
	names := make(map[uint16]string, len(statusNames))
	for status, name := range statusNames {
		names[uint16(status)] = name
	}
	return names
}

var statusNames = map[Status]string{
	StatusOk:                        "successful-ok",
	StatusOkIgnoredOrSubstituted:    "successful-ok-ignored-or-substituted-attributes",
	StatusOkConflicting:             "successful-ok-conflicting-attributes",
	StatusOkIgnoredSubscriptions:    "successful-ok-ignored-subscriptions",
	StatusOkTooManyEvents:           "successful-ok-too-many-events",
	StatusOkEventsComplete:          "successful-ok-events-complete",
	StatusRedirectionOtherSite:      "redirection-other-site",
	StatusErrorBadRequest:           "client-error-bad-request",
	StatusErrorForbidden:            "client-error-forbidden",
	StatusErrorNotAuthenticated:     "client-error-not-authenticated",
	StatusErrorNotAuthorized:        "client-error-not-authorized",
	StatusErrorNotPossible:          "client-error-not-possible",
	StatusErrorTimeout:              "client-error-timeout",
	StatusErrorNotFound:             "client-error-not-found",
	StatusErrorGone:                 "client-error-gone",
	StatusErrorRequestEntity:        "client-error-request-entity-too-large",
	StatusErrorRequestValue:         "client-error-request-value-too-long",
	StatusErrorDocumentFormat:       "client-error-document-format-not-supported",
	StatusErrorAttributesOrValues:   "client-error-attributes-or-values-not-supported",
	StatusErrorURIScheme:            "client-error-uri-scheme-not-supported",
	StatusErrorCharset:              "client-error-charset-not-supported",
	StatusErrorConflicting:          "client-error-conflicting-attributes",
	StatusErrorCompressionNotSup:    "client-error-compression-not-supported",
	StatusErrorCompression:          "client-error-compression-error",
	StatusErrorDocumentFormatError:  "client-error-document-format-error",
	StatusErrorDocumentAccess:       "client-error-document-access-error",
	StatusErrorAttributesNotSet:     "client-error-attributes-not-settable",
	StatusErrorIgnoredAllSubs:       "client-error-ignored-all-subscriptions",
	StatusErrorTooManySubs:          "client-error-too-many-subscriptions",
	StatusErrorInternal:             "server-error-internal-error",
	StatusErrorOperationNotSup:      "server-error-operation-not-supported",
	StatusErrorServiceUnavailable:   "server-error-service-unavailable",
	StatusErrorVersionNotSup:        "server-error-version-not-supported",
	StatusErrorDevice:               "server-error-device-error",
	StatusErrorTemporary:            "server-error-temporary-error",
	StatusErrorNotAcceptingJobs:     "server-error-not-accepting-jobs",
	StatusErrorBusy:                 "server-error-busy",
	StatusErrorJobCanceled:          "server-error-job-canceled",
	StatusErrorMultipleJobsNotSup:   "server-error-multiple-document-jobs-not-supported",
	StatusErrorPrinterIsDeactivated: "server-error-printer-is-deactivated",
	StatusErrorTooManyJobs:          "server-error-too-many-jobs",
	StatusErrorTooManyDocuments:     "server-error-too-many-documents",
}
