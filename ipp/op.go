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

// Op is an IPP operation code
type Op uint16

// Job and printer operations (RFC 8011)
const (
	OpPrintJob                  Op = 0x0002
	OpPrintURI                  Op = 0x0003
	OpValidateJob               Op = 0x0004
	OpCreateJob                 Op = 0x0005
	OpSendDocument              Op = 0x0006
	OpSendURI                   Op = 0x0007
	OpCancelJob                 Op = 0x0008
	OpGetJobAttributes          Op = 0x0009
	OpGetJobs                   Op = 0x000a
	OpGetPrinterAttributes      Op = 0x000b
	OpHoldJob                   Op = 0x000c
	OpReleaseJob                Op = 0x000d
	OpRestartJob                Op = 0x000e
	OpPausePrinter              Op = 0x0010
	OpResumePrinter             Op = 0x0011
	OpPurgeJobs                 Op = 0x0012
	OpSetPrinterAttributes      Op = 0x0013
	OpSetJobAttributes          Op = 0x0014
	OpGetPrinterSupportedValues Op = 0x0015
)

// Subscription and notification operations (RFC 3995/3996)
const (
	OpCreatePrinterSubscriptions Op = 0x0016
	OpCreateJobSubscriptions     Op = 0x0017
	OpGetSubscriptionAttributes  Op = 0x0018
	OpGetSubscriptions           Op = 0x0019
	OpRenewSubscription          Op = 0x001a
	OpCancelSubscription         Op = 0x001b
	OpGetNotifications           Op = 0x001c
	OpSendNotifications          Op = 0x001d
)

// Administrative operations (PWG 5100.11 and friends)
const (
	OpGetResourceAttributes       Op = 0x001e
	OpGetResourceData             Op = 0x001f
	OpGetResources                Op = 0x0020
	OpGetPrintSupportFiles        Op = 0x0021
	OpEnablePrinter               Op = 0x0022
	OpDisablePrinter              Op = 0x0023
	OpPausePrinterAfterCurrentJob Op = 0x0024
	OpHoldNewJobs                 Op = 0x0025
	OpReleaseHeldNewJobs          Op = 0x0026
	OpDeactivatePrinter           Op = 0x0027
	OpActivatePrinter             Op = 0x0028
	OpRestartPrinter              Op = 0x0029
	OpShutdownPrinter             Op = 0x002a
	OpStartupPrinter              Op = 0x002b
	OpReprocessJob                Op = 0x002c
	OpCancelCurrentJob            Op = 0x002d
	OpSuspendCurrentJob           Op = 0x002e
	OpResumeJob                   Op = 0x002f
	OpPromoteJob                  Op = 0x0030
	OpScheduleJobAfter            Op = 0x0031
)

// Document object operations (PWG 5100.5)
const (
	OpCancelDocument        Op = 0x0033
	OpGetDocumentAttributes Op = 0x0034
	OpGetDocuments          Op = 0x0035
	OpDeleteDocument        Op = 0x0036
	OpSetDocumentAttributes Op = 0x0037
	OpCancelJobs            Op = 0x0038
	OpCancelMyJobs          Op = 0x0039
	OpResubmitJob           Op = 0x003a
	OpCloseJob              Op = 0x003b
	OpIdentifyPrinter       Op = 0x003c
	OpValidateDocument      Op = 0x003d
	OpAddDocumentImages     Op = 0x003e
)

// Infrastructure printer operations (PWG 5100.18)
const (
	OpAcknowledgeDocument          Op = 0x003f
	OpAcknowledgeIdentifyPrinter   Op = 0x0040
	OpAcknowledgeJob               Op = 0x0041
	OpFetchDocument                Op = 0x0042
	OpFetchJob                     Op = 0x0043
	OpGetOutputDeviceAttributes    Op = 0x0044
	OpUpdateActiveJobs             Op = 0x0045
	OpDeregisterOutputDevice       Op = 0x0046
	OpUpdateDocumentStatus         Op = 0x0047
	OpUpdateJobStatus              Op = 0x0048
	OpUpdateOutputDeviceAttributes Op = 0x0049
	OpGetNextDocumentData          Op = 0x004a
)

// System service operations (PWG 5100.22)
const (
	OpAllocatePrinterResources        Op = 0x004b
	OpCreatePrinter                   Op = 0x004c
	OpDeallocatePrinterResources      Op = 0x004d
	OpDeletePrinter                   Op = 0x004e
	OpGetPrinters                     Op = 0x004f
	OpShutdownOnePrinter              Op = 0x0050
	OpStartupOnePrinter               Op = 0x0051
	OpCancelResource                  Op = 0x0052
	OpCreateResource                  Op = 0x0053
	OpInstallResource                 Op = 0x0054
	OpSendResourceData                Op = 0x0055
	OpSetResourceAttributes           Op = 0x0056
	OpCreateResourceSubscriptions     Op = 0x0057
	OpCreateSystemSubscriptions       Op = 0x0058
	OpDisableAllPrinters              Op = 0x0059
	OpEnableAllPrinters               Op = 0x005a
	OpGetSystemAttributes             Op = 0x005b
	OpGetSystemSupportedValues        Op = 0x005c
	OpPauseAllPrinters                Op = 0x005d
	OpPauseAllPrintersAfterCurrentJob Op = 0x005e
	OpRegisterOutputDevice            Op = 0x005f
	OpRestartSystem                   Op = 0x0060
	OpResumeAllPrinters               Op = 0x0061
	OpSetSystemAttributes             Op = 0x0062
	OpShutdownAllPrinters             Op = 0x0063
	OpStartupAllPrinters              Op = 0x0064
)

// CUPS vendor operations
const (
	OpCupsGetDefault         Op = 0x4001
	OpCupsGetPrinters        Op = 0x4002
	OpCupsAddModifyPrinter   Op = 0x4003
	OpCupsDeletePrinter      Op = 0x4004
	OpCupsGetClasses         Op = 0x4005
	OpCupsAddModifyClass     Op = 0x4006
	OpCupsDeleteClass        Op = 0x4007
	OpCupsAcceptJobs         Op = 0x4008
	OpCupsRejectJobs         Op = 0x4009
	OpCupsSetDefault         Op = 0x400a
	OpCupsGetDevices         Op = 0x400b
	OpCupsGetPpds            Op = 0x400c
	OpCupsMoveJob            Op = 0x400d
	OpCupsAuthenticateJob    Op = 0x400e
	OpCupsGetPpd             Op = 0x400f
	OpCupsGetDocument        Op = 0x4027
	OpCupsCreateLocalPrinter Op = 0x4028
)

// String returns the registered operation name, or a hex form for
// unregistered codes
func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", uint16(o))
}

// OperationNames returns a fresh copy of the registered operation name
// table, keyed by numeric code. Callers may extend the copy without
// affecting the package defaults
func OperationNames() map[uint16]string {
	names := make(map[uint16]string, len(opNames))
	for op, name := range opNames {
		names[uint16(op)] = name
	}
	return names
}

var opNames = map[Op]string{
	OpPrintJob:                        "Print-Job",
	OpPrintURI:                        "Print-URI",
	OpValidateJob:                     "Validate-Job",
	OpCreateJob:                       "Create-Job",
	OpSendDocument:                    "Send-Document",
	OpSendURI:                         "Send-URI",
	OpCancelJob:                       "Cancel-Job",
	OpGetJobAttributes:                "Get-Job-Attributes",
	OpGetJobs:                         "Get-Jobs",
	OpGetPrinterAttributes:            "Get-Printer-Attributes",
	OpHoldJob:                         "Hold-Job",
	OpReleaseJob:                      "Release-Job",
	OpRestartJob:                      "Restart-Job",
	OpPausePrinter:                    "Pause-Printer",
	OpResumePrinter:                   "Resume-Printer",
	OpPurgeJobs:                       "Purge-Jobs",
	OpSetPrinterAttributes:            "Set-Printer-Attributes",
	OpSetJobAttributes:                "Set-Job-Attributes",
	OpGetPrinterSupportedValues:       "Get-Printer-Supported-Values",
	OpCreatePrinterSubscriptions:      "Create-Printer-Subscriptions",
	OpCreateJobSubscriptions:          "Create-Job-Subscriptions",
	OpGetSubscriptionAttributes:       "Get-Subscription-Attributes",
	OpGetSubscriptions:                "Get-Subscriptions",
	OpRenewSubscription:               "Renew-Subscription",
	OpCancelSubscription:              "Cancel-Subscription",
	OpGetNotifications:                "Get-Notifications",
	OpSendNotifications:               "Send-Notifications",
	OpGetResourceAttributes:           "Get-Resource-Attributes",
	OpGetResourceData:                 "Get-Resource-Data",
	OpGetResources:                    "Get-Resources",
	OpGetPrintSupportFiles:            "Get-Printer-Support-Files",
	OpEnablePrinter:                   "Enable-Printer",
	OpDisablePrinter:                  "Disable-Printer",
	OpPausePrinterAfterCurrentJob:     "Pause-Printer-After-Current-Job",
	OpHoldNewJobs:                     "Hold-New-Jobs",
	OpReleaseHeldNewJobs:              "Release-Held-New-Jobs",
	OpDeactivatePrinter:               "Deactivate-Printer",
	OpActivatePrinter:                 "Activate-Printer",
	OpRestartPrinter:                  "Restart-Printer",
	OpShutdownPrinter:                 "Shutdown-Printer",
	OpStartupPrinter:                  "Startup-Printer",
	OpReprocessJob:                    "Reprocess-Job",
	OpCancelCurrentJob:                "Cancel-Current-Job",
	OpSuspendCurrentJob:               "Suspend-Current-Job",
	OpResumeJob:                       "Resume-Job",
	OpPromoteJob:                      "Promote-Job",
	OpScheduleJobAfter:                "Schedule-Job-After",
	OpCancelDocument:                  "Cancel-Document",
	OpGetDocumentAttributes:           "Get-Document-Attributes",
	OpGetDocuments:                    "Get-Documents",
	OpDeleteDocument:                  "Delete-Document",
	OpSetDocumentAttributes:           "Set-Document-Attributes",
	OpCancelJobs:                      "Cancel-Jobs",
	OpCancelMyJobs:                    "Cancel-My-Jobs",
	OpResubmitJob:                     "Resubmit-Job",
	OpCloseJob:                        "Close-Job",
	OpIdentifyPrinter:                 "Identify-Printer",
	OpValidateDocument:                "Validate-Document",
	OpAddDocumentImages:               "Add-Document-Images",
	OpAcknowledgeDocument:             "Acknowledge-Document",
	OpAcknowledgeIdentifyPrinter:      "Acknowledge-Identify-Printer",
	OpAcknowledgeJob:                  "Acknowledge-Job",
	OpFetchDocument:                   "Fetch-Document",
	OpFetchJob:                        "Fetch-Job",
	OpGetOutputDeviceAttributes:       "Get-Output-Device-Attributes",
	OpUpdateActiveJobs:                "Update-Active-Jobs",
	OpDeregisterOutputDevice:          "Deregister-Output-Device",
	OpUpdateDocumentStatus:            "Update-Document-Status",
	OpUpdateJobStatus:                 "Update-Job-Status",
	OpUpdateOutputDeviceAttributes:    "Update-Output-Device-Attributes",
	OpGetNextDocumentData:             "Get-Next-Document-Data",
	OpAllocatePrinterResources:        "Allocate-Printer-Resources",
	OpCreatePrinter:                   "Create-Printer",
	OpDeallocatePrinterResources:      "Deallocate-Printer-Resources",
	OpDeletePrinter:                   "Delete-Printer",
	OpGetPrinters:                     "Get-Printers",
	OpShutdownOnePrinter:              "Shutdown-One-Printer",
	OpStartupOnePrinter:               "Startup-One-Printer",
	OpCancelResource:                  "Cancel-Resource",
	OpCreateResource:                  "Create-Resource",
	OpInstallResource:                 "Install-Resource",
	OpSendResourceData:                "Send-Resource-Data",
	OpSetResourceAttributes:           "Set-Resource-Attributes",
	OpCreateResourceSubscriptions:     "Create-Resource-Subscriptions",
	OpCreateSystemSubscriptions:       "Create-System-Subscriptions",
	OpDisableAllPrinters:              "Disable-All-Printers",
	OpEnableAllPrinters:               "Enable-All-Printers",
	OpGetSystemAttributes:             "Get-System-Attributes",
	OpGetSystemSupportedValues:        "Get-System-Supported-Values",
	OpPauseAllPrinters:                "Pause-All-Printers",
	OpPauseAllPrintersAfterCurrentJob: "Pause-All-Printers-After-Current-Job",
	OpRegisterOutputDevice:            "Register-Output-Device",
	OpRestartSystem:                   "Restart-System",
	OpResumeAllPrinters:               "Resume-All-Printers",
	OpSetSystemAttributes:             "Set-System-Attributes",
	OpShutdownAllPrinters:             "Shutdown-All-Printers",
	OpStartupAllPrinters:              "Startup-All-Printers",
	OpCupsGetDefault:                  "CUPS-Get-Default",
	OpCupsGetPrinters:                 "CUPS-Get-Printers",
	OpCupsAddModifyPrinter:            "CUPS-Add-Modify-Printer",
	OpCupsDeletePrinter:               "CUPS-Delete-Printer",
	OpCupsGetClasses:                  "CUPS-Get-Classes",
	OpCupsAddModifyClass:              "CUPS-Add-Modify-Class",
	OpCupsDeleteClass:                 "CUPS-Delete-Class",
	OpCupsAcceptJobs:                  "CUPS-Accept-Jobs",
	OpCupsRejectJobs:                  "CUPS-Reject-Jobs",
	OpCupsSetDefault:                  "CUPS-Set-Default",
	OpCupsGetDevices:                  "CUPS-Get-Devices",
	OpCupsGetPpds:                     "CUPS-Get-PPDs",
	OpCupsMoveJob:                     "CUPS-Move-Job",
	OpCupsAuthenticateJob:             "CUPS-Authenticate-Job",
	OpCupsGetPpd:                      "CUPS-Get-PPD",
	OpCupsGetDocument:                 "CUPS-Get-Document",
	OpCupsCreateLocalPrinter:          "CUPS-Create-Local-Printer",
}
