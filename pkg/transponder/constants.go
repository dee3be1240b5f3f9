// Package transponder decodes raw blind scan records into labeled
// transponder descriptors.
package transponder

// Device codes from the Linux DVB API v5 (linux/dvb/frontend.h). The
// driver reports these as plain integers on the result channel.
const (
	// fe_delivery_system
	SysDVBS  = 5
	SysDVBS2 = 6

	// fe_spectral_inversion
	InversionOff  = 0
	InversionOn   = 1
	InversionAuto = 2

	// fe_pilot
	PilotOn   = 0
	PilotOff  = 1
	PilotAuto = 2

	// fe_code_rate
	FECNone = 0
	FEC12   = 1
	FEC23   = 2
	FEC34   = 3
	FEC45   = 4
	FEC56   = 5
	FEC67   = 6
	FEC78   = 7
	FEC89   = 8
	FECAuto = 9
	FEC35   = 10
	FEC910  = 11
	FEC25   = 12

	// fe_modulation
	ModQPSK   = 0
	ModPSK8   = 9
	ModAPSK16 = 10
	ModAPSK32 = 11

	// fe_rolloff
	Rolloff35 = 0
	Rolloff20 = 1
	Rolloff25 = 2
)

// RecordFieldCount is the number of integers in one raw result record.
const RecordFieldCount = 14

// LNB transposition offsets in kHz.
const (
	CBandLOFKHz  = 5150000
	KuLowLOFKHz  = 9750000
	KuHighLOFKHz = 10600000
)
