package riscv

// CSR is a RISC-V control/status register address: the 12-bit immediate a
// CSR instruction encodes. Addresses follow the privileged specification.
type CSR uint16

const (
	// User mode restricted view of mstatus
	UStatus CSR = 0x000
	// Floating-Point Accrued Exceptions
	FFlags CSR = 0x001
	// Floating-Point Dynamic Rounding Mode
	FRM CSR = 0x002
	// Floating-Point Control and Status
	FCSR CSR = 0x003
	// User Interrupt Enable
	UIE CSR = 0x004
	// User Trap Vector Base Address
	UTVec CSR = 0x005
	// User Mode Scratch Register
	UScratch CSR = 0x040
	// User Exception Program Counter
	UEPC CSR = 0x041
	// User Exception Cause
	UCause CSR = 0x042
	// User Trap Value
	UTVal CSR = 0x043
	// User Interrupt Pending
	UIP CSR = 0x044

	// Supervisor Status
	SStatus CSR = 0x100
	// Supervisor Exception Delegation
	SEDeleg CSR = 0x102
	// Supervisor Interrupt Delegation
	SIDeleg CSR = 0x103
	// Supervisor Interrupt Enable
	SIE CSR = 0x104
	// Supervisor Trap Vector Base Address
	STVec CSR = 0x105
	// Counter Enable
	SCounterEn CSR = 0x106
	// Supervisor Mode Scratch Register
	SScratch CSR = 0x140
	// Supervisor Exception Program Counter
	SEPC CSR = 0x141
	// Supervisor Exception Cause
	SCause CSR = 0x142
	// Supervisor bad address or instruction
	STVal CSR = 0x143
	// Supervisor Interrupt Pending
	SIP CSR = 0x144
	// Supervisor address translation and protection
	SATP CSR = 0x180

	// Machine Status
	MStatus CSR = 0x300
	// Machine ISA
	MISA CSR = 0x301
	// Machine Exception Delegation
	MEDeleg CSR = 0x302
	// Machine Interrupt Delegation
	MIDeleg CSR = 0x303
	// Machine Interrupt Enable
	MIE CSR = 0x304
	// Machine Trap Vector Base Address
	MTVec CSR = 0x305
	// Counter Enable
	MCounterEn CSR = 0x306
	// Machine Counter Inhibit
	MCountInhibit CSR = 0x320
	// Machine Mode Scratch Register
	MScratch CSR = 0x340
	// Machine Exception Program Counter
	MEPC CSR = 0x341
	// Machine Exception Cause
	MCause CSR = 0x342
	// Machine Trap Value
	MTVal CSR = 0x343
	// Machine Interrupt Pending
	MIP CSR = 0x344

	// Physical memory protection configuration
	PMPCfg0 CSR = 0x3A0
	// Physical memory protection configuration, RV32 only
	PMPCfg1 CSR = 0x3A1
	// Physical memory protection configuration
	PMPCfg2 CSR = 0x3A2
	// Physical memory protection configuration, RV32 only
	PMPCfg3 CSR = 0x3A3

	// Physical memory protection address registers
	PMPAddr0  CSR = 0x3B0
	PMPAddr1  CSR = 0x3B1
	PMPAddr2  CSR = 0x3B2
	PMPAddr3  CSR = 0x3B3
	PMPAddr4  CSR = 0x3B4
	PMPAddr5  CSR = 0x3B5
	PMPAddr6  CSR = 0x3B6
	PMPAddr7  CSR = 0x3B7
	PMPAddr8  CSR = 0x3B8
	PMPAddr9  CSR = 0x3B9
	PMPAddr10 CSR = 0x3BA
	PMPAddr11 CSR = 0x3BB
	PMPAddr12 CSR = 0x3BC
	PMPAddr13 CSR = 0x3BD
	PMPAddr14 CSR = 0x3BE
	PMPAddr15 CSR = 0x3BF

	// Debug/Trace trigger register select
	TSelect CSR = 0x7A0
	// First Debug/Trace trigger data register
	TData1 CSR = 0x7A1
	// Second Debug/Trace trigger data register
	TData2 CSR = 0x7A2
	// Third Debug/Trace trigger data register
	TData3 CSR = 0x7A3
	// Debug control and status register
	DCSR CSR = 0x7B0
	// Debug PC
	DPC CSR = 0x7B1

	// Clock Cycles Executed Counter
	MCycle CSR = 0xB00
	// Number of Instructions Retired Counter
	MInstRet CSR = 0xB02

	// Cycle counter for RDCYCLE instruction
	Cycle CSR = 0xC00
	// Timer for RDTIME instruction
	Time CSR = 0xC01
	// Instructions-retired counter for RDINSTRET instruction
	InstRet CSR = 0xC02

	// Machine Vendor ID
	MVendorID CSR = 0xF11
	// Machine Architecture ID
	MArchID CSR = 0xF12
	// Machine Implementation ID
	MImpID CSR = 0xF13
	// Hardware Thread ID
	MHartID CSR = 0xF14
	// Pointer to configuration data structure
	MConfigPtr CSR = 0xF15
)
