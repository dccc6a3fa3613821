package main

// Minimal static ELF64 executable: header, a single PT_LOAD segment and the
// text section, nothing else. No interpreter, no dynamic linking, no section
// header table. The loader only needs the program header, and a fixture with
// zero sections is exactly the "no conventional runtime" shape the tools
// under test must handle.

const (
	elfHeaderSize     = 0x40
	programHeaderSize = 0x38
	textFileOffset    = elfHeaderSize + programHeaderSize // 0x78
	imageBase         = 0x400000
	entryPoint        = imageBase + textFileOffset // 0x400078, .text start
)

func (fb *FixtureBuilder) WriteELF() error {
	o := fb.ELFWriter()

	// Magic
	o.Write(0x7f)
	o.Write(0x45) // E
	o.Write(0x4c) // L
	o.Write(0x46) // F
	o.Write(2)    // 64-bit
	o.Write(1)    // little endian
	o.Write(1)    // ELF version
	o.Write(0)    // System V ABI
	o.Write(0)    // ABI version
	o.WriteN(0, 7) // zero padding, length of 7

	o.Write2(2)                             // object file type: executable
	o.Write2(GetELFMachineType(fb.machine)) // 0x3e for AMD x86-64, 0xb7 for ARM64
	o.Write4(1)                             // original ELF version
	o.Write8u(entryPoint)                   // address of entry point
	o.Write8u(elfHeaderSize)                // program header table offset
	o.Write8u(0)                            // no section header table
	o.Write4(0)                             // processor-specific flags
	o.Write2(elfHeaderSize)                 // size of this ELF header
	o.Write2(programHeaderSize)             // size of a program header table entry
	o.Write2(1)                             // one LOAD segment
	o.Write2(0x40)                          // size of a section header table entry
	o.Write2(0)                             // no sections, fine for minimal executables
	o.Write2(0)                             // no .shstrtab either

	// PT_LOAD covering the whole file: ELF header, program header and text.
	// Mapping the headers too keeps the file offset / vaddr congruence the
	// loader requires without any alignment padding.
	fileSize := uint64(textFileOffset + fb.text.Len())
	o.Write4(1)          // PT_LOAD
	o.Write4(5)          // flags: R+X
	o.Write8u(0)         // file offset
	o.Write8u(imageBase) // virtual address
	o.Write8u(imageBase) // physical address (unused on Linux)
	o.Write8u(fileSize)  // size in file
	o.Write8u(fileSize)  // size in memory
	o.Write8u(0x1000)    // alignment

	return nil
}
