package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// Writer is the byte-level emission interface shared by the instruction
// encoders and the ELF writer. All multi-byte writes are little-endian.
type Writer interface {
	Write(b byte) int
	WriteN(b byte, n int) int
	Write2(v uint16) int
	Write4(v uint32) int
	Write8u(v uint64) int
	WriteBytes(bs []byte) int
}

type BufferWrapper struct {
	buf *bytes.Buffer
}

func (bw *BufferWrapper) Write(b byte) int {
	bw.buf.WriteByte(b)
	if verboseMode {
		fmt.Fprintf(os.Stderr, " %02x", b)
	}
	return 1
}

func (bw *BufferWrapper) WriteN(b byte, n int) int {
	for i := 0; i < n; i++ {
		bw.Write(b)
	}
	return n
}

func (bw *BufferWrapper) Write2(v uint16) int {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	bw.WriteBytes(buf[:])
	return 2
}

func (bw *BufferWrapper) Write4(v uint32) int {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	bw.WriteBytes(buf[:])
	return 4
}

func (bw *BufferWrapper) Write8u(v uint64) int {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	bw.WriteBytes(buf[:])
	return 8
}

func (bw *BufferWrapper) WriteBytes(bs []byte) int {
	bw.buf.Write(bs)
	if verboseMode {
		for _, b := range bs {
			fmt.Fprintf(os.Stderr, " %02x", b)
		}
	}
	return len(bs)
}
