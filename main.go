package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/xyproto/env/v2"
)

// A tiny builder of runtime-free exit fixtures: minimal x86_64 and aarch64
// Linux ELF executables whose entire text is the exit system call. Linkers
// and loaders are validated against these binaries because they contain no
// startup code, no libc and no section headers, only an entry point that
// terminates the process with a chosen status.

const versionString = "exitfix 1.0.0"

var verboseMode bool

func defaultArch() string {
	switch runtime.GOARCH {
	case "arm64":
		return "aarch64"
	default:
		return "x86_64"
	}
}

func main() {
	var (
		machine  = flag.String("arch", env.Str("EXITFIX_ARCH", defaultArch()), "target architecture (x86_64, amd64, arm64, aarch64)")
		status   = flag.Int("status", 0, "exit status the fixture reports")
		output   = flag.String("o", "exit", "output executable filename")
		manifest = flag.String("manifest", "", "build every fixture listed in a YAML manifest")
		check    = flag.Bool("check", false, "build and run native fixtures, verifying observed exit statuses")
		version  = flag.Bool("version", false, "print version and exit")
		verbose  = flag.Bool("verbose", env.Bool("EXITFIX_VERBOSE"), "log emitted bytes and written files to stderr")
	)
	flag.Parse()
	verboseMode = *verbose

	switch {
	case *version:
		fmt.Println(versionString)
	case *check:
		if err := SelfCheck(); err != nil {
			log.Fatalln(err)
		}
		fmt.Println("self-check passed")
	case *manifest != "":
		if err := BuildManifest(*manifest); err != nil {
			log.Fatalln(err)
		}
	default:
		if err := WriteFixture(*machine, *status, *output); err != nil {
			log.Fatalln(err)
		}
	}
	if verboseMode {
		fmt.Fprintln(os.Stderr, "done")
	}
}
