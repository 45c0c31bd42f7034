// Command escfmt prints files, standard input or literal arguments with
// non-printable bytes backslash-escaped.
package main

import "os"

// Version information, injected at build time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	root := newRootCmd(os.LookupEnv)
	root.Version = Version + " (" + Commit + ", " + BuildDate + ")"
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
