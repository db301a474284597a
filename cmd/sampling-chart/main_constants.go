package main

// Default command-line flag values
const (
	defaultOutput = "export/digital_audio_comparison.png"
	defaultDPI    = 100
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// outputDirMode is used when creating the output directory.
const outputDirMode = 0o755
