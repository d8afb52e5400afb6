package version

// Current defines the application version.
// Update this single line to propagate version changes everywhere.
const Current = "v1.2.0"

const AppName = "Fluxo PER/DCOMP"
