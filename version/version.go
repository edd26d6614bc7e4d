package version

// Version is the engine version, overridden at build time with
// -ldflags "-X github.com/neonsnake/engine/version.Version=...".
var Version = "dev"
