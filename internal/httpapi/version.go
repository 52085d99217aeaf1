package httpapi

// Version is the build version reported by the health endpoint. It is
// overridden at build time via -ldflags "-X .../httpapi.Version=...".
var Version = "dev"
