package model

// Version is the current release, overridable at build time via
// -ldflags "-X addpath/internal/model.Version=...".
var Version = "0.2.0"
