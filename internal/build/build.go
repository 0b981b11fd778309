package build

// Version is set at link time with -ldflags "-X".
var Version = "dev"
